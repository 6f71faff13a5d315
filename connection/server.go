package connection

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"myplanner/config"
	"myplanner/controller/board"
	"myplanner/controller/calendar"
	"myplanner/controller/task"
	"myplanner/middleware"
	"myplanner/services"
)

// NewRouter wires the HTTP routes on top of the given services.
func NewRouter(logger *log.Logger, boards *services.BoardService, cal *services.CalendarService) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	board.BoardController(router, boards)
	task.CreateTaskController(router, boards)
	calendar.CalendarController(router, cal)

	return router
}

func StartServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger := cfg.NewLogger()
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	var boardStore services.BoardStore
	var eventStore services.EventStore
	switch cfg.StorageBackend {
	case config.BackendMemory:
		mem := services.NewMemoryStore()
		boardStore, eventStore = mem, mem
		logger.Warn("using in-memory storage, data is lost on restart")
	default:
		fb, err := FBConnection(ctx, cfg.CredentialsFile)
		if err != nil {
			log.Fatalf("Failed to initialize Firestore client: %v", err)
		}
		defer fb.Close()
		fs := services.NewFirestoreStore(fb)
		boardStore, eventStore = fs, fs
	}

	if cfg.RedisURL != "" {
		rc, err := RedisConnection(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to initialize Redis client: %v", err)
		}
		defer rc.Close()
		boardStore = services.NewCachedBoards(boardStore, rc, cfg.CacheTTL)
	}

	router := NewRouter(logger,
		services.NewBoardService(boardStore, logger),
		services.NewCalendarService(eventStore, cfg.CalendarLocation, logger),
	)

	logger.WithField("port", cfg.Port).Info("starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("server stopped: %v", err)
	}
}
