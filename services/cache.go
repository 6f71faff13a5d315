package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"myplanner/model"
)

// CachedBoards wraps a BoardStore with a Redis read-through cache for boards.
// Every write evicts the board so the next read goes to the backing store.
type CachedBoards struct {
	BoardStore
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedBoards(base BoardStore, client *redis.Client, ttl time.Duration) *CachedBoards {
	if base == nil {
		panic("services.NewCachedBoards: base store is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &CachedBoards{BoardStore: base, redis: client, ttl: ttl}
}

func (c *CachedBoards) GetBoard(ctx context.Context, boardID string) (*model.Board, error) {
	if b, ok := c.load(ctx, boardID); ok {
		return b, nil
	}
	b, err := c.BoardStore.GetBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, boardID, b)
	return b, nil
}

func (c *CachedBoards) UpdateBoard(ctx context.Context, boardID string, fn BoardMutation) (*model.Board, error) {
	b, err := c.BoardStore.UpdateBoard(ctx, boardID, fn)
	c.evict(ctx, boardID)
	return b, err
}

func (c *CachedBoards) CreateTask(ctx context.Context, task model.Tasks, columnID string, reminder *model.Notification) (*model.Board, error) {
	b, err := c.BoardStore.CreateTask(ctx, task, columnID, reminder)
	c.evict(ctx, task.BoardID)
	return b, err
}

func (c *CachedBoards) load(ctx context.Context, boardID string) (*model.Board, bool) {
	if c.redis == nil {
		return nil, false
	}
	data, err := c.redis.Get(ctx, boardCacheKey(boardID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.WithError(err).WithField("boardId", boardID).Warn("board cache read failed")
			_ = c.redis.Del(ctx, boardCacheKey(boardID)).Err()
		}
		return nil, false
	}
	var b model.Board
	if err := json.Unmarshal(data, &b); err != nil {
		_ = c.redis.Del(ctx, boardCacheKey(boardID)).Err()
		return nil, false
	}
	return &b, true
}

func (c *CachedBoards) store(ctx context.Context, boardID string, b *model.Board) {
	if c.redis == nil || c.ttl == 0 {
		return
	}
	data, err := json.Marshal(b)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, boardCacheKey(boardID), data, c.ttl).Err(); err != nil {
		log.WithError(err).WithField("boardId", boardID).Warn("board cache write failed")
	}
}

func (c *CachedBoards) evict(ctx context.Context, boardID string) {
	if c.redis == nil {
		return
	}
	if err := c.redis.Del(ctx, boardCacheKey(boardID)).Err(); err != nil {
		log.WithError(err).WithField("boardId", boardID).Warn("board cache evict failed")
	}
}

func boardCacheKey(boardID string) string {
	return "board:" + boardID
}
