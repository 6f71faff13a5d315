package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"myplanner/kanban"
	"myplanner/model"
)

var defaultColumns = []model.Column{
	{ColumnID: "todo", Title: "To do"},
	{ColumnID: "inprogress", Title: "In progress"},
	{ColumnID: "done", Title: "Done"},
}

// BoardService owns board creation, task creation and drag-and-drop moves.
type BoardService struct {
	store  BoardStore
	logger *log.Logger
	now    func() time.Time
}

func NewBoardService(store BoardStore, logger *log.Logger) *BoardService {
	return &BoardService{store: store, logger: logger, now: time.Now}
}

// NewBoard describes a board to create. Columns are column titles; when
// empty the board gets to do, in progress and done.
type NewBoard struct {
	Name    string
	Group   bool
	Columns []string
}

func (s *BoardService) CreateBoard(ctx context.Context, userID string, in NewBoard) (*model.Board, error) {
	now := s.now()
	board := model.Board{
		BoardID:   uuid.New().String(),
		BoardName: in.Name,
		BoardType: "private",
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(in.Columns) == 0 {
		board.Columns = append([]model.Column(nil), defaultColumns...)
	}
	for _, title := range in.Columns {
		board.Columns = append(board.Columns, model.Column{ColumnID: uuid.New().String(), Title: title})
	}

	if in.Group {
		board.BoardType = "group"
		// share token
		expireAt := now.Add(7 * 24 * time.Hour)
		params := url.Values{}
		params.Add("boardId", board.BoardID)
		params.Add("expire", strconv.FormatInt(expireAt.Unix(), 10))
		board.DeepLink = base64.URLEncoding.EncodeToString([]byte(params.Encode()))
	}

	if err := s.store.CreateBoard(ctx, board); err != nil {
		return nil, err
	}
	s.logger.WithFields(log.Fields{"boardId": board.BoardID, "userId": userID, "type": board.BoardType}).Info("board created")
	return &board, nil
}

// GetBoard returns the board and its tasks keyed by task id.
func (s *BoardService) GetBoard(ctx context.Context, userID, boardID string) (*model.Board, map[string]model.Tasks, error) {
	board, err := s.store.GetBoard(ctx, boardID)
	if err != nil {
		return nil, nil, err
	}
	if !board.CanAccess(userID) {
		return nil, nil, ErrForbidden
	}
	byID, err := s.TaskIndex(ctx, boardID)
	if err != nil {
		return nil, nil, err
	}
	return board, byID, nil
}

// TaskIndex returns the board's tasks keyed by task id.
func (s *BoardService) TaskIndex(ctx context.Context, boardID string) (map[string]model.Tasks, error) {
	tasks, err := s.store.ListTasks(ctx, boardID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]model.Tasks, len(tasks))
	for _, t := range tasks {
		byID[t.TaskID] = t
	}
	return byID, nil
}

// MoveTask applies one drop to the stored board. The bool reports whether
// the board changed; cancelled drops and drops onto the same slot do not
// write.
func (s *BoardService) MoveTask(ctx context.Context, userID, boardID string, mv kanban.Move) (*model.Board, bool, error) {
	changed := false
	board, err := s.store.UpdateBoard(ctx, boardID, func(cur *model.Board) (*model.Board, error) {
		if !cur.CanAccess(userID) {
			return nil, ErrForbidden
		}
		kb := cur.Kanban()
		next, err := kanban.ApplyMove(kb, mv)
		if err != nil {
			return nil, err
		}
		if next == kb {
			changed = false
			return cur, nil
		}
		changed = true
		return cur.WithKanban(next), nil
	})
	if err != nil {
		var moveErr *kanban.InvalidMoveError
		if errors.As(err, &moveErr) {
			s.logger.WithFields(log.Fields{"boardId": boardID, "userId": userID}).Warn(moveErr.Error())
		}
		return nil, false, err
	}
	if changed {
		s.logger.WithFields(log.Fields{
			"boardId": boardID,
			"userId":  userID,
			"from":    mv.Source.String(),
			"to":      mv.Destination.String(),
		}).Debug("task moved")
	}
	return board, changed, nil
}

// NewTask describes a task to add at the bottom of a column. An empty
// ColumnID means the board's first column.
type NewTask struct {
	BoardID     string
	ColumnID    string
	Name        string
	Description string
	Status      string
	Priority    string
	Reminder    *NewReminder
}

type NewReminder struct {
	DueDate          time.Time
	BeforeDueDate    *time.Time
	RecurringPattern string
}

func (s *BoardService) CreateTask(ctx context.Context, userID string, in NewTask) (*model.Tasks, error) {
	board, err := s.store.GetBoard(ctx, in.BoardID)
	if err != nil {
		return nil, err
	}
	if !board.CanAccess(userID) {
		return nil, ErrForbidden
	}
	columnID := in.ColumnID
	if columnID == "" {
		if len(board.Columns) == 0 {
			return nil, fmt.Errorf("%w: board %s has no columns", ErrColumnNotFound, in.BoardID)
		}
		columnID = board.Columns[0].ColumnID
	}

	now := s.now()
	task := model.Tasks{
		TaskID:      uuid.New().String(),
		BoardID:     in.BoardID,
		TaskName:    in.Name,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var reminder *model.Notification
	if r := in.Reminder; r != nil {
		n := task.Reminder(uuid.New().String(), r.DueDate, r.BeforeDueDate, r.RecurringPattern)
		reminder = &n
	}

	if _, err := s.store.CreateTask(ctx, task, columnID, reminder); err != nil {
		return nil, err
	}
	s.logger.WithFields(log.Fields{"boardId": in.BoardID, "taskId": task.TaskID, "column": columnID}).Info("task created")
	return &task, nil
}
