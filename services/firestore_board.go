package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"myplanner/model"
)

const (
	boardsCollection        = "Boards"
	tasksCollection         = "Tasks"
	notificationsCollection = "NotificationTasks"
	eventsCollection        = "Events"
)

// FirestoreStore implements BoardStore and EventStore on Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) CreateBoard(ctx context.Context, board model.Board) error {
	_, err := s.client.Collection(boardsCollection).Doc(board.BoardID).Create(ctx, board)
	if err != nil {
		return fmt.Errorf("create board %s: %w", board.BoardID, err)
	}
	return nil
}

func (s *FirestoreStore) GetBoard(ctx context.Context, boardID string) (*model.Board, error) {
	snap, err := s.client.Collection(boardsCollection).Doc(boardID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrBoardNotFound
		}
		return nil, fmt.Errorf("get board %s: %w", boardID, err)
	}
	var board model.Board
	if err := snap.DataTo(&board); err != nil {
		return nil, fmt.Errorf("decode board %s: %w", boardID, err)
	}
	return &board, nil
}

func (s *FirestoreStore) UpdateBoard(ctx context.Context, boardID string, fn BoardMutation) (*model.Board, error) {
	ref := s.client.Collection(boardsCollection).Doc(boardID)
	var out *model.Board
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		cur, err := readBoard(tx, ref)
		if err != nil {
			return err
		}
		next, err := fn(cur)
		if err != nil {
			return err
		}
		out = next
		if next == cur {
			return nil
		}
		next.UpdatedAt = time.Now()
		return tx.Set(ref, next)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FirestoreStore) CreateTask(ctx context.Context, task model.Tasks, columnID string, reminder *model.Notification) (*model.Board, error) {
	boardRef := s.client.Collection(boardsCollection).Doc(task.BoardID)
	var out *model.Board
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		cur, err := readBoard(tx, boardRef)
		if err != nil {
			return err
		}
		next, err := appendTask(*cur, columnID, task.TaskID)
		if err != nil {
			return err
		}
		next.UpdatedAt = time.Now()
		if err := tx.Create(s.client.Collection(tasksCollection).Doc(task.TaskID), task); err != nil {
			return err
		}
		if reminder != nil {
			if err := tx.Create(s.client.Collection(notificationsCollection).Doc(reminder.NotificationID), *reminder); err != nil {
				return err
			}
		}
		out = &next
		return tx.Set(boardRef, next)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *FirestoreStore) ListTasks(ctx context.Context, boardID string) ([]model.Tasks, error) {
	iter := s.client.Collection(tasksCollection).Where("boardid", "==", boardID).Documents(ctx)
	defer iter.Stop()

	var tasks []model.Tasks
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list tasks of %s: %w", boardID, err)
		}
		var t model.Tasks
		if err := doc.DataTo(&t); err != nil {
			return nil, fmt.Errorf("decode task %s: %w", doc.Ref.ID, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func readBoard(tx *firestore.Transaction, ref *firestore.DocumentRef) (*model.Board, error) {
	snap, err := tx.Get(ref)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}
	var board model.Board
	if err := snap.DataTo(&board); err != nil {
		return nil, fmt.Errorf("decode board %s: %w", ref.ID, err)
	}
	return &board, nil
}
