package services

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"myplanner/model"
)

func (s *FirestoreStore) CreateEvent(ctx context.Context, event model.Event) error {
	if _, err := s.client.Collection(eventsCollection).Doc(event.EventID).Set(ctx, event); err != nil {
		return fmt.Errorf("create event %s: %w", event.EventID, err)
	}
	return nil
}

func (s *FirestoreStore) ListEvents(ctx context.Context, userID, from, to string) ([]model.Event, error) {
	iter := s.client.Collection(eventsCollection).
		Where("userid", "==", userID).
		Where("date", ">=", from).
		Where("date", "<=", to).
		OrderBy("date", firestore.Asc).
		OrderBy("createdat", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var events []model.Event
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		var e model.Event
		if err := doc.DataTo(&e); err != nil {
			return nil, fmt.Errorf("decode event %s: %w", doc.Ref.ID, err)
		}
		events = append(events, e)
	}
	return events, nil
}

func (s *FirestoreStore) ListReminders(ctx context.Context, userID string, from, to time.Time) ([]model.Notification, error) {
	iter := s.client.Collection(notificationsCollection).
		Where("userid", "==", userID).
		Where("duedate", ">=", from).
		Where("duedate", "<", to).
		Documents(ctx)
	defer iter.Stop()

	var out []model.Notification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list reminders: %w", err)
		}
		var n model.Notification
		if err := doc.DataTo(&n); err != nil {
			return nil, fmt.Errorf("decode reminder %s: %w", doc.Ref.ID, err)
		}
		out = append(out, n)
	}
	return out, nil
}
