package storage

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/mitchleonard/pebble-path/internal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const userDataCollection = "userData"

// FirestoreStorage keeps the layout the original web client wrote: one
// document per user per data type under userData/{uid}_{dataType}, with
// the payload nested in a "data" field.
type FirestoreStorage struct {
	client *firestore.Client
	logger internal.Logger
}

type userDataDoc struct {
	UID       string    `firestore:"uid"`
	DataType  string    `firestore:"dataType"` // days | presets
	Data      any       `firestore:"data"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

func NewFirestoreStorage(ctx context.Context, projectID string, logger internal.Logger) (*FirestoreStorage, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		logger.Errorf("failed to create firestore client: %v", err)
		return nil, err
	}
	return &FirestoreStorage{client: client, logger: logger}, nil
}

func (f *FirestoreStorage) Close() error {
	return f.client.Close()
}

func (f *FirestoreStorage) doc(uid, dataType string) *firestore.DocumentRef {
	return f.client.Collection(userDataCollection).Doc(uid + "_" + dataType)
}

// --- JournalRepository ---

func (f *FirestoreStorage) LoadAll(ctx context.Context, uid string) (map[string]internal.RawDay, *internal.Presets, error) {
	days := make(map[string]internal.RawDay)

	snap, err := f.doc(uid, "days").Get(ctx)
	switch {
	case status.Code(err) == codes.NotFound:
		// first session, nothing stored
	case err != nil:
		f.logger.Errorf("failed to load days for %s: %v", uid, err)
		return nil, nil, err
	default:
		var doc struct {
			Data map[string]internal.RawDay `firestore:"data"`
		}
		if err := snap.DataTo(&doc); err != nil {
			f.logger.Errorf("failed to decode days for %s: %v", uid, err)
			return nil, nil, err
		}
		if doc.Data != nil {
			days = doc.Data
		}
	}

	var presets *internal.Presets
	snap, err = f.doc(uid, "presets").Get(ctx)
	switch {
	case status.Code(err) == codes.NotFound:
	case err != nil:
		f.logger.Errorf("failed to load presets for %s: %v", uid, err)
		return nil, nil, err
	default:
		var doc struct {
			Data internal.Presets `firestore:"data"`
		}
		if err := snap.DataTo(&doc); err != nil {
			f.logger.Errorf("failed to decode presets for %s: %v", uid, err)
		} else {
			presets = &doc.Data
		}
	}

	return days, presets, nil
}

func (f *FirestoreStorage) SaveDays(ctx context.Context, uid string, days map[string]internal.DayEntry) error {
	payload := make(map[string]internal.RawDay, len(days))
	for date, e := range days {
		payload[date] = internal.ToRaw(e)
	}
	_, err := f.doc(uid, "days").Set(ctx, userDataDoc{
		UID:       uid,
		DataType:  "days",
		Data:      payload,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		f.logger.Errorf("failed to save days for %s: %v", uid, err)
	}
	return err
}

func (f *FirestoreStorage) SavePresets(ctx context.Context, uid string, presets internal.Presets) error {
	_, err := f.doc(uid, "presets").Set(ctx, userDataDoc{
		UID:       uid,
		DataType:  "presets",
		Data:      presets,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		f.logger.Errorf("failed to save presets for %s: %v", uid, err)
	}
	return err
}

// --- Compile-time assertions ---
var _ JournalRepository = (*FirestoreStorage)(nil)
