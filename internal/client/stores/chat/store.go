// Package chat owns the chatData record: per-counterpart conversations with
// an accepted/pending status.
package chat

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/client/storage"
	"github.com/Kisalay21/familytree/internal/logging"
)

// Store loads and persists conversation state.
type Store struct {
	adapter storage.Adapter
	logger  logging.Logger
	now     func() time.Time // test seam
}

func New(adapter storage.Adapter, logger logging.Logger) *Store {
	return &Store{adapter: adapter, logger: logger.With("store", "chat"), now: time.Now}
}

// Get returns the conversation map, never nil.
func (s *Store) Get(ctx context.Context) (*models.ChatData, error) {
	data := &models.ChatData{Conversations: map[string]models.Conversation{}}
	if err := s.adapter.Load(ctx, storage.KeyChatData, data); err != nil {
		return nil, fmt.Errorf("loading chat data: %w", err)
	}
	if data.Conversations == nil {
		data.Conversations = map[string]models.Conversation{}
	}
	return data, nil
}

func (s *Store) save(ctx context.Context, data *models.ChatData) error {
	if err := s.adapter.Save(ctx, storage.KeyChatData, data); err != nil {
		return fmt.Errorf("saving chat data: %w", err)
	}
	return nil
}

// SyncFamily makes sure every immediate family member has an accepted
// conversation. Existing conversations keep their history and status.
func (s *Store) SyncFamily(ctx context.Context, members []models.FamilyMember) error {
	data, err := s.Get(ctx)
	if err != nil {
		return err
	}

	changed := false
	for _, m := range members {
		if m.Name == "" {
			continue
		}
		if _, ok := data.Conversations[m.Name]; ok {
			continue
		}
		data.Conversations[m.Name] = models.Conversation{
			Messages: []models.Message{},
			Status:   models.ConversationAccepted,
		}
		changed = true
	}

	if !changed {
		return nil
	}
	return s.save(ctx, data)
}

// Send appends a local message to the conversation with the counterpart,
// lazily creating a pending conversation for strangers. Sending never
// advances pending to accepted.
func (s *Store) Send(ctx context.Context, counterpart, text string) (*models.Conversation, error) {
	data, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	conv, ok := data.Conversations[counterpart]
	if !ok {
		conv = models.Conversation{
			Messages: []models.Message{},
			Status:   models.ConversationPending,
		}
	}

	now := s.now()
	conv.Messages = append(conv.Messages, models.Message{
		ID:        models.FlexID(strconv.FormatInt(now.UnixMilli(), 10)),
		Text:      text,
		Sender:    "me",
		Timestamp: now.Format("3:04 PM"),
	})
	data.Conversations[counterpart] = conv

	if err := s.save(ctx, data); err != nil {
		return nil, err
	}
	return &conv, nil
}
