package inbox

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rollcall/internal/store"
)

// defaultSender is recorded when a message arrives without a sender name.
const defaultSender = "Anonymous"

// Message is one note sent by a student to the teacher's inbox.
type Message struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Content     string             `bson:"content" json:"content"`
	Sender      string             `bson:"sender" json:"sender"`
	ContactInfo string             `bson:"contact_info" json:"contact_info"`
	ReceivedAt  time.Time          `bson:"received_at" json:"received_at"`
}

// Repository persists inbox messages. FindAll returns newest first.
type Repository interface {
	Insert(ctx context.Context, msg Message) (Message, error)
	FindAll(ctx context.Context) ([]Message, error)
	DeleteByID(ctx context.Context, id string) error
}

// Service validates input and coordinates the repository.
type Service struct {
	repo Repository
}

// NewService creates a service backed by a repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new message. Content is required; a blank sender is
// recorded as Anonymous so students can write without signing.
func (s *Service) Create(ctx context.Context, content, sender, contactInfo string) (Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Message{}, fmt.Errorf("%w: content is required", store.ErrInvalidInput)
	}
	sender = strings.TrimSpace(sender)
	if sender == "" {
		sender = defaultSender
	}
	msg := Message{
		Content:     content,
		Sender:      sender,
		ContactInfo: strings.TrimSpace(contactInfo),
		ReceivedAt:  time.Now().UTC(),
	}
	return s.repo.Insert(ctx, msg)
}

// ListAll returns every message, newest first.
func (s *Service) ListAll(ctx context.Context) ([]Message, error) {
	return s.repo.FindAll(ctx)
}

// Delete removes one message by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}
