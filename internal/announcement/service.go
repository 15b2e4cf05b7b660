package announcement

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rollcall/internal/store"
)

// Announcement is one authored post on the class notice board. Posts are
// immutable once created; the board is only ever appended to or wiped.
type Announcement struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	Content  string             `bson:"content" json:"content"`
	Author   string             `bson:"author" json:"author"`
	PostedAt time.Time          `bson:"posted_at" json:"posted_at"`
}

// Repository persists announcements. FindAll returns newest first.
type Repository interface {
	Insert(ctx context.Context, ann Announcement) (Announcement, error)
	FindAll(ctx context.Context) ([]Announcement, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// Service validates input and coordinates the repository.
type Service struct {
	repo Repository
}

// NewService creates a service backed by a repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create posts a new announcement. Content and author are both required.
func (s *Service) Create(ctx context.Context, content, author string) (Announcement, error) {
	content = strings.TrimSpace(content)
	author = strings.TrimSpace(author)
	if content == "" {
		return Announcement{}, fmt.Errorf("%w: content is required", store.ErrInvalidInput)
	}
	if author == "" {
		return Announcement{}, fmt.Errorf("%w: author is required", store.ErrInvalidInput)
	}
	ann := Announcement{
		Content:  content,
		Author:   author,
		PostedAt: time.Now().UTC(),
	}
	return s.repo.Insert(ctx, ann)
}

// ListAll returns every announcement, newest first.
func (s *Service) ListAll(ctx context.Context) ([]Announcement, error) {
	return s.repo.FindAll(ctx)
}

// ClearAll wipes the board and reports how many posts were removed.
func (s *Service) ClearAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}
