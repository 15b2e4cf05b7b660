package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"rollcall/internal/store"
)

// dateLayout is the calendar-day format accepted in roster keys.
const dateLayout = "2006-01-02"

// Record is one student's presence flag for one calendar day.
type Record struct {
	ID         primitive.ObjectID `bson:"_id" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Date       string             `bson:"date" json:"date"`
	IsPresent  bool               `bson:"is_present" json:"is_present"`
	RecordedAt time.Time          `bson:"recorded_at" json:"recorded_at"`
}

// Repository persists attendance records. The (name, date) pair is unique;
// Insert reports store.ErrConflict when it is already taken.
type Repository interface {
	Insert(ctx context.Context, rec Record) (Record, error)
	FindByDate(ctx context.Context, date string) ([]Record, error)
	UpdatePresence(ctx context.Context, name, date string, present bool) (Record, error)
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

// Create adds a roster entry for (name, date). New entries always start
// absent; a second create for the same pair fails with store.ErrConflict.
func (s *Service) Create(ctx context.Context, name, date string) (Record, error) {
	name = strings.TrimSpace(name)
	if err := validateKey(name, date); err != nil {
		return Record{}, err
	}
	rec := Record{
		Name:       name,
		Date:       date,
		IsPresent:  false,
		RecordedAt: time.Now().UTC(),
	}
	return s.repo.Insert(ctx, rec)
}

// ListByDate returns the roster for one calendar day, empty when nothing was
// recorded for it.
func (s *Service) ListByDate(ctx context.Context, date string) ([]Record, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return s.repo.FindByDate(ctx, date)
}

// SetPresence flips the presence flag of an existing entry. Only is_present
// changes; recorded_at keeps the creation timestamp.
func (s *Service) SetPresence(ctx context.Context, name, date string, present bool) (Record, error) {
	name = strings.TrimSpace(name)
	if err := validateKey(name, date); err != nil {
		return Record{}, err
	}
	return s.repo.UpdatePresence(ctx, name, date, present)
}

// ClearAll wipes the whole roster and reports how many entries were removed.
func (s *Service) ClearAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}

func validateKey(name, date string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", store.ErrInvalidInput)
	}
	return validateDate(date)
}

func validateDate(date string) error {
	if date == "" {
		return fmt.Errorf("%w: date is required", store.ErrInvalidInput)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("%w: date must be formatted YYYY-MM-DD", store.ErrInvalidInput)
	}
	return nil
}
