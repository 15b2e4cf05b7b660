package attendance

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollcall/internal/store"
)

// TestServiceCreate tests that a new entry starts absent with its key trimmed.
func TestServiceCreate(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	rec, err := svc.Create(context.Background(), "  Ada Lovelace  ", "2024-03-01")
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", rec.Name)
	assert.Equal(t, "2024-03-01", rec.Date)
	assert.False(t, rec.IsPresent, "new entries must start absent")
	assert.False(t, rec.RecordedAt.IsZero(), "recorded_at must be stamped")
	assert.False(t, rec.ID.IsZero(), "id must be assigned")
}

// TestServiceCreateValidation tests rejection of bad names and dates.
func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	tests := []struct {
		name    string
		student string
		date    string
	}{
		{name: "empty name", student: "", date: "2024-03-01"},
		{name: "blank name", student: "   ", date: "2024-03-01"},
		{name: "empty date", student: "Ada", date: ""},
		{name: "wrong date format", student: "Ada", date: "01-03-2024"},
		{name: "not a date", student: "Ada", date: "yesterday"},
		{name: "impossible day", student: "Ada", date: "2024-02-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.student, tt.date)
			assert.ErrorIs(t, err, store.ErrInvalidInput)
		})
	}
}

// TestServiceCreateConflict tests that the (name, date) pair is unique.
func TestServiceCreateConflict(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "Ada", "2024-03-01")
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Ada", "2024-03-01")
	assert.ErrorIs(t, err, store.ErrConflict)

	// Same name on another day and another name on the same day both pass.
	_, err = svc.Create(ctx, "Ada", "2024-03-02")
	assert.NoError(t, err)
	_, err = svc.Create(ctx, "Ben", "2024-03-01")
	assert.NoError(t, err)
}

// TestServiceCreateConcurrent tests that racing creates for one pair yield
// exactly one success.
func TestServiceCreateConcurrent(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	const attempts = 20
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Create(context.Background(), "Ada", "2024-03-01")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, store.ErrConflict)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one create may win")
}

// TestServiceSetPresence tests flipping the flag both ways and idempotency.
func TestServiceSetPresence(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, "Ada", "2024-03-01")
	require.NoError(t, err)

	rec, err := svc.SetPresence(ctx, "Ada", "2024-03-01", true)
	require.NoError(t, err)
	assert.True(t, rec.IsPresent)
	assert.Equal(t, created.RecordedAt, rec.RecordedAt, "recorded_at must not move on update")

	// Marking present twice keeps the same state.
	rec, err = svc.SetPresence(ctx, "Ada", "2024-03-01", true)
	require.NoError(t, err)
	assert.True(t, rec.IsPresent)

	rec, err = svc.SetPresence(ctx, "Ada", "2024-03-01", false)
	require.NoError(t, err)
	assert.False(t, rec.IsPresent)
}

// TestServiceSetPresenceNotFound tests updates against missing entries.
func TestServiceSetPresenceNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "Ada", "2024-03-01")
	require.NoError(t, err)

	_, err = svc.SetPresence(ctx, "Ben", "2024-03-01", true)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.SetPresence(ctx, "Ada", "2024-03-02", true)
	assert.ErrorIs(t, err, store.ErrNotFound, "same name on another day is a different entry")
}

// TestServiceListByDate tests that rosters are isolated per day.
func TestServiceListByDate(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "Ada", "2024-03-01")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Ben", "2024-03-01")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Ada", "2024-03-02")
	require.NoError(t, err)

	recs, err := svc.ListByDate(ctx, "2024-03-01")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Ada", recs[0].Name)
	assert.Equal(t, "Ben", recs[1].Name)

	recs, err = svc.ListByDate(ctx, "2024-03-02")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Ada", recs[0].Name)

	recs, err = svc.ListByDate(ctx, "2024-03-03")
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = svc.ListByDate(ctx, "not-a-date")
	assert.ErrorIs(t, err, store.ErrInvalidInput)
}

// TestServiceClearAll tests wiping every entry across dates.
func TestServiceClearAll(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "Ada", "2024-03-01")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Ben", "2024-03-01")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Ada", "2024-03-02")
	require.NoError(t, err)

	n, err := svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	recs, err := svc.ListByDate(ctx, "2024-03-01")
	require.NoError(t, err)
	assert.Empty(t, recs)

	// Clearing an already empty roster still succeeds with a zero count.
	n, err = svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	// The pair is free again after a wipe.
	_, err = svc.Create(ctx, "Ada", "2024-03-01")
	assert.NoError(t, err)
}

// errorRepo fails every call so the service's passthrough of storage errors
// can be observed.
type errorRepo struct{ err error }

func (r errorRepo) Insert(context.Context, Record) (Record, error) { return Record{}, r.err }
func (r errorRepo) FindByDate(context.Context, string) ([]Record, error) {
	return nil, r.err
}
func (r errorRepo) UpdatePresence(context.Context, string, string, bool) (Record, error) {
	return Record{}, r.err
}
func (r errorRepo) DeleteAll(context.Context) (int64, error) { return 0, r.err }

// TestServiceStorageErrors tests that repository failures surface unchanged.
func TestServiceStorageErrors(t *testing.T) {
	boom := errors.New("connection reset")
	svc := NewService(errorRepo{err: boom})
	ctx := context.Background()

	_, err := svc.Create(ctx, "Ada", "2024-03-01")
	assert.ErrorIs(t, err, boom)

	_, err = svc.ListByDate(ctx, "2024-03-01")
	assert.ErrorIs(t, err, boom)

	_, err = svc.SetPresence(ctx, "Ada", "2024-03-01", true)
	assert.ErrorIs(t, err, boom)

	_, err = svc.ClearAll(ctx)
	assert.ErrorIs(t, err, boom)
}
