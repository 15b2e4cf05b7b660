package announcement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollcall/internal/store"
)

// TestServiceCreate tests posting with trimmed content and author.
func TestServiceCreate(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	ann, err := svc.Create(context.Background(), "  Exam moved to Friday  ", "  Ms. Chen ")
	require.NoError(t, err)

	assert.Equal(t, "Exam moved to Friday", ann.Content)
	assert.Equal(t, "Ms. Chen", ann.Author)
	assert.False(t, ann.PostedAt.IsZero(), "posted_at must be stamped")
	assert.False(t, ann.ID.IsZero(), "id must be assigned")
}

// TestServiceCreateValidation tests that content and author are required.
func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	tests := []struct {
		name    string
		content string
		author  string
	}{
		{name: "empty content", content: "", author: "Ms. Chen"},
		{name: "blank content", content: "   ", author: "Ms. Chen"},
		{name: "empty author", content: "Exam Friday", author: ""},
		{name: "blank author", content: "Exam Friday", author: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.content, tt.author)
			assert.ErrorIs(t, err, store.ErrInvalidInput)
		})
	}
}

// TestServiceListNewestFirst tests board ordering.
func TestServiceListNewestFirst(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.Create(ctx, content, "Ms. Chen")
		require.NoError(t, err)
	}

	anns, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, anns, 3)
	assert.Equal(t, "third", anns[0].Content)
	assert.Equal(t, "second", anns[1].Content)
	assert.Equal(t, "first", anns[2].Content)
}

// TestServiceClearAll tests wiping the board and the zero-count case.
func TestServiceClearAll(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, "first", "Ms. Chen")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "second", "Ms. Chen")
	require.NoError(t, err)

	n, err := svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	anns, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, anns)

	n, err = svc.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "an empty board clears with count zero")
}
