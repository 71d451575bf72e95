package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"tripma/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *FileBookingRepository {
	t.Helper()
	return NewFileBookingRepository(filepath.Join(t.TempDir(), "bookings.json"))
}

func record(id string) domain.BookingRecord {
	return domain.BookingRecord{
		ID:        id,
		Date:      "Jan 1, 2024",
		Status:    domain.BookingStatusUpcoming,
		FlightIDs: []string{"3"},
		Total:     500,
		Passenger: "A B",
	}
}

func TestFileBookingRepository_missingFileReadsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	data, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileBookingRepository_corruptFileReadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	repo := NewFileBookingRepository(path)

	data, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFileBookingRepository_appendThenRead(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	inserted, err := repo.Append(ctx, "a@x.com", record("#1"))
	require.NoError(t, err)
	assert.True(t, inserted)

	data, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, data["a@x.com"], 1)
	assert.Equal(t, "#1", data["a@x.com"][0].ID)
}

func TestFileBookingRepository_duplicateIDIsNoOp(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	inserted, err := repo.Append(ctx, "a@x.com", record("#1"))
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Append(ctx, "a@x.com", record("#1"))
	require.NoError(t, err)
	assert.False(t, inserted)

	list, err := repo.ForEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestFileBookingRepository_sameIDDifferentEmails(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// id uniqueness is scoped per email, not globally
	inserted, err := repo.Append(ctx, "a@x.com", record("#1"))
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Append(ctx, "b@x.com", record("#1"))
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestFileBookingRepository_prependOrdering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repo.Append(ctx, "a@x.com", record(fmt.Sprintf("#%d", i)))
		require.NoError(t, err)
	}

	list, err := repo.ForEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 5)
	for i, rec := range list {
		assert.Equal(t, fmt.Sprintf("#%d", 5-i), rec.ID)
	}
}

func TestFileBookingRepository_concurrentAppendsLoseNothing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("user%d@x.com", i%4)
			_, err := repo.Append(ctx, email, record(fmt.Sprintf("#%d", i)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	data, err := repo.All(ctx)
	require.NoError(t, err)
	total := 0
	for _, list := range data {
		total += len(list)
	}
	assert.Equal(t, writers, total)
}

func TestFileBookingRepository_surviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.json")
	ctx := context.Background()

	first := NewFileBookingRepository(path)
	_, err := first.Append(ctx, "a@x.com", record("#1"))
	require.NoError(t, err)

	second := NewFileBookingRepository(path)
	list, err := second.ForEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "#1", list[0].ID)
}
