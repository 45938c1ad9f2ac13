package pipeline

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hr-screener/internal/db"
)

type fakeStore struct {
	mu      sync.Mutex
	created []db.NewCandidate
	phones  map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{phones: map[string]bool{}}
}

func (s *fakeStore) CreateCandidate(_ context.Context, c db.NewCandidate) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.Phone != "" && s.phones[c.Phone] {
		return uuid.Nil, fmt.Errorf("%w: %s", db.ErrDuplicatePhone, c.Phone)
	}
	s.phones[c.Phone] = true
	s.created = append(s.created, c)
	return uuid.New(), nil
}

const sampleResume = `Kartik Sharma
Email: kartik.sharma@example.com
Phone: +91 98765 43210

Laravel developer with 4 years of experience building PHP applications.`

func TestImportOne_ExtractsAndStores(t *testing.T) {
	store := newFakeStore()
	imp := NewImporter(store, nil, nil)

	res := imp.ImportOne(context.Background(), Document{
		Filename: "kartik.txt",
		Data:     []byte(sampleResume),
	})

	require.NoError(t, res.Err)
	assert.True(t, res.Saved)
	assert.Equal(t, "Kartik Sharma", res.Profile.Name)
	assert.Equal(t, "kartik.sharma@example.com", res.Profile.Email)
	assert.Equal(t, "laravel-developer", res.Profile.DetectedRole)
	require.Len(t, store.created, 1)
	assert.Equal(t, "laravel-developer", store.created[0].JobTitle)
}

func TestImportOne_UnsupportedFormat(t *testing.T) {
	imp := NewImporter(newFakeStore(), nil, nil)

	res := imp.ImportOne(context.Background(), Document{Filename: "resume.xyz", Data: []byte("x")})

	assert.Error(t, res.Err)
	assert.False(t, res.Saved)
}

func TestImportBatch_IsolatesFailures(t *testing.T) {
	store := newFakeStore()
	imp := NewImporter(store, nil, nil)

	docs := []Document{
		{Filename: "good.txt", Data: []byte(sampleResume)},
		{Filename: "bad.xyz", Data: []byte("unsupported")},
		{Filename: "dup.txt", Data: []byte(sampleResume)},
	}

	result := imp.ImportBatch(context.Background(), docs)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 1, result.Duplicates)
	require.Len(t, result.Items, 3)
	assert.Equal(t, "good.txt", result.Items[0].Filename)
	assert.Equal(t, "bad.xyz", result.Items[1].Filename)
}

func TestImportBatch_Empty(t *testing.T) {
	imp := NewImporter(newFakeStore(), nil, nil)

	result := imp.ImportBatch(context.Background(), nil)

	assert.Empty(t, result.Items)
	assert.Zero(t, result.Imported)
}
