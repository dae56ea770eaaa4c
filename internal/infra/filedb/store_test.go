package filedb

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}

func TestReadAllInitializesMissingFile(t *testing.T) {
	dir := t.TempDir()
	coll := NewCollection[record](NewStore(filepath.Join(dir, "nested", "data")), "items")

	records, err := coll.ReadAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)

	// The file must now exist holding an empty list.
	data, err := os.ReadFile(filepath.Join(dir, "nested", "data", "items.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestReplaceAllRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())
	coll := NewCollection[record](store, "items")
	ctx := context.Background()

	want := []record{{ID: "a", Value: 1}, {ID: "b", Value: 2}}
	require.NoError(t, coll.ReplaceAll(ctx, want))

	got, err := coll.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReplaceAllNilWritesEmptyList(t *testing.T) {
	store := NewStore(t.TempDir())
	coll := NewCollection[record](store, "items")
	ctx := context.Background()

	require.NoError(t, coll.ReplaceAll(ctx, nil))

	data, err := os.ReadFile(filepath.Join(store.DataDir(), "items.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestReadAllCorruptedFile(t *testing.T) {
	store := NewStore(t.TempDir())
	coll := NewCollection[record](store, "items")

	require.NoError(t, os.WriteFile(filepath.Join(store.DataDir(), "items.json"), []byte("{not json"), 0o644))

	_, err := coll.ReadAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCorrupted)
}

func TestUpdateErrorLeavesFileUnchanged(t *testing.T) {
	store := NewStore(t.TempDir())
	coll := NewCollection[record](store, "items")
	ctx := context.Background()

	require.NoError(t, coll.ReplaceAll(ctx, []record{{ID: "a", Value: 1}}))

	wantErr := assert.AnError
	err := coll.Update(ctx, func(records []record) ([]record, error) {
		return nil, wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	got, err := coll.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []record{{ID: "a", Value: 1}}, got)
}

func TestConcurrentUpdatesAreSerialized(t *testing.T) {
	store := NewStore(t.TempDir())
	coll := NewCollection[record](store, "items")
	ctx := context.Background()

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			err := coll.Update(ctx, func(records []record) ([]record, error) {
				return append(records, record{ID: "w", Value: n}), nil
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	got, err := coll.ReadAll(ctx)
	require.NoError(t, err)
	// Every read-modify-write must have run exclusively: no lost updates.
	assert.Len(t, got, writers)
}

func TestWritesNeverLeaveTempFilesBehind(t *testing.T) {
	store := NewStore(t.TempDir())
	coll := NewCollection[record](store, "items")
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		require.NoError(t, coll.ReplaceAll(ctx, []record{{ID: "a", Value: i}}))
	}

	entries, err := os.ReadDir(store.DataDir())
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".tmp"), "leftover temp file %s", entry.Name())
	}
}

func TestCollectionsShareLocksByPathOnly(t *testing.T) {
	store := NewStore(t.TempDir())
	a := NewCollection[record](store, "a")
	b := NewCollection[record](store, "b")
	ctx := context.Background()

	require.NoError(t, a.ReplaceAll(ctx, []record{{ID: "a"}}))
	require.NoError(t, b.ReplaceAll(ctx, []record{{ID: "b"}}))

	gotA, err := a.ReadAll(ctx)
	require.NoError(t, err)
	gotB, err := b.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", gotA[0].ID)
	assert.Equal(t, "b", gotB[0].ID)
}

func TestFileContentIsIndentedJSON(t *testing.T) {
	store := NewStore(t.TempDir())
	coll := NewCollection[record](store, "items")
	ctx := context.Background()

	require.NoError(t, coll.ReplaceAll(ctx, []record{{ID: "a", Value: 1}}))

	data, err := os.ReadFile(filepath.Join(store.DataDir(), "items.json"))
	require.NoError(t, err)

	var parsed []record
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Contains(t, string(data), "\n  {")
}
