package templates

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ranatar/philosophical-concepts-service/internal/cache"
)

func TestStore_CreateGetUpdateDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil, time.Minute)

	tpl := Template{
		Description: "test template",
		Text:        "Hello {{name}}",
		Parameters:  []string{"name"},
	}
	require.NoError(t, store.Create("hello", tpl))

	got, err := store.Get("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Name)
	assert.Equal(t, "Hello {{name}}", got.Text)

	// Create persists to disk.
	_, err = os.Stat(filepath.Join(dir, "hello.json"))
	require.NoError(t, err)

	assert.ErrorIs(t, store.Create("hello", tpl), ErrExists)

	tpl.Text = "Hi {{name}}"
	require.NoError(t, store.Update("hello", tpl))
	got, err = store.Get("hello")
	require.NoError(t, err)
	assert.Equal(t, "Hi {{name}}", got.Text)

	require.NoError(t, store.Delete("hello"))
	_, err = store.Get("hello")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Update("hello", tpl), ErrNotFound)
	assert.ErrorIs(t, store.Delete("hello"), ErrNotFound)
}

func TestStore_LazyLoadSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.json"),
		[]byte(`{"name":"good","template":"text","parameters":[]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"),
		[]byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"),
		[]byte("not a template"), 0o644))

	store := NewStore(dir, nil, time.Minute)

	names, err := store.ListNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"good"}, names)
}

func TestStore_NameFallsBackToFilename(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "anon.json"),
		[]byte(`{"template":"text","parameters":[]}`), 0o644))

	store := NewStore(dir, nil, time.Minute)
	got, err := store.Get("anon")
	require.NoError(t, err)
	assert.Equal(t, "anon", got.Name)
}

func TestStore_MissingDirIsEmpty(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "none"), nil, time.Minute)
	names, err := store.ListNames()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStore_EnsureDefaults(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil, time.Minute)
	require.NoError(t, store.EnsureDefaults())

	names, err := store.ListNames()
	require.NoError(t, err)
	assert.Len(t, names, len(Defaults()))
	assert.Contains(t, names, "validate_concept")
	assert.Contains(t, names, "synthesize")

	// A customized template survives a second EnsureDefaults.
	custom := Template{Text: "customized", Parameters: []string{}}
	require.NoError(t, store.Update("synthesize", custom))
	require.NoError(t, store.EnsureDefaults())
	got, err := store.Get("synthesize")
	require.NoError(t, err)
	assert.Equal(t, "customized", got.Text)
}

func TestStore_SharedCacheRefreshedOnWrite(t *testing.T) {
	shared := cache.NewMemory()
	store := NewStore(t.TempDir(), shared, time.Minute)

	require.NoError(t, store.Create("hello", Template{Text: "v1", Parameters: []string{}}))
	raw, ok := shared.Get("template:hello")
	require.True(t, ok)
	assert.Contains(t, raw, "v1")

	require.NoError(t, store.Update("hello", Template{Text: "v2", Parameters: []string{}}))
	raw, ok = shared.Get("template:hello")
	require.True(t, ok)
	assert.Contains(t, raw, "v2")

	require.NoError(t, store.Delete("hello"))
	_, ok = shared.Get("template:hello")
	assert.False(t, ok)
}
