package generator_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"summarly/config"
	"summarly/generator"
	"summarly/models"
	"summarly/repositories"
	"summarly/summarizer"
)

type memStore struct {
	mu      sync.Mutex
	writes  map[int64]string
	missing map[int64]bool
}

func newMemStore() *memStore {
	return &memStore{writes: map[int64]string{}, missing: map[int64]bool{}}
}

func (m *memStore) SetGenerated(ctx context.Context, id int64, text string, info models.GenerationInfo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.missing[id] {
		return repositories.ErrNotFound
	}
	m.writes[id] = text
	return nil
}

const pageHTML = `<html><body><article>
<h1>Release notes</h1>
<p>The first change speeds up startup. The second change fixes a crash on shutdown.</p>
<p>Upgrading is recommended for all users.</p>
</article></body></html>`

func testGenerator(store *memStore) *generator.Generator {
	registry := summarizer.NewRegistry(config.SummarizerConfig{DefaultSpecifier: "leading"})
	return generator.New(store, registry, config.FetchConfig{TimeoutSeconds: 5, MinTextLength: 1})
}

func TestGenerateWritesSummaryBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(pageHTML))
	}))
	defer srv.Close()

	store := newMemStore()
	g := testGenerator(store)

	g.Generate(context.Background(), 1, srv.URL, "leading", 2)

	assert.Contains(t, store.writes, int64(1))
	assert.NotEmpty(t, store.writes[1])
	assert.Len(t, summarizer.SplitSentences(store.writes[1]), 2)
}

func TestGenerateUnknownSpecifierFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(pageHTML))
	}))
	defer srv.Close()

	store := newMemStore()
	g := testGenerator(store)

	g.Generate(context.Background(), 2, srv.URL, "no-such-strategy", 1)

	assert.NotEmpty(t, store.writes[2])
}

func TestGenerateFetchFailureIsSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := newMemStore()
	g := testGenerator(store)

	// must not panic or write anything
	g.Generate(context.Background(), 3, srv.URL, "leading", 2)

	assert.Empty(t, store.writes)
}

func TestGenerateForDeletedRecordDropsResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(pageHTML))
	}))
	defer srv.Close()

	store := newMemStore()
	store.missing[4] = true
	g := testGenerator(store)

	// the record was deleted while generation was in flight; the result is
	// dropped without error
	g.Generate(context.Background(), 4, srv.URL, "leading", 2)

	assert.Empty(t, store.writes)
}
