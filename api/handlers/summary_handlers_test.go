package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"summarly/api/router"
	"summarly/dto"
	"summarly/feeder"
	"summarly/models"
	"summarly/repositories"
	"summarly/services"
	"summarly/task"
)

type memStore struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]models.Summary
}

func newMemStore() *memStore { return &memStore{items: map[int64]models.Summary{}} }

func (m *memStore) Insert(ctx context.Context, url string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.items[m.nextID] = models.Summary{ID: m.nextID, URL: url}
	return m.nextID, nil
}

func (m *memStore) FindByID(ctx context.Context, id int64) (*models.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &s, nil
}

func (m *memStore) FindAll(ctx context.Context) ([]models.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Summary, 0, len(m.items))
	for _, s := range m.items {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) Update(ctx context.Context, id int64, url, summary string) (*models.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	s.URL = url
	s.Summary = summary
	m.items[id] = s
	return &s, nil
}

func (m *memStore) Delete(ctx context.Context, id int64) (*models.Summary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	delete(m.items, id)
	return &s, nil
}

// noopScheduler swallows scheduled work; handler tests only assert the
// synchronous surface.
type noopScheduler struct{}

func (noopScheduler) Schedule(name string, fn func(ctx context.Context)) {}

var _ task.Scheduler = noopScheduler{}

type noopGenerator struct{}

func (noopGenerator) Generate(ctx context.Context, id int64, url, specifier string, sentenceCount int) {
}

func newTestRouter() (*gin.Engine, *services.SummaryService) {
	gin.SetMode(gin.TestMode)
	svc := services.NewSummaryService(newMemStore(), noopScheduler{}, noopGenerator{}, "leading")
	return router.New(svc), svc
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateSummary(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodPost, "/summaries", gin.H{
		"url":                  "https://example.com",
		"summarizer_specifier": "default",
		"sentence_count":       3,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var out dto.SummaryCreatedDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "https://example.com", out.URL)
	assert.Equal(t, "default", out.SummarizerSpecifier)
	assert.Equal(t, 3, out.SentenceCount)
}

func TestCreateSummaryValidation(t *testing.T) {
	r, _ := newTestRouter()

	testCases := []struct {
		name      string
		body      gin.H
		wantField string
	}{
		{
			name:      "missing url",
			body:      gin.H{"sentence_count": 3},
			wantField: "url",
		},
		{
			name:      "relative url",
			body:      gin.H{"url": "not-a-url", "sentence_count": 3},
			wantField: "url",
		},
		{
			name:      "missing sentence count",
			body:      gin.H{"url": "https://example.com"},
			wantField: "sentence_count",
		},
		{
			name:      "negative sentence count",
			body:      gin.H{"url": "https://example.com", "sentence_count": -1},
			wantField: "sentence_count",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			rec := doJSON(r, http.MethodPost, "/summaries", testCase.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var out dto.ValidationErrorDTO
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
			assert.Equal(t, "validation_failed", out.Error)
			if assert.NotEmpty(t, out.Fields) {
				assert.Equal(t, testCase.wantField, out.Fields[0].Field)
			}
		})
	}
}

func TestGetSummary(t *testing.T) {
	r, _ := newTestRouter()
	doJSON(r, http.MethodPost, "/summaries", gin.H{"url": "https://example.com", "sentence_count": 3})

	rec := doJSON(r, http.MethodGet, "/summaries/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var out dto.SummaryDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "https://example.com", out.URL)
	// generation has not run; the record is still pending
	assert.Empty(t, out.Summary)
}

func TestGetSummaryNotFound(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/summaries/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var out dto.ErrorResponseDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "summary_not_found", out.Error)
}

func TestSummaryIDValidation(t *testing.T) {
	r, _ := newTestRouter()

	for _, id := range []string{"abc", "0", "-3"} {
		rec := doJSON(r, http.MethodGet, "/summaries/"+id, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "id %q", id)
	}
}

func TestListSummaries(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/summaries", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())

	doJSON(r, http.MethodPost, "/summaries", gin.H{"url": "https://a.example", "sentence_count": 1})
	doJSON(r, http.MethodPost, "/summaries", gin.H{"url": "https://b.example", "sentence_count": 1})
	doJSON(r, http.MethodDelete, "/summaries/1", nil)

	rec = doJSON(r, http.MethodGet, "/summaries", nil)
	var out []dto.SummaryDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestUpdateSummary(t *testing.T) {
	r, _ := newTestRouter()
	doJSON(r, http.MethodPost, "/summaries", gin.H{"url": "https://example.com", "sentence_count": 3})

	rec := doJSON(r, http.MethodPut, "/summaries/1", gin.H{
		"url":     "https://other.example",
		"summary": "edited",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var out dto.SummaryDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "https://other.example", out.URL)
	assert.Equal(t, "edited", out.Summary)
}

func TestUpdateSummaryNotFound(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodPut, "/summaries/7", gin.H{"url": "https://x.example", "summary": "s"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateSummaryValidation(t *testing.T) {
	r, _ := newTestRouter()
	doJSON(r, http.MethodPost, "/summaries", gin.H{"url": "https://example.com", "sentence_count": 3})

	rec := doJSON(r, http.MethodPut, "/summaries/1", gin.H{"url": "https://example.com"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestDeleteSummaryReturnsSnapshot(t *testing.T) {
	r, _ := newTestRouter()
	doJSON(r, http.MethodPost, "/summaries", gin.H{"url": "https://example.com", "sentence_count": 3})

	rec := doJSON(r, http.MethodDelete, "/summaries/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var out dto.SummaryDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "https://example.com", out.URL)

	rec = doJSON(r, http.MethodGet, "/summaries/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteSummaryNotFound(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodDelete, "/summaries/12", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateFromFeed(t *testing.T) {
	r, svc := newTestRouter()
	svc.FetchFeed = func(ctx context.Context, feedURL string, limit int) ([]feeder.FeedItem, error) {
		return []feeder.FeedItem{
			{Title: "one", Link: "https://example.com/1"},
			{Title: "two", Link: "https://example.com/2"},
		}, nil
	}

	rec := doJSON(r, http.MethodPost, "/summaries/feed", gin.H{
		"feed_url":       "https://example.com/feed",
		"sentence_count": 2,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var out []dto.SummaryCreatedDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 2)

	rec = doJSON(r, http.MethodGet, "/summaries", nil)
	var list []dto.SummaryDTO
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(r, http.MethodGet, "/summaries", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
