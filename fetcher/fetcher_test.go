package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"summarly/fetcher"
)

func TestGetHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer srv.Close()

	c := fetcher.New(5 * time.Second)
	body, err := c.GetHTML(context.Background(), srv.URL)
	assert.NoError(t, err)
	assert.Contains(t, body, "hello")
}

func TestGetHTMLNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := fetcher.New(5 * time.Second)
	_, err := c.GetHTML(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestGetHTMLContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := fetcher.New(5 * time.Second)
	_, err := c.GetHTML(ctx, srv.URL)
	assert.Error(t, err)
}
