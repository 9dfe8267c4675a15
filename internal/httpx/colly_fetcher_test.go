package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchBytes(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><body><p>hello</p></body></html>"))
	}))
	defer srv.Close()

	f := NewCollyFetcher("")
	body, status, err := f.FetchBytes(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "<p>hello</p>")
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestFetchBytesHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewCollyFetcher("test-agent")
	body, status, err := f.FetchBytes(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Nil(t, body)
	assert.Equal(t, http.StatusNotFound, status)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusNotFound, fe.Status)
}

func TestFetchBytesUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, _, err := NewCollyFetcher("").FetchBytes(context.Background(), addr)
	require.Error(t, err)

	var fe *FetchError
	assert.True(t, errors.As(err, &fe))
}

func TestFetchBytesCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewCollyFetcher("").FetchBytes(ctx, srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchBytesEmptyURL(t *testing.T) {
	body, status, err := NewCollyFetcher("").FetchBytes(context.Background(), "")
	require.Error(t, err)
	assert.Nil(t, body)
	assert.Zero(t, status)
}

func TestFetchBytesLargeBody(t *testing.T) {
	page := strings.Repeat("<p>filler row</p>\n", 11*1024*1024/18) + "<p>END</p>"
	require.Greater(t, len(page), 10*1024*1024)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	body, status, err := NewCollyFetcher("").FetchBytes(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body, len(page))
	assert.True(t, strings.HasSuffix(string(body), "<p>END</p>"))
}

func TestFetchBytesNonStandardSuccess(t *testing.T) {
	for _, code := range []int{http.StatusNonAuthoritativeInfo, http.StatusPartialContent} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
			w.Write([]byte("<p>board</p>"))
		}))

		body, status, err := NewCollyFetcher("").FetchBytes(context.Background(), srv.URL)
		srv.Close()

		require.NoError(t, err, "status %d", code)
		assert.Equal(t, code, status)
		assert.Contains(t, string(body), "<p>board</p>")
	}
}
