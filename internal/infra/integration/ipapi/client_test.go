package ipapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/", r.URL.Path)
		w.Write([]byte(`{"status":"success","lat":22.5726,"lon":88.3639}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 3*time.Second)
	fix, err := c.Locate(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 22.5726, fix.Latitude)
	assert.Equal(t, 88.3639, fix.Longitude)
}

func TestLocateFailStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 3*time.Second)
	_, err := c.Locate(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "private range")
}

func TestLocateHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 3*time.Second)
	_, err := c.Locate(context.Background())

	assert.Error(t, err)
}

func TestLocateTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond)
	_, err := c.Locate(context.Background())

	assert.Error(t, err)
}
