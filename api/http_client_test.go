package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Request_Success(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/test-endpoint", r.URL.Path)
		assert.Equal(t, "Langkawi", r.URL.Query().Get("district"))
		assert.Equal(t, "abc", r.Header.Get("X-Api-Key"))

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"message": "success"})
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL+"/", time.Second)
	var response map[string]string

	err := client.Request(context.Background(), http.MethodGet, "/test-endpoint",
		url.Values{"district": {"Langkawi"}}, map[string]string{"X-Api-Key": "abc"}, nil, &response)

	require.NoError(t, err)
	assert.Equal(t, "success", response["message"])
}

func TestHTTPClient_Request_Failure(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "bad request"}`))
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, time.Second)
	var response map[string]string

	err := client.Request(context.Background(), http.MethodPost, "/test-endpoint", nil, nil, map[string]string{"key": "value"}, &response)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnexpectedStatus))
	assert.Equal(t, "unexpected status code: 400 Bad Request", err.Error())
}

func TestHTTPClient_Request_Timeout(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, 20*time.Millisecond)

	err := client.Request(context.Background(), http.MethodGet, "/slow", nil, nil, nil, nil)

	assert.Error(t, err)
}

func TestHTTPClient_Request_ContextCancelled(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer mockServer.Close()

	client := NewHTTPClient(mockServer.URL, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := client.Request(ctx, http.MethodGet, "/x", nil, nil, nil, nil)

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestHTTPClient_URL(t *testing.T) {
	client := NewHTTPClient("https://api.example.test/v1", time.Second)

	assert.Equal(t, "https://api.example.test/v1/vendors", client.URL("/vendors", nil))
	assert.Equal(t, "https://api.example.test/v1/vendors?q=nasi", client.URL("/vendors", url.Values{"q": {"nasi"}}))
	assert.Equal(t, "https://cdn.example.test/vendors?page=2", client.URL("https://cdn.example.test/vendors?page=2", nil))
	assert.Equal(t, "https://cdn.example.test/vendors?page=2&limit=5",
		client.URL("https://cdn.example.test/vendors?page=2", url.Values{"limit": {"5"}}))
}
