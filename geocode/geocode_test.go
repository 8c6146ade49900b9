package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReturnsCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "H91 XY23", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		fmt.Fprint(w, `{"status":"OK","results":[{"geometry":{"location":{"lat":53.2707,"lng":-9.0568}}}]}`)
	}))
	defer server.Close()

	resolver := NewGoogleResolver(server.URL, "test-key")

	coords, err := resolver.Resolve(context.Background(), "H91 XY23")
	require.NoError(t, err)

	assert.Equal(t, 53.2707, coords.Xcoord)
	assert.Equal(t, -9.0568, coords.Ycoord)
}

func TestResolveZeroResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
	}))
	defer server.Close()

	resolver := NewGoogleResolver(server.URL, "test-key")

	_, err := resolver.Resolve(context.Background(), "nowhere")
	assert.Equal(t, ErrNotFound, err)
}

func TestResolveProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`)
	}))
	defer server.Close()

	resolver := NewGoogleResolver(server.URL, "bad-key")

	_, err := resolver.Resolve(context.Background(), "H91 XY23")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestResolveNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	resolver := NewGoogleResolver(server.URL, "test-key")

	_, err := resolver.Resolve(context.Background(), "H91 XY23")
	assert.Error(t, err)
}
