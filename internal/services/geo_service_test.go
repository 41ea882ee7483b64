package services

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geoFixture = `{"states":[
	{"state":"Tamil Nadu","districts":["Chennai","Coimbatore","Madurai"]},
	{"state":"Kerala","districts":["Ernakulam","Thrissur"]}
]}`

func TestGeoServiceFetchesAndCaches(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(geoFixture))
	}))
	defer server.Close()

	svc := NewGeoService(server.URL)

	states, err := svc.States()
	require.NoError(t, err)
	assert.Equal(t, []string{"Kerala", "Tamil Nadu"}, states)

	districts, err := svc.Districts("Tamil Nadu")
	require.NoError(t, err)
	assert.Equal(t, []string{"Chennai", "Coimbatore", "Madurai"}, districts)

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "second call served from cache")
}

func TestGeoServiceUnknownState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geoFixture))
	}))
	defer server.Close()

	svc := NewGeoService(server.URL)
	_, err := svc.Districts("Atlantis")
	assert.ErrorIs(t, err, ErrStateUnknown)
}

func TestGeoServiceFallsBackOnFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := NewGeoService(server.URL)

	states, err := svc.States()
	require.NoError(t, err)
	assert.Contains(t, states, "Tamil Nadu", "bundled fallback answers when upstream is down")

	districts, err := svc.Districts("Tamil Nadu")
	require.NoError(t, err)
	assert.NotEmpty(t, districts)
}

func TestGeoServiceDoesNotCacheFallback(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(geoFixture))
	}))
	defer server.Close()

	svc := NewGeoService(server.URL)

	_, err := svc.States()
	require.NoError(t, err)

	// Upstream recovers; the next call picks up the real dataset.
	fail.Store(false)
	states, err := svc.States()
	require.NoError(t, err)
	assert.Equal(t, []string{"Kerala", "Tamil Nadu"}, states)
}
