package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func roundTrip(t *testing.T, st Store) {
	t.Helper()

	// A missing collection leaves the target untouched.
	out := []record{{ID: "sentinel"}}
	require.NoError(t, st.Get("missing", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "sentinel", out[0].ID)

	in := []record{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}
	require.NoError(t, st.Put("records", in))

	var got []record
	require.NoError(t, st.Get("records", &got))
	assert.Equal(t, in, got)

	// Put replaces the whole collection.
	require.NoError(t, st.Put("records", []record{{ID: "3", Name: "only"}}))
	got = nil
	require.NoError(t, st.Get("records", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	st := NewMemory()
	defer st.Close()
	roundTrip(t, st)
}

func TestBadgerStoreRoundTrip(t *testing.T) {
	st, err := OpenBadger(t.TempDir())
	require.NoError(t, err)
	defer st.Close()
	roundTrip(t, st)
}

func TestBadgerStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	st, err := OpenBadger(dir)
	require.NoError(t, err)
	require.NoError(t, st.Put("records", []record{{ID: "1", Name: "kept"}}))
	require.NoError(t, st.Close())

	st, err = OpenBadger(dir)
	require.NoError(t, err)
	defer st.Close()

	var got []record
	require.NoError(t, st.Get("records", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "kept", got[0].Name)
}

func TestMemoryStoreIsolatesCollections(t *testing.T) {
	st := NewMemory()
	defer st.Close()

	require.NoError(t, st.Put("a", []record{{ID: "a1"}}))
	require.NoError(t, st.Put("b", []record{{ID: "b1"}}))

	var got []record
	require.NoError(t, st.Get("a", &got))
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
}
