package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figroad/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, s.Init())
	return s
}

func TestStore_WriteAsset(t *testing.T) {
	s := newTestStore(t)

	path, err := s.WriteAsset("Login_Page", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir(), "Login_Page.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestStore_WriteAsset_NoTempLeftover(t *testing.T) {
	s := newTestStore(t)

	_, err := s.WriteAsset("Frame", []byte("x"))
	require.NoError(t, err)

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Frame.png", entries[0].Name())
}

func TestStore_Manifest_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := &domain.Manifest{
		Project: "Demo",
		FileKey: "abc123",
		Units: []domain.ManifestEntry{
			{Name: "Login_Page", NodeID: "1:1", Status: "succeeded", Path: "out/Login_Page.png"},
			{Name: "Broken", NodeID: "2:2", Status: "failed", Error: "render: boom"},
		},
		Succeeded: 1,
		Failed:    1,
	}
	path, err := s.WriteManifest(in)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir(), ManifestFileName), path)

	out, err := s.ReadManifest()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_Assets(t *testing.T) {
	s := newTestStore(t)

	_, err := s.WriteAsset("b-screen", []byte("b"))
	require.NoError(t, err)
	_, err = s.WriteAsset("a-screen", []byte("a"))
	require.NoError(t, err)
	_, err = s.WriteManifest(&domain.Manifest{Project: "p"})
	require.NoError(t, err)

	names, err := s.Assets()
	require.NoError(t, err)
	assert.Equal(t, []string{"a-screen.png", "b-screen.png"}, names, "sorted, manifest excluded")
}

func TestStore_Assets_MissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "never-created"))

	names, err := s.Assets()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStore_ReadAsset(t *testing.T) {
	s := newTestStore(t)

	_, err := s.WriteAsset("Screen", []byte("data"))
	require.NoError(t, err)

	data, err := s.ReadAsset("Screen.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), data)
}
