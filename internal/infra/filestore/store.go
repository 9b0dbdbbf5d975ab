// Package filestore persists rendered assets and the export manifest
// under a local output directory.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"figroad/internal/domain"
)

// ManifestFileName is the manifest's file name inside the output dir.
const ManifestFileName = "manifest.yaml"

// Ensure Store implements domain.AssetStore.
var _ domain.AssetStore = (*Store)(nil)

// Store implements domain.AssetStore on the local filesystem.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory is not created until
// Init is called.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the output directory.
func (s *Store) Dir() string { return s.dir }

// Init creates the output directory if it doesn't exist.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// WriteAsset writes image bytes to <dir>/<name>.png via a temp file and
// rename, so a partially written file never sits at the final path.
func (s *Store) WriteAsset(name string, data []byte) (string, error) {
	path := filepath.Join(s.dir, name+".png")

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("write asset %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("close asset %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("finalize asset %s: %w", name, err)
	}
	return path, nil
}

// WriteManifest persists the manifest as YAML inside the output dir.
func (s *Store) WriteManifest(m *domain.Manifest) (string, error) {
	m.OutputDir = s.dir
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}
	path := filepath.Join(s.dir, ManifestFileName)
	if err := os.WriteFile(path, data, 0o640); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

// ReadManifest loads a previously written manifest.
func (s *Store) ReadManifest() (*domain.Manifest, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, ManifestFileName))
	if err != nil {
		return nil, err
	}
	var m domain.Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

// Assets lists stored PNG names in lexical order. Temp files and the
// manifest are excluded.
func (s *Store) Assets() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list assets: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadAsset reads a stored image by name.
func (s *Store) ReadAsset(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, name))
}
