// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sort"
	"sync"

	"figroad/internal/domain"
)

// MockFileSource is a test double for domain.FileSource.
type MockFileSource struct {
	Files map[string]*domain.File
	Err   error
}

// NewMockFileSource creates a MockFileSource with an initialized map.
func NewMockFileSource() *MockFileSource {
	return &MockFileSource{Files: make(map[string]*domain.File)}
}

// File returns the configured file for the key.
func (m *MockFileSource) File(_ context.Context, key string) (*domain.File, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Files[key], nil
}

// MockRenderer is a test double for domain.Renderer. Safe for concurrent
// use, matching the export driver's worker pool.
type MockRenderer struct {
	Images map[string][]byte // node id -> bytes
	Errs   map[string]error  // node id -> failure
	Calls  []string          // node ids in call order

	mu sync.Mutex
}

// NewMockRenderer creates a MockRenderer with initialized maps.
func NewMockRenderer() *MockRenderer {
	return &MockRenderer{
		Images: make(map[string][]byte),
		Errs:   make(map[string]error),
	}
}

// Render returns the configured bytes or error for the node.
func (m *MockRenderer) Render(_ context.Context, _, nodeID string) ([]byte, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, nodeID)
	m.mu.Unlock()

	if err, ok := m.Errs[nodeID]; ok {
		return nil, err
	}
	if data, ok := m.Images[nodeID]; ok {
		return data, nil
	}
	return []byte("png:" + nodeID), nil
}

// MockAssetStore is an in-memory test double for domain.AssetStore.
type MockAssetStore struct {
	Written  map[string][]byte // base name -> bytes
	Manifest *domain.Manifest
	WriteErr map[string]error // base name -> failure
	InitErr  error

	mu sync.Mutex
}

// NewMockAssetStore creates a MockAssetStore with initialized maps.
func NewMockAssetStore() *MockAssetStore {
	return &MockAssetStore{
		Written:  make(map[string][]byte),
		WriteErr: make(map[string]error),
	}
}

// Init returns the configured error.
func (m *MockAssetStore) Init() error { return m.InitErr }

// WriteAsset stores the bytes in memory.
func (m *MockAssetStore) WriteAsset(name string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err, ok := m.WriteErr[name]; ok {
		return "", err
	}
	m.Written[name] = data
	return "mock/" + name + ".png", nil
}

// WriteManifest records the manifest.
func (m *MockAssetStore) WriteManifest(manifest *domain.Manifest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Manifest = manifest
	return "mock/manifest.yaml", nil
}

// Assets lists written asset names in lexical order.
func (m *MockAssetStore) Assets() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.Written))
	for name := range m.Written {
		names = append(names, name+".png")
	}
	sort.Strings(names)
	return names, nil
}

// ReadAsset returns previously written bytes.
func (m *MockAssetStore) ReadAsset(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	base := name
	if len(base) > 4 && base[len(base)-4:] == ".png" {
		base = base[:len(base)-4]
	}
	return m.Written[base], nil
}

// MockVisionModel is a test double for domain.VisionModel.
type MockVisionModel struct {
	Descriptions map[string]string // asset name -> description
	DescribeErr  error
	Roadmap      string
	SynthErr     error
	Described    []string
}

// NewMockVisionModel creates a MockVisionModel with an initialized map.
func NewMockVisionModel() *MockVisionModel {
	return &MockVisionModel{Descriptions: make(map[string]string)}
}

// DescribeImage returns the configured description for the asset.
func (m *MockVisionModel) DescribeImage(_ context.Context, name string, _ []byte) (string, error) {
	if m.DescribeErr != nil {
		return "", m.DescribeErr
	}
	m.Described = append(m.Described, name)
	if desc, ok := m.Descriptions[name]; ok {
		return desc, nil
	}
	return "description of " + name, nil
}

// SynthesizeRoadmap returns the configured roadmap text.
func (m *MockVisionModel) SynthesizeRoadmap(_ context.Context, _ []domain.ImageAnalysis) (string, error) {
	if m.SynthErr != nil {
		return "", m.SynthErr
	}
	if m.Roadmap != "" {
		return m.Roadmap, nil
	}
	return "mock roadmap", nil
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

// Debug implements domain.Logger.
func (NopLogger) Debug(string, string) {}

// Info implements domain.Logger.
func (NopLogger) Info(string, string) {}

// Warn implements domain.Logger.
func (NopLogger) Warn(string, string) {}

// Error implements domain.Logger.
func (NopLogger) Error(string, string) {}
