package domain

import "context"

// FileSource fetches design documents from their origin (the Figma API in
// production, fixtures in tests).
type FileSource interface {
	// File retrieves a design file by key: its name plus the raw node tree.
	File(ctx context.Context, key string) (*File, error)
}

// Renderer turns one node into image bytes. The core treats it as a black
// box: it either yields bytes or an error, per node, and the export run
// isolates failures instead of aborting.
type Renderer interface {
	// Render returns PNG bytes for the node.
	Render(ctx context.Context, fileKey, nodeID string) ([]byte, error)
}

// AssetStore persists rendered images and the export manifest under the
// caller-supplied output directory, and reads them back for downstream
// analysis.
type AssetStore interface {
	// Init creates the output directory if it doesn't exist.
	Init() error

	// WriteAsset atomically writes image bytes under the given base name
	// and returns the final path. A partially written file is never left
	// at the returned path.
	WriteAsset(name string, data []byte) (string, error)

	// WriteManifest persists the export manifest and returns its path.
	WriteManifest(m *Manifest) (string, error)

	// Assets lists the stored image names in lexical order.
	Assets() ([]string, error)

	// ReadAsset reads a stored image by name.
	ReadAsset(name string) ([]byte, error)
}

// ImageAnalysis is one image's model-generated description.
type ImageAnalysis struct {
	Image       string // Asset file name
	Description string
}

// VisionModel describes rendered screens and synthesizes a development
// roadmap from the collected descriptions.
type VisionModel interface {
	// DescribeImage summarizes the UI components, layout, and interactions
	// visible in one rendered screen.
	DescribeImage(ctx context.Context, name string, png []byte) (string, error)

	// SynthesizeRoadmap turns per-screen analyses into a categorized
	// development roadmap text.
	SynthesizeRoadmap(ctx context.Context, analyses []ImageAnalysis) (string, error)
}

// Logger is the logging interface used by use cases.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
