package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEmptyTree        = errors.New("design tree has no nodes")
	ErrMissingToken     = errors.New("figma API token is not configured (set FIGMA_API_TOKEN or token in figroad.toml)")
	ErrMissingVisionKey = errors.New("gemini API key is not configured (set GEMINI_API_KEY or gemini_api_key in figroad.toml)")
	ErrInvalidFigmaURL  = errors.New("invalid Figma URL (expected .../file/<key>/... or .../design/<key>/...)")
	ErrNoAssets         = errors.New("no rendered assets found (run 'figroad export' first)")
)

// MalformedTreeError reports a structural defect found while building the
// design tree. The whole run aborts before any traversal.
type MalformedTreeError struct {
	NodeID string // Offending node identifier ("" when the id itself is missing)
	Reason string // Human-readable defect description
}

func (e *MalformedTreeError) Error() string {
	if e.NodeID == "" {
		return "malformed design tree: " + e.Reason
	}
	return fmt.Sprintf("malformed design tree: node %q: %s", e.NodeID, e.Reason)
}

// PathCollisionError reports two export units resolving to the same output
// path. Traversal disambiguation guarantees this never happens; seeing it
// means an internal invariant broke, so the export run aborts.
type PathCollisionError struct {
	Path string
}

func (e *PathCollisionError) Error() string {
	return fmt.Sprintf("export path collision on %q: duplicate unit name escaped traversal disambiguation", e.Path)
}
