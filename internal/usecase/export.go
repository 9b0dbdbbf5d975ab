package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"figroad/internal/domain"
)

// defaultWorkers bounds the export pool when the caller doesn't.
const defaultWorkers = 4

// ExportInput contains the parameters for exporting design frames.
type ExportInput struct {
	FileKey string // Figma file key (required)
	Workers int    // Concurrent render/write workers (0 = default)
}

// ExportOutput contains the result of an export run.
type ExportOutput struct {
	Manifest     *domain.Manifest
	ManifestPath string
}

// Export is the use case for rendering every exportable unit of a design
// file to a PNG under the output directory.
type Export struct {
	files    domain.FileSource
	renderer domain.Renderer
	assets   domain.AssetStore
	logger   domain.Logger
}

// NewExport creates a new Export use case.
func NewExport(files domain.FileSource, renderer domain.Renderer, assets domain.AssetStore, logger domain.Logger) *Export {
	return &Export{files: files, renderer: renderer, assets: assets, logger: logger}
}

// Execute fetches the file, selects exportable units, and renders them
// through a bounded worker pool. A unit's render or write failure marks
// that unit failed and the run continues; the manifest enumerates every
// unit's outcome. Two units resolving to the same path is an invariant
// violation and aborts the run.
func (uc *Export) Execute(ctx context.Context, in ExportInput) (*ExportOutput, error) {
	file, err := fetchFile(ctx, uc.files, in.FileKey)
	if err != nil {
		return nil, err
	}

	tree, err := domain.BuildTree(file.Document)
	if err != nil {
		return nil, err
	}

	units := domain.SelectUnits(tree)
	if uc.logger != nil {
		uc.logger.Info("export", fmt.Sprintf("selected %d exportable units from %d nodes", len(units), tree.Len()))
	}

	if err := uc.assets.Init(); err != nil {
		return nil, fmt.Errorf("init asset store: %w", err)
	}

	// Traversal disambiguation guarantees unique names; a repeat here
	// means the invariant broke upstream.
	claimed := make(map[string]bool, len(units))
	for _, u := range units {
		if claimed[u.FileName] {
			return nil, &domain.PathCollisionError{Path: u.FileName + ".png"}
		}
		claimed[u.FileName] = true
	}

	workers := in.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	// Units are independent: each worker mutates only its own unit, and
	// g.Wait orders those writes before the manifest is built.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, unit := range units {
		g.Go(func() error {
			unit.Status, unit.Path, unit.Cause = uc.exportOne(gctx, file.Key, unit)
			return gctx.Err()
		})
	}
	// Per-unit render/write failures are recorded on the unit, not
	// returned, so Wait only fails when the context is canceled.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	manifest := domain.NewManifest(file.Name, file.Key, "", units)
	manifestPath, err := uc.assets.WriteManifest(manifest)
	if err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("export", fmt.Sprintf("done: %d succeeded, %d failed", manifest.Succeeded, manifest.Failed))
	}

	return &ExportOutput{Manifest: manifest, ManifestPath: manifestPath}, nil
}

// exportOne renders and persists a single unit, reporting the outcome.
func (uc *Export) exportOne(ctx context.Context, fileKey string, unit *domain.ExportableUnit) (domain.ExportStatus, string, string) {
	if err := ctx.Err(); err != nil {
		return domain.StatusFailed, "", err.Error()
	}

	data, err := uc.renderer.Render(ctx, fileKey, unit.Node.ID)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("export", fmt.Sprintf("render %s (%s): %v", unit.FileName, unit.Node.ID, err))
		}
		return domain.StatusFailed, "", fmt.Sprintf("render: %v", err)
	}

	path, err := uc.assets.WriteAsset(unit.FileName, data)
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("export", fmt.Sprintf("write %s: %v", unit.FileName, err))
		}
		return domain.StatusFailed, "", fmt.Sprintf("write: %v", err)
	}

	return domain.StatusSucceeded, path, ""
}

// FailedUnits lists the failed entries of a manifest with their causes.
func FailedUnits(m *domain.Manifest) []domain.ManifestEntry {
	var failed []domain.ManifestEntry
	for _, e := range m.Units {
		if e.Status == string(domain.StatusFailed) {
			failed = append(failed, e)
		}
	}
	return failed
}
