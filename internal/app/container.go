// Package app provides the dependency injection container for the
// application.
package app

import (
	"context"
	"io"

	"figroad/internal/domain"
	"figroad/internal/infra/config"
	"figroad/internal/infra/figma"
	"figroad/internal/infra/filestore"
	"figroad/internal/infra/logging"
	"figroad/internal/infra/vision"
	"figroad/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use
// cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Files    domain.FileSource
	Renderer domain.Renderer
	Assets   domain.AssetStore

	// Pointer fields
	Logger *logging.Logger
	Config *config.Config
}

// New creates a Container by loading configuration from the given
// working directory. logW receives log output (typically stderr).
func New(workDir string, logW io.Writer) (*Container, error) {
	cfg, err := config.NewLoader(workDir).Load()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(cfg, logW), nil
}

// NewWithConfig creates a Container from an already-resolved config.
func NewWithConfig(cfg *config.Config, logW io.Writer) *Container {
	client := figma.NewClient(cfg.Token, figma.WithScale(cfg.Scale))
	return &Container{
		Files:    client,
		Renderer: client,
		Assets:   filestore.New(cfg.OutputDir),
		Logger:   logging.New(logW, logging.ParseLevel(cfg.LogLevel)),
		Config:   cfg,
	}
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(cfg *config.Config, files domain.FileSource, renderer domain.Renderer, assets domain.AssetStore, logger *logging.Logger) *Container {
	return &Container{
		Files:    files,
		Renderer: renderer,
		Assets:   assets,
		Logger:   logger,
		Config:   cfg,
	}
}

// UseCase factory methods

// AnalyzeUseCase returns a new Analyze use case.
func (c *Container) AnalyzeUseCase() *usecase.Analyze {
	return usecase.NewAnalyze(c.Files, c.Logger)
}

// ExportUseCase returns a new Export use case.
func (c *Container) ExportUseCase() *usecase.Export {
	return usecase.NewExport(c.Files, c.Renderer, c.Assets, c.Logger)
}

// InspectUseCase returns a new Inspect use case.
func (c *Container) InspectUseCase() *usecase.Inspect {
	return usecase.NewInspect(c.Files)
}

// RoadmapUseCase returns a new Roadmap use case backed by the Gemini
// API. Fails when no Gemini key is configured.
func (c *Container) RoadmapUseCase(ctx context.Context) (*usecase.Roadmap, error) {
	model, err := vision.NewGemini(ctx, c.Config.GeminiAPIKey, c.Config.VisionModel, c.Config.SynthesisModel)
	if err != nil {
		return nil, err
	}
	return usecase.NewRoadmap(c.Assets, model, c.Logger), nil
}
