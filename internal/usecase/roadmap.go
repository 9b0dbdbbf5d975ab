package usecase

import (
	"context"
	"fmt"

	"figroad/internal/domain"
)

// RoadmapInput contains the parameters for generating a roadmap.
type RoadmapInput struct{}

// RoadmapOutput contains the generated roadmap and the per-image
// analyses it was synthesized from.
type RoadmapOutput struct {
	Roadmap  string
	Analyses []domain.ImageAnalysis
}

// Roadmap is the use case for turning previously exported screens into a
// development roadmap via a multimodal model.
type Roadmap struct {
	assets domain.AssetStore
	vision domain.VisionModel
	logger domain.Logger
}

// NewRoadmap creates a new Roadmap use case.
func NewRoadmap(assets domain.AssetStore, vision domain.VisionModel, logger domain.Logger) *Roadmap {
	return &Roadmap{assets: assets, vision: vision, logger: logger}
}

// Execute describes every stored asset with the vision model, then
// synthesizes the collected descriptions into a single roadmap text.
// An image whose description fails is recorded with a placeholder and
// the run continues, mirroring the export driver's isolation policy.
func (uc *Roadmap) Execute(ctx context.Context, _ RoadmapInput) (*RoadmapOutput, error) {
	names, err := uc.assets.Assets()
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	if len(names) == 0 {
		return nil, domain.ErrNoAssets
	}

	analyses := make([]domain.ImageAnalysis, 0, len(names))
	for _, name := range names {
		data, err := uc.assets.ReadAsset(name)
		if err != nil {
			return nil, fmt.Errorf("read asset %s: %w", name, err)
		}
		desc, err := uc.vision.DescribeImage(ctx, name, data)
		if err != nil {
			if uc.logger != nil {
				uc.logger.Warn("roadmap", fmt.Sprintf("describe %s: %v", name, err))
			}
			desc = "Error during analysis."
		}
		analyses = append(analyses, domain.ImageAnalysis{Image: name, Description: desc})
	}

	roadmap, err := uc.vision.SynthesizeRoadmap(ctx, analyses)
	if err != nil {
		return nil, fmt.Errorf("synthesize roadmap: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("roadmap", fmt.Sprintf("synthesized roadmap from %d screens", len(analyses)))
	}

	return &RoadmapOutput{Roadmap: roadmap, Analyses: analyses}, nil
}
