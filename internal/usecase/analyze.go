// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"figroad/internal/domain"
)

// AnalyzeInput contains the parameters for analyzing a design file.
type AnalyzeInput struct {
	FileKey string        // Figma file key (required)
	Rules   []domain.Rule // Rule set (nil = built-in defaults)
}

// AnalyzeOutput contains the result of analyzing a design file.
type AnalyzeOutput struct {
	Report  *domain.TaskReport
	Summary string // Rendered text report
}

// Analyze is the use case for classifying a design file into a
// categorized task report.
type Analyze struct {
	files  domain.FileSource
	logger domain.Logger
}

// NewAnalyze creates a new Analyze use case.
func NewAnalyze(files domain.FileSource, logger domain.Logger) *Analyze {
	return &Analyze{files: files, logger: logger}
}

// Execute fetches the design file, builds the typed tree, runs the
// classification engine, and renders the summary. Structural errors
// abort before any traversal.
func (uc *Analyze) Execute(ctx context.Context, in AnalyzeInput) (*AnalyzeOutput, error) {
	file, err := fetchFile(ctx, uc.files, in.FileKey)
	if err != nil {
		return nil, err
	}

	tree, err := domain.BuildTree(file.Document)
	if err != nil {
		return nil, err
	}

	rules := in.Rules
	if rules == nil {
		rules = domain.DefaultRules()
	}

	report, err := domain.Classify(file.Name, tree, rules)
	if err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("analyze", fmt.Sprintf("classified %d nodes into %d tasks", tree.Len(), report.Total()))
	}

	return &AnalyzeOutput{
		Report:  report,
		Summary: domain.RenderSummary(report),
	}, nil
}

// fetchFile retrieves a design file and normalizes the not-found case.
func fetchFile(ctx context.Context, files domain.FileSource, key string) (*domain.File, error) {
	file, err := files.File(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("fetch design file: %w", err)
	}
	if file == nil {
		return nil, fmt.Errorf("design file %q not found", key)
	}
	return file, nil
}
