// Package vision implements the VisionModel port on the Gemini API.
package vision

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"figroad/internal/domain"
)

// describePrompt asks for a per-screen summary the synthesis pass can
// build on.
const describePrompt = "Generate a summary describing the UI components, layout, and potential interactions."

// synthesisPreamble frames the roadmap request.
const synthesisPreamble = `Based on the following analysis of UI screenshots from a Figma project, generate a comprehensive development task list for frontend, backend, and AI (if any).

Here are the analyses of the individual screens:
`

// synthesisInstructions fixes the output structure.
const synthesisInstructions = `
Provide the task list in the following structure:
1. Frontend Tasks: list of tasks for frontend development.
2. Backend Tasks: list of tasks for backend development.
3. AI Tasks: list of tasks for AI development.`

// Ensure Gemini implements domain.VisionModel.
var _ domain.VisionModel = (*Gemini)(nil)

// Gemini describes rendered screens and synthesizes roadmaps through the
// Gemini API.
type Gemini struct {
	client         *genai.Client
	visionModel    string
	synthesisModel string
}

// NewGemini creates a Gemini-backed vision model. The API key is an
// explicit value supplied by the caller.
func NewGemini(ctx context.Context, apiKey, visionModel, synthesisModel string) (*Gemini, error) {
	if apiKey == "" {
		return nil, domain.ErrMissingVisionKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{
		client:         client,
		visionModel:    visionModel,
		synthesisModel: synthesisModel,
	}, nil
}

// DescribeImage summarizes one rendered screen.
func (g *Gemini) DescribeImage(ctx context.Context, _ string, png []byte) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(describePrompt),
			genai.NewPartFromBytes(png, "image/png"),
		}, genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.visionModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("describe image: %w", err)
	}
	return resp.Text(), nil
}

// SynthesizeRoadmap turns the collected per-screen analyses into one
// categorized development roadmap.
func (g *Gemini) SynthesizeRoadmap(ctx context.Context, analyses []domain.ImageAnalysis) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(synthesisPrompt(analyses), genai.RoleUser),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.synthesisModel, contents, nil)
	if err != nil {
		return "", fmt.Errorf("synthesize roadmap: %w", err)
	}
	return resp.Text(), nil
}

// synthesisPrompt assembles the synthesis request from the per-screen
// analyses.
func synthesisPrompt(analyses []domain.ImageAnalysis) string {
	var b strings.Builder
	b.WriteString(synthesisPreamble)
	for _, a := range analyses {
		fmt.Fprintf(&b, "- Image: %s\n  Description: %s\n", a.Image, a.Description)
	}
	b.WriteString(synthesisInstructions)
	return b.String()
}
