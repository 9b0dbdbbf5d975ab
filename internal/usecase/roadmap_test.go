package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figroad/internal/domain"
	"figroad/internal/testutil"
)

func TestRoadmap_Execute_Success(t *testing.T) {
	assets := testutil.NewMockAssetStore()
	_, err := assets.WriteAsset("Login_Page", []byte("png-a"))
	require.NoError(t, err)
	_, err = assets.WriteAsset("Dashboard", []byte("png-b"))
	require.NoError(t, err)

	vision := testutil.NewMockVisionModel()
	vision.Descriptions["Dashboard.png"] = "A dashboard with a team list"
	vision.Roadmap = "1. Frontend Tasks: ..."

	uc := NewRoadmap(assets, vision, testutil.NopLogger{})
	out, err := uc.Execute(context.Background(), RoadmapInput{})
	require.NoError(t, err)

	assert.Equal(t, "1. Frontend Tasks: ...", out.Roadmap)
	require.Len(t, out.Analyses, 2)
	// Assets are analyzed in lexical order.
	assert.Equal(t, "Dashboard.png", out.Analyses[0].Image)
	assert.Equal(t, "A dashboard with a team list", out.Analyses[0].Description)
	assert.Equal(t, "Login_Page.png", out.Analyses[1].Image)
}

func TestRoadmap_Execute_NoAssets(t *testing.T) {
	uc := NewRoadmap(testutil.NewMockAssetStore(), testutil.NewMockVisionModel(), testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), RoadmapInput{})
	assert.ErrorIs(t, err, domain.ErrNoAssets)
}

func TestRoadmap_Execute_DescribeFailureIsolated(t *testing.T) {
	assets := testutil.NewMockAssetStore()
	_, err := assets.WriteAsset("Broken", []byte("png"))
	require.NoError(t, err)

	vision := testutil.NewMockVisionModel()
	vision.DescribeErr = errors.New("model overloaded")

	uc := NewRoadmap(assets, vision, testutil.NopLogger{})
	out, err := uc.Execute(context.Background(), RoadmapInput{})
	require.NoError(t, err, "a failed description is recorded, not fatal")

	require.Len(t, out.Analyses, 1)
	assert.Equal(t, "Error during analysis.", out.Analyses[0].Description)
}

func TestRoadmap_Execute_SynthesisFailure(t *testing.T) {
	assets := testutil.NewMockAssetStore()
	_, err := assets.WriteAsset("Screen", []byte("png"))
	require.NoError(t, err)

	vision := testutil.NewMockVisionModel()
	vision.SynthErr = errors.New("quota exceeded")

	uc := NewRoadmap(assets, vision, testutil.NopLogger{})
	_, err = uc.Execute(context.Background(), RoadmapInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "synthesize roadmap")
}
