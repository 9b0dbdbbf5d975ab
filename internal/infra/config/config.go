// Package config provides configuration loading for figroad.
package config

// Config is the resolved application configuration. The API tokens are
// explicit values handed to the pipeline entry points; nothing below the
// CLI reads process environment.
type Config struct {
	Token          string  `toml:"token"`            // Figma API token
	GeminiAPIKey   string  `toml:"gemini_api_key"`   // Gemini API key for roadmap generation
	OutputDir      string  `toml:"output_dir"`       // Where rendered PNGs and the manifest land
	Scale          float64 `toml:"scale"`            // Render scale factor
	Workers        int     `toml:"workers"`          // Export worker pool size
	VisionModel    string  `toml:"vision_model"`     // Model for per-image descriptions
	SynthesisModel string  `toml:"synthesis_model"`  // Model for roadmap synthesis
	LogLevel       string  `toml:"log_level"`        // debug, info, warn, error
}

// NewDefault returns the built-in defaults.
func NewDefault() *Config {
	return &Config{
		OutputDir:      "figma_screenshots",
		Scale:          1,
		Workers:        4,
		VisionModel:    "gemini-2.0-flash",
		SynthesisModel: "gemini-2.0-flash",
		LogLevel:       "info",
	}
}

// merge overlays non-zero fields of over onto base and returns base.
func merge(base, over *Config) *Config {
	if over == nil {
		return base
	}
	if over.Token != "" {
		base.Token = over.Token
	}
	if over.GeminiAPIKey != "" {
		base.GeminiAPIKey = over.GeminiAPIKey
	}
	if over.OutputDir != "" {
		base.OutputDir = over.OutputDir
	}
	if over.Scale > 0 {
		base.Scale = over.Scale
	}
	if over.Workers > 0 {
		base.Workers = over.Workers
	}
	if over.VisionModel != "" {
		base.VisionModel = over.VisionModel
	}
	if over.SynthesisModel != "" {
		base.SynthesisModel = over.SynthesisModel
	}
	if over.LogLevel != "" {
		base.LogLevel = over.LogLevel
	}
	return base
}
