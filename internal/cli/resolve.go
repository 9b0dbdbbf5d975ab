package cli

import (
	"figroad/internal/app"
	"figroad/internal/domain"
	"figroad/internal/infra/figma"
	"figroad/internal/tui/prompt"
)

// promptFunc is a function variable so tests can avoid spinning up a
// real terminal program.
var promptFunc = prompt.Run

// resolveFileKey turns the optional URL argument into a file key,
// prompting interactively when no argument was given.
func resolveFileKey(args []string) (string, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		entered, err := promptFunc("Figma project URL")
		if err != nil {
			return "", err
		}
		raw = entered
	}
	return figma.ExtractFileKey(raw)
}

// requireToken fails fast when no Figma token is configured.
func requireToken(c *app.Container) error {
	if c.Config.Token == "" {
		return domain.ErrMissingToken
	}
	return nil
}
