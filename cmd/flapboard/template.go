package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/flapboard/flapboard/resolve"
)

// templateFile is the YAML shape of a template on disk.
type templateFile struct {
	Lines []string `yaml:"lines"`
}

// loadTemplate reads the template lines from a YAML file.
func loadTemplate(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template: %w", err)
	}
	var tf templateFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("lines", len(tf.Lines)).Msg("template loaded")
	return tf.Lines, nil
}

// loadContext reads a rendering context from a YAML file: a mapping of
// source identifiers to field mappings. An empty path yields an empty
// context, so templates without data references still render.
func loadContext(path string) (resolve.Context, error) {
	if path == "" {
		return resolve.Context{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read context: %w", err)
	}
	var ctx map[string]any
	if err := yaml.Unmarshal(raw, &ctx); err != nil {
		return nil, fmt.Errorf("parse context %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("sources", len(ctx)).Msg("context loaded")
	return resolve.Context(ctx), nil
}

// contextSources returns the source identifiers a loaded context offers,
// for validation. A nil context means no identifier check.
func contextSources(ctx resolve.Context) []string {
	if ctx == nil {
		return nil
	}
	ids := make([]string, 0, len(ctx))
	for id := range ctx {
		ids = append(ids, id)
	}
	return ids
}
