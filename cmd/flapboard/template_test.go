package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadTemplate(t *testing.T) {
	path := writeFile(t, "tpl.yaml", `
lines:
  - "{center}{{weather.summary|upper}}"
  - "{{weather.temperature}}°"
`)
	lines, err := loadTemplate(path)
	require.NoError(t, err)
	require.Equal(t, []string{
		"{center}{{weather.summary|upper}}",
		"{{weather.temperature}}°",
	}, lines)
}

func TestLoadTemplate_Missing(t *testing.T) {
	_, err := loadTemplate(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadTemplate_BadYAML(t *testing.T) {
	path := writeFile(t, "tpl.yaml", "lines: [unclosed")
	_, err := loadTemplate(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse template")
}

func TestLoadContext(t *testing.T) {
	path := writeFile(t, "ctx.yaml", `
weather:
  temperature: 72
  summary: clear
transit:
  trains:
    - 12 MIN
`)
	ctx, err := loadContext(path)
	require.NoError(t, err)
	require.Len(t, ctx, 2)
	require.ElementsMatch(t, []string{"weather", "transit"}, contextSources(ctx))
}

func TestLoadContext_EmptyPath(t *testing.T) {
	ctx, err := loadContext("")
	require.NoError(t, err)
	require.NotNil(t, ctx)
	require.Empty(t, ctx)
}

func TestContextSources_Nil(t *testing.T) {
	require.Nil(t, contextSources(nil))
}
