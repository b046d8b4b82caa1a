package svg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, 12, theme.Font.Size)
	assert.Equal(t, "#ffffff", theme.Colors.Background)
	assert.Equal(t, 28, theme.Layout.RowHeight)
}

func TestLoadTheme_EmptyPathUsesDefaults(t *testing.T) {
	theme, err := LoadTheme("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), theme)
}

func TestLoadTheme_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	content := `
colors:
  bar: "#222222"
layout:
  row_height: 40
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	theme, err := LoadTheme(path)
	require.NoError(t, err)

	assert.Equal(t, "#222222", theme.Colors.Bar)
	assert.Equal(t, 40, theme.Layout.RowHeight)
	assert.Equal(t, "#ffffff", theme.Colors.Background, "unset fields keep defaults")
	assert.Equal(t, 12, theme.Font.Size)
}

func TestLoadTheme_MissingFile(t *testing.T) {
	_, err := LoadTheme("/nonexistent/theme.yaml")
	assert.Error(t, err)
}

func TestLoadTheme_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colors: ["), 0o644))

	_, err := LoadTheme(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing theme file")
}
