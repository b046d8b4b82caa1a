package svg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme controls the appearance of exported SVG charts. Fields left
// empty in a theme file keep their default values.
type Theme struct {
	Font struct {
		Family string `yaml:"family"`
		Size   int    `yaml:"size"`
	} `yaml:"font"`
	Colors struct {
		Background  string `yaml:"background"`
		Grid        string `yaml:"grid"`
		Bar         string `yaml:"bar"`
		BarDone     string `yaml:"bar_done"`
		BarCritical string `yaml:"bar_critical"`
		Edge        string `yaml:"edge"`
		Today       string `yaml:"today"`
		Text        string `yaml:"text"`
		Muted       string `yaml:"muted"`
	} `yaml:"colors"`
	Layout struct {
		RowHeight    int `yaml:"row_height"`
		HeaderHeight int `yaml:"header_height"`
		LabelWidth   int `yaml:"label_width"`
		BarHeight    int `yaml:"bar_height"`
		BarRadius    int `yaml:"bar_radius"`
		Padding      int `yaml:"padding"`
	} `yaml:"layout"`
}

// DefaultTheme returns the built-in chart appearance.
func DefaultTheme() Theme {
	var t Theme
	t.Font.Family = "Helvetica, Arial, sans-serif"
	t.Font.Size = 12
	t.Colors.Background = "#ffffff"
	t.Colors.Grid = "#e2e2e2"
	t.Colors.Bar = "#4c78a8"
	t.Colors.BarDone = "#9ecae9"
	t.Colors.BarCritical = "#e45756"
	t.Colors.Edge = "#b0b0b0"
	t.Colors.Today = "#e45756"
	t.Colors.Text = "#333333"
	t.Colors.Muted = "#888888"
	t.Layout.RowHeight = 28
	t.Layout.HeaderHeight = 36
	t.Layout.LabelWidth = 200
	t.Layout.BarHeight = 16
	t.Layout.BarRadius = 3
	t.Layout.Padding = 16
	return t
}

// LoadTheme reads a YAML theme file layered over the defaults. An
// empty path returns the defaults unchanged.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if path == "" {
		return theme, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, fmt.Errorf("parsing theme file: %w", err)
	}
	return theme, nil
}
