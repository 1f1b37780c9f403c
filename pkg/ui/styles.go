package ui

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/ferdium/ferdium-themes/pkg/errors"
)

// ColorDef is an adaptive colour as written in styles.yaml
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style as written in styles.yaml. Foreground names a colour.
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	MarginLeft int    `yaml:"marginLeft,omitempty"`
}

// StylesConfig is the document format of styles.yaml
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Styles maps semantic names to lipgloss styles
type Styles map[string]lipgloss.Style

//go:embed styles.yaml
var embeddedStyles []byte

// DefaultStyles holds the embedded styles
var DefaultStyles = loadOrEmpty(embeddedStyles)

func loadOrEmpty(data []byte) Styles {
	s, err := LoadStyles(data)
	if err != nil {
		return Styles{}
	}
	return s
}

// LoadStyles builds styles from a styles.yaml document
func LoadStyles(data []byte) (Styles, error) {
	var cfg StylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, c := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}
	}

	styles := make(Styles, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			color, ok := colors[def.Foreground]
			if !ok {
				return nil, errors.Newf(errors.ErrConfigParse, "style %s uses unknown colour %s", name, def.Foreground)
			}
			style = style.Foreground(color)
		}
		if def.MarginLeft > 0 {
			style = style.MarginLeft(def.MarginLeft)
		}
		styles[name] = style
	}
	return styles, nil
}

// Render applies the named style, or returns text unchanged when unknown
func (s Styles) Render(name, text string) string {
	style, ok := s[name]
	if !ok {
		return text
	}
	return style.Render(text)
}
