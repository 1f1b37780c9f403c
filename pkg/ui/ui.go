// Package ui renders command results as styled terminal output, plain text,
// JSON or YAML.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ferdium/ferdium-themes/pkg/errors"
	"github.com/ferdium/ferdium-themes/pkg/types"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a run summary, a theme list or any other value
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// ThemeList is the result of listing theme folders
type ThemeList struct {
	Root   string   `json:"root" yaml:"root"`
	Themes []string `json:"themes" yaml:"themes"`
}

// NewRenderer creates a renderer for format. FormatAuto inspects output when
// it is a file and falls back to plain text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return &textRenderer{w: output, styles: DefaultStyles, styled: true}, nil
	case FormatText:
		return &textRenderer{w: output}, nil
	case FormatJSON:
		enc := json.NewEncoder(output)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return &encodingRenderer{encode: enc.Encode}, nil
	case FormatYAML:
		return &encodingRenderer{encode: func(v interface{}) error {
			enc := yaml.NewEncoder(output)
			enc.SetIndent(2)
			if err := enc.Encode(v); err != nil {
				return err
			}
			return enc.Close()
		}}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

// encodingRenderer serialises results for machine consumption
type encodingRenderer struct {
	encode func(v interface{}) error
}

func (r *encodingRenderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

func (r *encodingRenderer) RenderError(err error) error {
	return r.encode(map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}

func (r *encodingRenderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

// textRenderer writes human-readable reports, styled or plain
type textRenderer struct {
	w      io.Writer
	styles Styles
	styled bool
}

func (r *textRenderer) style(name, text string) string {
	if !r.styled {
		return text
	}
	return r.styles.Render(name, text)
}

func (r *textRenderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.RunSummary:
		_, err := io.WriteString(r.w, r.summary(v))
		return err
	case *ThemeList:
		return r.themeList(v)
	case fmt.Stringer:
		return r.RenderMessage(v.String())
	default:
		_, err := fmt.Fprintf(r.w, "%v\n", v)
		return err
	}
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.w, "%s %s\n", r.style("Warning", "Error:"), err.Error())
	return werr
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.w, msg)
	return err
}

func (r *textRenderer) themeList(l *ThemeList) error {
	if len(l.Themes) == 0 {
		return r.RenderMessage(r.style("Muted", fmt.Sprintf("No theme folders found in %s", l.Root)))
	}
	for _, name := range l.Themes {
		if err := r.RenderMessage(r.style("Theme", name)); err != nil {
			return err
		}
	}
	return nil
}

// summary renders the failures of a run followed by the totals line
func (r *textRenderer) summary(s *types.RunSummary) string {
	var b strings.Builder
	for _, res := range s.FailedResults() {
		b.WriteString(r.style("Warning", "⚠️ Couldn't package "))
		b.WriteString(r.style("Theme", fmt.Sprintf("%q", res.Theme)))
		b.WriteString(":\n")
		for _, e := range res.Errors {
			b.WriteString(r.style("Error", "  "+e))
			b.WriteString("\n")
		}
	}

	verb := "packaged and added"
	if s.DryRun {
		verb = "validated"
	}
	line := fmt.Sprintf("✅ Successfully %s %d themes (%d unsuccessful themes)", verb, s.Succeeded(), s.Failed)
	if s.OK() {
		line = r.style("Success", line)
	}
	b.WriteString(line)
	b.WriteString("\n")
	return b.String()
}
