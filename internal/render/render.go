package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/JichouP/csvcat/pkg/csvcat"
)

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted --format values.
var Formats = []string{string(FormatText), string(FormatJSON), string(FormatYAML)}

// ParseFormat converts user input into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or yaml): %w", s, csvcat.ErrInvalidConfig)
}

// Renderer writes scan and column results to w in one format.
type Renderer struct {
	w      io.Writer
	format Format
	styled bool
}

// New creates a Renderer. Text output is styled only when w is a terminal.
func New(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: format, styled: format == FormatText && StyleEnabled(w)}
}

// NewPlain creates a Renderer that never styles text output.
func NewPlain(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: format}
}

// Groups writes one block per group: the prefix with its header names,
// then the data files indented below it.
func (r *Renderer) Groups(groups []csvcat.FileGroup) error {
	if r.format != FormatText {
		return r.encode(groups)
	}

	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "%s %s\n",
			r.style(PrefixStyle, g.Prefix),
			r.style(HeaderStyle, "("+strings.Join(g.Headers, ", ")+")"))
		if len(g.Files) == 0 {
			fmt.Fprintf(&b, "  %s\n", r.style(EmptyStyle, "(no data files)"))
			continue
		}
		for _, f := range g.Files {
			fmt.Fprintf(&b, "  %s\n", f)
		}
	}
	return r.write(b.String())
}

// Headers writes the header entry names, one per line in text mode.
func (r *Renderer) Headers(headers []csvcat.Entry) error {
	if r.format != FormatText {
		return r.encode(headers)
	}

	var b strings.Builder
	for _, h := range headers {
		name := h.Name
		if h.IsDir {
			name += "/"
		}
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return r.write(b.String())
}

// Prefixes writes one prefix per line in text mode.
func (r *Renderer) Prefixes(prefixes []string) error {
	return r.lines(prefixes)
}

// Column writes one value per line in text mode.
func (r *Renderer) Column(values []string) error {
	return r.lines(values)
}

type rowView struct {
	Line  int    `json:"line" yaml:"line"`
	Value string `json:"value" yaml:"value"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Rows writes per-row column results with their line numbers.
// Malformed rows are written with their error instead of a value.
func (r *Renderer) Rows(rows []csvcat.ColumnRow) error {
	if r.format != FormatText {
		views := make([]rowView, 0, len(rows))
		for _, row := range rows {
			v := rowView{Line: row.Line, Value: row.Value}
			if row.Err != nil {
				v.Error = row.Err.Error()
			}
			views = append(views, v)
		}
		return r.encode(views)
	}

	var b strings.Builder
	for _, row := range rows {
		line := r.style(LineNumberStyle, fmt.Sprintf("%d:", row.Line))
		if row.Err != nil {
			fmt.Fprintf(&b, "%s %s\n", line, r.style(ErrorStyle, SymbolCross+" "+row.Err.Error()))
			continue
		}
		fmt.Fprintf(&b, "%s %s\n", line, row.Value)
	}
	return r.write(b.String())
}

func (r *Renderer) lines(values []string) error {
	if r.format != FormatText {
		return r.encode(values)
	}
	var b strings.Builder
	for _, v := range values {
		b.WriteString(v)
		b.WriteByte('\n')
	}
	return r.write(b.String())
}

func (r *Renderer) encode(v any) error {
	switch r.format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return r.write(string(data) + "\n")
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q: %w", r.format, csvcat.ErrInvalidConfig)
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.w, s)
	return err
}
