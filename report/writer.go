// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"encoding/json"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the encoding of structured results.
type Format int

const (
	// FormatJSON writes indented JSON.
	FormatJSON Format = iota
	// FormatYAML writes YAML.
	FormatYAML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat maps "json" or "yaml" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// Envelope wraps every structured result.
type Envelope struct {
	RunID  string `json:"run_id" yaml:"run_id"`
	Name   string `json:"name" yaml:"name"`
	Result any    `json:"result" yaml:"result"`
}

// Writer stores the artifacts of one run under a directory.
type Writer struct {
	dir    string
	format Format
	runID  string
	logger *zap.Logger
}

// WriterOption customizes NewWriter.
type WriterOption func(*Writer)

// WithFormat selects JSON or YAML results. Default: JSON.
func WithFormat(f Format) WriterOption {
	return func(w *Writer) { w.format = f }
}

// WithRunID overrides the generated run ID.
func WithRunID(id string) WriterOption {
	return func(w *Writer) { w.runID = id }
}

// WithLogger reports every written file. Panics on nil.
func WithLogger(l *zap.Logger) WriterOption {
	if l == nil {
		panic("report: WithLogger(nil)")
	}
	return func(w *Writer) { w.logger = l }
}

// NewWriter creates dir if needed and returns a Writer with a fresh run ID.
func NewWriter(dir string, opts ...WriterOption) (*Writer, error) {
	w := &Writer{dir: dir, format: FormatJSON, runID: uuid.NewString(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(w)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "report: create %s", dir)
	}

	return w, nil
}

// RunID identifies the run.
func (w *Writer) RunID() string { return w.runID }

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Format returns the result encoding.
func (w *Writer) Format() Format { return w.format }

// WriteResult encodes v into name.json or name.yaml and returns the path.
func (w *Writer) WriteResult(name string, v any) (string, error) {
	env := Envelope{RunID: w.runID, Name: name, Result: v}

	var (
		data []byte
		err  error
	)
	switch w.format {
	case FormatYAML:
		data, err = yaml.Marshal(env)
	default:
		data, err = json.MarshalIndent(env, "", "  ")
	}
	if err != nil {
		return "", errors.Wrapf(err, "report: encode %s", name)
	}

	return w.write(name+"."+w.format.String(), data)
}

// WriteNetwork renders n into name.html.
func (w *Writer) WriteNetwork(name string, n *Network) (string, error) {
	if n.Title == "" {
		n.Title = name
	}
	var buf bytes.Buffer
	if err := renderPage(&buf, n, w.runID); err != nil {
		return "", err
	}

	return w.write(name+".html", buf.Bytes())
}

// WriteSummary renders s into name.html and keeps the Markdown source in name.md.
func (w *Writer) WriteSummary(name string, s *Summary) (string, error) {
	body, err := s.HTML()
	if err != nil {
		return "", err
	}
	if _, err := w.write(name+".md", []byte(s.Markdown())); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>")
	buf.WriteString(html.EscapeString(name))
	buf.WriteString("</title></head>\n<body>\n")
	buf.Write(body)
	buf.WriteString("<footer>run " + html.EscapeString(w.runID) + "</footer>\n</body>\n</html>\n")

	return w.write(name+".html", buf.Bytes())
}

func (w *Writer) write(file string, data []byte) (string, error) {
	path := filepath.Join(w.dir, file)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "report: write %s", path)
	}
	w.logger.Info("artifact written", zap.String("path", path), zap.String("run_id", w.runID))

	return path, nil
}
