// Package content resolves the project list shown on the canvas. Stores
// never fail: any error is logged and yields an empty list, which the layout
// turns into placeholder tiles.
package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	"github.com/elektrokombinacija/portfolio-canvas/internal/logutil"
)

// Store resolves the ordered project list.
type Store interface {
	Projects(ctx context.Context) []core.Content
}

// Document is the YAML export read by FileStore.
type Document struct {
	Projects []core.Content `yaml:"projects"`
}

// FileStore reads projects from a local YAML export.
type FileStore struct {
	Path string

	// ProbeLimit bounds concurrent image dimension probes. Zero disables
	// probing.
	ProbeLimit int
}

// NewFileStore creates a store for path with probing enabled.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path, ProbeLimit: 4}
}

// Projects returns the projects in the export, or nil on any error.
func (s *FileStore) Projects(ctx context.Context) []core.Content {
	if s.Path == "" {
		logutil.Infof("content: no store configured, using placeholders")
		return nil
	}
	doc, err := ReadDocument(s.Path)
	if err != nil {
		logutil.Warnf("content: %v", err)
		return nil
	}

	items := valid(doc.Projects)
	dir := filepath.Dir(s.Path)
	for i := range items {
		if m := items[i].Media; m != nil && m.File != "" && !filepath.IsAbs(m.File) {
			m.File = filepath.Join(dir, m.File)
		}
	}

	if s.ProbeLimit > 0 {
		if err := ProbeDimensions(ctx, items, s.ProbeLimit); err != nil {
			logutil.Warnf("content: probe: %v", err)
			return nil
		}
	}
	logutil.Infof("content: %d projects from %s", len(items), s.Path)
	return items
}

// valid drops items without an id; layout ordering depends on it.
func valid(items []core.Content) []core.Content {
	out := items[:0:0]
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		switch {
		case it.ID == "":
			logutil.Warnf("content: skipping %q without id", it.Title)
		case seen[it.ID]:
			logutil.Warnf("content: skipping duplicate id %s", it.ID)
		default:
			seen[it.ID] = true
			out = append(out, it)
		}
	}
	return out
}

// ReadDocument reads a YAML export.
func ReadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &doc, nil
}

// WriteDocument writes a YAML export.
func WriteDocument(doc *Document, path string) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Static is a Store over a fixed list.
type Static []core.Content

func (s Static) Projects(context.Context) []core.Content { return s }
