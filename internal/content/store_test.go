package content

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
}

const sampleDoc = `projects:
  - id: a1
    title: Harbour
    type: photography
    media:
      kind: image
      file: harbour.png
  - id: b2
    title: Night Shift
    type: cinematography
    media:
      kind: video
      external_video_url: https://example.com/v/1
  - id: c3
    title: Portrait
    type: photography
    media:
      kind: image
      width: 800
      height: 1000
  - title: No id
    type: direction
  - id: a1
    title: Duplicate
    type: direction
`

func TestFileStoreProjects(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "harbour.png"), 64, 36)
	path := filepath.Join(dir, "content.yaml")
	writeFile(t, path, sampleDoc)

	items := NewFileStore(path).Projects(context.Background())
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	ids := []string{items[0].ID, items[1].ID, items[2].ID}
	if ids[0] != "a1" || ids[1] != "b2" || ids[2] != "c3" {
		t.Errorf("ids = %v", ids)
	}
	if m := items[0].Media; m.Width != 64 || m.Height != 36 {
		t.Errorf("probed size = %dx%d, want 64x36", m.Width, m.Height)
	}
	if !items[1].Media.IsExternalVideo() {
		t.Error("external video not recognised")
	}
	if m := items[2].Media; m.Width != 800 || m.Height != 1000 {
		t.Errorf("explicit size changed to %dx%d", m.Width, m.Height)
	}
}

func TestFileStoreNeverFails(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "projects: [unterminated")

	tests := []struct {
		name string
		path string
	}{
		{"unconfigured", ""},
		{"missing", filepath.Join(dir, "missing.yaml")},
		{"malformed", bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if items := NewFileStore(tt.path).Projects(context.Background()); items != nil {
				t.Errorf("got %v, want nil", items)
			}
		})
	}
}

func TestFileStoreUnreadableImage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.png"), "not an image")
	path := filepath.Join(dir, "content.yaml")
	writeFile(t, path, "projects:\n  - id: x\n    type: photography\n    media: {kind: image, file: broken.png}\n")

	items := NewFileStore(path).Projects(context.Background())
	if len(items) != 1 {
		t.Fatalf("got %d items", len(items))
	}
	if m := items[0].Media; m.Width != 0 || m.Height != 0 {
		t.Errorf("broken image got size %dx%d", m.Width, m.Height)
	}
}

func TestProbeDimensionsCancelled(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.png")
	writePNG(t, file, 10, 10)
	items := []core.Content{{ID: "a", Media: &core.Media{Kind: core.MediaImage, File: file}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := ProbeDimensions(ctx, items, 2); err == nil {
		t.Error("expected cancellation error")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	doc := &Document{Projects: []core.Content{
		{ID: "p", Title: "Pier", Type: "photography", Year: 2023, Media: &core.Media{Kind: core.MediaImage, AspectRatio: 1.5}},
	}}
	if err := WriteDocument(doc, path); err != nil {
		t.Fatal(err)
	}
	got, err := ReadDocument(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Projects) != 1 || got.Projects[0].Media.AspectRatio != 1.5 || got.Projects[0].Year != 2023 {
		t.Errorf("read back %+v", got.Projects)
	}
}

func TestLoadDeliversOnce(t *testing.T) {
	ch := Load(context.Background(), Static{{ID: "a"}, {ID: "b"}})

	select {
	case res := <-ch:
		if len(res.Items) != 2 {
			t.Errorf("got %d items", len(res.Items))
		}
	case <-time.After(time.Second):
		t.Fatal("no result")
	}
	if _, ok := <-ch; ok {
		t.Error("channel not closed after delivery")
	}
}
