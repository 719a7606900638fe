// Package main generates deterministic sample content exports for the
// portfolio canvas.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/elektrokombinacija/portfolio-canvas/internal/content"
	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
)

// GenParams defines parameters for content generation.
type GenParams struct {
	Seed       int64
	Count      int
	VideoRatio float64 // Fraction of projects with video media
	LinkRatio  float64 // Fraction of videos that are hosted links only
	FirstYear  int
	LastYear   int
}

var (
	projectTypes = []string{"photography", "cinematography", "direction"}
	adjectives   = []string{"Quiet", "Northern", "Salt", "Late", "Paper", "Iron", "Glass", "Low", "Open", "Amber"}
	nouns        = []string{"Harbour", "Light", "Season", "Field", "Study", "Interval", "Coast", "Room", "Weather", "Line"}

	// Common media frames as width, height
	imageFrames = [][2]int{{3000, 2000}, {2000, 3000}, {2400, 2400}, {3200, 1800}, {1600, 2400}}
	videoFrames = [][2]int{{1920, 1080}, {3840, 1600}, {1080, 1920}, {1440, 1080}}
)

// generate builds a content document. The same params always give the same
// document, ids included.
func generate(p GenParams) (*content.Document, error) {
	rng := rand.New(rand.NewSource(p.Seed))
	doc := &content.Document{Projects: make([]core.Content, 0, p.Count)}

	for i := 0; i < p.Count; i++ {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return nil, fmt.Errorf("project %d id: %w", i, err)
		}
		title := fmt.Sprintf("%s %s", adjectives[rng.Intn(len(adjectives))], nouns[rng.Intn(len(nouns))])
		year := p.FirstYear
		if p.LastYear > p.FirstYear {
			year += rng.Intn(p.LastYear - p.FirstYear + 1)
		}

		doc.Projects = append(doc.Projects, core.Content{
			ID:    id.String(),
			Title: title,
			Slug:  fmt.Sprintf("%s-%d", strings.ToLower(strings.ReplaceAll(title, " ", "-")), i),
			Type:  projectTypes[rng.Intn(len(projectTypes))],
			Year:  year,
			Media: media(rng, p, id),
		})
	}
	return doc, nil
}

func media(rng *rand.Rand, p GenParams, id uuid.UUID) *core.Media {
	if rng.Float64() >= p.VideoRatio {
		f := imageFrames[rng.Intn(len(imageFrames))]
		return &core.Media{
			Kind:   core.MediaImage,
			URL:    fmt.Sprintf("https://media.example.com/%s.jpg", id),
			Width:  f[0],
			Height: f[1],
		}
	}
	if rng.Float64() < p.LinkRatio {
		return &core.Media{
			Kind:             core.MediaVideo,
			ExternalVideoURL: fmt.Sprintf("https://video.example.com/watch/%s", id),
		}
	}
	f := videoFrames[rng.Intn(len(videoFrames))]
	return &core.Media{
		Kind:   core.MediaVideo,
		URL:    fmt.Sprintf("https://media.example.com/%s.mp4", id),
		Width:  f[0],
		Height: f[1],
	}
}

func main() {
	seed := flag.Int64("seed", 42, "Random seed for deterministic generation")
	count := flag.Int("count", 40, "Number of projects")
	videoRatio := flag.Float64("video", 0.3, "Fraction of projects with video media")
	linkRatio := flag.Float64("links", 0.25, "Fraction of videos that are hosted links only")
	firstYear := flag.Int("first-year", 2016, "Earliest project year")
	lastYear := flag.Int("last-year", 2025, "Latest project year")
	output := flag.String("output", "testdata/content.yaml", "Output file")
	flag.Parse()

	if *count < 0 {
		fmt.Fprintln(os.Stderr, "count must not be negative")
		os.Exit(2)
	}

	doc, err := generate(GenParams{
		Seed:       *seed,
		Count:      *count,
		VideoRatio: *videoRatio,
		LinkRatio:  *linkRatio,
		FirstYear:  *firstYear,
		LastYear:   *lastYear,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating content: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	if err := content.WriteDocument(doc, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *output, err)
		os.Exit(1)
	}
	fmt.Printf("Generated: %s (%d projects, seed %d)\n", *output, len(doc.Projects), *seed)
}
