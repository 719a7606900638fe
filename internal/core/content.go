package core

// MediaKind distinguishes uploaded asset types.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// Media is an externally resolved asset bundle for a project.
type Media struct {
	Kind        MediaKind `yaml:"kind"`
	URL         string    `yaml:"url,omitempty"`
	File        string    `yaml:"file,omitempty"` // Local path, used for dimension probing
	Width       int       `yaml:"width,omitempty"`
	Height      int       `yaml:"height,omitempty"`
	AspectRatio float64   `yaml:"aspect_ratio,omitempty"`

	// ExternalVideoURL is a hosted video link (no uploaded file).
	ExternalVideoURL string `yaml:"external_video_url,omitempty"`
}

// IsExternalVideo reports whether the media is only a link to a hosted video.
func (m *Media) IsExternalVideo() bool {
	return m != nil && m.ExternalVideoURL != "" && m.URL == "" && m.File == ""
}

// Content is a project item as returned by the content store.
type Content struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Slug  string `yaml:"slug,omitempty"`
	Type  string `yaml:"type"`
	Year  int    `yaml:"year,omitempty"`
	Media *Media `yaml:"media,omitempty"`
}

// TileDescriptor is one cell of the canvas grid.
type TileDescriptor struct {
	Index       int
	Category    Category
	AspectRatio Ratio
	WidthFactor float64
	Media       *Media // nil in placeholder mode
	SourceID    string // Content ID; empty in placeholder mode
}
