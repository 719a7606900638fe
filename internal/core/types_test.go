package core

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"photography", Photography},
		{"Photography", Photography},
		{"  CINEMATOGRAPHY ", Cinematography},
		{"direction", Direction},
		{"photo", Photo},
		{"video", Video},
		{"All", CategoryAll},
		{"", Mixed},
		{"sculpture", Mixed},
	}

	for _, tt := range tests {
		got := ParseCategory(tt.in)
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCategoryString(t *testing.T) {
	if CategoryAll.String() != "All" {
		t.Errorf("CategoryAll.String() = %q", CategoryAll.String())
	}
	if Category(42).String() != "Unknown" {
		t.Errorf("out of range category should print Unknown")
	}
	for _, c := range ProjectCategories() {
		if ParseCategory(c.String()) != c {
			t.Errorf("ParseCategory(%v.String()) did not round trip", c)
		}
	}
}

func TestDeviceFor(t *testing.T) {
	tests := []struct {
		width float64
		want  bool
	}{
		{0, false},
		{375, true},
		{767, true},
		{768, false},
		{1440, false},
	}

	for _, tt := range tests {
		if got := DeviceFor(tt.width, 768).Mobile; got != tt.want {
			t.Errorf("DeviceFor(%v).Mobile = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	if !r.Contains(r.Center()) {
		t.Errorf("rect should contain its centre")
	}
	if !r.Contains(Vec{10, 20}) || !r.Contains(Vec{110, 70}) {
		t.Errorf("edges should be inclusive")
	}
	if r.Contains(Vec{9, 20}) || r.Contains(Vec{50, 71}) {
		t.Errorf("points outside reported as contained")
	}
	if c := r.Center(); c.X != 60 || c.Y != 45 {
		t.Errorf("Center() = %+v, want {60 45}", c)
	}
}

func TestMediaIsExternalVideo(t *testing.T) {
	var nilMedia *Media
	if nilMedia.IsExternalVideo() {
		t.Errorf("nil media is not an external video")
	}
	link := &Media{Kind: MediaVideo, ExternalVideoURL: "https://vimeo.com/1"}
	if !link.IsExternalVideo() {
		t.Errorf("link-only media should be external")
	}
	uploaded := &Media{Kind: MediaVideo, URL: "https://cdn/x.mp4", ExternalVideoURL: "https://vimeo.com/1"}
	if uploaded.IsExternalVideo() {
		t.Errorf("media with an uploaded file is not link-only")
	}
}
