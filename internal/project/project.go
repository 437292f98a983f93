package project

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Project is the JSON document produced by the upstream content generator.
// Field shapes are not trusted: anything per-scene that the generator may
// get wrong is declared loose (any / map) and normalized later.
type Project struct {
	Title  string       `json:"title" yaml:"title"`
	Theme  Theme        `json:"theme" yaml:"theme"`
	Scenes []Scene      `json:"scenes" yaml:"scenes"`
	Logo   *LogoOverlay `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// Theme carries global styling passed through to the render layer
// unmodified.
type Theme struct {
	AccentColor     string  `json:"accentColor" yaml:"accentColor"`
	BackgroundColor string  `json:"backgroundColor" yaml:"backgroundColor"`
	TextColor       string  `json:"textColor" yaml:"textColor"`
	AspectRatio     string  `json:"aspectRatio" yaml:"aspectRatio"`
	FPS             float64 `json:"fps" yaml:"fps"`
}

// LogoOverlay is optional watermark metadata, passed through untouched.
type LogoOverlay struct {
	URL      string  `json:"url" yaml:"url"`
	Position string  `json:"position" yaml:"position"`
	Opacity  float64 `json:"opacity" yaml:"opacity"`
}

// Scene is one timed segment of the video as described by the generator.
// ID and DurationSeconds stay untyped because the generator emits them
// inconsistently (numbers, strings, sometimes missing).
type Scene struct {
	ID              any            `json:"id" yaml:"id"`
	Order           int            `json:"order" yaml:"order"`
	Title           string         `json:"title" yaml:"title"`
	Narration       string         `json:"narration" yaml:"narration"`
	Layout          string         `json:"layout" yaml:"layout"`
	LayoutProps     map[string]any `json:"layoutProps" yaml:"layoutProps"`
	DurationSeconds any            `json:"durationSeconds" yaml:"durationSeconds"`
	VoiceoverURL    string         `json:"voiceoverUrl,omitempty" yaml:"voiceoverUrl,omitempty"`
	ImageURL        string         `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// Prop returns the named layout prop, or nil when absent.
func (s Scene) Prop(key string) any {
	if s.LayoutProps == nil {
		return nil
	}
	return s.LayoutProps[key]
}

// Decode reads a project document from r.
func Decode(r io.Reader) (*Project, error) {
	var p Project
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode project: %w", err)
	}
	return &p, nil
}

// Load reads a project document from a JSON file.
func Load(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", path, err)
	}
	return p, nil
}
