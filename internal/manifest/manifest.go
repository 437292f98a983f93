// Package manifest defines the resolved-timeline document handed to the
// render host: every scene with its frame window, resolved layout and
// normalized props.
package manifest

import (
	"reelcraft/internal/content"
	"reelcraft/internal/project"
	"reelcraft/internal/timeline"
)

// Manifest is a complete render plan for one composition.
type Manifest struct {
	Version     string               `yaml:"version" json:"version"`
	Family      string               `yaml:"family" json:"family"`
	FPS         int                  `yaml:"fps" json:"fps"`
	TotalFrames int                  `yaml:"totalFrames" json:"totalFrames"`
	Theme       project.Theme        `yaml:"theme" json:"theme"`
	Logo        *project.LogoOverlay `yaml:"logo,omitempty" json:"logo,omitempty"`
	Scenes      []SceneEntry         `yaml:"scenes" json:"scenes"`
}

// SceneEntry is one scene's render plan.
type SceneEntry struct {
	ID             string        `yaml:"id" json:"id"`
	Title          string        `yaml:"title" json:"title"`
	Narration      string        `yaml:"narration" json:"narration"`
	Layout         string        `yaml:"layout" json:"layout"`
	Component      string        `yaml:"component" json:"component"`
	StartFrame     int           `yaml:"startFrame" json:"startFrame"`
	DurationFrames int           `yaml:"durationFrames" json:"durationFrames"`
	VoiceoverURL   string        `yaml:"voiceoverUrl,omitempty" json:"voiceoverUrl,omitempty"`
	ImageURL       string        `yaml:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Props          project.Props `yaml:"props" json:"props"`
}

// componentName unwraps the render-host component when the renderer handle
// exposes one; otherwise the layout key doubles as the component name.
func componentName(r timeline.Renderer) string {
	type componenter interface{ Component() string }
	if c, ok := r.(componenter); ok {
		return c.Component()
	}
	return r.LayoutKey()
}

// Build assembles the manifest for a built timeline. props must be indexed
// like timed; a short props slice leaves the remaining scenes with empty
// props rather than failing.
func Build(p *project.Project, familyName string, fps, totalFrames int, timed []timeline.TimedScene, props []project.Props) *Manifest {
	m := &Manifest{
		Version:     "1.0",
		Family:      familyName,
		FPS:         fps,
		TotalFrames: totalFrames,
		Scenes:      make([]SceneEntry, 0, len(timed)),
	}
	if p != nil {
		m.Theme = p.Theme
		m.Logo = p.Logo
	}

	for i, ts := range timed {
		entry := SceneEntry{
			ID:             content.CoerceToText(ts.Scene.ID),
			Title:          ts.Scene.Title,
			Narration:      ts.Scene.Narration,
			Layout:         ts.Renderer.LayoutKey(),
			Component:      componentName(ts.Renderer),
			StartFrame:     ts.StartFrame,
			DurationFrames: ts.DurationFrames,
			VoiceoverURL:   ts.Scene.VoiceoverURL,
			ImageURL:       ts.Scene.ImageURL,
		}
		if i < len(props) {
			entry.Props = props[i]
		}
		m.Scenes = append(m.Scenes, entry)
	}
	return m
}
