package timeline

import (
	"math"
	"strconv"

	"reelcraft/internal/project"
)

// Defaults applied when scene metadata is missing or unusable.
const (
	DefaultFPS           = 30
	DefaultSceneSeconds  = 5.0
	DefaultMinTotalSecs  = 5.0
	DefaultTrailerFrames = 15
)

// TimedScene is a scene with its assigned frame window and resolved
// renderer. Windows are half-open: [StartFrame, StartFrame+DurationFrames).
type TimedScene struct {
	project.Scene

	StartFrame     int
	DurationFrames int
	Renderer       Renderer
}

// EndFrame returns the first frame after the scene's window.
func (t TimedScene) EndFrame() int {
	return t.StartFrame + t.DurationFrames
}

// Builder assigns contiguous frame windows to scenes and binds each scene
// to a renderer from its registry.
type Builder struct {
	FPS      int
	Registry *Registry

	// SceneSeconds substitutes a missing or non-numeric duration.
	SceneSeconds float64
	// MinTotalSeconds floors the composition length when no scenes exist.
	MinTotalSeconds float64
	// TrailerFrames pads the composition after the last scene.
	TrailerFrames int
}

// NewBuilder creates a Builder with the documented defaults.
func NewBuilder(fps int, registry *Registry) *Builder {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Builder{
		FPS:             fps,
		Registry:        registry,
		SceneSeconds:    DefaultSceneSeconds,
		MinTotalSeconds: DefaultMinTotalSecs,
		TrailerFrames:   DefaultTrailerFrames,
	}
}

// Build assigns every scene a frame window, in input order. The input is
// not mutated. The resulting sequence is gapless: each scene starts on the
// frame after the previous one ends, the first on frame 0.
func (b *Builder) Build(scenes []project.Scene) []TimedScene {
	timed := make([]TimedScene, 0, len(scenes))

	cursor := 0
	for _, scene := range scenes {
		frames := b.frames(b.sceneSeconds(scene.DurationSeconds))
		timed = append(timed, TimedScene{
			Scene:          scene,
			StartFrame:     cursor,
			DurationFrames: frames,
			Renderer:       b.Registry.Resolve(scene.Layout),
		})
		cursor += frames
	}
	return timed
}

// TotalFrames returns the composition length for a built timeline: the sum
// of all windows plus the trailer. An empty timeline still gets the
// minimum length so the render host always has a valid composition.
func (b *Builder) TotalFrames(timed []TimedScene) int {
	if len(timed) == 0 {
		return int(math.Round(b.MinTotalSeconds * float64(b.FPS)))
	}
	last := timed[len(timed)-1]
	return last.EndFrame() + b.TrailerFrames
}

// frames converts seconds to a frame count, never below one frame. A
// zero-length scene must keep a window rather than corrupt later offsets.
func (b *Builder) frames(seconds float64) int {
	frames := int(math.Round(seconds * float64(b.FPS)))
	if frames < 1 {
		frames = 1
	}
	return frames
}

// sceneSeconds coerces the loosely-typed duration field. Missing or
// non-numeric values take the default; numeric values are kept as-is, even
// non-positive ones (those clamp to a single frame in frames).
func (b *Builder) sceneSeconds(raw any) float64 {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return b.SceneSeconds
		}
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if sec, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(sec) && !math.IsInf(sec, 0) {
			return sec
		}
		return b.SceneSeconds
	default:
		return b.SceneSeconds
	}
}
