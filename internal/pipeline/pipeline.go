// Package pipeline wires the core together: load a project document,
// normalize every scene's props, assign frame windows and write the render
// manifest.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"reelcraft/internal/config"
	"reelcraft/internal/manifest"
	"reelcraft/internal/project"
	"reelcraft/internal/system"
	"reelcraft/internal/timeline"
)

type Runner struct {
	Config   *config.Config
	Registry *timeline.Registry
}

func NewRunner(cfg *config.Config, registry *timeline.Registry) *Runner {
	return &Runner{Config: cfg, Registry: registry}
}

// Run executes one full build and returns the manifest it wrote.
func (r *Runner) Run(ctx context.Context) (*manifest.Manifest, error) {
	startTime := time.Now()

	proj, err := project.Load(r.Config.InputPath)
	if err != nil {
		if !r.Config.PlaceholderOnError {
			return nil, err
		}
		// The render host still needs a valid composition length, so a
		// failed load degrades to a single placeholder scene.
		log.Printf("[!] Project load failed, using placeholder timeline: %v", err)
		proj = r.placeholderProject()
	}

	builder := r.newBuilder(proj)

	normStart := time.Now()
	props, err := r.normalizeScenes(ctx, proj.Scenes)
	if err != nil {
		return nil, err
	}
	fmt.Printf("[*] Normalized %d scenes in %v\n", len(proj.Scenes), time.Since(normStart).Round(time.Millisecond))

	timed := builder.Build(proj.Scenes)
	total := builder.TotalFrames(timed)

	m := manifest.Build(proj, r.Config.Family, builder.FPS, total, timed, props)

	outPath := r.Config.OutputPath
	if outPath == "" {
		outPath = manifest.GeneratePath("output")
	}
	if err := manifest.Write(m, outPath); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	fmt.Printf("[+] Manifest written: %s (%d scenes, %d frames @ %d fps)\n",
		outPath, len(m.Scenes), m.TotalFrames, m.FPS)
	fmt.Printf("[*] Total build time: %v\n", time.Since(startTime).Round(time.Millisecond))
	if r.Config.ShowStats {
		system.Report(system.Snapshot())
	}

	return m, nil
}

// normalizeScenes assembles props for every scene concurrently. The
// normalizers are pure and the scenes independent, so the only coordination
// needed is the index each result lands on.
func (r *Runner) normalizeScenes(ctx context.Context, scenes []project.Scene) ([]project.Props, error) {
	props := make([]project.Props, len(scenes))

	g, ctx := errgroup.WithContext(ctx)
	if r.Config.Workers > 0 {
		g.SetLimit(r.Config.Workers)
	}

	for i, scene := range scenes {
		i, scene := i, scene
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			props[i] = project.AssembleProps(scene)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return props, nil
}

func (r *Runner) newBuilder(proj *project.Project) *timeline.Builder {
	fps := r.Config.FPS
	if fps <= 0 && proj != nil {
		fps = int(proj.Theme.FPS)
	}
	builder := timeline.NewBuilder(fps, r.Registry)
	if r.Config.SceneSeconds > 0 {
		builder.SceneSeconds = r.Config.SceneSeconds
	}
	if r.Config.MinTotalSeconds > 0 {
		builder.MinTotalSeconds = r.Config.MinTotalSeconds
	}
	if r.Config.TrailerFrames > 0 {
		builder.TrailerFrames = r.Config.TrailerFrames
	}
	return builder
}

// placeholderProject is the minimum-duration single-scene stand-in used
// when the project document cannot be loaded.
func (r *Runner) placeholderProject() *project.Project {
	seconds := r.Config.MinTotalSeconds
	if seconds <= 0 {
		seconds = timeline.DefaultMinTotalSecs
	}
	return &project.Project{
		Title: "Untitled",
		Scenes: []project.Scene{
			{
				ID:              "placeholder",
				Layout:          r.Registry.FallbackKey(),
				DurationSeconds: seconds,
			},
		},
	}
}
