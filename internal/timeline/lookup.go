package timeline

// SceneAt returns the scene whose window contains the given frame. Frames
// before the first window clamp to the first scene and frames past the end
// clamp to the last, so a render host probing slightly out of range still
// gets a drawable scene. ok is false only for an empty timeline.
func SceneAt(timed []TimedScene, frame int) (TimedScene, bool) {
	if len(timed) == 0 {
		return TimedScene{}, false
	}

	if frame < timed[0].StartFrame {
		return timed[0], true
	}
	last := timed[len(timed)-1]
	if frame >= last.EndFrame() {
		return last, true
	}

	for _, ts := range timed {
		if frame >= ts.StartFrame && frame < ts.EndFrame() {
			return ts, true
		}
	}

	// Unreachable for a gapless timeline; clamp anyway.
	return last, true
}
