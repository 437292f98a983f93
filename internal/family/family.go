// Package family defines the built-in template families: independently
// themed sets of layouts sharing one timeline-building contract. Each
// family owns its registry and its fallback layout.
package family

import (
	"fmt"
	"sort"

	"reelcraft/internal/timeline"
)

// Handle identifies one visual template to the render host.
type Handle struct {
	key       string
	component string
	family    string
}

// LayoutKey returns the key scenes use to request this template.
func (h Handle) LayoutKey() string { return h.key }

// Component returns the render-host component name for this template.
func (h Handle) Component() string { return h.component }

// Family returns the template family the handle belongs to.
func (h Handle) Family() string { return h.family }

// Spec declares one family: its layout keys mapped to render-host
// component names, plus the fallback layout key.
type Spec struct {
	Name        string
	FallbackKey string
	Layouts     map[string]string
}

// Build constructs the family's registry. The error only fires when the
// spec forgets to register its own fallback layout.
func (s Spec) Build() (*timeline.Registry, error) {
	renderers := make(map[string]timeline.Renderer, len(s.Layouts))
	for key, component := range s.Layouts {
		renderers[key] = Handle{key: key, component: component, family: s.Name}
	}

	reg, err := timeline.NewRegistry(renderers, s.FallbackKey)
	if err != nil {
		return nil, fmt.Errorf("family %s: %w", s.Name, err)
	}
	return reg, nil
}

// DefaultFamily is used when a requested family name is unknown.
const DefaultFamily = "default"

var specs = map[string]Spec{
	"default": {
		Name:        "default",
		FallbackKey: "text_narration",
		Layouts: map[string]string{
			"title_card":     "TitleCard",
			"bullet_list":    "BulletList",
			"code_block":     "CodeBlock",
			"comparison":     "SplitComparison",
			"timeline":       "TimelineTrack",
			"stat_display":   "StatGrid",
			"flow_steps":     "FlowSteps",
			"quote":          "QuoteCard",
			"image_feature":  "ImageFeature",
			"text_narration": "TextNarration",
		},
	},
	"newspaper": {
		Name:        "newspaper",
		FallbackKey: "article_lead",
		Layouts: map[string]string{
			"article_lead":    "ArticleLead",
			"headline_splash": "HeadlineSplash",
			"column_story":    "ColumnStory",
			"pull_quote":      "PullQuote",
			"front_page":      "FrontPage",
			"stat_display":    "LedgerStats",
		},
	},
	"matrix": {
		Name:        "matrix",
		FallbackKey: "terminal_feed",
		Layouts: map[string]string{
			"terminal_feed":  "TerminalFeed",
			"code_block":     "CodeRain",
			"spotlight_stat": "SpotlightStat",
			"glitch_title":   "GlitchTitle",
			"bullet_list":    "ScanlineList",
		},
	},
	"whiteboard": {
		Name:        "whiteboard",
		FallbackKey: "sketch_panel",
		Layouts: map[string]string{
			"sketch_panel":   "SketchPanel",
			"bullet_list":    "HandDrawnList",
			"flow_steps":     "MarkerDiagram",
			"timeline":       "StickyTimeline",
			"stat_display":   "ChalkStats",
			"text_narration": "SketchPanel",
		},
	},
	// custom reuses the default keys; theming happens downstream from an
	// extracted palette the core never sees.
	"custom": {
		Name:        "custom",
		FallbackKey: "text_narration",
		Layouts: map[string]string{
			"title_card":     "ThemedTitleCard",
			"bullet_list":    "ThemedBulletList",
			"code_block":     "ThemedCodeBlock",
			"comparison":     "ThemedComparison",
			"timeline":       "ThemedTimeline",
			"stat_display":   "ThemedStatGrid",
			"quote":          "ThemedQuoteCard",
			"text_narration": "ThemedNarration",
		},
	},
}

// Names returns the known family names.
func Names() []string {
	names := make([]string, 0, len(specs))
	for n := range specs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ForName builds the registry for a family. Unknown names fall back to the
// default family rather than failing, matching the rest of the core.
func ForName(name string) (*timeline.Registry, error) {
	spec, ok := specs[name]
	if !ok {
		spec = specs[DefaultFamily]
	}
	return spec.Build()
}

// FallbackKeyFor reports the fallback layout of a family (default family
// for unknown names).
func FallbackKeyFor(name string) string {
	spec, ok := specs[name]
	if !ok {
		spec = specs[DefaultFamily]
	}
	return spec.FallbackKey
}
