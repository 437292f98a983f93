package project

import (
	"reelcraft/internal/content"
)

// Props is the fully normalized display data for one scene. It is derived
// fresh from the scene on every call and never mutated afterwards.
type Props struct {
	Bullets         []content.Bullet        `json:"bullets" yaml:"bullets"`
	Steps           []string                `json:"steps" yaml:"steps"`
	CodeLines       []string                `json:"codeLines" yaml:"codeLines"`
	Metrics         []content.Metric        `json:"metrics" yaml:"metrics"`
	TimelineEntries []content.TimelineEntry `json:"timelineEntries" yaml:"timelineEntries"`
	Layout          content.LayoutConfig    `json:"layout" yaml:"layout"`

	Quote       string `json:"quote,omitempty" yaml:"quote,omitempty"`
	QuoteAuthor string `json:"quoteAuthor,omitempty" yaml:"quoteAuthor,omitempty"`
	LeftLabel   string `json:"leftLabel,omitempty" yaml:"leftLabel,omitempty"`
	RightLabel  string `json:"rightLabel,omitempty" yaml:"rightLabel,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// AssembleProps runs every field normalizer for one scene. The metrics
// source accepts "stats" as an alias because both key names occur in
// generator output.
func AssembleProps(s Scene) Props {
	metricsRaw := s.Prop("metrics")
	if metricsRaw == nil {
		metricsRaw = s.Prop("stats")
	}

	imageURL := content.CoerceToText(s.Prop("imageUrl"))
	if imageURL == "" {
		imageURL = s.ImageURL
	}

	return Props{
		Bullets:         content.NormalizeBullets(s.Prop("cards"), s.Prop("bullets"), s.Narration),
		Steps:           content.NormalizeFlowSteps(s.Prop("steps"), s.Narration),
		CodeLines:       content.NormalizeCodeLines(s.Prop("codeLines"), s.Narration),
		Metrics:         content.NormalizeMetrics(metricsRaw, s.Narration),
		TimelineEntries: content.NormalizeTimelineEntries(s.Prop("timelineItems"), s.Narration),
		Layout:          content.NormalizeLayoutConfig(s.Prop("layoutConfig")),
		Quote:           content.CoerceToText(s.Prop("quote")),
		QuoteAuthor:     content.CoerceToText(s.Prop("quoteAuthor")),
		LeftLabel:       content.CoerceToText(s.Prop("leftLabel")),
		RightLabel:      content.CoerceToText(s.Prop("rightLabel")),
		ImageURL:        imageURL,
	}
}
