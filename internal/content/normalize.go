package content

import (
	"fmt"
	"regexp"
	"strings"
)

// Bullet is a single entry of a bullet-list layout.
type Bullet struct {
	Text     string `json:"text" yaml:"text"`
	Icon     string `json:"icon,omitempty" yaml:"icon,omitempty"`
	ImageURL string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// Metric is a single entry of a stat-display layout.
type Metric struct {
	Value  string `json:"value" yaml:"value"`
	Label  string `json:"label" yaml:"label"`
	Suffix string `json:"suffix" yaml:"suffix"`
}

// TimelineEntry is a single entry of a timeline layout.
type TimelineEntry struct {
	Label       string `json:"label" yaml:"label"`
	Description string `json:"description" yaml:"description"`
	ImageURL    string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// Placeholder value shown when a metric has no usable data at all.
const metricPlaceholderValue = "—"

// metricLabelMax caps the length of a narration-derived metric label.
const metricLabelMax = 44

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// SplitSentences breaks free text into trimmed, non-empty sentences.
// Runs of sentence terminators count as one break.
func SplitSentences(narration string) []string {
	var out []string
	for _, part := range sentenceSplitRe.Split(narration, -1) {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// pick runs strategies in order and returns the first non-empty result.
// Each strategy is pure; an empty result just means "no usable data here".
func pick[T any](strategies ...func() []T) []T {
	for _, s := range strategies {
		if out := s(); len(out) > 0 {
			return out
		}
	}
	return nil
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

// NormalizeBullets produces the bullet list for a scene. Sources are tried
// in order: structured cards, a plain bullets array, then one bullet per
// narration sentence.
func NormalizeBullets(cards, bullets any, narration string) []Bullet {
	return pick(
		func() []Bullet { return bulletsFromCards(asSlice(cards)) },
		func() []Bullet { return bulletsFromList(asSlice(bullets)) },
		func() []Bullet {
			var out []Bullet
			for _, s := range SplitSentences(narration) {
				out = append(out, Bullet{Text: s})
			}
			return out
		},
	)
}

func bulletsFromCards(cards []any) []Bullet {
	var out []Bullet
	for _, entry := range cards {
		if m := asMap(entry); m != nil {
			text := firstTextKey(m, []string{"text", "title", "label", "name"})
			if text == "" {
				text = CoerceToText(m)
			}
			if text == "" {
				continue
			}
			out = append(out, Bullet{
				Text:     text,
				Icon:     stringField(m, "icon"),
				ImageURL: stringField(m, "imageUrl"),
			})
			continue
		}
		if text := CoerceToText(entry); text != "" {
			out = append(out, Bullet{Text: text})
		}
	}
	return out
}

func bulletsFromList(bullets []any) []Bullet {
	var out []Bullet
	for _, entry := range bullets {
		if text := CoerceToText(entry); text != "" {
			out = append(out, Bullet{Text: text})
		}
	}
	return out
}

// NormalizeFlowSteps produces the step list for a flow/process layout.
// Entries that coerce to nothing keep their slot as "Step {n}" so the step
// numbering stays aligned with the input.
func NormalizeFlowSteps(steps any, narration string) []string {
	return pick(
		func() []string { return flowStepsFromList(asSlice(steps)) },
		func() []string { return SplitSentences(narration) },
	)
}

func flowStepsFromList(steps []any) []string {
	var out []string
	for i, entry := range steps {
		text := ""
		if m := asMap(entry); m != nil {
			title := CoerceToText(m["title"])
			desc := CoerceToText(m["description"])
			switch {
			case title != "" && desc != "":
				text = title + " - " + desc
			case title != "":
				text = title
			case desc != "":
				text = desc
			default:
				text = CoerceToText(m)
			}
		} else {
			text = CoerceToText(entry)
		}
		if text == "" {
			text = fmt.Sprintf("Step %d", i+1)
		}
		out = append(out, text)
	}
	return out
}

// NormalizeCodeLines produces the line list for a code-block layout.
// Without structured lines the narration is split on literal newlines.
func NormalizeCodeLines(codeLines any, narration string) []string {
	return pick(
		func() []string { return codeLinesFromList(asSlice(codeLines)) },
		func() []string {
			var out []string
			for _, line := range strings.Split(narration, "\n") {
				if s := strings.TrimSpace(line); s != "" {
					out = append(out, s)
				}
			}
			return out
		},
	)
}

func codeLinesFromList(lines []any) []string {
	var out []string
	for _, entry := range lines {
		text := ""
		if m := asMap(entry); m != nil {
			text = firstTextKey(m, []string{"line", "code", "command", "text", "value"})
			if text == "" {
				text = CoerceToText(m)
			}
		} else {
			text = CoerceToText(entry)
		}
		if text != "" {
			out = append(out, text)
		}
	}
	return out
}

// NormalizeMetrics produces the stat list for a stat-display layout.
// Unlike the other normalizers there is no alternate array source: either
// the metrics array yields entries, or a single placeholder metric is
// synthesized from the narration.
func NormalizeMetrics(metrics any, narration string) []Metric {
	out := metricsFromList(asSlice(metrics))
	if len(out) > 0 {
		return out
	}

	label := CoerceToText(narration)
	if runes := []rune(label); len(runes) > metricLabelMax {
		label = string(runes[:metricLabelMax])
	}
	if label == "" {
		label = "Metric"
	}
	return []Metric{{Value: metricPlaceholderValue, Label: label, Suffix: ""}}
}

func metricsFromList(metrics []any) []Metric {
	var out []Metric
	for i, entry := range metrics {
		if m := asMap(entry); m != nil {
			value := CoerceToText(m["value"])
			label := firstTextKey(m, []string{"label", "title", "name"})
			if value == "" && label == "" {
				continue
			}
			if label == "" {
				label = fmt.Sprintf("Metric %d", i+1)
			}
			out = append(out, Metric{
				Value:  value,
				Label:  label,
				Suffix: CoerceToText(m["suffix"]),
			})
			continue
		}
		if value := CoerceToText(entry); value != "" {
			out = append(out, Metric{
				Value: value,
				Label: fmt.Sprintf("Metric %d", i+1),
			})
		}
	}
	return out
}

// NormalizeTimelineEntries produces the entry list for a timeline layout.
func NormalizeTimelineEntries(items any, narration string) []TimelineEntry {
	return pick(
		func() []TimelineEntry { return timelineFromList(asSlice(items)) },
		func() []TimelineEntry {
			var out []TimelineEntry
			for i, s := range SplitSentences(narration) {
				out = append(out, TimelineEntry{
					Label:       fmt.Sprintf("Step %d", i+1),
					Description: s,
				})
			}
			return out
		},
	)
}

func timelineFromList(items []any) []TimelineEntry {
	var out []TimelineEntry
	for i, entry := range items {
		if m := asMap(entry); m != nil {
			label := firstTextKey(m, []string{"label", "title", "name"})
			if label == "" {
				label = fmt.Sprintf("Step %d", i+1)
			}
			desc := firstTextKey(m, []string{"description", "text", "detail"})
			if desc == "" {
				desc = label
			}
			out = append(out, TimelineEntry{
				Label:       label,
				Description: desc,
				ImageURL:    stringField(m, "imageUrl"),
			})
			continue
		}
		desc := CoerceToText(entry)
		if desc == "" {
			continue
		}
		out = append(out, TimelineEntry{
			Label:       fmt.Sprintf("Step %d", i+1),
			Description: desc,
		})
	}
	return out
}
