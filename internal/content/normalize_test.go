package content

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("First point. Second point! Third?? ")
	want := []string{"First point", "Second point", "Third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if got := SplitSentences("No terminator at all"); len(got) != 1 {
		t.Errorf("expected 1 segment, got %v", got)
	}

	if got := SplitSentences(""); len(got) != 0 {
		t.Errorf("expected no segments for empty text, got %v", got)
	}
}

func TestNormalizeBulletsFromCards(t *testing.T) {
	cards := []any{
		map[string]any{"title": "Fast", "icon": "bolt", "imageUrl": "https://cdn/x.png"},
		map[string]any{"text": "Cheap"},
		"Reliable",
		map[string]any{"unrelated": true}, // no text keys, falls back to the dump
		"",
	}

	got := NormalizeBullets(cards, nil, "ignored narration")
	if len(got) != 4 {
		t.Fatalf("expected 4 bullets, got %d: %v", len(got), got)
	}
	if got[0].Text != "Fast" || got[0].Icon != "bolt" || got[0].ImageURL != "https://cdn/x.png" {
		t.Errorf("card fields not extracted: %+v", got[0])
	}
	if got[2].Text != "Reliable" {
		t.Errorf("scalar card not coerced: %+v", got[2])
	}
}

func TestNormalizeBulletsFromBullets(t *testing.T) {
	got := NormalizeBullets(nil, []any{"one", "", "two"}, "ignored")
	if len(got) != 2 || got[0].Text != "one" || got[1].Text != "two" {
		t.Errorf("expected bullets [one two], got %v", got)
	}
}

func TestNormalizeBulletsFromNarration(t *testing.T) {
	got := NormalizeBullets(nil, nil, "We ship fast. We stay cheap. We never break!")
	if len(got) != 3 {
		t.Fatalf("expected one bullet per sentence, got %d", len(got))
	}
	if got[1].Text != "We stay cheap" {
		t.Errorf("expected trimmed sentence, got %q", got[1].Text)
	}
}

func TestNormalizeBulletsEmptyCardsFallThrough(t *testing.T) {
	// A cards array that yields nothing must not shadow the narration.
	cards := []any{"", nil}
	got := NormalizeBullets(cards, nil, "Still have text.")
	if len(got) != 1 || got[0].Text != "Still have text" {
		t.Errorf("expected narration fallback, got %v", got)
	}
}

func TestNormalizeFlowSteps(t *testing.T) {
	steps := []any{
		map[string]any{"title": "Plan", "description": "write it down"},
		map[string]any{"title": "Build"},
		"",
		"Ship it",
	}

	got := NormalizeFlowSteps(steps, "")
	want := []string{"Plan - write it down", "Build", "Step 3", "Ship it"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNormalizeFlowStepsFromNarration(t *testing.T) {
	got := NormalizeFlowSteps(nil, "Plan first. Then build. Then ship.")
	if len(got) != 3 {
		t.Errorf("expected 3 steps from narration, got %v", got)
	}
}

func TestNormalizeCodeLines(t *testing.T) {
	lines := []any{
		map[string]any{"line": "package main"},
		map[string]any{"command": "go build ./..."},
		"fmt.Println(42)",
		nil,
	}

	got := NormalizeCodeLines(lines, "")
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(got), got)
	}
	if got[1] != "go build ./..." {
		t.Errorf("command key not extracted: %q", got[1])
	}
}

func TestNormalizeCodeLinesFromNarration(t *testing.T) {
	got := NormalizeCodeLines(nil, "first line\n\nsecond line\n")
	want := []string{"first line", "second line"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNormalizeMetrics(t *testing.T) {
	metrics := []any{
		map[string]any{"value": 99.9, "label": "Uptime", "suffix": "%"},
		map[string]any{"value": 3},
		"250ms",
		map[string]any{"suffix": "%"}, // no value, no label: dropped
	}

	got := NormalizeMetrics(metrics, "")
	if len(got) != 3 {
		t.Fatalf("expected 3 metrics, got %d: %v", len(got), got)
	}
	if got[0].Value != "99.9" || got[0].Label != "Uptime" || got[0].Suffix != "%" {
		t.Errorf("metric fields wrong: %+v", got[0])
	}
	if got[1].Label != "Metric 2" {
		t.Errorf("expected synthesized label Metric 2, got %q", got[1].Label)
	}
	if got[2].Value != "250ms" || got[2].Label != "Metric 3" {
		t.Errorf("scalar metric wrong: %+v", got[2])
	}
}

func TestNormalizeMetricsNarrationFallback(t *testing.T) {
	narration := "Revenue grew significantly this quarter across all regions"
	got := NormalizeMetrics([]any{}, narration)

	if len(got) != 1 {
		t.Fatalf("expected exactly one placeholder metric, got %d", len(got))
	}
	want := Metric{Value: "—", Label: "Revenue grew significantly this quarter acro", Suffix: ""}
	if got[0] != want {
		t.Errorf("expected %+v, got %+v", want, got[0])
	}
}

func TestNormalizeMetricsEmptyNarrationFallback(t *testing.T) {
	got := NormalizeMetrics(nil, "")
	if len(got) != 1 || got[0].Label != "Metric" || got[0].Value != "—" {
		t.Errorf("expected bare placeholder metric, got %v", got)
	}
}

func TestNormalizeTimelineEntries(t *testing.T) {
	items := []any{
		map[string]any{"label": "2019", "description": "Founded", "imageUrl": "https://cdn/a.png"},
		map[string]any{"title": "2021"},
		"Went public",
	}

	got := NormalizeTimelineEntries(items, "")
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].ImageURL != "https://cdn/a.png" {
		t.Errorf("imageUrl not carried: %+v", got[0])
	}
	// Description falls back to the label itself.
	if got[1].Label != "2021" || got[1].Description != "2021" {
		t.Errorf("label-only entry wrong: %+v", got[1])
	}
	if got[2].Label != "Step 3" || got[2].Description != "Went public" {
		t.Errorf("scalar entry wrong: %+v", got[2])
	}
}

func TestNormalizeTimelineEntriesFromNarration(t *testing.T) {
	got := NormalizeTimelineEntries(nil, "We started small. We grew. We won.")
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	if got[0].Label != "Step 1" || got[0].Description != "We started small" {
		t.Errorf("unexpected first entry: %+v", got[0])
	}
}

func TestNormalizersNonEmptyWithNarration(t *testing.T) {
	// With all structured fields absent, every normalizer must still
	// produce one entry per narration sentence.
	narration := "One. Two. Three."

	if got := NormalizeBullets(nil, nil, narration); len(got) != 3 {
		t.Errorf("bullets: expected 3, got %d", len(got))
	}
	if got := NormalizeFlowSteps(nil, narration); len(got) != 3 {
		t.Errorf("steps: expected 3, got %d", len(got))
	}
	if got := NormalizeTimelineEntries(nil, narration); len(got) != 3 {
		t.Errorf("timeline entries: expected 3, got %d", len(got))
	}
	if got := NormalizeMetrics(nil, narration); len(got) != 1 {
		t.Errorf("metrics: expected 1 placeholder, got %d", len(got))
	}
}
