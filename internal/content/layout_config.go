package content

import "strings"

// LayoutConfig is the validated per-scene arrangement description.
type LayoutConfig struct {
	Arrangement string         `json:"arrangement" yaml:"arrangement"`
	Elements    []Element      `json:"elements" yaml:"elements"`
	Decorations []string       `json:"decorations" yaml:"decorations"`
	Background  map[string]any `json:"background,omitempty" yaml:"background,omitempty"`
}

// Element is one positioned piece of a layout arrangement.
type Element struct {
	Type  string         `json:"type" yaml:"type"`
	Props map[string]any `json:"props,omitempty" yaml:"props,omitempty"`
}

// DefaultArrangement is used whenever the requested arrangement is absent
// or not one of the allowed names.
const DefaultArrangement = "full-center"

// allowedArrangements is the closed set of arrangement names the render
// layer knows how to place.
var allowedArrangements = map[string]bool{
	"full-center":   true,
	"split-left":    true,
	"split-right":   true,
	"top-heavy":     true,
	"bottom-heavy":  true,
	"grid":          true,
	"sidebar-left":  true,
	"sidebar-right": true,
	"diagonal":      true,
}

func defaultElements() []Element {
	return []Element{
		{Type: "heading"},
		{Type: "body-text"},
	}
}

// FallbackLayoutConfig is the configuration used when the raw value is not
// an object at all.
func FallbackLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Arrangement: DefaultArrangement,
		Elements:    defaultElements(),
		Decorations: []string{"none"},
	}
}

// NormalizeLayoutConfig validates an arbitrary value into a well-formed
// layout configuration. Every field degrades independently to its default.
func NormalizeLayoutConfig(raw any) LayoutConfig {
	m := asMap(raw)
	if m == nil {
		return FallbackLayoutConfig()
	}

	cfg := LayoutConfig{
		Arrangement: normalizeArrangement(m["arrangement"]),
		Elements:    normalizeElements(m["elements"]),
		Decorations: normalizeDecorations(m["decorations"]),
		Background:  asMap(m["background"]),
	}
	return cfg
}

func normalizeArrangement(v any) string {
	name, _ := v.(string)
	name = strings.TrimSpace(name)
	if allowedArrangements[name] {
		return name
	}
	return DefaultArrangement
}

func normalizeElements(v any) []Element {
	raw, ok := v.([]any)
	if !ok {
		return defaultElements()
	}

	var out []Element
	for _, entry := range raw {
		m := asMap(entry)
		if m == nil {
			continue
		}
		typ, _ := m["type"].(string)
		typ = strings.TrimSpace(typ)
		if typ == "" {
			continue
		}
		el := Element{Type: typ}
		for k, val := range m {
			if k == "type" {
				continue
			}
			if el.Props == nil {
				el.Props = make(map[string]any)
			}
			el.Props[k] = val
		}
		out = append(out, el)
	}

	if len(out) == 0 {
		return defaultElements()
	}
	return out
}

func normalizeDecorations(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return []string{"none"}
	}

	var out []string
	for _, entry := range raw {
		if s := CoerceToText(entry); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []string{"none"}
	}
	return out
}
