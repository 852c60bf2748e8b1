package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ScatterParams feeds a scatter script.
type ScatterParams struct {
	Count      int
	HalfExtent float64
	Clearance  float64
	Radius     float64
	Seed       int
}

// Scatter runs a tengo scatter script and returns the [x, z] positions it
// leaves in its `trees` global.
func Scatter(script string, p ScatterParams) ([][2]float64, error) {
	if p.Count <= 0 {
		return nil, nil
	}

	src, err := LoadScript(script)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load script %s: %w", script, err)
	}

	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	vars := map[string]any{
		"count":       p.Count,
		"half_extent": p.HalfExtent,
		"clearance":   p.Clearance,
		"radius":      p.Radius,
		"seed":        p.Seed,
	}
	for name, v := range vars {
		if err := s.Add(name, v); err != nil {
			return nil, fmt.Errorf("prefabs: script %s: bind %s: %w", script, name, err)
		}
	}

	compiled, err := s.Run()
	if err != nil {
		return nil, fmt.Errorf("prefabs: run script %s: %w", script, err)
	}
	if !compiled.IsDefined("trees") {
		return nil, fmt.Errorf("prefabs: script %s: no trees defined", script)
	}

	raw := compiled.Get("trees").Array()
	out := make([][2]float64, 0, len(raw))
	for i, item := range raw {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("prefabs: script %s: trees[%d] is not an [x, z] pair", script, i)
		}
		x, okX := toFloat(pair[0])
		z, okZ := toFloat(pair[1])
		if !okX || !okZ {
			return nil, fmt.Errorf("prefabs: script %s: trees[%d] has non-numeric coordinates", script, i)
		}
		out = append(out, [2]float64{x, z})
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
