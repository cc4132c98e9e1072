// Package detectjson parses the detection payload carried in a
// DetectionResult.Json field. It tolerates the canonical shape the
// detection kernel emits plus hand-written alternatives a compatible
// producer might use.
package detectjson

import (
	"encoding/json"
)

// Box is one parsed bounding box. Coordinates are kept in whatever
// scale the producer used (normalized by convention, but the parser
// never rescales).
type Box struct {
	X     float64
	Y     float64
	W     float64
	H     float64
	Score float64
	Label string
}

// Parse extracts zero or more boxes from raw, trying each accepted
// shape in turn:
//
//  1. objects with an explicit bbox:{x_min,y_min,x_max,y_max} block
//  2. objects with bbox:[x,y,w,h] (optionally a 5th score element)
//  3. last resort: any 4- or 5-element numeric array anywhere in the input
func Parse(raw []byte) ([]Box, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	boxes := parseExplicitBBox(doc)
	if len(boxes) > 0 {
		return boxes, nil
	}

	boxes = parseArrayBBox(doc)
	if len(boxes) > 0 {
		return boxes, nil
	}

	return parseNumericTuples(doc), nil
}

// detections returns the list under a top-level "detections" key, the
// document itself if it is already a list, or a one-element list if
// the document is a single object carrying a "bbox" key.
func detections(doc any) []any {
	switch v := doc.(type) {
	case map[string]any:
		if list, ok := v["detections"].([]any); ok {
			return list
		}
		if _, ok := v["bbox"]; ok {
			return []any{v}
		}
	case []any:
		return v
	}
	return nil
}

func parseExplicitBBox(doc any) []Box {
	var out []Box
	for _, item := range detections(doc) {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		bbox, ok := obj["bbox"].(map[string]any)
		if !ok {
			continue
		}
		xMin, ok1 := numberField(bbox, "x_min")
		yMin, ok2 := numberField(bbox, "y_min")
		xMax, ok3 := numberField(bbox, "x_max")
		yMax, ok4 := numberField(bbox, "y_max")
		if !(ok1 && ok2 && ok3 && ok4) {
			continue
		}

		w := xMax - xMin
		h := yMax - yMin
		if w <= 0 || h <= 0 {
			continue
		}

		box := Box{X: xMin, Y: yMin, W: w, H: h}
		if score, ok := numberField(obj, "score"); ok {
			box.Score = score
		}
		if label, ok := obj["class"].(string); ok {
			box.Label = label
		}
		out = append(out, box)
	}
	return out
}

func parseArrayBBox(doc any) []Box {
	var out []Box
	for _, item := range detections(doc) {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		arr, ok := obj["bbox"].([]any)
		if !ok || (len(arr) != 4 && len(arr) != 5) {
			continue
		}
		box, ok := boxFromTuple(arr)
		if !ok {
			continue
		}
		if score, ok := numberField(obj, "score"); ok {
			box.Score = score
		}
		if label, ok := obj["class"].(string); ok {
			box.Label = label
		}
		out = append(out, box)
	}
	return out
}

// parseNumericTuples walks the entire document looking for any
// array that looks like a (x, y, w, h[, score]) tuple, as a last
// resort fallback when neither structured shape matched.
func parseNumericTuples(doc any) []Box {
	var out []Box
	walk(doc, func(v any) {
		arr, ok := v.([]any)
		if !ok || (len(arr) != 4 && len(arr) != 5) {
			return
		}
		if box, ok := boxFromTuple(arr); ok {
			out = append(out, box)
		}
	})
	return out
}

func boxFromTuple(arr []any) (Box, bool) {
	x, ok1 := asNumber(arr[0])
	y, ok2 := asNumber(arr[1])
	w, ok3 := asNumber(arr[2])
	h, ok4 := asNumber(arr[3])
	if !(ok1 && ok2 && ok3 && ok4) {
		return Box{}, false
	}
	if w <= 0 || h <= 0 {
		return Box{}, false
	}

	box := Box{X: x, Y: y, W: w, H: h}
	if len(arr) == 5 {
		if score, ok := asNumber(arr[4]); ok {
			box.Score = score
		}
	}
	return box, true
}

func walk(v any, visit func(any)) {
	visit(v)
	switch t := v.(type) {
	case map[string]any:
		for _, child := range t {
			walk(child, visit)
		}
	case []any:
		for _, child := range t {
			walk(child, visit)
		}
	}
}

func numberField(obj map[string]any, key string) (float64, bool) {
	return asNumber(obj[key])
}

func asNumber(v any) (float64, bool) {
	n, ok := v.(float64)
	return n, ok
}
