package kernel

import "encoding/json"

// wireBBox and wireDetection mirror the exact JSON shape the detection
// kernel emits on the wire:
//
//	{"detections":[{"class":<name>,"class_id":<int>,"score":<float>,
//	  "bbox":{"x_min":<float>,"y_min":<float>,"x_max":<float>,"y_max":<float>}}],
//	 "count":<int>}
type wireBBox struct {
	XMin float64 `json:"x_min"`
	YMin float64 `json:"y_min"`
	XMax float64 `json:"x_max"`
	YMax float64 `json:"y_max"`
}

type wireDetection struct {
	Class   string   `json:"class"`
	ClassID int      `json:"class_id"`
	Score   float64  `json:"score"`
	BBox    wireBBox `json:"bbox"`
}

type wirePayload struct {
	Detections []wireDetection `json:"detections"`
	Count      int             `json:"count"`
}

// encodeDetections serializes the filtered detection list using the
// supplied class-id-to-name lookup.
func encodeDetections(dets []Detection, classNames []string) ([]byte, error) {
	payload := wirePayload{
		Detections: make([]wireDetection, 0, len(dets)),
		Count:      len(dets),
	}

	for _, d := range dets {
		payload.Detections = append(payload.Detections, wireDetection{
			Class:   classNameFor(classNames, d.ClassID),
			ClassID: d.ClassID,
			Score:   float64(d.Score),
			BBox: wireBBox{
				XMin: float64(d.XMin),
				YMin: float64(d.YMin),
				XMax: float64(d.XMax),
				YMax: float64(d.YMax),
			},
		})
	}

	return json.Marshal(payload)
}

func classNameFor(names []string, classID int) string {
	i := classID - 1
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}
