package kernel

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// palette is a fixed set of annotation colours, cycled by class id
// modulo its length so new classes never need a palette edit.
var palette = []color.RGBA{
	{60, 180, 75, 0},
	{230, 25, 75, 0},
	{255, 225, 25, 0},
	{0, 130, 200, 0},
	{245, 130, 48, 0},
	{145, 30, 180, 0},
	{70, 240, 240, 0},
}

func colorFor(classID int) color.RGBA {
	return palette[classID%len(palette)]
}

// annotate draws one rectangle plus a "<name> <pct>%" label per
// detection directly on img, in place.
func annotate(img *gocv.Mat, dets []Detection, classNames []string) {
	w := float64(img.Cols())
	h := float64(img.Rows())

	for _, d := range dets {
		col := colorFor(d.ClassID)
		rect := rectFromNormalized(d, w, h)
		gocv.Rectangle(img, rect, col, 2)

		label := fmt.Sprintf("%s %.0f%%", classNameFor(classNames, d.ClassID), d.Score*100)
		gocv.PutText(img, label, rect.Min, gocv.FontHersheyPlain, 1.0, col, 1)
	}
}

func rectFromNormalized(d Detection, w, h float64) image.Rectangle {
	return image.Rect(
		int(float64(d.XMin)*w),
		int(float64(d.YMin)*h),
		int(float64(d.XMax)*w),
		int(float64(d.YMax)*h),
	)
}
