package misfitmap

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// ramp runs from the best fitting directions (blue) to the worst (red).
var ramp = []color.NRGBA{
	{0, 0, 255, 255},
	{0, 255, 255, 255},
	{0, 255, 0, 255},
	{255, 255, 0, 255},
	{255, 0, 0, 255},
}

var crossColor = color.RGBA{0, 0, 0, 255}

// Render colours g into a Size×Size image. With supersample > 1 the map is
// drawn at supersample times the resolution, interpolating between cells,
// and filtered down, which smooths the equator and the colour bands.
func Render(g Grid, supersample int) *image.NRGBA {
	s := max(supersample, 1)
	n := g.Size * s

	// Disc pixels are opaque and the rest stay zero, so the canvas is
	// already premultiplied and can be scaled as is.
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for py := 0; py < n; py++ {
		v := 1 - (2*float64(py)+1)/float64(n)
		gy := (float64(py)+0.5)/float64(s) - 0.5
		for px := 0; px < n; px++ {
			u := (2*float64(px)+1)/float64(n) - 1
			if u*u+v*v > 1 {
				continue // transparent
			}
			gx := (float64(px)+0.5)/float64(s) - 0.5
			c := g.color(g.bilinear(gx, gy))
			img.SetRGBA(px, py, color.RGBA{c.R, c.G, c.B, 255})
		}
	}

	u, v := Project(g.Best)
	ox := min(int((u+1)/2*float64(g.Size)), g.Size-1)
	oy := min(int((1-v)/2*float64(g.Size)), g.Size-1)
	drawCross(img, ox, oy, max(g.Size/16, 2), s)

	src := img
	if s > 1 {
		src = image.NewRGBA(image.Rect(0, 0, g.Size, g.Size))
		draw.CatmullRom.Scale(src, src.Bounds(), img, img.Bounds(), draw.Src, nil)
	}
	out := image.NewNRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, image.Point{}, draw.Src)
	return out
}

func (g Grid) bilinear(gx, gy float64) float64 {
	x0, y0 := math.Floor(gx), math.Floor(gy)
	fx, fy := gx-x0, gy-y0
	x, y := int(x0), int(y0)
	top := g.At(x, y)*(1-fx) + g.At(x+1, y)*fx
	bot := g.At(x, y+1)*(1-fx) + g.At(x+1, y+1)*fx
	return top*(1-fy) + bot*fy
}

func (g Grid) color(val float64) color.NRGBA {
	var t float64
	if g.Max > g.Min {
		t = (val - g.Min) / (g.Max - g.Min)
	}
	t = math.Min(math.Max(t, 0), 1) * float64(len(ramp)-1)
	i := min(int(t), len(ramp)-2)
	f := t - float64(i)
	a, b := ramp[i], ramp[i+1]
	mix := func(p, q uint8) uint8 {
		return uint8(float64(p)*(1-f) + float64(q)*f + 0.5)
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

// drawCross draws a plus sign on output pixel (x, y) with arms of arm
// output pixels. Each output pixel is an s×s block of img, so the cross
// stays one output pixel wide after downsampling.
func drawCross(img *image.RGBA, x, y, arm, s int) {
	b := img.Bounds()
	for d := -arm * s; d < (arm+1)*s; d++ {
		for w := 0; w < s; w++ {
			if p := image.Pt(x*s+d, y*s+w); p.In(b) {
				img.SetRGBA(p.X, p.Y, crossColor)
			}
			if p := image.Pt(x*s+w, y*s+d); p.In(b) {
				img.SetRGBA(p.X, p.Y, crossColor)
			}
		}
	}
}
