// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timingplot renders a median timing table as a line chart of
// time against thread count.
package timingplot

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/fabie37/DependacyDiscoverer/timingfmt"
)

// tickStepMS is the spacing of the y-axis grid lines, in
// milliseconds.
const tickStepMS = 4

// New builds the chart for t: one line per timing channel, thread
// count on the x-axis and milliseconds on the y-axis.
func New(t *timingfmt.Table) (*plot.Plot, error) {
	if t.NumThreads() == 0 {
		return nil, fmt.Errorf("cannot chart an empty table")
	}

	pl := plot.New()
	pl.Title.Text = "Median Runtime on Different Threads"
	pl.X.Label.Text = "Number of Threads"
	pl.Y.Label.Text = "Time Taken (ms)"
	pl.Y.Min = 0
	pl.Y.Tick.Marker = msTicks{}

	series := []struct {
		name  string
		clr   color.Color
		shape draw.GlyphDrawer
		value func(m timingfmt.Medians) float64
	}{
		{"real", blue(0xff), draw.CircleGlyph{}, func(m timingfmt.Medians) float64 { return m.Real }},
		{"user", red(0xff), CrossGlyph{}, func(m timingfmt.Medians) float64 { return m.User }},
		{"sys", green(0xff), TriUp{}, func(m timingfmt.Medians) float64 { return m.Sys }},
	}

	for _, s := range series {
		line, points, err := plotter.NewLinePoints(seriesPoints(t, s.value))
		if err != nil {
			return nil, err
		}
		line.Color = s.clr
		points.Color = s.clr
		points.Shape = s.shape
		pl.Add(line, points)
		pl.Legend.Add(s.name, line, points)
	}
	pl.Legend.Top = true

	return pl, nil
}

// seriesPoints builds the plotted points of one timing channel:
// thread count on x, milliseconds on y.
func seriesPoints(t *timingfmt.Table, value func(timingfmt.Medians) float64) plotter.XYs {
	pts := make(plotter.XYs, len(t.Rows))
	for i, m := range t.Rows {
		pts[i].X = float64(i + 1)
		pts[i].Y = value(m) * 1000 // seconds to milliseconds
	}
	return pts
}

// SavePNG renders the chart for t and writes it to path.
func SavePNG(t *timingfmt.Table, path string) error {
	pl, err := New(t)
	if err != nil {
		return err
	}

	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(20*vg.Centimeter, 15*vg.Centimeter),
		vgimg.UseDPI(150),
		vgimg.UseBackgroundColor(color.White))}
	pl.Draw(draw.New(can))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := can.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func red(alpha uint8) color.Color {
	return color.NRGBA{0xFF, 0, 0, alpha}
}
func green(alpha uint8) color.Color {
	return color.NRGBA{0, 0x80, 0, alpha}
}
func blue(alpha uint8) color.Color {
	return color.NRGBA{0, 0, 0xFF, alpha}
}

// msTicks places a tick at every multiple of tickStepMS from zero up
// to the top of the axis.
type msTicks struct{}

func (msTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for v := 0.0; v <= max; v += tickStepMS {
		ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf("%.0f", v)})
	}
	return ticks
}
