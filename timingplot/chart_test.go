// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timingplot

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gonum.org/v1/plot/plotter"

	"github.com/fabie37/DependacyDiscoverer/timingfmt"
)

func testTable() *timingfmt.Table {
	return &timingfmt.Table{Rows: []timingfmt.Medians{
		{Real: 0.100, User: 0.020, Sys: 0.030},
		{Real: 0.060, User: 0.025, Sys: 0.020},
		{Real: 0.040, User: 0.030, Sys: 0.010},
	}}
}

func TestNew(t *testing.T) {
	pl, err := New(testTable())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := pl.Title.Text, "Median Runtime on Different Threads"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
	if got, want := pl.X.Label.Text, "Number of Threads"; got != want {
		t.Errorf("x label = %q, want %q", got, want)
	}
	if got, want := pl.Y.Label.Text, "Time Taken (ms)"; got != want {
		t.Errorf("y label = %q, want %q", got, want)
	}
	if pl.Y.Min != 0 {
		t.Errorf("y min = %v, want 0", pl.Y.Min)
	}
}

func TestSeriesPoints(t *testing.T) {
	tab := testTable()

	// x is the 1-based thread count, y the median converted from
	// seconds to milliseconds.
	got := seriesPoints(tab, func(m timingfmt.Medians) float64 { return m.Real })
	want := plotter.XYs{{X: 1, Y: 100}, {X: 2, Y: 60}, {X: 3, Y: 40}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("real points = %v, want %v", got, want)
	}

	got = seriesPoints(tab, func(m timingfmt.Medians) float64 { return m.Sys })
	want = plotter.XYs{{X: 1, Y: 30}, {X: 2, Y: 20}, {X: 3, Y: 10}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sys points = %v, want %v", got, want)
	}
}

func TestNewEmpty(t *testing.T) {
	if _, err := New(&timingfmt.Table{}); err == nil {
		t.Error("New succeeded on an empty table, want error")
	}
}

func TestMsTicks(t *testing.T) {
	ticks := msTicks{}.Ticks(0, 10)
	want := []float64{0, 4, 8}
	if len(ticks) != len(want) {
		t.Fatalf("got %d ticks, want %d", len(ticks), len(want))
	}
	for i, tk := range ticks {
		if tk.Value != want[i] || tk.Label == "" {
			t.Errorf("tick %d = {%v %q}, want value %v with a label", i, tk.Value, tk.Label, want[i])
		}
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	if err := SavePNG(testTable(), path); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("chart file is empty")
	}
}
