// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timingfmt

import "testing"

func TestParseTimingField(t *testing.T) {
	good := []struct {
		tok  string
		want float64
	}{
		{"0m0.100s", 0.100},
		{"[0.020]", 0.020},
		{"1.000s", 1.000}, // minimum width: the whole token minus its last byte
		{"real=12m3.456s", 3.456},
	}
	for _, test := range good {
		got, err := parseTimingField(test.tok)
		if err != nil {
			t.Errorf("parseTimingField(%q): %v", test.tok, err)
			continue
		}
		if got != test.want {
			t.Errorf("parseTimingField(%q) = %v, want %v", test.tok, got, test.want)
		}
	}

	bad := []string{"", "1.0s", "[1.0]", "0mx.100s"}
	for _, tok := range bad {
		if got, err := parseTimingField(tok); err == nil {
			t.Errorf("parseTimingField(%q) = %v, want error", tok, got)
		}
	}
}

func TestBlockMedians(t *testing.T) {
	b := &block{records: []Record{
		{Real: 1, User: 2, Sys: 3},
		{Real: 5, User: 6, Sys: 7},
		{Real: 3, User: 4, Sys: 5},
	}}
	if got, want := b.medians(), (Medians{Real: 3, User: 4, Sys: 5}); got != want {
		t.Errorf("medians = %+v, want %+v", got, want)
	}

	b = &block{records: []Record{
		{Real: 1, User: 1, Sys: 1},
		{Real: 3, User: 3, Sys: 3},
	}}
	if got, want := b.medians(), (Medians{Real: 2, User: 2, Sys: 2}); got != want {
		t.Errorf("medians = %+v, want %+v", got, want)
	}

	b = &block{records: []Record{{Real: 4, User: 5, Sys: 6}}}
	if got, want := b.medians(), (Medians{Real: 4, User: 5, Sys: 6}); got != want {
		t.Errorf("medians = %+v, want %+v", got, want)
	}

	if got := (&block{}).medians(); got != (Medians{}) {
		t.Errorf("medians of empty block = %+v, want zero", got)
	}
}
