// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timingstat formats median timing tables for people to read.
package timingstat

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fabie37/DependacyDiscoverer/timingfmt"
)

// FormatText writes t to w as an aligned text table, one row per
// thread count, with times in milliseconds.
func FormatText(w io.Writer, t *timingfmt.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "threads\treal (ms)\tuser (ms)\tsys (ms)\t")
	for i, m := range t.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n", i+1, ms(m.Real), ms(m.User), ms(m.Sys))
	}
	return tw.Flush()
}

// ms formats a duration in seconds as milliseconds.
func ms(sec float64) string {
	return strconv.FormatFloat(sec*1000, 'f', 1, 64)
}
