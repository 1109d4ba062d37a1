// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Threadgraph charts how a threaded benchmark's runtime scales with
// its thread count.
//
// Usage:
//
//	threadgraph [-o chart.png] [-html] [input.txt]
//
// The input is the timing log written by the benchmark driver: a
// "Thread Count: N" header line followed by three timed
// sub-experiments per thread count. Threadgraph computes the median
// real, user, and system time at each thread count, prints the
// medians as a table, and writes a line chart of the three channels.
//
// The input defaults to test_results.txt, the file the driver writes;
// "-" reads standard input. The -o flag names the chart file (the
// empty string suppresses the chart) and -html prints the median
// table as HTML instead of text.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fabie37/DependacyDiscoverer/timingfmt"
	"github.com/fabie37/DependacyDiscoverer/timingplot"
	"github.com/fabie37/DependacyDiscoverer/timingstat"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: threadgraph [options] [input.txt]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagOut  = flag.String("o", "chart.png", "write the chart to `file`; the empty string disables it")
	flagHTML = flag.Bool("html", false, "print the median table as an HTML table")
)

func main() {
	log.SetPrefix("threadgraph: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
	}

	path := "test_results.txt"
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}

	var table *timingfmt.Table
	var err error
	if path == "-" {
		table, err = timingfmt.Parse(os.Stdin, "stdin")
	} else {
		table, err = timingfmt.ParseFile(path)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *flagHTML {
		err = timingstat.FormatHTML(os.Stdout, table)
	} else {
		err = timingstat.FormatText(os.Stdout, table)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *flagOut != "" {
		if err := timingplot.SavePNG(table, *flagOut); err != nil {
			log.Fatal(err)
		}
	}
}
