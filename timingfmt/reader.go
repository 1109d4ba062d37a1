// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timingfmt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A SyntaxError represents a syntax error on a particular line of a
// timing log.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// ErrNoData indicates that the input ended without a single timing
// block to summarize.
var ErrNoData = errors.New("no timing data")

// headerPrefix identifies the line that opens a block of
// sub-experiments at a new thread count.
const headerPrefix = "Thread Count:"

// A parser holds the accumulator state of one linear scan.
//
// cur is nil until the first block opens, so the first header line is
// an open with nothing to finalize while every later header is a
// finalize-then-open.
type parser struct {
	fileName string
	line     int

	table *Table
	cur   *block
}

// ParseFile reads the timing log at path and returns its median
// table.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads a timing log from r and returns its median table.
// fileName is used in error messages; it is purely diagnostic.
//
// Parsing is fail-fast: the first malformed line aborts the parse
// with a *SyntaxError, and an input with no blocks at all fails with
// ErrNoData.
func Parse(r io.Reader, fileName string) (*Table, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	p := &parser{fileName: fileName}

	s := bufio.NewScanner(r)
	for s.Scan() {
		p.line++
		line := s.Text()
		var err error
		switch {
		case strings.HasPrefix(line, headerPrefix):
			err = p.header(line)
		case line == "":
			// Blank lines may appear anywhere.
		default:
			err = p.data(line)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s:%d: %w", p.fileName, p.line, err)
	}

	// No header follows the last block, so it is flushed here.
	if p.cur != nil {
		if err := p.flush(); err != nil {
			return nil, err
		}
	}
	if p.table == nil {
		return nil, fmt.Errorf("%s: %w", p.fileName, ErrNoData)
	}
	return p.table, nil
}

// header processes one "Thread Count: N" line: it finalizes the block
// in progress, if any, and opens a new one for thread count N. The
// first header also fixes the table size.
func (p *parser) header(line string) error {
	f := strings.Fields(line)
	if len(f) < 3 {
		return p.newSyntaxError("missing thread count")
	}
	n, err := strconv.Atoi(f[2])
	if err != nil {
		return p.newSyntaxError("parsing thread count: " + err.Error())
	}
	if n < 0 {
		return p.newSyntaxError(fmt.Sprintf("negative thread count %d", n))
	}

	if p.cur != nil {
		if err := p.flush(); err != nil {
			return err
		}
	}
	if p.table == nil {
		p.table = &Table{Rows: make([]Medians, n)}
	}
	p.cur = &block{index: n - 1}
	return nil
}

// data processes one measurement line. The three timing fields sit at
// token indices 1, 3, and 5.
func (p *parser) data(line string) error {
	if p.cur == nil {
		// No header yet; open a block so the records still have
		// somewhere to accumulate.
		p.cur = &block{}
	}
	if len(p.cur.records) >= blockSize {
		return p.newSyntaxError(fmt.Sprintf("more than %d measurements in block", blockSize))
	}

	f := strings.Fields(line)
	if len(f) < 6 {
		return p.newSyntaxError("missing timing fields")
	}
	var rec Record
	var err error
	if rec.Real, err = parseTimingField(f[1]); err != nil {
		return p.newSyntaxError("parsing real time: " + err.Error())
	}
	if rec.User, err = parseTimingField(f[3]); err != nil {
		return p.newSyntaxError("parsing user time: " + err.Error())
	}
	if rec.Sys, err = parseTimingField(f[5]); err != nil {
		return p.newSyntaxError("parsing sys time: " + err.Error())
	}
	p.cur.records = append(p.cur.records, rec)
	return nil
}

// flush computes the medians of the block in progress and stores them
// at its row.
func (p *parser) flush() error {
	b := p.cur
	p.cur = nil
	if p.table == nil {
		// Records accumulated without a header have no row to
		// land in.
		return p.newSyntaxError("data line before first header")
	}
	if b.index < 0 || b.index >= len(p.table.Rows) {
		return p.newSyntaxError(fmt.Sprintf("thread count %d out of range 1-%d", b.index+1, len(p.table.Rows)))
	}
	p.table.Rows[b.index] = b.medians()
	return nil
}

// newSyntaxError returns a *SyntaxError at the parser's current
// position.
func (p *parser) newSyntaxError(msg string) *SyntaxError {
	return &SyntaxError{p.fileName, p.line, msg}
}

// parseTimingField extracts the numeric part of one timing token. The
// driver writes each measurement as a fixed-width field wrapped in a
// label and a trailing unit character, so the value is always the
// last six characters of the token minus the final one: "0m0.100s"
// yields 0.100. Keeping the extraction here makes a format change a
// one-line fix.
func parseTimingField(tok string) (float64, error) {
	if len(tok) < 6 {
		return 0, fmt.Errorf("timing field %q too short", tok)
	}
	v, err := strconv.ParseFloat(tok[len(tok)-6:len(tok)-1], 64)
	if err != nil {
		return 0, fmt.Errorf("timing field %q: %v", tok, err)
	}
	return v, nil
}
