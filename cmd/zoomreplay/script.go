package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// opKind is one command of a gesture script.
type opKind uint8

const (
	opBegin opKind = iota
	opScale
	opEnd
)

// step is one parsed script line.
type step struct {
	kind   opKind
	factor float64
	fx, fy float64
	line   int
}

// parseScript reads a gesture script. Each non-blank line is one of
//
//	begin
//	scale <factor> <focalX> <focalY>
//	end
//
// and anything after a '#' is a comment.
func parseScript(r io.Reader) ([]step, error) {
	var steps []step
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "begin":
			if len(fields) != 1 {
				return nil, fmt.Errorf("line %d: begin takes no arguments", n)
			}
			steps = append(steps, step{kind: opBegin, line: n})
		case "end":
			if len(fields) != 1 {
				return nil, fmt.Errorf("line %d: end takes no arguments", n)
			}
			steps = append(steps, step{kind: opEnd, line: n})
		case "scale":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: scale wants <factor> <focalX> <focalY>", n)
			}
			var v [3]float64
			for i, f := range fields[1:] {
				x, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", n, err)
				}
				v[i] = x
			}
			steps = append(steps, step{kind: opScale, factor: v[0], fx: v[1], fy: v[2], line: n})
		default:
			return nil, fmt.Errorf("line %d: unknown command %q", n, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

// readScript parses the script at path, or stdin when path is empty.
// The file is closed before readScript returns.
func readScript(path string) ([]step, error) {
	if path == "" {
		return parseScript(os.Stdin)
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	steps, err := parseScript(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		return nil, fmt.Errorf("close script: %w", cerr)
	}
	return steps, err
}

// parseSize parses "WIDTHxHEIGHT".
func parseSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WIDTHxHEIGHT", s)
	}
	if w, err = strconv.ParseFloat(ws, 64); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if h, err = strconv.ParseFloat(hs, 64); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	return w, h, nil
}
