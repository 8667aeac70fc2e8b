// Package report prints traversal results in the benchmark's line format:
//
//	Node <index>: Distance from start: <distance>
//	CPU BFS Time: <seconds> seconds
package report

import (
	"bufio"
	"io"
	"strconv"
	"time"
)

// Unreachable is the distance value that WriteDistances skips.
const Unreachable = -1

// Writer formats report lines onto a buffered stream. Call Flush when done.
type Writer struct {
	w       *bufio.Writer
	scratch []byte
	lines   int
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		w:       bufio.NewWriterSize(w, 1<<16),
		scratch: make([]byte, 0, 64),
	}
}

// WriteDistances writes one line per reachable node in index order.
func (rw *Writer) WriteDistances(dist []int) error {
	for i, d := range dist {
		if d == Unreachable {
			continue
		}
		line := rw.scratch[:0]
		line = append(line, "Node "...)
		line = strconv.AppendInt(line, int64(i), 10)
		line = append(line, ": Distance from start: "...)
		line = strconv.AppendInt(line, int64(d), 10)
		line = append(line, '\n')
		rw.scratch = line

		if _, err := rw.w.Write(line); err != nil {
			return err
		}
		rw.lines++
	}
	return nil
}

// WriteElapsed writes the timing line.
func (rw *Writer) WriteElapsed(d time.Duration) error {
	if _, err := rw.w.WriteString("CPU BFS Time: " + FormatSeconds(d) + " seconds\n"); err != nil {
		return err
	}
	rw.lines++
	return nil
}

// Lines returns how many lines have been written.
func (rw *Writer) Lines() int {
	return rw.lines
}

// Flush writes any buffered data to the underlying writer.
func (rw *Writer) Flush() error {
	return rw.w.Flush()
}

// FormatSeconds renders d in seconds with six significant digits, switching
// to exponent form for very small or very large values the way a C++ output
// stream does by default.
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'g', 6, 64)
}
