package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/oomph-ac/ogeom/internal"
	"github.com/oomph-ac/ogeom/omath"
)

// report accumulates a command's output in a pooled buffer so it reaches the writer in one write.
type report struct {
	buf         *bytes.Buffer
	fingerprint bool
	precision   int
}

func newReport(opts *options) *report {
	return &report{buf: internal.GetBuffer(), fingerprint: opts.fingerprint, precision: opts.precision}
}

// field writes a single "name value" line.
func (r *report) field(name, format string, args ...any) {
	fmt.Fprintf(r.buf, "%-12s %s\n", name, fmt.Sprintf(format, args...))
}

func (r *report) vector(name string, v omath.Vector3) {
	if r.fingerprint {
		r.field(name, "%s  %016x", r.formatVector(v), v.Fingerprint())
		return
	}
	r.field(name, "%s", r.formatVector(v))
}

func (r *report) matrix(m omath.Matrix) {
	r.field("right", "%s", r.formatVector(m.Right))
	r.field("up", "%s", r.formatVector(m.Up))
	r.field("forward", "%s", r.formatVector(m.Forward))
	if r.fingerprint {
		r.field("fingerprint", "%016x", m.Fingerprint())
	}
}

func (r *report) blank() {
	r.buf.WriteByte('\n')
}

// flush writes the report to w and releases its buffer. The report must not be used afterwards.
func (r *report) flush(w io.Writer) error {
	_, err := r.buf.WriteTo(w)
	internal.PutBuffer(r.buf)
	r.buf = nil
	return err
}

// number writes a single "name value" line for a float.
func (r *report) number(name string, f float32) {
	r.field(name, "%s", r.formatFloat(f))
}

func (r *report) formatVector(v omath.Vector3) string {
	return "(" + r.formatFloat(v[0]) + ", " + r.formatFloat(v[1]) + ", " + r.formatFloat(v[2]) + ")"
}

// formatFloat rounds f to the report's precision. Values that round to zero print as 0, so -0
// and float noise never show.
func (r *report) formatFloat(f float32) string {
	rounded := omath.Round32(f, r.precision)
	if rounded == 0 {
		rounded = 0
	}
	return strconv.FormatFloat(float64(rounded), 'f', r.precision, 32)
}
