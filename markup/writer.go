package markup

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/mattn/go-isatty"
)

// ColorMode selects whether a Writer emits escape sequences.
type ColorMode int

const (
	// ColorAuto colours output only when it goes to a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways emits escape sequences unconditionally.
	ColorAlways
	// ColorNever strips all known tags.
	ColorNever
)

// ParseColorMode maps "auto", "always" and "never" to a ColorMode.
// The empty string is ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("markup: unknown color mode %q", s)
	}
}

// String returns the flag spelling of m.
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// Option configures a Writer.
type Option func(*Writer)

// WithColorMode overrides terminal detection.
func WithColorMode(m ColorMode) Option {
	return func(w *Writer) {
		w.mode = m
	}
}

// Writer renders markup lines onto an underlying io.Writer.
type Writer struct {
	out   io.Writer
	mode  ColorMode
	color bool // resolved from mode once at construction
}

// NewWriter returns a Writer on out. With ColorAuto, colour is enabled only
// if out is an *os.File attached to a terminal.
func NewWriter(out io.Writer, opts ...Option) *Writer {
	w := &Writer{out: out, mode: ColorAuto}
	for _, fn := range opts {
		fn(w)
	}

	switch w.mode {
	case ColorAlways:
		w.color = true
	case ColorNever:
		w.color = false
	default:
		w.color = IsTerminal(out)
	}

	return w
}

// Colored reports whether the Writer emits escape sequences.
func (w *Writer) Colored() bool { return w.color }

// Render converts one line of markup the way WriteLine would, without the
// trailing newline.
func (w *Writer) Render(line string) string {
	if w.color {
		return Apply(line)
	}

	return Strip(line)
}

// WriteLine renders line and terminates it with a newline.
func (w *Writer) WriteLine(line string) error {
	_, err := io.WriteString(w.out, w.Render(line)+"\n")
	if err != nil {
		return fmt.Errorf("markup: WriteLine: %w", err)
	}

	return nil
}

// WriteArray prints name followed by one indented line per item:
//
//	name {
//	   item,
//	}
//
// Nil pointer, interface, map, slice, chan and func items print as <nil>.
// Items are formatted with %v and may themselves contain markup.
func WriteArray[T any](w *Writer, name string, items []T) error {
	if err := w.WriteLine(name + " {"); err != nil {
		return err
	}
	for _, item := range items {
		if err := w.WriteLine("   " + itemString(item) + ","); err != nil {
			return err
		}
	}

	return w.WriteLine("}")
}

// IsTerminal reports whether out is a terminal (including Cygwin/MSYS ptys).
func IsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func itemString(v any) string {
	if v == nil {
		return "<nil>"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		if rv.IsNil() {
			return "<nil>"
		}
	}

	return fmt.Sprint(v)
}
