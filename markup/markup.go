package markup

import "strings"

// Reset is the escape sequence that clears all attributes.
const Reset = "\x1b[0m"

// tag binds a markup name to its escape sequence.
type tag struct {
	name string
	code string
}

// tags is ordered; the reset tag stays first.
var tags = []tag{
	{"-", Reset},
	{"black", "\x1b[30m"},
	{"red", "\x1b[31m"},
	{"green", "\x1b[32m"},
	{"yellow", "\x1b[33m"},
	{"blue", "\x1b[34m"},
	{"magenta", "\x1b[35m"},
	{"cyan", "\x1b[36m"},
	{"white", "\x1b[37m"},
	{"+black", "\x1b[30;1m"},
	{"+red", "\x1b[31;1m"},
	{"+green", "\x1b[32;1m"},
	{"+yellow", "\x1b[33;1m"},
	{"+blue", "\x1b[34;1m"},
	{"+magenta", "\x1b[35;1m"},
	{"+cyan", "\x1b[36;1m"},
	{"+white", "\x1b[37;1m"},
}

var (
	colorizer = newReplacer(func(t tag) string { return t.code })
	stripper  = newReplacer(func(tag) string { return "" })
)

// Apply replaces every known tag in s with its escape sequence and appends
// a trailing Reset.
func Apply(s string) string {
	return colorizer.Replace(normalize(s)) + Reset
}

// Strip removes every known tag from s. No Reset is appended.
func Strip(s string) string {
	return stripper.Replace(normalize(s))
}

// Names returns the supported tag names in table order.
func Names() []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.name
	}

	return out
}

// normalize collapses "[ " runs to "[" so "[  red]" reads as "[red]".
func normalize(s string) string {
	for strings.Contains(s, "[ ") {
		s = strings.ReplaceAll(s, "[ ", "[")
	}

	return s
}

func newReplacer(with func(tag) string) *strings.Replacer {
	oldnew := make([]string, 0, 2*len(tags))
	for _, t := range tags {
		oldnew = append(oldnew, "["+t.name+"]", with(t))
	}

	return strings.NewReplacer(oldnew...)
}
