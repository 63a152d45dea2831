// Package markup turns lightweight colour tags into ANSI escape sequences.
//
// Tags are written inline in square brackets:
//
//	"[red]error[-]: [+white]disk full"
//
// Supported tags:
//
//	[-]                         reset
//	[black] [red] [green] [yellow] [blue] [magenta] [cyan] [white]
//	[+black] … [+white]         bright / bold variants
//
// A space directly after an opening bracket is ignored, so "[ red]" is the
// same tag as "[red]". Unknown tags are left in the text verbatim. Apply
// always terminates the line with a reset so colour never bleeds into the
// next line; Strip removes the known tags for output that is not a terminal.
//
// Writer picks between the two automatically: output to a terminal
// (detected with github.com/mattn/go-isatty) is coloured, anything else is
// stripped, unless a fixed ColorMode is supplied.
package markup
