// Package aocutil is a small toolbox for puzzle solving, the kind of helpers
// that get rewritten every December.
//
// What is inside?
//
//	• combinatorics/ — lazy permutations (generic, [0,n), [min,max]) and
//	                   N-to-N pairing enumeration, plus pool helpers
//	• numeric/       — GCD / LCM, quadratic roots, boundary rounding,
//	                   hex digit and binary string decoding
//	• markup/        — "[red]text[-]" colour tags → ANSI escapes, with a
//	                   terminal-aware line and array writer
//	• input/         — puzzle input files as trimmed line lists
//	• cmd/aocutil    — command-line front end for all of the above
//
// Everything is synchronous and allocation-local: no goroutines, no global
// mutable state, no I/O outside input/ and the CLI.
//
// Quick taste:
//
//	for perm := range combinatorics.Permutations([]string{"A", "B", "C"}) {
//		fmt.Println(perm) // [A B C] [A C B] [B A C] ...
//	}
//
// Costs of the enumerations grow factorially; keep sets at or below ~10
// elements, or check combinatorics.CountPermutations first.
//
//	go get github.com/katalvlaran/aocutil
package aocutil
