package markup_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/aocutil/markup"
)

func ExampleStrip() {
	fmt.Println(markup.Strip("[+red]3[-] of [green]4[-] passed"))
	// Output: 3 of 4 passed
}

func ExampleWriteArray() {
	w := markup.NewWriter(os.Stdout, markup.WithColorMode(markup.ColorNever))
	_ = markup.WriteArray(w, "[cyan]grid", []string{"#..", ".#.", "..#"})

	// Output:
	// grid {
	//    #..,
	//    .#.,
	//    ..#,
	// }
}
