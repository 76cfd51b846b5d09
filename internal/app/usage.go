package app

import (
	"flag"
	"fmt"
	"io"
)

// Version is reported at the top of the usage text.
const Version = "cgol 0.1"

const controls = `
Controls:
  c            clear and reseed the grid
  f            next color
  F            previous color
  q|esc|enter  quit
`

// colorNames are the first eight terminal palette entries, in index order.
var colorNames = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

// WriteUsage prints the version, the flag defaults of fs, the key controls and
// the basic color indices accepted by -color-list.
func WriteUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "%s\nUsage of %s:\n", Version, fs.Name())
	out := fs.Output()
	fs.SetOutput(w)
	fs.PrintDefaults()
	fs.SetOutput(out)
	fmt.Fprint(w, controls)
	fmt.Fprintln(w, "\nColors:")
	for i, name := range colorNames {
		fmt.Fprintf(w, "  %-8s %d\n", name, i)
	}
	fmt.Fprintln(w, "  indices 8-255 select the extended palette where supported")
}
