// mapcheck validates a level file and reports its dimensions and tile
// census. Exits non-zero on any load error, so it doubles as a CI gate for
// map edits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pthm-cable/grapnel/level"
)

func main() {
	tileSize := flag.Float64("tile-size", 128, "World units per tile")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: mapcheck [-tile-size N] <map file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	m, err := level.Load(path, *tileSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mapcheck: %v\n", err)
		os.Exit(1)
	}

	air, start, finish, solid := m.Census()
	fmt.Printf("%s: %dx%d cells, %.0fx%.0f world units\n",
		path, m.Width, m.Height, m.WorldWidth(), m.WorldHeight())
	fmt.Printf("  air: %d  start: %d  finish: %d  solid: %d\n", air, start, finish, solid)

	ok := true
	if start == 0 {
		fmt.Println("  warning: no start tile (78); runs cannot be timed")
		ok = false
	}
	if finish == 0 {
		fmt.Println("  warning: no finish tile (110); runs cannot complete")
		ok = false
	}
	if !ok {
		os.Exit(1)
	}
	fmt.Println("  ok")
}
