// Command ise opens the integrated spreadsheet environment in the terminal.
//
// Usage:
//
//	ise [-session file.json]
//
// The session file is loaded on startup when it exists and written back
// with ctrl+s.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Korede-TA/ise/tui"
)

func main() {
	path := flag.String("session", "session.json", "session file to load and save")
	flag.Parse()

	if err := tui.Run(*path); err != nil {
		fmt.Fprintf(os.Stderr, "ise: %v\n", err)
		os.Exit(1)
	}
}
