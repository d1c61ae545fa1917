// Command cchtrace replays a JSON frame trace through the AC-4
// configuration change handler and prints the per-frame decisions.
//
// Usage:
//
//	cchtrace -in trace.json [-json] [-plain]
package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/term"
)

func main() {
	var (
		inputPath string
		asJSON    bool
		plain     bool
	)
	flag.StringVar(&inputPath, "in", "-", "trace JSON file, - for stdin")
	flag.BoolVar(&asJSON, "json", false, "emit a JSON report")
	flag.BoolVar(&plain, "plain", false, "disable styled output")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("cchtrace: ")

	tf, err := loadTrace(inputPath)
	if err != nil {
		log.Fatal(err)
	}
	rows, err := replay(tf)
	if err != nil {
		log.Fatal(err)
	}

	switch {
	case asJSON:
		err = renderJSON(os.Stdout, rows)
	case !plain && term.IsTerminal(int(os.Stdout.Fd())):
		err = renderStyled(os.Stdout, rows)
	default:
		err = renderPlain(os.Stdout, rows)
	}
	if err != nil {
		log.Fatal(err)
	}
}
