package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/lixenwraith/vi-chess/logger"
	"github.com/lixenwraith/vi-chess/trace"
)

var (
	verboseFlag = flag.Bool("v", false, "Log every push and pop to stderr")
	quietFlag   = flag.Bool("q", false, "Print failures and the summary only")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: cursor-trace [-v] [-q] trace.toml...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log := logger.Discard
	if *verboseFlag {
		log = logger.New(logger.Options{Buffer: os.Stderr, Level: logger.DebugLevel, Type: logger.TypeText})
	}

	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	head := color.New(color.FgCyan, color.Bold).SprintFunc()

	failed := false
	for _, path := range flag.Args() {
		fmt.Println(head(path))

		t, err := trace.Load(path)
		if err != nil {
			fmt.Println(fail(err))
			failed = true
			continue
		}

		runner := trace.NewRunner(t, log)
		results, err := runner.Run()
		if verr := runner.Cursor().Validate(); verr != nil {
			fmt.Println(fail(verr))
			failed = true
		}
		for _, r := range results {
			mark := dim("·")
			switch {
			case r.Checked && r.Pass:
				mark = pass("✓")
			case r.Checked:
				mark = fail("✗")
			}
			if *quietFlag && (!r.Checked || r.Pass) {
				continue
			}
			line := fmt.Sprintf("%s %3d  %-24s top=%-12s depth=%d sink=%d", mark, r.Index, r.Step, r.Top, r.Depth, r.SinkCalls)
			if r.Checked && !r.Pass {
				line += fail(fmt.Sprintf("  want %s", r.Step.Expect))
			}
			fmt.Println(line)
		}

		if err != nil {
			fmt.Println(fail(err))
			failed = true
			continue
		}
		fmt.Println(pass(fmt.Sprintf("ok, %d steps", len(results))))
	}

	if failed {
		os.Exit(1)
	}
}
