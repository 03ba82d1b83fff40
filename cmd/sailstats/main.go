package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmp/windward/log"
	"github.com/mmp/windward/polar"
	"github.com/mmp/windward/session"
	"github.com/mmp/windward/util"
	"golang.org/x/sync/errgroup"
)

var polarFile = flag.String("polar", "", "Polar table JSON file (default: built-in cruiser polar)")
var tolerance = flag.Float64("tol", 5, "Performance tolerance in degrees")
var saveDir = flag.String("save", "", "Re-encode each session as a compressed archive in this directory")
var logLevel = flag.String("loglevel", "warn", "Logging level: debug, info, warn, error")

func main() {
	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Fprintf(os.Stderr, "usage: sailstats [flags] <session file>...\nwhere [flags] may be:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	lg := log.New(*logLevel, "")
	defer lg.CatchCrash()

	table := polar.Default()
	if *polarFile != "" {
		var err error
		if table, err = polar.LoadFile(*polarFile); err != nil {
			fmt.Fprintf(os.Stderr, "sailstats: %v\n", err)
			os.Exit(1)
		}
	}

	// Each session replays on its own goroutine; a report slot per file
	// keeps the output in argument order no matter who finishes first.
	reports := make([]*Report, len(flag.Args()))
	var eg errgroup.Group
	for i, path := range flag.Args() {
		i, path := i, path
		eg.Go(func() error {
			s, err := session.ReadFile(path)
			if err != nil {
				return err
			}

			reports[i] = replay(s, table, *tolerance, lg)

			if *saveDir != "" {
				out := filepath.Join(*saveDir, s.Name+session.ArchiveSuffix)
				if err := session.WriteFile(out, s); err != nil {
					return err
				}
				lg.Infof("%s: archived to %s", path, out)
			}
			return nil
		})
	}
	err := eg.Wait()

	for _, r := range util.FilterSlice(reports, func(r *Report) bool { return r != nil }) {
		fmt.Print(r)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "sailstats: %v\n", err)
		os.Exit(1)
	}
}
