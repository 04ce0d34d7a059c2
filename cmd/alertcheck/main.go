// Command alertcheck validates alert size config files.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/milk9111/minimapicons/minimap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type entry struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("alertcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print entries as JSON")
	lookup := fs.String("path", "", "print the size an entity path resolves to")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: alertcheck [-json] [-path entity/path] file...")
		return 2
	}

	status := 0
	for _, file := range fs.Args() {
		alerts, err := minimap.LoadAlerts(file)
		if err != nil {
			fmt.Fprintln(stderr, err)
			status = 1
			continue
		}

		if *lookup != "" {
			if size, ok := alerts.SizeFor(*lookup); ok {
				fmt.Fprintf(stdout, "%s: %s -> %dx%d\n", file, *lookup, size.Width, size.Height)
			} else {
				fmt.Fprintf(stdout, "%s: %s -> no match\n", file, *lookup)
			}
			continue
		}

		entries := sortedEntries(alerts)
		if *asJSON {
			b, err := sonic.ConfigStd.MarshalIndent(entries, "", "  ")
			if err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			fmt.Fprintln(stdout, string(b))
			continue
		}
		fmt.Fprintf(stdout, "%s: %d entries\n", file, len(entries))
		for _, e := range entries {
			fmt.Fprintf(stdout, "  %s\t%dx%d\n", e.ID, e.Width, e.Height)
		}
	}
	return status
}

func sortedEntries(alerts minimap.Alerts) []entry {
	out := make([]entry, 0, len(alerts))
	for id, size := range alerts {
		out = append(out, entry{ID: id, Width: size.Width, Height: size.Height})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
