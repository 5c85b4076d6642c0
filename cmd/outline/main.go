// Command outline reports the opaque bounds of every animation frame, the
// rectangles the simulation uses as combat hitboxes.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/treasurehunt/logging"
)

func main() {
	framesDir := flag.String("frames", "", "directory of decoded frames (<archetype>/<status>/*.png)")
	format := flag.String("format", "table", "output format: table or yaml")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	report, err := build(context.Background(), *framesDir, flag.Args()...)
	if err != nil {
		logger.Fatal("build report", zap.Error(err))
	}
	if err := write(os.Stdout, report, *format); err != nil {
		logger.Fatal("write report", zap.Error(err))
	}
}

func write(w io.Writer, report []archetypeReport, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "table":
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ARCHETYPE\tSTATUS\tFRAME\tBOUNDS\tCOLLIDER")
		for _, a := range report {
			for _, s := range a.Statuses {
				for i, b := range s.Frames {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%gx%g\n", a.Name, s.Status, i, b, a.Collider[0], a.Collider[1])
				}
			}
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
