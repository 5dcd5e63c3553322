package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdamcd/trip-map/internal/extractor"
	"github.com/jdamcd/trip-map/internal/ics"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import <calendar.ics>",
		Short: "Import an ICS calendar export",
		Long:  "Parse an ICS file, infer country visits from its events and merge them into the stored travel history. Re-importing the same file changes nothing.",
		Args:  cobra.ExactArgs(1),
		Run:   runImport,
	}

	cmd.Flags().String("from", "", "Only consider events starting on or after this date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Only consider events starting on or before this date (YYYY-MM-DD)")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress progress output")

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	from := parseDateFlag(cmd, "from")
	to := parseDateFlag(cmd, "to")
	quiet, _ := cmd.Flags().GetBool("quiet")

	events, err := ics.ParseFile(args[0])
	if err != nil {
		exitErr("parse ics", err)
	}
	if !from.IsZero() || !to.IsZero() {
		events = ics.FilterRange(events, from, to)
	}

	var onProgress extractor.ProgressFunc
	if !quiet {
		onProgress = func(processed, total int) {
			fmt.Fprintf(os.Stderr, "\rprocessing events %d/%d", processed, total)
			if processed == total {
				fmt.Fprintln(os.Stderr)
			}
		}
	}
	visits := extractor.ExtractVisits(events, onProgress)

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	ctx := cmd.Context()
	existing, err := s.LoadVisits(ctx)
	if err != nil {
		exitErr("load visits", err)
	}
	merged := extractor.MergeVisitSets(existing, visits)
	if err := s.SaveVisits(ctx, merged); err != nil {
		exitErr("save visits", err)
	}
	if _, err := s.RecordImport(ctx, len(events), len(visits)); err != nil {
		exitErr("record import", err)
	}

	fmt.Printf(`{"ok":true,"events":%d,"countries":%d}`+"\n", len(events), len(visits))
}

func parseDateFlag(cmd *cobra.Command, name string) time.Time {
	val, _ := cmd.Flags().GetString(name)
	if val == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", val)
	if err != nil {
		exitErr("parse --"+name, err)
	}
	return t
}
