package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jdamcd/trip-map/internal/extractor"
	"github.com/jdamcd/trip-map/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a visit by hand",
		Run:   runAdd,
	}

	cmd.Flags().String("country", "", "ISO 3166-1 alpha-2 country code (required)")
	cmd.Flags().String("start", "", "Start date, YYYY-MM-DD (required)")
	cmd.Flags().String("end", "", "End date, YYYY-MM-DD")
	cmd.Flags().String("note", "", "Optional note stored as the entry title")

	cmd.MarkFlagRequired("country")
	cmd.MarkFlagRequired("start")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	country, _ := cmd.Flags().GetString("country")
	note, _ := cmd.Flags().GetString("note")
	start := parseDateFlag(cmd, "start")
	end := parseDateFlag(cmd, "end")

	if !end.IsZero() && end.Before(start) {
		fmt.Fprintf(os.Stderr, "end date must not be before start date\n")
		os.Exit(1)
	}
	endStr := ""
	if !end.IsZero() {
		endStr = end.UTC().Format(time.RFC3339)
	}
	visit := extractor.NewManualVisit(strings.ToUpper(country), start.UTC().Format(time.RFC3339), endStr, note)
	if visit == nil {
		fmt.Fprintf(os.Stderr, "unrecognized country: %s\n", country)
		os.Exit(1)
	}

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
	merged := extractor.MergeVisitSets(existing, []model.CountryVisit{*visit})
	if err := s.SaveVisits(ctx, merged); err != nil {
		exitErr("save visits", err)
	}

	b, _ := json.MarshalIndent(visit, "", "  ")
	fmt.Println(string(b))
}
