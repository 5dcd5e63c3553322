package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdamcd/trip-map/internal/stats"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show travel statistics",
		Long:  "Show trips per year and continent coverage for the stored travel history. --storage shows database statistics instead.",
		Run:   runStats,
	}

	cmd.Flags().Int("from-year", 0, "First year to include")
	cmd.Flags().Int("to-year", 0, "Last year to include")
	cmd.Flags().Bool("storage", false, "Show database statistics")

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	storage, _ := cmd.Flags().GetBool("storage")
	fromYear, _ := cmd.Flags().GetInt("from-year")
	toYear, _ := cmd.Flags().GetInt("to-year")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if storage {
		st, err := s.Stats(cmd.Context(), getDBPath())
		if err != nil {
			exitErr("stats", err)
		}
		b, _ := json.MarshalIndent(st, "", "  ")
		fmt.Println(string(b))
		return
	}

	visits, err := s.LoadVisits(cmd.Context())
	if err != nil {
		exitErr("load visits", err)
	}

	out := struct {
		Years      []stats.YearTrips      `json:"years"`
		Continents []stats.ContinentStats `json:"continents"`
	}{
		Years:      stats.TripsPerYear(visits, fromYear, toYear),
		Continents: stats.ContinentCoverage(visits),
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
