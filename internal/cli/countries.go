package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdamcd/trip-map/internal/geo"
)

func init() {
	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List recognized country codes",
		Run:   runCountries,
	}

	RootCmd.AddCommand(cmd)
}

func runCountries(cmd *cobra.Command, args []string) {
	countries := geo.Countries()

	if formatFlag == "text" {
		for _, c := range countries {
			fmt.Printf("%s  %s\n", c.Code, c.Name)
		}
		return
	}

	b, _ := json.MarshalIndent(countries, "", "  ")
	fmt.Println(string(b))
}
