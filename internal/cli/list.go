package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the travel history",
		Run:   runList,
	}

	cmd.Flags().Bool("codes-only", false, "Only output country codes")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	codesOnly, _ := cmd.Flags().GetBool("codes-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	visits, err := s.LoadVisits(cmd.Context())
	if err != nil {
		exitErr("list", err)
	}

	if codesOnly {
		for _, v := range visits {
			fmt.Println(v.CountryCode)
		}
		return
	}

	if formatFlag == "text" {
		for _, v := range visits {
			fmt.Printf("%s  %s (%d entries)\n", v.CountryCode, v.CountryName, len(v.Entries))
			for _, e := range v.Entries {
				line := "  " + e.StartDate
				if e.EndDate != "" {
					line += " - " + e.EndDate
				}
				if e.EventTitle != "" {
					line += "  " + e.EventTitle
				}
				fmt.Println(line)
			}
		}
		return
	}

	b, _ := json.MarshalIndent(visits, "", "  ")
	fmt.Println(string(b))
}
