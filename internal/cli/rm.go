package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm",
		Short: "Delete a country visit or a single entry",
		Run:   runRm,
	}

	cmd.Flags().String("country", "", "Country code to remove entirely")
	cmd.Flags().String("entry", "", "Entry ID to remove (drops the visit when it was the last entry)")

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	country, _ := cmd.Flags().GetString("country")
	entry, _ := cmd.Flags().GetString("entry")
	if (country == "") == (entry == "") {
		exitErr("rm", fmt.Errorf("exactly one of --country or --entry is required"))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if country != "" {
		if err := s.DeleteCountry(cmd.Context(), strings.ToUpper(country)); err != nil {
			exitErr("rm", err)
		}
		fmt.Printf(`{"ok":true,"country":%q}`+"\n", strings.ToUpper(country))
		return
	}

	if err := s.DeleteEntry(cmd.Context(), entry); err != nil {
		exitErr("rm", err)
	}
	fmt.Printf(`{"ok":true,"entry":%q}`+"\n", entry)
}
