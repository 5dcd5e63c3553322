package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdamcd/trip-map/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the travel history as JSON",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	visits, err := s.LoadVisits(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}

	b, err := store.MarshalExport(visits)
	if err != nil {
		exitErr("export", err)
	}
	fmt.Println(string(b))
}
