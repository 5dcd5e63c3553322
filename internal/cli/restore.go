package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jdamcd/trip-map/internal/extractor"
	"github.com/jdamcd/trip-map/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore a travel history from exported JSON",
		Long:  "Read exported JSON from stdin and merge it into the stored travel history. Accepts the export envelope or a bare visit array.",
		Run:   runRestore,
	}

	RootCmd.AddCommand(cmd)
}

func runRestore(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	visits, err := store.ParseExport(data)
	if err != nil {
		exitErr("parse json", err)
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
	merged := extractor.MergeVisitSets(existing, visits)
	if err := s.SaveVisits(ctx, merged); err != nil {
		exitErr("save visits", err)
	}

	fmt.Printf(`{"ok":true,"countries":%d}`+"\n", len(merged))
}
