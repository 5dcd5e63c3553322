package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "imports",
		Short: "List past calendar imports",
		Run:   runImports,
	}

	RootCmd.AddCommand(cmd)
}

func runImports(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	records, err := s.Imports(cmd.Context())
	if err != nil {
		exitErr("imports", err)
	}

	b, _ := json.MarshalIndent(records, "", "  ")
	fmt.Println(string(b))
}
