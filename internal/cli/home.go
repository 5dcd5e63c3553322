package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jdamcd/trip-map/internal/geo"
)

func init() {
	cmd := &cobra.Command{
		Use:   "home [country-code]",
		Short: "Show or set the home country",
		Args:  cobra.MaximumNArgs(1),
		Run:   runHome,
	}

	RootCmd.AddCommand(cmd)
}

func runHome(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if len(args) == 0 {
		code, err := s.HomeCountry(cmd.Context())
		if err != nil {
			exitErr("home", err)
		}
		name, _ := geo.CountryName(code)
		fmt.Printf(`{"code":%q,"name":%q}`+"\n", code, name)
		return
	}

	code := strings.ToUpper(args[0])
	if _, ok := geo.CountryName(code); !ok {
		exitErr("home", fmt.Errorf("unrecognized country: %s", args[0]))
	}
	if err := s.SetHomeCountry(cmd.Context(), code); err != nil {
		exitErr("home", err)
	}
	fmt.Printf(`{"ok":true,"code":%q}`+"\n", code)
}
