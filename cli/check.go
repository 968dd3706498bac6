// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metropath/builder"
	"github.com/katalvlaran/metropath/store/memory"
)

func checkCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a YAML network catalog and report its connected parts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if g.network == "" {
				return fmt.Errorf("cli: --network is required")
			}
			cat, err := memory.LoadCatalog(g.network)
			if err != nil {
				return err
			}

			net := builder.Build(cat.Lines)
			parts, err := net.Components()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "stations: %d (on a line: %d)\nlines: %d\nshared sections: %d\nconnected parts: %d\n",
				len(cat.Stations), net.StationCount(), net.LineCount(), net.Graph().Stats().ParallelPairs, len(parts))
			for i, p := range parts {
				names := make([]string, len(p))
				for j, st := range p {
					names[j] = st.Name()
				}
				fmt.Fprintf(w, "  %d: %s\n", i+1, strings.Join(names, ", "))
			}

			return nil
		},
	}
}
