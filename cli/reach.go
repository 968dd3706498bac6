// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metropath/builder"
	"github.com/katalvlaran/metropath/pathfinder"
	"github.com/katalvlaran/metropath/store/memory"
)

func reachCmd(g *globalFlags) *cobra.Command {
	var (
		source int64
		within int
	)

	c := &cobra.Command{
		Use:   "reach",
		Short: "List the stations within a distance of a station in a YAML network catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if g.network == "" {
				return fmt.Errorf("cli: --network is required")
			}
			cat, err := memory.LoadCatalog(g.network)
			if err != nil {
				return err
			}

			reached, err := pathfinder.Reachable(builder.Build(cat.Lines), source, within)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "within %d of station %d: %d\n", within, source, len(reached))
			for _, r := range reached {
				fmt.Fprintf(w, "  %d %s\n", r.Distance.Value(), r.Station.Name())
			}

			return nil
		},
	}

	c.Flags().Int64Var(&source, "source", 0, "origin station id")
	c.Flags().IntVar(&within, "within", 0, "largest distance to report")
	_ = c.MarkFlagRequired("source")
	_ = c.MarkFlagRequired("within")

	return c
}
