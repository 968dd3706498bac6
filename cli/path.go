// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/metropath/logging"
	"github.com/katalvlaran/metropath/pathservice"
	"github.com/katalvlaran/metropath/subway"
)

func pathCmd(g *globalFlags) *cobra.Command {
	var (
		source, target int64
		age            int
		format         string
	)

	c := &cobra.Command{
		Use:   "path",
		Short: "Print the shortest path and fare between two stations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load()
			if err != nil {
				return err
			}
			logger := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging)

			var rider subway.RiderContext = subway.Anonymous{}
			if cmd.Flags().Changed("age") {
				if rider, err = subway.AuthenticatedAge(age); err != nil {
					return err
				}
			}

			a, err := newApp(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer a.close()

			resp, err := a.service.CalculatePath(cmd.Context(), rider,
				pathservice.PathRequest{Source: source, Target: target})
			if err != nil {
				return err
			}

			return printPath(cmd.OutOrStdout(), resp, format)
		},
	}

	c.Flags().Int64Var(&source, "source", 0, "source station id")
	c.Flags().Int64Var(&target, "target", 0, "target station id")
	c.Flags().IntVar(&age, "age", 0, "rider age; omit for an anonymous rider")
	c.Flags().StringVar(&format, "format", "text", "output format: text or json")
	_ = c.MarkFlagRequired("source")
	_ = c.MarkFlagRequired("target")

	return c
}

func printPath(w io.Writer, resp *pathservice.PathResponse, format string) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case "text", "":
		names := make([]string, len(resp.Stations))
		for i, s := range resp.Stations {
			names[i] = s.Name
		}
		_, err := fmt.Fprintf(w, "%s\ndistance: %d\nfare: %d\nlines: %s\n",
			strings.Join(names, " -> "), resp.Distance, resp.Fare, strings.Join(resp.Lines, ", "))
		return err
	default:
		return fmt.Errorf("cli: unknown format %q", format)
	}
}
