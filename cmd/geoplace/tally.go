package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/geoplace"
	"github.com/hupe1980/geoplace/model"
	"github.com/spf13/cobra"
)

// Anchor county sets tallied when --anchors is not given.
var defaultAnchorGroups = []string{
	"47185,32023",
	"39155,32023,22087",
	"06071,21207",
	"42073,06071,22063",
}

type tallyOutput struct {
	Anchors     []string `json:"anchors"`
	Populations []uint64 `json:"populations"`
}

func splitAnchors(group string) []string {
	var out []string
	for _, id := range strings.Split(group, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func newTallyCmd(a *app) *cobra.Command {
	var groups []string

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Sum population by nearest anchor county",
		Example: `  geoplace tally
  geoplace tally --anchors 47185,32023 --anchors 39155,32023,22087`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context, p *geoplace.Placer, regions []model.Region) error {
				w := cmd.OutOrStdout()
				results := make([]tallyOutput, 0, len(groups))

				for _, group := range groups {
					anchors := splitAnchors(group)
					sums, err := p.Tally(ctx, regions, anchors)
					if err != nil {
						return err
					}
					if a.cfg.output == "text" {
						fmt.Fprintf(w, "%d locations: %v\n", len(anchors), sums)
					}
					results = append(results, tallyOutput{Anchors: anchors, Populations: sums})
				}

				if a.cfg.output == "json" {
					return a.writeJSON(w, results)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&groups, "anchors", defaultAnchorGroups, "comma-separated anchor GeoIDs; repeat for several tallies")
	return cmd
}
