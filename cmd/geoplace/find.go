package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/geoplace"
	"github.com/hupe1980/geoplace/model"
	"github.com/spf13/cobra"
)

type locationOutput struct {
	Index     int     `json:"index"`
	GeoID     string  `json:"geoid"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type placementOutput struct {
	K         int              `json:"k"`
	Feasible  bool             `json:"feasible"`
	Cost      *float64         `json:"cost,omitempty"`
	Evaluated uint64           `json:"evaluated"`
	Seconds   float64          `json:"seconds"`
	Locations []locationOutput `json:"locations"`
}

func newPlacementOutput(k int, p model.Placement, regions []model.Region, elapsed time.Duration) placementOutput {
	out := placementOutput{
		K:         k,
		Feasible:  p.Feasible(),
		Evaluated: p.Evaluated,
		Seconds:   elapsed.Seconds(),
		Locations: make([]locationOutput, 0, len(p.Locations)),
	}
	// JSON cannot represent +Inf.
	if !math.IsInf(p.Cost, 0) && !math.IsNaN(p.Cost) {
		cost := p.Cost
		out.Cost = &cost
	}
	for _, loc := range p.Locations {
		out.Locations = append(out.Locations, locationOutput{
			Index:     loc.Index,
			GeoID:     regions[loc.Index].GeoID,
			Longitude: loc.Coordinate.Longitude,
			Latitude:  loc.Coordinate.Latitude,
		})
	}
	return out
}

func newFindCmd(a *app) *cobra.Command {
	var ks []int

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find the optimal placement of k locations",
		Example: `  geoplace find --k 1,2
  geoplace find --k 3 --memory-limit 1GiB --metrics-addr :9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context, p *geoplace.Placer, regions []model.Region) error {
				results := make([]placementOutput, 0, len(ks))
				for _, k := range ks {
					start := time.Now()
					placement, err := p.FindPlacement(ctx, regions, k)
					if err != nil {
						return fmt.Errorf("k=%d: %w", k, err)
					}
					res := newPlacementOutput(k, placement, regions, time.Since(start))

					if a.cfg.output == "text" {
						printPlacement(cmd, res, placement, len(regions))
					}
					results = append(results, res)
				}

				if a.cfg.output == "json" {
					return a.writeJSON(cmd.OutOrStdout(), results)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntSliceVar(&ks, "k", []int{1, 2}, "numbers of locations to place")
	return cmd
}

func printPlacement(cmd *cobra.Command, res placementOutput, p model.Placement, n int) {
	w := cmd.OutOrStdout()
	if !res.Feasible {
		fmt.Fprintf(w, "%d locations: no solution (%d regions)\n", res.K, n)
		return
	}
	fmt.Fprintf(w, "%d locations: %v\n", res.K, p.Coordinates())
	for _, loc := range res.Locations {
		fmt.Fprintf(w, "  %s (%v, %v)\n", loc.GeoID, loc.Longitude, loc.Latitude)
	}
	fmt.Fprintf(w, "  cost %.6g, %s candidates in %.3fs\n",
		p.Cost, humanize.Comma(int64(res.Evaluated)), res.Seconds)
}
