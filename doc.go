// Package geoplace solves a small facility-location problem exactly.
//
// Given the population-weighted centroids of a fixed set of regions (for
// example US counties), geoplace chooses the k centroids that minimise the
// aggregate population-weighted distance from every region to its nearest
// chosen location. A second mode assigns every region to the nearest of a
// fixed set of anchor regions and tallies population per anchor.
//
// # Quick Start
//
//	regions, _ := dataset.Load(ctx, blobstore.NewLocalStore("./data"), "county_centroids.json",
//		dataset.WithFilter(dataset.Mainland()))
//
//	p := geoplace.New(geoplace.WithStrategy(geoplace.Parallel))
//	placement, _ := p.FindPlacement(ctx, regions, 2)
//	for _, loc := range placement.Locations {
//		fmt.Println(loc.Coordinate)
//	}
//
//	sums, _ := p.Tally(ctx, regions, []string{"06037", "36061"})
//
// # Cost Model
//
// The distance between two regions is the haversine great-circle distance on
// a sphere of radius 6371 km. For a candidate placement the cost of region r
// is min over chosen locations l of dist(l, r)² · pop(r), and the candidate
// cost is the sum of the squares of those minima. The search is brute force
// over all C(n, k) candidates; the first minimum in lexicographic index order
// wins, regardless of the evaluation strategy.
//
// # Evaluation Strategies
//
//   - Sequential: a single goroutine folds over every candidate.
//   - Parallel: candidates are pulled in bounded chunks (WithChunkSize) and
//     each chunk is split into contiguous ranges scored by WithWorkers
//     goroutines.
//
// Both strategies return identical placements.
//
// # Errors
//
// Contract violations (k < 1, region indices that do not match positions,
// anchors that do not resolve to exactly one region) are reported as
// *PreconditionError and match ErrPrecondition via errors.Is. Asking for more
// locations than there are regions is not an error; the returned placement is
// infeasible instead.
//
// # Observability
//
// Placer accepts a *Logger (log/slog), a MetricsCollector (see the prommetrics
// package for Prometheus) and an OpenTelemetry TracerProvider.
package geoplace
