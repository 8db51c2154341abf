package geoplace_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/geoplace"
	"github.com/hupe1980/geoplace/model"
)

func exampleRegions() []model.Region {
	return []model.Region{
		{Index: 0, GeoID: "01001", Population: 500, Coordinate: model.Coordinate{Longitude: -86.0, Latitude: 32.0}},
		{Index: 1, GeoID: "01003", Population: 500, Coordinate: model.Coordinate{Longitude: -87.0, Latitude: 32.0}},
		{Index: 2, GeoID: "01005", Population: 500, Coordinate: model.Coordinate{Longitude: -88.0, Latitude: 32.0}},
		{Index: 3, GeoID: "06037", Population: 9000, Coordinate: model.Coordinate{Longitude: -118.0, Latitude: 34.0}},
	}
}

// Example_findPlacement places two locations among four counties.
func Example_findPlacement() {
	placement, err := geoplace.FindPlacement(context.Background(), exampleRegions(), 2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(placement.Coordinates())
	fmt.Println(placement.Evaluated)
	// Output:
	// [(-87, 32) (-118, 34)]
	// 6
}

// Example_sequential runs the same search on a single goroutine with direct scoring.
func Example_sequential() {
	p := geoplace.New(
		geoplace.WithStrategy(geoplace.Sequential),
		geoplace.WithDirectScoring(),
	)

	placement, err := p.FindPlacement(context.Background(), exampleRegions(), 1)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(placement.Locations[0].Index)
	// Output: 3
}

// Example_tally sums population by nearest anchor.
func Example_tally() {
	sums, err := geoplace.Tally(context.Background(), exampleRegions(), []string{"01001", "06037"})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(sums)
	// Output: [1500 9000]
}

// Example_infeasible shows that asking for more locations than regions is not an error.
func Example_infeasible() {
	placement, err := geoplace.FindPlacement(context.Background(), exampleRegions(), 5)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(placement.Feasible(), placement.Cost)
	// Output: false +Inf
}
