// Package model defines core types used throughout geoplace.
//
// # Identity Types
//
//   - Region.GeoID: external, globally unique region identifier (e.g. a county FIPS code)
//   - Region.Index: dense, zero-based position of the region in the loaded set
//
// # Data Types
//
//   - Coordinate: longitude/latitude in decimal degrees
//   - Region: one geographic unit with its centroid and population
//   - Location: one member of a candidate placement
//   - Placement: the result of a placement search
//
// Regions are loaded once, filtered, reindexed and never mutated afterwards.
// Every cache lookup relies on Region.Index being equal to the region's
// position in the slice, see Reindex and ValidateIndices.
package model
