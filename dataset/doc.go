// Package dataset loads region datasets from a blobstore.BlobStore.
//
// Two encodings are understood:
//
//   - Records: a JSON array of objects
//     {"geoid": "01001", "state": "01", "centroid": "lon,lat", "population": 55200}
//   - GeoJSON: a FeatureCollection whose features carry geoid/GEOID,
//     state/STATEFP and population/POPULATION properties. Point geometries are
//     used as is; polygons are reduced to their area centroid.
//
// Blobs ending in .zst or .lz4 (or starting with the respective frame magic)
// are decompressed first. After decoding, the optional StateFilter is
// applied and every region's Index is set to its position.
package dataset
