// Package antclust clusters numeric datasets with ant colony
// algorithms — stochastic agents that discover structure by walking,
// picking up and depositing data points.
//
// 🐜 What is antclust?
//
//	A deterministic, seed-driven clustering library built from:
//		• core:        datasets, distance metrics, the Clusterer contract,
//		               Gaussian blob generation & the shared RNG discipline
//		• directwalk:  density-guided ants that carry points toward regions
//		               of higher similarity and found clusters there
//		• antgrid:     pickup-and-drop sorting on a 2D lattice, where
//		               spatial adjacency becomes the clustering
//		• gridextract: connected-component extraction, singleton
//		               reattachment and centroid merging over a lattice
//		• config:      one YAML surface selecting engine, seed, metric
//		               and every per-engine knob
//
// ✨ Why choose antclust?
//
//   - Reproducible – every run is a single seeded RNG stream; same seed,
//     same partition
//   - No cluster count required – directwalk discovers k on its own,
//     with an optional cap
//   - Noise-aware – sparse points can be flagged instead of forced into
//     a cluster
//   - Missing-value tolerant – NaN coordinates compose with any metric
//     via core.SkipMissing
//
// Both engines satisfy one contract:
//
//	type Clusterer interface {
//		Build(ds *core.Dataset) error
//		ClusterOf(features []float64) int
//		NumClusters() int
//		Assignments() []int
//	}
//
// Quick start:
//
//	ds, _, err := core.GaussianBlobs(blobs, core.NewRand(7))
//	cl, err := directwalk.New(directwalk.DefaultOptions())
//	err = cl.Build(ds)
//	labels := cl.Assignments()
//
// The cmd/antclust CLI drives either engine over CSV files:
//
//	antclust gen --blobs 4 --points 100 -o points.csv
//	antclust run -c run.yaml -i points.csv -o labels.csv
//
//	go get github.com/katalvlaran/antclust
package antclust
