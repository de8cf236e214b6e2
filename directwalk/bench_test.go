package directwalk_test

import (
	"testing"

	"github.com/katalvlaran/antclust/core"
	"github.com/katalvlaran/antclust/directwalk"
)

// benchmarkBuild runs a full colony build on blobs Gaussian clouds of
// count points each, spread over a coarse grid of centers.
func benchmarkBuild(b *testing.B, blobs, count, cycles int) {
	spec := make([]core.Blob, blobs)
	for i := range spec {
		spec[i] = core.Blob{
			Center: []float64{float64(i%4) * 8, float64(i/4) * 8},
			Sigma:  1.5,
			Count:  count,
		}
	}
	ds, _, err := core.GaussianBlobs(spec, core.NewRand(1))
	if err != nil {
		b.Fatalf("blob generation failed: %v", err)
	}

	opts := directwalk.DefaultOptions()
	opts.MaxCycles = cycles
	opts.MaxClusters = blobs
	opts.Seed = 7

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, errNew := directwalk.New(opts)
		if errNew != nil {
			b.Fatalf("New failed: %v", errNew)
		}
		if errBuild := c.Build(ds); errBuild != nil {
			b.Fatalf("Build failed: %v", errBuild)
		}
	}
}

// BenchmarkBuild_Small benchmarks 4 blobs of 50 points each.
func BenchmarkBuild_Small(b *testing.B) {
	benchmarkBuild(b, 4, 50, 5)
}

// BenchmarkBuild_Medium benchmarks 8 blobs of 100 points each.
func BenchmarkBuild_Medium(b *testing.B) {
	benchmarkBuild(b, 8, 100, 5)
}

// BenchmarkDiscovery measures the one-time neighborhood discovery cost by
// running a single short cycle over a dense dataset.
func BenchmarkDiscovery(b *testing.B) {
	ds, _, err := core.GaussianBlobs([]core.Blob{
		{Center: []float64{0, 0}, Sigma: 0.5, Count: 400},
	}, core.NewRand(3))
	if err != nil {
		b.Fatalf("blob generation failed: %v", err)
	}

	opts := directwalk.DefaultOptions()
	opts.MaxCycles = 1
	opts.Seed = 11

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, errNew := directwalk.New(opts)
		if errNew != nil {
			b.Fatalf("New failed: %v", errNew)
		}
		if errBuild := c.Build(ds); errBuild != nil {
			b.Fatalf("Build failed: %v", errBuild)
		}
	}
}
