// antclust runs ant-based clustering over CSV feature vectors.
//
// Usage:
//
//	antclust run -c run.yaml -i points.csv       # cluster a dataset
//	antclust run -i points.csv -o labels.csv     # write assignments
//	antclust gen --blobs 4 --points 100 -o points.csv
//
// Engine selection and every knob live in the YAML config; see the
// config package for the full surface.
package main

import (
	"os"

	"github.com/katalvlaran/antclust/cmd/antclust/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
