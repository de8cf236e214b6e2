package commands

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/katalvlaran/antclust/core"
)

// readPoints loads a CSV of feature vectors, one row per point. A header
// row is detected by its first field failing to parse as a number, and
// skipped. Empty fields and the literal "?" are read as missing values
// (NaN) so they compose with the skip_missing distance wrapper.
func readPoints(path string) (*core.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) > 0 {
		if _, err := strconv.ParseFloat(records[0][0], 64); err != nil {
			records = records[1:]
		}
	}

	rows := make([][]float64, 0, len(records))
	for i, rec := range records {
		row := make([]float64, len(rec))
		for j, field := range rec {
			if field == "" || field == "?" {
				row[j] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d column %d: %w", path, i+1, j+1, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}

	ds, err := core.NewDataset(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// writeAssignments emits one "cluster" column aligned with the input
// rows. Noise points are written as -1.
func writeAssignments(path string, assign []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"cluster"}); err != nil {
		return err
	}
	for _, c := range assign {
		if err := w.Write([]string{strconv.Itoa(c)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// writeDataset emits feature vectors plus a trailing "blob" column with
// the generating label, one row per point.
func writeDataset(path string, ds *core.Dataset, labels []int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rec := make([]string, ds.Dim()+1)
	for i := 0; i < ds.Len(); i++ {
		p := ds.Point(i)
		for j, v := range p {
			rec[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		rec[ds.Dim()] = strconv.Itoa(labels[i])
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
