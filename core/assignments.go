package core

import "sort"

// CompactAssignments remaps cluster ids in assign, in place, onto the
// contiguous range 0..k-1, preserving the relative order of the original
// ids. The Noise sentinel is left untouched. Returns k, the number of
// distinct non-noise clusters.
//
// Complexity: O(n + k·log k) time, O(k) space.
func CompactAssignments(assign []int) int {
	var (
		ids  []int
		seen = make(map[int]struct{})
		i    int
	)
	for i = range assign {
		if assign[i] == Noise {
			continue
		}
		if _, ok := seen[assign[i]]; !ok {
			seen[assign[i]] = struct{}{}
			ids = append(ids, assign[i])
		}
	}
	sort.Ints(ids)

	remap := make(map[int]int, len(ids))
	for i = range ids {
		remap[ids[i]] = i
	}
	for i = range assign {
		if assign[i] != Noise {
			assign[i] = remap[assign[i]]
		}
	}
	return len(ids)
}

// MaxAssigned returns max(assign)+1, the cluster count reported by the
// host contract, treating an all-noise assignment as zero clusters.
//
// Complexity: O(n).
func MaxAssigned(assign []int) int {
	var maxID = Noise
	for _, id := range assign {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
