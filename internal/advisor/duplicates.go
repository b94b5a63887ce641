package advisor

import (
	"sort"

	"github.com/pr0nt0-Zz/StorageCleaner/pkg/utils"
)

// dupInfo is the duplicate detector's output
type dupInfo struct {
	groupByPath map[string]int // path -> group id (1-based)
	newestPath  map[int]string // group id -> path of newest member
	reclaimable int64          // bytes freed if all non-newest copies go
	groupCount  int
}

func (d dupInfo) groupFor(path string) int {
	return d.groupByPath[path]
}

func (d dupInfo) isNewest(path string) bool {
	gid := d.groupByPath[path]
	return gid > 0 && d.newestPath[gid] == path
}

// findDuplicates detects exact-duplicate groups in two stages: records
// are partitioned by exact size, then same-size partitions of two or
// more are sub-grouped by partial content hash. Size partitions with a
// single member are discarded without any hashing. Files whose hash
// cannot be computed are excluded from duplicate consideration.
//
// Group ids are assigned deterministically: partitions are visited in
// ascending size order and members in ascending path order, so the
// numbering is stable for a given filesystem state. The newest member
// of a group has the maximum modification time; ties break to the
// lexicographically smallest path.
func findDuplicates(records []rawFile) dupInfo {
	result := dupInfo{
		groupByPath: make(map[string]int),
		newestPath:  make(map[int]string),
	}

	bySize := make(map[int64][]rawFile)
	for _, r := range records {
		bySize[r.size] = append(bySize[r.size], r)
	}

	sizes := make([]int64, 0, len(bySize))
	for sz, group := range bySize {
		if len(group) < 2 {
			continue
		}
		sizes = append(sizes, sz)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })

	for _, sz := range sizes {
		group := bySize[sz]
		sort.Slice(group, func(i, j int) bool { return group[i].path < group[j].path })

		buckets := make(map[string][]rawFile)
		var bucketOrder []string
		for _, f := range group {
			hash, err := utils.PartialHash(f.path)
			if err != nil {
				continue
			}
			if _, seen := buckets[hash]; !seen {
				bucketOrder = append(bucketOrder, hash)
			}
			buckets[hash] = append(buckets[hash], f)
		}

		for _, hash := range bucketOrder {
			bucket := buckets[hash]
			if len(bucket) < 2 {
				continue
			}

			result.groupCount++
			gid := result.groupCount

			newest := bucket[0]
			for _, f := range bucket[1:] {
				if f.mtime.After(newest.mtime) {
					newest = f
				}
			}

			for _, f := range bucket {
				result.groupByPath[f.path] = gid
			}
			result.newestPath[gid] = newest.path
			result.reclaimable += sz * int64(len(bucket)-1)
		}
	}

	return result
}
