// Package Report builds read-only views over a counter table: frequency rankings, prefix lookups and encoded summaries.
package Report

import (
	"github.com/g-m-twostay/counttable/Maps"
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

const degree = 32

type Entry struct {
	Key   string  `json:"key"`
	Count uint64  `json:"count"`
	Share float64 `json:"share"` //Count over the sum of all counters.
}

func ratio[N constraints.Integer](part, whole N) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}

// byCount orders by count descending, then key ascending.
func byCount(a, b Entry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Key < b.Key
}

// Ranked returns the n most counted keys, all of them if n <= 0.
func Ranked(c Maps.Counter, n int) []Entry {
	tr := btree.NewG[Entry](degree, byCount)
	total := uint64(0)
	c.Range(func(k string, v uint64) bool {
		tr.ReplaceOrInsert(Entry{Key: k, Count: v})
		total += v
		return true
	})
	if n <= 0 || n > tr.Len() {
		n = tr.Len()
	}
	es := make([]Entry, 0, n)
	tr.Ascend(func(e Entry) bool {
		e.Share = ratio(e.Count, total)
		es = append(es, e)
		return len(es) < n
	})
	return es
}
