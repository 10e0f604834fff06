package cmps

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	CountTable "github.com/g-m-twostay/counttable"
	"github.com/puzpuzpuz/xsync/v3"
)

// compares counting words with https://github.com/alphadose/haxmap, https://github.com/cornelk/hashmap, https://github.com/puzpuzpuz/xsync, sync.Map and a locked go map.

func fillNaiveMap(b *testing.B, keyRange int) map[string]uint64 {
	b.Helper()
	m := make(map[string]uint64, keyRange)
	for _, k := range keys[:keyRange] {
		m[k]++
	}
	return m
}
func BenchmarkNaiveMap_Get(b *testing.B) {
	m := fillNaiveMap(b, hits)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sideEff = m[keys[i%wordRange]]
	}
}
func BenchmarkNaiveMap_Count(b *testing.B) {
	for i := 0; i < b.N; i++ {
		m := make(map[string]uint64, 1)
		for j := 0; j < wordRange*4; j++ {
			m[keys[j%wordRange]]++
		}
	}
}
func BenchmarkNaiveMap_Count_Locked(b *testing.B) {
	m := fillNaiveMap(b, 1)
	lock := sync.Mutex{}
	var count atomic.Uintptr
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			k := keys[uint(count.Add(1)-1)%wordRange]
			lock.Lock()
			m[k]++
			lock.Unlock()
		}
	})
}

func fillHaxMap(b *testing.B, keyRange int) *haxmap.Map[string, uint64] {
	b.Helper()
	m := haxmap.New[string, uint64]()
	for _, k := range keys[:keyRange] {
		m.Set(k, 1)
	}
	return m
}
func BenchmarkHaxMap_Get(b *testing.B) {
	m := fillHaxMap(b, hits)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sideEff = m.Get(keys[i%wordRange])
	}
}

func fillHashMap(b *testing.B, keyRange int) *hashmap.Map[string, uint64] {
	b.Helper()
	m := hashmap.New[string, uint64]()
	for _, k := range keys[:keyRange] {
		m.Set(k, 1)
	}
	return m
}
func BenchmarkHashMap_Get(b *testing.B) {
	m := fillHashMap(b, hits)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sideEff = m.Get(keys[i%wordRange])
	}
}

func xsyncHashString(k string, seed uint64) uint64 {
	return CountTable.OneAtATime(k) ^ seed
}
func fillXSyncMap(b *testing.B, keyRange int) *xsync.MapOf[string, uint64] {
	b.Helper()
	m := xsync.NewMapOfWithHasher[string, uint64](xsyncHashString)
	for _, k := range keys[:keyRange] {
		m.Store(k, 1)
	}
	return m
}
func BenchmarkXSyncMap_Get(b *testing.B) {
	m := fillXSyncMap(b, hits)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sideEff = m.Load(keys[i%wordRange])
	}
}
func BenchmarkXSyncMap_Count(b *testing.B) {
	m := fillXSyncMap(b, 1)
	var count atomic.Uintptr
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			m.Compute(keys[uint(count.Add(1)-1)%wordRange], func(old uint64, _ bool) (uint64, bool) {
				return old + 1, false
			})
		}
	})
}

func BenchmarkSyncMap_Get(b *testing.B) {
	m := sync.Map{}
	for _, k := range keys[:hits] {
		m.Store(k, uint64(1))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, sideEff = m.Load(keys[i%wordRange])
	}
}
