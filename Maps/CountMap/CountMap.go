package CountMap

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	CountTable "github.com/g-m-twostay/counttable"
	"github.com/g-m-twostay/counttable/Chains"
	"github.com/g-m-twostay/counttable/Maps"
	"github.com/willf/bitset"
)

// CountMap maps strings to counters using separate chaining. It grows by c -> 2c+1 and never shrinks.
type CountMap struct {
	buckets   []Chains.Chain //nil after Clear; reallocated by the next Put.
	capacity  uint
	size      uint
	threshold float64
	resizes   uint
	hasher    CountTable.Hasher
	destroyed bool
}

// New makes an empty table with capacity buckets.
// A loadThreshold <= 0 or NaN becomes Maps.DefaultLoadThreshold, one above 1 becomes 1. A nil h becomes CountTable.Default.
func New(capacity uint, loadThreshold float64, h CountTable.Hasher) (*CountMap, error) {
	if capacity == 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", Maps.ErrInvalidArg)
	}
	if capacity > Maps.MaxCapacity {
		return nil, fmt.Errorf("%w: %d buckets", Maps.ErrCapacity, capacity)
	}
	if loadThreshold <= 0 || math.IsNaN(loadThreshold) {
		loadThreshold = Maps.DefaultLoadThreshold
	} else if loadThreshold > 1 {
		loadThreshold = 1
	}
	if h == nil {
		h = CountTable.Default
	}
	return &CountMap{buckets: make([]Chains.Chain, capacity), capacity: capacity, threshold: loadThreshold, hasher: h}, nil
}

func (u *CountMap) check(key string) error {
	if u == nil {
		return fmt.Errorf("%w: nil table", Maps.ErrInvalidArg)
	} else if u.destroyed {
		return Maps.ErrDestroyed
	} else if strings.IndexByte(key, 0) >= 0 {
		return fmt.Errorf("%w: key %q holds a zero byte", Maps.ErrInvalidArg, key)
	}
	return nil
}

func (u *CountMap) index(hash uint64) uint64 {
	return hash % uint64(u.capacity)
}

// exceeds tells whether n records would be over the threshold. Being exactly at it is allowed.
func (u *CountMap) exceeds(n, capacity uint) bool {
	return float64(n) > u.threshold*float64(capacity)
}

// Put adds value to key's counter, creating the record if needed, and returns the record.
// Counters wrap around on overflow. A new key may grow the table first; if that fails nothing is changed.
func (u *CountMap) Put(key string, value uint64) (*Chains.Record, error) {
	if err := u.check(key); err != nil {
		return nil, err
	}
	if u.buckets == nil {
		u.buckets = make([]Chains.Chain, u.capacity)
	}
	hash := u.hasher.Sum64(key)
	if r, _ := u.buckets[u.index(hash)].Find(key); r != nil {
		r.Value += value
		return r, nil
	}
	if u.exceeds(u.size+1, u.capacity) {
		to, err := u.target(u.size + 1)
		if err == nil {
			err = u.rehash(to)
		}
		if err != nil {
			return nil, err
		}
	}
	r := Chains.AddFront(key, value, &u.buckets[u.index(hash)]) //same hash, new modulus.
	u.size++
	return r, nil
}

// Add counts one more occurrence of key.
func (u *CountMap) Add(key string) (*Chains.Record, error) {
	return u.Put(key, 1)
}

// target is the smallest capacity in the c -> 2c+1 sequence that holds n records.
func (u *CountMap) target(n uint) (uint, error) {
	c := u.capacity
	for u.exceeds(n, c) {
		if c > (Maps.MaxCapacity-1)/2 {
			return 0, &Maps.ResizeError{From: u.capacity, To: 2*c + 1, Err: Maps.ErrCapacity}
		}
		c = 2*c + 1
	}
	return c, nil
}

// rehash moves every record into a new array of newCap buckets. The table only switches once all records are placed.
func (u *CountMap) rehash(newCap uint) error {
	buckets := make([]Chains.Chain, newCap)
	moved := uint(0)
	for i := range u.buckets {
		n := uint(0)
		u.buckets[i].Range(func(r *Chains.Record) bool {
			Chains.Link(r, &buckets[u.hasher.Sum64(r.Key)%uint64(newCap)])
			n++
			return true
		})
		if n != u.buckets[i].Len() {
			return &Maps.ResizeError{From: u.capacity, To: newCap, Err: Maps.ErrCorrupt}
		}
		moved += n
	}
	if moved != u.size {
		return &Maps.ResizeError{From: u.capacity, To: newCap, Err: fmt.Errorf("%w: moved %d of %d", Maps.ErrCorrupt, moved, u.size)}
	}
	u.buckets, u.capacity = buckets, newCap
	u.resizes++
	return nil
}

// Grow makes room for at least minCapacity buckets, following the same growth sequence as Put.
func (u *CountMap) Grow(minCapacity uint) error {
	if err := u.check(""); err != nil {
		return err
	}
	c := u.capacity
	for c < minCapacity {
		if c > (Maps.MaxCapacity-1)/2 {
			return &Maps.ResizeError{From: u.capacity, To: 2*c + 1, Err: Maps.ErrCapacity}
		}
		c = 2*c + 1
	}
	if c == u.capacity {
		return nil
	}
	if u.buckets == nil {
		u.capacity = c
		return nil
	}
	return u.rehash(c)
}

// Get returns key's counter. The value is only meaningful with PRESENT.
func (u *CountMap) Get(key string) (uint64, Maps.Outcome) {
	if u.check(key) != nil {
		return 0, Maps.INVALID
	}
	if u.buckets == nil {
		return 0, Maps.ABSENT
	}
	if r, _ := u.buckets[u.index(u.hasher.Sum64(key))].Find(key); r != nil {
		return r.Value, Maps.PRESENT
	}
	return 0, Maps.ABSENT
}

func (u *CountMap) Has(key string) bool {
	_, o := u.Get(key)
	return o == Maps.PRESENT
}

// Remove unlinks key's record and hands it to the caller. It returns false if key isn't stored or the input is invalid.
func (u *CountMap) Remove(key string) (*Chains.Record, bool) {
	if u.check(key) != nil || u.buckets == nil {
		return nil, false
	}
	if r := u.buckets[u.index(u.hasher.Sum64(key))].Delete(key); r != nil {
		u.size--
		return r, true
	}
	return nil, false
}

// Clear drops all records and the bucket array. Capacity, threshold and hasher are kept.
func (u *CountMap) Clear() error {
	if u == nil {
		return fmt.Errorf("%w: nil table", Maps.ErrInvalidArg)
	} else if u.destroyed {
		return Maps.ErrDestroyed
	}
	for i := range u.buckets {
		Chains.DelList(&u.buckets[i])
	}
	u.buckets, u.size = nil, 0
	return nil
}

// Destroy clears the table and makes every later call fail as invalid input.
func (u *CountMap) Destroy() {
	if u == nil || u.destroyed {
		return
	}
	u.Clear()
	u.destroyed = true
}

func (u *CountMap) Range(yield func(key string, value uint64) bool) {
	if u == nil || u.destroyed {
		return
	}
	for i := range u.buckets {
		ok := true
		u.buckets[i].Range(func(r *Chains.Record) bool {
			ok = yield(r.Key, r.Value)
			return ok
		})
		if !ok {
			return
		}
	}
}

func (u *CountMap) Size() uint {
	if u == nil {
		return 0
	}
	return u.size
}

func (u *CountMap) Cap() uint {
	if u == nil {
		return 0
	}
	return u.capacity
}

func (u *CountMap) LoadThreshold() float64 {
	if u == nil {
		return 0
	}
	return u.threshold
}

func (u *CountMap) LoadFactor() float64 {
	if u == nil || u.capacity == 0 {
		return 0
	}
	return float64(u.size) / float64(u.capacity)
}

func (u *CountMap) Hasher() CountTable.Hasher {
	if u == nil {
		return nil
	}
	return u.hasher
}

func (u *CountMap) Stats() Maps.Stats {
	if u == nil {
		return Maps.Stats{}
	}
	s := Maps.Stats{Capacity: u.capacity, Records: u.size, Resizes: u.resizes, LoadThreshold: u.threshold, LoadFactor: u.LoadFactor()}
	for i := range u.buckets {
		if n := u.buckets[i].Len(); n > 0 {
			s.UsedBuckets++
			s.LongestChain = max(s.LongestChain, n)
		}
	}
	return s
}

// Occupied returns the set of bucket indexes that hold at least one record.
func (u *CountMap) Occupied() *bitset.BitSet {
	if u == nil {
		return bitset.New(0)
	}
	used := bitset.New(u.capacity)
	for i := range u.buckets {
		if u.buckets[i].Len() > 0 {
			used.Set(uint(i))
		}
	}
	return used
}

// Print writes every bucket in index order as
//
//	list index i
//	{ <key:value> <key:value> }
func (u *CountMap) Print(w io.Writer) error {
	if err := u.check(""); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for i := uint(0); i < u.capacity; i++ {
		if err := u.printBucket(bw, i); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// PrintOccupied is Print restricted to the buckets in Occupied.
func (u *CountMap) PrintOccupied(w io.Writer) error {
	if err := u.check(""); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	used := u.Occupied()
	for i, ok := used.NextSet(0); ok; i, ok = used.NextSet(i + 1) {
		if err := u.printBucket(bw, i); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (u *CountMap) printBucket(bw *bufio.Writer, i uint) error {
	fmt.Fprintf(bw, "list index %d\n{ ", i)
	if u.buckets != nil {
		if err := Chains.PrintList(bw, &u.buckets[i]); err != nil {
			return err
		}
	}
	_, err := bw.WriteString(" }\n")
	return err
}

func (u *CountMap) String() string {
	sb := strings.Builder{}
	if err := u.Print(&sb); err != nil {
		return err.Error()
	}
	return sb.String()
}
