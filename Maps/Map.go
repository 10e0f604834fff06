/*
Package Maps describes string-keyed counter tables and the values shared by their implementations.

# Usage
A Counter is not safe for concurrent use. Guard every call, including Get, with one mutex when sharing a table between goroutines; a resize touches every record.
Lookups never signal absence through the value. Get reports INVALID, ABSENT or PRESENT next to it, and a stored value of any size, including math.MaxUint64, is returned as is.
*/
package Maps

import (
	"math"

	"github.com/g-m-twostay/counttable/Chains"
)

// MaxCapacity is the largest bucket count a table grows to.
const MaxCapacity uint = math.MaxInt32

// DefaultLoadThreshold replaces a non-positive load threshold.
const DefaultLoadThreshold = 0.75

type Outcome byte

const (
	INVALID Outcome = iota //the table is nil or destroyed, or the key holds a zero byte.
	ABSENT                 //the key isn't stored.
	PRESENT                //the key is stored and the value is valid.
)

func (o Outcome) String() string {
	switch o {
	case INVALID:
		return "invalid"
	case ABSENT:
		return "absent"
	case PRESENT:
		return "present"
	}
	return "unknown"
}

type Counter interface {
	Put(key string, value uint64) (*Chains.Record, error)
	Get(key string) (uint64, Outcome)
	Remove(key string) (*Chains.Record, bool)
	Range(yield func(key string, value uint64) bool)
	Size() uint
	Cap() uint
	Clear() error
	Stats() Stats
}

// Stats is a snapshot of a table's shape.
type Stats struct {
	Capacity      uint    `json:"capacity"`
	Records       uint    `json:"records"`
	UsedBuckets   uint    `json:"used_buckets"`
	LongestChain  uint    `json:"longest_chain"`
	Resizes       uint    `json:"resizes"`
	LoadThreshold float64 `json:"load_threshold"`
	LoadFactor    float64 `json:"load_factor"`
}
