package Report

import (
	"strings"

	"github.com/g-m-twostay/counttable/Maps"
	"github.com/petar/GoLLRB/llrb"
)

type indexItem Entry

func (a indexItem) Less(b llrb.Item) bool {
	return a.Key < b.(indexItem).Key
}

// Index is an alphabetical snapshot of a table. It doesn't follow later changes to the table.
type Index struct {
	tree *llrb.LLRB
}

func NewIndex(c Maps.Counter) *Index {
	u := &Index{tree: llrb.New()}
	c.Range(func(k string, v uint64) bool {
		u.tree.ReplaceOrInsert(indexItem{Key: k, Count: v})
		return true
	})
	return u
}

func (u *Index) Len() int {
	return u.tree.Len()
}

// WithPrefix lists the keys starting with prefix in ascending order.
func (u *Index) WithPrefix(prefix string) []Entry {
	var es []Entry
	u.tree.AscendGreaterOrEqual(indexItem{Key: prefix}, func(i llrb.Item) bool {
		e := i.(indexItem)
		if !strings.HasPrefix(e.Key, prefix) {
			return false
		}
		es = append(es, Entry(e))
		return true
	})
	return es
}
