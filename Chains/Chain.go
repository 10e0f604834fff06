package Chains

import (
	"fmt"
	"io"
	"strings"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

// Record is one key/value pair owned by a chain.
type Record struct {
	Key   string
	Value uint64
}

func (u *Record) String() string {
	return fmt.Sprintf("<%s:%d>", u.Key, u.Value)
}

// Chain is a bucket's collision list. The zero value is an empty chain. Records are kept newest first.
type Chain struct {
	l *singlylinkedlist.List
}

func (u *Chain) list() *singlylinkedlist.List {
	if u.l == nil {
		u.l = singlylinkedlist.New()
	}
	return u.l
}

func (u *Chain) Len() uint {
	if u.l == nil {
		return 0
	}
	return uint(u.l.Size())
}

// Find returns the record holding key and its position, or nil and -1.
func (u *Chain) Find(key string) (*Record, int) {
	if u.l == nil {
		return nil, -1
	}
	i, v := u.l.Find(func(_ int, v interface{}) bool {
		return v.(*Record).Key == key
	})
	if i < 0 {
		return nil, -1
	}
	return v.(*Record), i
}

// Unlink detaches and returns the record at position i.
func (u *Chain) Unlink(i int) *Record {
	if u.l == nil {
		return nil
	}
	v, ok := u.l.Get(i)
	if !ok {
		return nil
	}
	u.l.Remove(i)
	return v.(*Record)
}

// Delete detaches and returns the record holding key, nil if there is none.
// The search stops at the match and the splice only walks up to it.
func (u *Chain) Delete(key string) *Record {
	r, i := u.Find(key)
	if r != nil {
		u.l.Remove(i)
	}
	return r
}

// Range calls yield on every record in chain order until it returns false.
func (u *Chain) Range(yield func(*Record) bool) {
	if u.l == nil {
		return
	}
	for it := u.l.Iterator(); it.Next(); {
		if !yield(it.Value().(*Record)) {
			return
		}
	}
}

// AddFront stores a copy of key with value at the head of c and returns the new record.
func AddFront(key string, value uint64, c *Chain) *Record {
	r := &Record{Key: strings.Clone(key), Value: value}
	Link(r, c)
	return r
}

// Link puts an existing record at the head of c. Any other chain still holding r must be dropped by the caller.
func Link(r *Record, c *Chain) {
	c.list().Prepend(r)
}

// RemoveFront detaches the head of c, nil if c is empty.
func RemoveFront(c *Chain) *Record {
	return c.Unlink(0)
}

// DelList drops every record in c.
func DelList(c *Chain) {
	if c.l != nil {
		c.l.Clear()
		c.l = nil
	}
}

// PrintList writes the records of c separated by spaces.
func PrintList(w io.Writer, c *Chain) error {
	sep := ""
	var err error
	c.Range(func(r *Record) bool {
		_, err = fmt.Fprintf(w, "%s%s", sep, r)
		sep = " "
		return err == nil
	})
	return err
}
