// Command demo runs a fixed sequence of table operations and prints the table after each one.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/g-m-twostay/counttable/Maps/CountMap"
)

type step struct {
	title string
	key   string
	value uint64
	del   bool
}

var steps = []step{
	{title: "Added <Hello:1>", key: "Hello", value: 1},
	{title: "Added <world:2>", key: "world", value: 2},
	{title: "updated <Hello:1> to <Hello:3>", key: "Hello", value: 2},
	{title: "removed <world:2>", key: "world", del: true},
	{title: "Added <Yay:4>", key: "Yay", value: 4},
	{title: "Added <Hoorah:5>", key: "Hoorah", value: 5},
}

func run(w io.Writer) error {
	m, err := CountMap.New(1, 0.2, nil)
	if err != nil {
		return err
	}
	old := m.Cap()
	for _, s := range steps {
		if s.del {
			m.Remove(s.key)
		} else if _, err = m.Put(s.key, s.value); err != nil {
			m.Destroy()
			return fmt.Errorf("hash table put error: %w", err)
		}
		fmt.Fprintf(w, "\n%s\n", s.title)
		if err = m.Print(w); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nsize: %d, number of records: %d\n", m.Cap(), m.Size())
		if m.Cap() > old {
			old = m.Cap()
			fmt.Fprintln(w, "resized table")
		}
	}
	yay, _ := m.Get("Yay")
	fmt.Fprintf(w, "\n\nretrieved value for Yay: %d\n", yay)
	fmt.Fprintf(w, "\n\nprint before final free\n")
	m.Print(w)
	fmt.Fprintf(w, "\nFinal size: %d, Final number of records: %d\n", m.Cap(), m.Size())
	m.Destroy()
	m.Print(w)
	fmt.Fprintf(w, "\n\nNothing should have printed, as the hash table has been deleted.\n")
	return nil
}

func main() {
	log.SetFlags(0)
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
