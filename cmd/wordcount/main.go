// Command wordcount loads a one-word-per-line file into a counter table.
//
// Every word adds its 1-based word number to its counter. Blank lines are skipped and
// don't advance the word number. Words longer than 50 bytes are cut.
// Flags fall back to COUNTTABLE_WORDS, COUNTTABLE_CAPACITY, COUNTTABLE_LOAD and COUNTTABLE_HASH.
// A single argument "p" prints the whole table; -occupied prints only the buckets holding words.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	CountTable "github.com/g-m-twostay/counttable"
	"github.com/g-m-twostay/counttable/Maps/CountMap"
	"github.com/g-m-twostay/counttable/Report"
	"github.com/xyproto/env/v2"
)

// maxWord is the longest word kept; longer lines are cut.
const maxWord = 50

type config struct {
	words    string
	capacity uint
	load     float64
	hash     string
	print    bool
	occupied bool
	top      int
	prefix   string
	format   string
}

func parseConfig(args []string) (config, error) {
	c := config{}
	fs := flag.NewFlagSet("wordcount", flag.ContinueOnError)
	fs.StringVar(&c.words, "words", env.Str("COUNTTABLE_WORDS", "words.txt"), "file with one word per line")
	capacity := fs.Uint("capacity", uint(env.Int("COUNTTABLE_CAPACITY", 127151)), "initial bucket count")
	load := fs.String("load", env.Str("COUNTTABLE_LOAD", "0.75"), "load threshold")
	fs.StringVar(&c.hash, "hash", env.Str("COUNTTABLE_HASH", "oaat"), "oaat, djb2, xxhash, siphash, blake2b or maphash")
	fs.BoolVar(&c.occupied, "occupied", false, "print only the non-empty buckets")
	fs.IntVar(&c.top, "top", 0, "report the n highest counters")
	fs.StringVar(&c.prefix, "prefix", "", "list the words starting with this prefix")
	fs.StringVar(&c.format, "format", "none", "summary encoding: none, json or msgpack")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	c.capacity = *capacity
	var err error
	if c.load, err = strconv.ParseFloat(*load, 64); err != nil {
		return c, fmt.Errorf("load threshold: %w", err)
	}
	c.print = fs.NArg() == 1 && strings.HasPrefix(fs.Arg(0), "p")
	return c, nil
}

// count puts every line of r into m and returns the number of words read. Lines may end in LF or CRLF.
func count(r io.Reader, m *CountMap.CountMap) (uint64, error) {
	br := bufio.NewReader(r)
	n := uint64(0)
	for {
		line, err := br.ReadString('\n')
		if line = strings.TrimRight(line, "\r\n"); line != "" {
			if len(line) > maxWord {
				line = line[:maxWord]
			}
			n++
			if _, perr := m.Put(line, n); perr != nil {
				return n, fmt.Errorf("line %d: %w", n, perr)
			}
		}
		if errors.Is(err, io.EOF) {
			return n, nil
		} else if err != nil {
			return n, err
		}
	}
}

func run(c config, w io.Writer) error {
	h, err := CountTable.ByName(c.hash)
	if err != nil {
		return err
	}
	m, err := CountMap.New(c.capacity, c.load, h)
	if err != nil {
		return err
	}
	defer m.Destroy()
	f, err := os.Open(c.words)
	if err != nil {
		return err
	}
	n, err := count(f, m)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", c.words, err)
	}
	log.Printf("%d words, %d distinct, %d buckets", n, m.Size(), m.Cap())

	if c.print {
		if err = m.Print(w); err != nil {
			return err
		}
	} else if c.occupied {
		if err = m.PrintOccupied(w); err != nil {
			return err
		}
	}
	if c.top > 0 {
		for _, e := range Report.Ranked(m, c.top) {
			fmt.Fprintf(w, "%s\t%d\t%.4f\n", e.Key, e.Count, e.Share)
		}
	}
	if c.prefix != "" {
		for _, e := range Report.NewIndex(m).WithPrefix(c.prefix) {
			fmt.Fprintf(w, "%s\t%d\n", e.Key, e.Count)
		}
	}
	s := Report.Summarize(m, c.hash, c.top)
	var b []byte
	switch c.format {
	case "none", "":
		return nil
	case "json":
		b, err = s.EncodeJSON()
	case "msgpack":
		b, err = s.MarshalMsg(nil)
	default:
		return fmt.Errorf("unknown format %q", c.format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

func main() {
	log.SetFlags(0)
	c, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err = run(c, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
