package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/g-m-twostay/counttable/Maps"
	"github.com/g-m-twostay/counttable/Maps/CountMap"
	"github.com/g-m-twostay/counttable/Report"
)

func TestCount(t *testing.T) {
	m, _ := CountMap.New(3, 0, nil)
	in := "apple\r\nbanana\napple\n\n" + strings.Repeat("x", 60) + "\ncherry"
	n, err := count(strings.NewReader(in), m)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 || m.Size() != 4 {
		t.Fatal(n, m.Size())
	}
	if v, o := m.Get("apple"); o != Maps.PRESENT || v != 1+3 {
		t.Fatal(v, o)
	}
	if v, _ := m.Get("cherry"); v != 5 {
		t.Fatal(v)
	}
	if v, o := m.Get(strings.Repeat("x", maxWord)); o != Maps.PRESENT || v != 4 {
		t.Fatal(v, o)
	}
}

func TestCount_ZeroByte(t *testing.T) {
	m, _ := CountMap.New(3, 0, nil)
	if _, err := count(strings.NewReader("ok\nbad\x00word\n"), m); err == nil {
		t.Fatal("expected an error")
	}
}

func TestParseConfig(t *testing.T) {
	t.Setenv("COUNTTABLE_CAPACITY", "11")
	t.Setenv("COUNTTABLE_HASH", "djb2")
	c, err := parseConfig([]string{"-load", "0.5", "-occupied", "p"})
	if err != nil {
		t.Fatal(err)
	}
	if c.capacity != 11 || c.hash != "djb2" || c.load != 0.5 || !c.print || !c.occupied || c.words != "words.txt" {
		t.Fatalf("%+v", c)
	}
	if _, err = parseConfig([]string{"-load", "lots"}); err == nil {
		t.Fail()
	}
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("the\ncat\nthe\nthen\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := config{words: path, capacity: 2, load: 0.75, hash: "xxhash", top: 1, prefix: "the", format: "json"}
	sb := strings.Builder{}
	if err := run(c, &sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "the\t4\t") {
		t.Fatal(out)
	}
	if !strings.Contains(out, "then\t4\n") {
		t.Fatal(out)
	}
	var s Report.Summary
	if err := s.DecodeJSON([]byte(out[strings.Index(out, "{"):])); err != nil {
		t.Fatal(err)
	}
	if s.Stats.Records != 3 || s.Hash != "xxhash" {
		t.Fatalf("%+v", s)
	}

	sb.Reset()
	c = config{words: path, capacity: 2, load: 0.75, hash: "oaat", occupied: true}
	if err := run(c, &sb); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(sb.String(), "list index"); got < 1 || got > 3 {
		t.Fatal(sb.String())
	}
	if strings.Contains(sb.String(), "{  }") {
		t.Fatal("empty bucket printed", sb.String())
	}

	c.format = "yaml"
	if err := run(c, &sb); err == nil {
		t.Fail()
	}
	c.words = filepath.Join(t.TempDir(), "missing")
	if err := run(c, &sb); err == nil {
		t.Fail()
	}
}
