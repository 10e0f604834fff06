package Report

import (
	"fmt"

	"github.com/g-m-twostay/counttable/Maps"
	"github.com/sugawarayuuta/sonnet"
)

// Summary is what the word counter reports after a run.
type Summary struct {
	Hash  string     `json:"hash" msg:"hash"`
	Stats Maps.Stats `json:"stats" msg:"stats"`
	Top   []Entry    `json:"top" msg:"top"`
}

func Summarize(c Maps.Counter, hash string, top int) Summary {
	return Summary{Hash: hash, Stats: c.Stats(), Top: Ranked(c, top)}
}

func (u *Summary) EncodeJSON() ([]byte, error) {
	b, err := sonnet.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encoding summary: %w", err)
	}
	return b, nil
}

func (u *Summary) DecodeJSON(b []byte) error {
	if err := sonnet.Unmarshal(b, u); err != nil {
		return fmt.Errorf("decoding summary: %w", err)
	}
	return nil
}
