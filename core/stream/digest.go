package stream

import (
	"encoding/hex"
	"io"
	"iter"

	"github.com/zeebo/blake3"
)

// Digest returns the hex BLAKE3 hash of the events' string forms, one per
// line. Two runs over the same corpus and ranges produce the same digest.
func Digest(events iter.Seq2[Event, error]) (string, error) {
	d := NewHasher()
	for e, err := range events {
		if err != nil {
			return "", err
		}
		d.Add(e)
	}
	return d.Sum(), nil
}

// Hasher accumulates a BLAKE3 digest of events as a consumer sees them.
type Hasher struct {
	h *blake3.Hasher
}

// NewHasher returns an empty Hasher.
func NewHasher() *Hasher {
	return &Hasher{h: blake3.New()}
}

// Add folds an event into the digest.
func (d *Hasher) Add(e Event) {
	io.WriteString(d.h, e.String())
	io.WriteString(d.h, "\n")
}

// Sum returns the hex digest of the events added so far.
func (d *Hasher) Sum() string {
	return hex.EncodeToString(d.h.Sum(nil))
}
