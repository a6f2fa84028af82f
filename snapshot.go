package primecache

import (
	"github.com/unkn0wn-root/primecache/codec"
)

// Snapshot serializes the cached prime prefix and watermark with c. The
// result is a portable seed: restore it with Restore, or decode it and
// pass Snapshot.Primes into the bulk functions directly. The Sequence
// itself keeps no reference to the encoded bytes.
func (s *Sequence) Snapshot(c codec.Codec) ([]byte, error) {
	return c.Encode(codec.Snapshot{Primes: s.Cached(), Watermark: s.highest})
}

// Restore rebuilds a Sequence from an encoded snapshot. The decoded
// primes are trusted per the seed contract. opts.Seed is ignored in
// favor of the snapshot contents.
func Restore(data []byte, c codec.Codec, opts Options) (*Sequence, error) {
	snap, err := c.Decode(data)
	if err != nil {
		return nil, err
	}
	opts.Seed = snap.Primes
	s := New(opts)
	// The snapshot watermark can exceed the top cached prime, e.g. after
	// a Contains probe on a composite; keep the stronger guarantee.
	if snap.Watermark > s.highest {
		s.highest = snap.Watermark
	}
	return s, nil
}
