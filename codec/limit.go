package codec

import "fmt"

// Limit wraps another codec to enforce a maximum allowed payload size at
// Decode time. Encode is forwarded to Inner unchanged. If MaxDecode <= 0,
// size limiting is disabled.
//
// Typical use: a snapshot arriving from a shared store or untrusted
// source, where an oversized payload would otherwise force a huge
// allocation before validation ever runs.
type Limit struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec
	// MaxDecode is the maximum permitted length (in bytes) of the
	// incoming payload for Decode.
	MaxDecode int
}

var _ Codec = Limit{}

func (c Limit) Encode(s Snapshot) ([]byte, error) { return c.Inner.Encode(s) }
func (c Limit) Decode(b []byte) (Snapshot, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		return Snapshot{}, fmt.Errorf("snapshot payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
