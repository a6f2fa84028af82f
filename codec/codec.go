// Package codec serializes prime sequence snapshots so callers can ship
// previously discovered primes between processes and feed them back as
// seeds.
package codec

// Snapshot is the portable state of a prime sequence: the cached prime
// prefix and the bound below which it is exhaustive. Primes follows the
// primecache seed contract; decoders do not re-validate it.
type Snapshot struct {
	Primes    []int `json:"primes" cbor:"1,keyasint" msgpack:"primes"`
	Watermark int   `json:"watermark" cbor:"2,keyasint" msgpack:"watermark"`
}

// Codec encodes/decodes snapshots to []byte.
type Codec interface {
	Encode(Snapshot) ([]byte, error)
	Decode([]byte) (Snapshot, error)
}
