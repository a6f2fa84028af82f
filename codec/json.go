package codec

import "encoding/json"

// JSON encodes snapshots as JSON. The zero value is ready to use.
type JSON struct{}

var _ Codec = JSON{}

func (JSON) Encode(s Snapshot) ([]byte, error) { return json.Marshal(s) }
func (JSON) Decode(b []byte) (Snapshot, error) {
	var s Snapshot
	err := json.Unmarshal(b, &s)
	return s, err
}
