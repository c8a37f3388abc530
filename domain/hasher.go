package domain

// Hasher is the core port for any hashing strategy.
type Hasher interface {
	// Hash digests data once and returns the raw digest bytes, so a chain
	// can feed one round's output straight into the next round's input.
	Hash(data []byte) []byte
}

// HashResult is the value produced for one completed hash chain. It is
// serialized once per request and discarded.
type HashResult struct {
	Hash      string `json:"hash"`
	Timestamp int64  `json:"timestamp"`
	Source    string `json:"source"`
}
