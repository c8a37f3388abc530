package hasher

import (
	"crypto/sha256"

	"github.com/huseyinbabal/benchmarks/domain"
)

// New returns a domain.Hasher backed by SHA‑256.
func New() domain.Hasher { return sha256Hasher{} }

type sha256Hasher struct{}

func (h sha256Hasher) Hash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}
