package usecase

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/huseyinbabal/benchmarks/domain"
)

const (
	// Source identifies this implementation among the compared server
	// runtimes ("rust", "go-fiber", ...).
	Source = "go-echo"

	// ChainRounds is the total number of chained digest computations per
	// request. Changing it changes the benchmark's cost and invalidates
	// comparisons against the other implementations.
	ChainRounds = 100
)

// HashService produces one fixed-cost unit of CPU work per call.
type HashService struct {
	hasher domain.Hasher
}

func NewHashService(hasher domain.Hasher) *HashService {
	return &HashService{hasher: hasher}
}

// Execute seeds a hash chain with the current wall clock, digests the seed
// once, then re-hashes the raw digest bytes for the remaining rounds. The
// seed makes every result different; only the cost is deterministic.
func (s *HashService) Execute() domain.HashResult {
	seed := fmt.Sprintf("input-%d", time.Now().UnixNano())

	sum := s.hasher.Hash([]byte(seed))
	for i := 1; i < ChainRounds; i++ {
		sum = s.hasher.Hash(sum)
	}

	return domain.HashResult{
		Hash:      hex.EncodeToString(sum),
		Timestamp: time.Now().UnixMilli(),
		Source:    Source,
	}
}
