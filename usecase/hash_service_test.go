package usecase

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

// recordingHasher is a real SHA-256 hasher that records every invocation so
// tests can verify the chain's round count and feeding scheme.
type recordingHasher struct {
	inputs  [][]byte
	outputs [][]byte
}

func (r *recordingHasher) Hash(data []byte) []byte {
	r.inputs = append(r.inputs, append([]byte(nil), data...))
	sum := sha256.Sum256(data)
	r.outputs = append(r.outputs, sum[:])
	return sum[:]
}

func TestExecuteRunsExactlyChainRounds(t *testing.T) {
	rec := &recordingHasher{}
	svc := NewHashService(rec)

	svc.Execute()

	if got := len(rec.inputs); got != ChainRounds {
		t.Fatalf("expected %d digest invocations, got %d", ChainRounds, got)
	}
}

func TestExecuteSeedsChainWithTimestampedInput(t *testing.T) {
	rec := &recordingHasher{}
	svc := NewHashService(rec)

	svc.Execute()

	seed := string(rec.inputs[0])
	if !strings.HasPrefix(seed, "input-") {
		t.Fatalf("expected seed with input- prefix, got %q", seed)
	}
	if _, err := strconv.ParseInt(strings.TrimPrefix(seed, "input-"), 10, 64); err != nil {
		t.Errorf("seed suffix is not a decimal timestamp: %v", err)
	}
}

func TestExecuteFeedsRawDigestBytesForward(t *testing.T) {
	rec := &recordingHasher{}
	svc := NewHashService(rec)

	res := svc.Execute()

	for i := 1; i < len(rec.inputs); i++ {
		if !bytes.Equal(rec.inputs[i], rec.outputs[i-1]) {
			t.Fatalf("round %d input is not round %d output", i, i-1)
		}
	}
	final := rec.outputs[len(rec.outputs)-1]
	if res.Hash != hex.EncodeToString(final) {
		t.Errorf("result hash %q is not the final round's digest", res.Hash)
	}
}

func TestExecuteResultShape(t *testing.T) {
	svc := NewHashService(&recordingHasher{})

	res := svc.Execute()

	if !regexp.MustCompile(`^[0-9a-f]{64}$`).MatchString(res.Hash) {
		t.Errorf("hash is not 64 lowercase hex chars: %q", res.Hash)
	}
	if res.Source != Source {
		t.Errorf("source = %q, want %q", res.Source, Source)
	}
	if res.Timestamp <= 0 {
		t.Errorf("timestamp = %d, want > 0", res.Timestamp)
	}
}

func TestExecuteSequentialResultsDiffer(t *testing.T) {
	svc := NewHashService(&recordingHasher{})

	first := svc.Execute()
	second := svc.Execute()

	if first.Hash == second.Hash {
		t.Errorf("sequential executions produced the same hash %q", first.Hash)
	}
	if second.Timestamp < first.Timestamp {
		t.Errorf("timestamps regressed: %d then %d", first.Timestamp, second.Timestamp)
	}
}
