package messages

import (
	"bytes"
	"testing"
)

func TestPairs(t *testing.T) {
	const (
		n      = 1000
		maxLen = 64
	)

	count := 0
	for pair := range Pairs(n, maxLen) {
		for _, m := range pair {
			if !bytes.HasPrefix(m, []byte(Prefix)) {
				t.Fatalf("expected prefix %s, got %x", Prefix, m)
			}
			if len(m) > len(Prefix)+maxLen {
				t.Fatalf("message of %d bytes exceeds the %d byte bound", len(m), len(Prefix)+maxLen)
			}
		}
		count++
	}

	if count != n {
		t.Fatalf("expected %d pairs, got %d", n, count)
	}
}

func TestPairsEmptyBody(t *testing.T) {
	for pair := range Pairs(10, 0) {
		if string(pair[0]) != Prefix || string(pair[1]) != Prefix {
			t.Fatalf("expected bare prefixes, got %q and %q", pair[0], pair[1])
		}
	}
}
