package messages

import (
	"crypto/rand"
	"log"
	mrand "math/rand"

	"github.com/optable/ot/pkg/ot"
)

// Prefix marks every generated message so that a correct guess is easy to
// tell apart from keystream noise
const Prefix = "m:"

// Pairs generates n message pairs on a channel and then closes it. Each
// message is Prefix followed by up to maxLen random bytes, the body length
// of each message is drawn independently so that both sides of a pair
// usually differ in size.
func Pairs(n, maxLen int) <-chan ot.Message {
	out := make(chan ot.Message)
	go func() {
		defer close(out)
		for i := 0; i < n; i++ {
			out <- ot.Message{fresh(maxLen), fresh(maxLen)}
		}
	}()
	return out
}

// fresh returns Prefix and a random body of length [0, maxLen]
func fresh(maxLen int) []byte {
	n := 0
	if maxLen > 0 {
		n = mrand.Intn(maxLen + 1)
	}
	b := make([]byte, len(Prefix)+n)
	copy(b, Prefix)
	if _, err := rand.Read(b[len(Prefix):]); err != nil {
		log.Fatalf("could not generate a message body of %d bytes", n)
	}
	return b
}
