package util

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/lucasepe/codename"
)

// LockedRand is a time-seeded math/rand source that is safe to share.
type LockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRNG() *LockedRand {
	source := rand.NewSource(time.Now().UnixNano())
	return &LockedRand{rng: rand.New(source)}
}

// Intn returns a uniform index in [0, n). It panics if n <= 0, as math/rand does.
func (r *LockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Intn(n)
}

// GenerateRunID returns a readable identifier such as "blessed-kingfisher".
func GenerateRunID() (string, error) {
	rng, err := codename.DefaultRNG()
	if err != nil {
		return "", err
	}
	return strings.ToLower(codename.Generate(rng, 0)), nil
}
