// Package generator produces the synthetic comment dataset shown on the
// dashboard.
package generator

import (
	"encoding/binary"
	"encoding/hex"
	"errors"
	"math/rand/v2"
	"time"

	"faredash/app/models"

	"golang.org/x/crypto/sha3"
)

// DefaultPool is the hardcoded set of public comments.
var DefaultPool = []string{
	"This new fare system is fairer, I support it.",
	"Too expensive for long-distance travelers!",
	"I am confused about how the new fare works.",
	"It is a good initiative, but needs more clarity.",
	"Great move by the government.",
	"Unfair to students and low-income earners.",
	"People should stop spreading lies about the prices.",
	"It is confusing and no one explained it to us.",
	"Prices increased suddenly. Why?",
	"Much better than flat fares.",
}

// DefaultStartDate is the first day of the generated range.
var DefaultStartDate = time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

// DefaultReplicas is how many times the pool is repeated.
const DefaultReplicas = 3

// Options configure a Generator. Zero fields take defaults.
type Options struct {
	Pool      []string
	StartDate time.Time
	Replicas  int
	// Seed fixes the shuffle. Zero draws a fresh seed per dataset.
	Seed uint64
	Now  func() time.Time
}

// Generator builds datasets of (date, comment) records.
type Generator struct {
	pool      []string
	startDate time.Time
	replicas  int
	seed      uint64
	now       func() time.Time
}

// New validates opts and returns a Generator.
func New(opts Options) (*Generator, error) {
	g := &Generator{
		pool:      opts.Pool,
		startDate: opts.StartDate,
		replicas:  opts.Replicas,
		seed:      opts.Seed,
		now:       opts.Now,
	}
	if len(g.pool) == 0 {
		g.pool = DefaultPool
	}
	if g.startDate.IsZero() {
		g.startDate = DefaultStartDate
	}
	if g.replicas == 0 {
		g.replicas = DefaultReplicas
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.replicas < 0 {
		return nil, errors.New("replicas must be positive")
	}
	for _, c := range g.pool {
		if c == "" {
			return nil, errors.New("comment pool contains an empty comment")
		}
	}
	y, m, d := g.startDate.Date()
	g.startDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return g, nil
}

// Size is the number of records in every dataset.
func (g *Generator) Size() int {
	return len(g.pool) * g.replicas
}

// Fingerprint identifies the inputs of the generator. Datasets generated
// with the same fingerprint are interchangeable.
func (g *Generator) Fingerprint() string {
	h := sha3.New256()
	var buf [8]byte
	for _, c := range g.pool {
		binary.BigEndian.PutUint64(buf[:], uint64(len(c)))
		h.Write(buf[:])
		h.Write([]byte(c))
	}
	h.Write([]byte(g.startDate.Format(models.DateLayout)))
	binary.BigEndian.PutUint64(buf[:], uint64(g.replicas))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], g.seed)
	h.Write(buf[:])
	return hex.EncodeToString(h.Sum(nil))[:32]
}

// Generate builds a dataset: one record per day starting at the start date,
// with the replicated pool shuffled over the days.
func (g *Generator) Generate() *models.Dataset {
	seed := g.seed
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	comments := make([]string, 0, g.Size())
	for i := 0; i < g.replicas; i++ {
		comments = append(comments, g.pool...)
	}
	rng.Shuffle(len(comments), func(i, j int) {
		comments[i], comments[j] = comments[j], comments[i]
	})

	records := make([]models.CommentRecord, len(comments))
	for i, c := range comments {
		records[i] = models.NewCommentRecord(g.startDate.AddDate(0, 0, i), c)
	}

	return &models.Dataset{
		Key:         g.Fingerprint(),
		Seed:        seed,
		GeneratedAt: g.now().UTC(),
		Records:     records,
	}
}
