package testutils

import (
	"time"

	gamedomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/domain"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// TestDataGenerator produces deterministic fake inputs for integration tests.
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a generator with an optional seed.
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}
	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Seed returns the seed the generator was built with.
func (g *TestDataGenerator) Seed() int64 {
	return g.seed
}

// PlayerNames returns n distinct first names.
func (g *TestDataGenerator) PlayerNames(n int) []string {
	seen := make(map[string]bool, n)
	names := make([]string, 0, n)
	for len(names) < n {
		name := g.faker.FirstName()
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// BalancedPoints returns four one-decimal points that sum to zero.
func (g *TestDataGenerator) BalancedPoints() [4]float64 {
	var points [4]float64
	others := make([]gamedomain.SignedEntry, 0, 3)
	for i := 0; i < 3; i++ {
		v := float64(g.faker.Number(0, 600)) / 10
		neg := g.faker.Bool()
		others = append(others, gamedomain.SignedEntry{Value: v, Negative: neg, Present: true})
		points[i] = others[i].Signed()
	}
	points[3] = gamedomain.AutoBalance(others)
	return points
}

// GameEntries builds a four-seat game request for the given players.
func (g *TestDataGenerator) GameEntries(players [4]uuid.UUID, points [4]float64) []gamedomain.EntryInput {
	entries := make([]gamedomain.EntryInput, 4)
	for i := range players {
		score := gamedomain.EstimateScore(points[i], 30000)
		point := points[i]
		chip := g.faker.Number(-3, 3)
		entries[i] = gamedomain.EntryInput{
			PlayerID: players[i].String(),
			Score:    &score,
			Point:    &point,
			Chip:     &chip,
		}
	}
	return entries
}
