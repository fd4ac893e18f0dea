package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/aaronzipp/sus-math/internal/models"
	"github.com/google/uuid"
)

// Rand is the random source used for role assignment and task selection.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Perm(n int) []int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded generator. A zero seed draws one from crypto/rand.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = randomSeed()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func randomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// fallback to the clock if crypto fails
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// NewGame creates a match record in the lobby
func NewGame(taskTarget int) *models.Game {
	if taskTarget <= 0 {
		taskTarget = TaskTarget
	}
	return &models.Game{
		ID:         uuid.New().String(),
		Status:     models.StatusLobby,
		TaskTarget: taskTarget,
	}
}

// ImpostorCountFor returns max(1, players/divisor)
func ImpostorCountFor(players, divisor int) int {
	if divisor <= 0 {
		divisor = ImpostorDivisor
	}
	return max(1, players/divisor)
}

// DefaultName returns the name given to player i (1-based) when none was entered
func DefaultName(i int) string {
	return fmt.Sprintf(DefaultNameFormat, i)
}
