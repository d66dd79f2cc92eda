package game

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

const (
	minRandomNumber  = 1_000_000_000
	randomNumberSpan = 9_000_000_000
)

// RandomNumber returns a random 10-digit number without a leading zero.
func RandomNumber(rng *rand.Rand) string {
	return strconv.FormatInt(minRandomNumber+rng.Int63n(randomNumberSpan), 10)
}

// RandomDigits returns n uniformly random digits.
func RandomDigits(rng *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}
	return sb.String()
}

// RandomPositions returns count distinct positions in [0, n), sorted ascending.
func RandomPositions(rng *rand.Rand, n, count int) []int {
	if count > n {
		count = n
	}
	positions := rng.Perm(n)[:count]
	sort.Ints(positions)
	return positions
}

// MutateNumber changes count distinct digit positions of number. Every
// replaced digit differs from the original digit at that position.
func MutateNumber(rng *rand.Rand, number string, count int) string {
	b := []byte(number)
	for _, pos := range RandomPositions(rng, len(b), count) {
		// Pick among the nine other digits.
		d := byte('0' + rng.Intn(9))
		if d >= b[pos] {
			d++
		}
		b[pos] = d
	}
	return string(b)
}

// pickContact returns a uniformly random contact.
func pickContact(rng *rand.Rand, contacts []entities.Contact) entities.Contact {
	return contacts[rng.Intn(len(contacts))]
}
