package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const gameIDDigits = 8

var gameIDLimit = big.NewInt(100_000_000)

// GenerateGameID - generates a random eight digit identifier for a game session.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, gameIDLimit)
	if err != nil {
		return "", fmt.Errorf("failed to read random number: %w", err)
	}

	return fmt.Sprintf("%0*d", gameIDDigits, n), nil
}
