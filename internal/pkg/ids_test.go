package pkg

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	digits := regexp.MustCompile(`^[0-9]{8}$`)

	seen := make(map[string]struct{})
	for range 100 {
		id, err := GenerateGameID()
		require.NoError(t, err)
		assert.Regexp(t, digits, id)

		seen[id] = struct{}{}
	}

	// collisions among 100 draws out of 10^8 are practically impossible
	assert.Greater(t, len(seen), 95)
}
