package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeDonorName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
		want  string
	}{
		{name: "both sides present", first: "Jane", last: "Smith", want: "Jane Smith"},
		{name: "both sides missing keeps the separator", first: "", last: "", want: " "},
		{name: "first only keeps trailing space", first: "Jane", last: "", want: "Jane "},
		{name: "business only keeps leading space", first: "", last: "Acme Drilling LLC", want: " Acme Drilling LLC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComposeDonorName(tt.first, tt.last))
		})
	}
}

func TestSelfFundingScore(t *testing.T) {
	t.Run("identical names score 100", func(t *testing.T) {
		assert.Equal(t, 100, SelfFundingScore("Jane Smith", "Jane Smith"))
	})

	t.Run("token order does not matter", func(t *testing.T) {
		score := SelfFundingScore("Jane Smith", "Smith, Jane")
		assert.GreaterOrEqual(t, score, 79, "reordered name should clear the self-funding threshold")
	})

	t.Run("case does not matter", func(t *testing.T) {
		assert.Equal(t, 100, SelfFundingScore("JANE SMITH", "jane smith"))
	})

	t.Run("unrelated names score low", func(t *testing.T) {
		score := SelfFundingScore("Jane Smith", "John Q Public")
		assert.Less(t, score, 79)
	})

	t.Run("empty candidate scores zero", func(t *testing.T) {
		assert.Equal(t, 0, SelfFundingScore("", "Jane Smith"))
	})

	t.Run("blank donor scores zero", func(t *testing.T) {
		// A record with no donor name at all composes to a single space.
		assert.Equal(t, 0, SelfFundingScore("Jane Smith", " "))
	})
}

func TestIsSelfFunded(t *testing.T) {
	assert.True(t, IsSelfFunded(79, 79), "threshold value itself is self-funded")
	assert.False(t, IsSelfFunded(78, 79))
	assert.True(t, IsSelfFunded(100, 79))
}
