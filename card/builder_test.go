package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected [NumRanks]uint8
		hasError bool
	}{
		{
			name:     "Single card",
			input:    "3",
			expected: [NumRanks]uint8{Rank3: 1},
		},
		{
			name:     "Trio with kicker",
			input:    "3334",
			expected: [NumRanks]uint8{Rank3: 3, Rank4: 1},
		},
		{
			name:     "With 10",
			input:    "10JQKA",
			expected: [NumRanks]uint8{Rank10: 1, RankJ: 1, RankQ: 1, RankK: 1, RankA: 1},
		},
		{
			name:     "Rocket",
			input:    "BR",
			expected: [NumRanks]uint8{RankBlackJoker: 1, RankRedJoker: 1},
		},
		{
			name:     "Invalid character",
			input:    "3X5",
			hasError: true,
		},
		{
			name:     "Five of a kind",
			input:    "33333",
			hasError: true,
		},
		{
			name:     "Double red joker",
			input:    "RR",
			hasError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hand, err := Parse(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, hand.Counts())
			}
		})
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		specs    []CountSpec
		expected [NumRanks]uint8
		err      error
	}{
		{
			name:     "Explicit counts",
			specs:    []CountSpec{{Rank3, 4}, {Rank4, 2}},
			expected: [NumRanks]uint8{Rank3: 4, Rank4: 2},
		},
		{
			name:     "Zero count defaults to one",
			specs:    []CountSpec{{Rank: RankK}, {Rank: RankBlackJoker}},
			expected: [NumRanks]uint8{RankK: 1, RankBlackJoker: 1},
		},
		{
			name:  "Duplicate rank",
			specs: []CountSpec{{Rank3, 1}, {Rank3, 2}},
			err:   ErrDuplicateRank,
		},
		{
			name:  "Rank out of range",
			specs: []CountSpec{{Rank: Rank(20)}},
			err:   ErrInvalidRank,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			hand, err := Build(tt.specs...)
			if tt.err != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, hand.Counts())
			}
		})
	}
}

func TestBuildOverLimit(t *testing.T) {
	t.Parallel()

	_, err := Build(CountSpec{Rank: Rank3, Count: 5})
	require.Error(t, err)

	var countErr *CountError
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, Rank3, countErr.Rank)
}
