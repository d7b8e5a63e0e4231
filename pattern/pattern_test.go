package pattern

import (
	"math/rand"
	"testing"

	"github.com/jsphweid/motifdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func tokens(s ...string) []string {
	return s
}

func TestShortSequencesHaveNoPatterns(t *testing.T) {
	cases := [][]string{
		nil,
		{},
		{"1"},
		{"1", "1"},
		{"1", "2", "3"},
		{"1", "1", "1"},
	}
	for _, seq := range cases {
		res := Mine(seq)
		assert.NotNil(t, res)
		assert.Empty(t, res, "sequence %v", seq)
	}
}

func TestMaxLength(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, MaxLength(3))
	assert.Equal(2, MaxLength(4))
	assert.Equal(2, MaxLength(5))
	assert.Equal(4, MaxLength(8))
	assert.Equal(8, MaxLength(16))
	assert.Equal(8, MaxLength(200))
}

func TestRepeatedPhrase(t *testing.T) {
	seq := tokens("5", "5", "5", "3", "5", "5", "5", "3")
	res := Mine(seq)

	assert.Equal(t, []model.PatternMatch[string]{
		{Pattern: tokens("5", "5"), Occurrences: []int{0, 1, 4, 5}, Count: 4, Length: 2},
		{Pattern: tokens("5", "5", "5", "3"), Occurrences: []int{0, 4}, Count: 2, Length: 4},
		{Pattern: tokens("5", "5", "5"), Occurrences: []int{0, 4}, Count: 2, Length: 3},
		{Pattern: tokens("5", "5", "3"), Occurrences: []int{1, 5}, Count: 2, Length: 3},
		{Pattern: tokens("5", "3"), Occurrences: []int{2, 6}, Count: 2, Length: 2},
	}, res)
}

func TestOverlappingOccurrences(t *testing.T) {
	res := Mine(tokens("1", "1", "1", "1"))
	assert.Equal(t, []model.PatternMatch[string]{
		{Pattern: tokens("1", "1"), Occurrences: []int{0, 1, 2}, Count: 3, Length: 2},
	}, res)
}

func TestTiesKeepDiscoveryOrder(t *testing.T) {
	res := Mine(tokens("1", "2", "3", "1", "2", "3"))
	require.Len(t, res, 3)

	assert := assert.New(t)
	assert.Equal(tokens("1", "2", "3"), res[0].Pattern)
	assert.Equal(tokens("1", "2"), res[1].Pattern)
	assert.Equal(tokens("2", "3"), res[2].Pattern)
}

func TestNoRepeatsNoPatterns(t *testing.T) {
	res := Mine(tokens("1", "2", "3", "4", "5", "6", "7"))
	assert.Empty(t, res)
}

func TestAccidentalsAreDistinct(t *testing.T) {
	sharp := model.Note{Degree: 4, Accidental: model.Sharp}
	flat := model.Note{Degree: 5, Accidental: model.Flat}
	do := model.Note{Degree: 1}
	res := Mine([]model.Note{do, sharp, do, flat})
	assert.Empty(t, res)

	res = Mine([]model.Note{do, sharp, do, sharp})
	require.Len(t, res, 1)
	assert.Equal(t, []model.Note{do, sharp}, res[0].Pattern)
	assert.Equal(t, []int{0, 2}, res[0].Occurrences)
}

func TestPatternDoesNotAliasInput(t *testing.T) {
	seq := tokens("1", "2", "1", "2")
	res := Mine(seq)
	require.Len(t, res, 1)
	seq[0] = "7"
	assert.Equal(t, tokens("1", "2"), res[0].Pattern)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "5-5-5-3", Key(tokens("5", "5", "5", "3")))
	assert.Equal(t, "1#-7b", Key([]model.Note{
		{Degree: 1, Accidental: model.Sharp},
		{Degree: 7, Accidental: model.Flat},
	}))
}

func TestRankIsStable(t *testing.T) {
	matches := []model.PatternMatch[int]{
		{Pattern: []int{1, 2}, Count: 2, Length: 2},
		{Pattern: []int{3, 4}, Count: 3, Length: 2},
		{Pattern: []int{5, 6}, Count: 2, Length: 2},
		{Pattern: []int{7, 8, 9}, Count: 2, Length: 3},
	}
	Rank(matches)

	assert := assert.New(t)
	assert.Equal([]int{3, 4}, matches[0].Pattern)
	assert.Equal([]int{7, 8, 9}, matches[1].Pattern)
	assert.Equal([]int{1, 2}, matches[2].Pattern)
	assert.Equal([]int{5, 6}, matches[3].Pattern)
}

func TestMinedInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		n := r.Intn(40)
		seq := make([]int, n)
		for i := range seq {
			seq[i] = r.Intn(3)
		}

		res := Mine(seq)
		assert.Equal(t, res, Mine(seq), "mining should be deterministic")

		for i, m := range res {
			assert.Equal(t, len(m.Occurrences), m.Count)
			assert.GreaterOrEqual(t, m.Count, 2)
			assert.GreaterOrEqual(t, m.Length, 2)
			assert.LessOrEqual(t, m.Length, MaxLength(n))
			assert.Len(t, m.Pattern, m.Length)

			for j, start := range m.Occurrences {
				if j > 0 {
					assert.Less(t, m.Occurrences[j-1], start)
				}
				assert.True(t, slices.Equal(seq[start:start+m.Length], m.Pattern))
			}

			for _, other := range res[i+1:] {
				assert.False(t, slices.Equal(m.Pattern, other.Pattern), "duplicate pattern %v", m.Pattern)
			}

			if i > 0 {
				prev := res[i-1]
				ordered := prev.Count > m.Count || (prev.Count == m.Count && prev.Length >= m.Length)
				assert.True(t, ordered, "rank order broken at %d", i)
			}
		}
	}
}
