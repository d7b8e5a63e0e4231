package highlight

import (
	"testing"

	"github.com/jsphweid/motifdex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinglePatternCoversBothOccurrences(t *testing.T) {
	seq := []string{"5", "5", "5", "3", "5", "5", "5", "3"}
	matches := []model.PatternMatch[string]{
		{Pattern: []string{"5", "5", "5", "3"}, Occurrences: []int{0, 4}, Count: 2, Length: 4},
	}

	res := Annotate(seq, matches)
	require.Len(t, res, len(seq))
	for i, a := range res {
		assert.Equal(t, seq[i], a.Symbol)
		assert.Equal(t, []int{0}, a.Patterns, "position %d", i)
	}
}

func TestOverlappingPatternsAppendInRankOrder(t *testing.T) {
	seq := []string{"1", "1", "1", "1"}
	matches := []model.PatternMatch[string]{
		{Pattern: []string{"1", "1"}, Occurrences: []int{0, 1, 2}, Count: 3, Length: 2},
		{Pattern: []string{"1", "1", "1"}, Occurrences: []int{0, 1}, Count: 2, Length: 3},
	}

	res := Annotate(seq, matches)
	assert := assert.New(t)
	assert.Equal([]int{0, 1}, res[0].Patterns)
	assert.Equal([]int{0, 0, 1, 1}, res[1].Patterns)
	assert.Equal([]int{0, 0, 1, 1}, res[2].Patterns)
	assert.Equal([]int{0, 1}, res[3].Patterns)
}

func TestUncoveredPositionsAreEmpty(t *testing.T) {
	seq := []string{"1", "2", "7", "1", "2"}
	matches := []model.PatternMatch[string]{
		{Pattern: []string{"1", "2"}, Occurrences: []int{0, 3}, Count: 2, Length: 2},
	}
	res := Annotate(seq, matches)
	assert.Equal(t, []int{}, res[2].Patterns)
	assert.Equal(t, -1, Primary(res[2]))
	assert.Equal(t, 0, Primary(res[3]))
}

func TestOutOfRangeOccurrencesAreIgnored(t *testing.T) {
	seq := []string{"1", "2", "3"}
	matches := []model.PatternMatch[string]{
		{Pattern: []string{"2", "3"}, Occurrences: []int{1, 2}, Count: 2, Length: 2},
	}
	res := Annotate(seq, matches)
	assert.Equal(t, []int{}, res[0].Patterns)
	assert.Equal(t, []int{0}, res[1].Patterns)
	assert.Equal(t, []int{0, 0}, res[2].Patterns)
}

func TestEmptySequence(t *testing.T) {
	assert.Empty(t, Annotate([]string{}, nil))
}

func TestColorForCycles(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("blue", ColorFor(0).Name)
	assert.Equal("red", ColorFor(7).Name)
	assert.Equal("blue", ColorFor(8).Name)
	assert.Equal(None, ColorFor(-1))
}
