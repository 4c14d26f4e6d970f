package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"topic-lab/domain"
)

func TestMatcher(t *testing.T) {
	desc := "Measuring cache warmup strategies under load."
	cards := []domain.TopicCard{
		{ID: 1, Title: "Graph Sharding", Keywords: []string{"graphs", "distributed"}},
		{ID: 2, Title: "Latency budgets", Keywords: []string{"cache"}, Description: &desc},
		{ID: 3, Title: "Compiler pipelines", Keywords: []string{"parsing"}},
	}

	t.Run("should match across title keywords and description", func(t *testing.T) {
		req := require.New(t)
		m, err := NewMatcher([]string{"cache"})
		req.NoError(err)

		hits := m.Filter(cards)
		req.Len(hits, 1)
		req.Equal(int64(2), hits[0].ID)
	})

	t.Run("should ignore case and separators", func(t *testing.T) {
		req := require.New(t)
		m, err := NewMatcher([]string{"graph-sharding"})
		req.NoError(err)

		req.True(m.MatchCard(cards[0]))
		req.False(m.MatchCard(cards[2]))
	})

	t.Run("should keep a card matched by any of several terms", func(t *testing.T) {
		req := require.New(t)
		m, err := NewMatcher([]string{"parsing", "distributed"})
		req.NoError(err)

		hits := m.Filter(cards)
		req.Len(hits, 2)
	})

	t.Run("should refuse a query with nothing searchable", func(t *testing.T) {
		req := require.New(t)
		_, err := NewMatcher([]string{"...", "  "})
		req.ErrorIs(err, ErrEmptyQuery)
	})
}

func TestParseKeywords(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"graphs", "cache warmup"}, ParseKeywords(" graphs , cache warmup ,, "))
	req.Nil(ParseKeywords("  ,  "))
}
