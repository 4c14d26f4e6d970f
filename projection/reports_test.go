package projection

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"topic-lab/mocks"
	"topic-lab/repositories"
)

func TestReporter(t *testing.T) {
	ctx := context.Background()

	newReporter := func(t *testing.T) (*Reporter, *mocks.MockIAnalyticsRepository, *mocks.MockISearchLogRepository) {
		ctrl := gomock.NewController(t)
		analytics := mocks.NewMockIAnalyticsRepository(ctrl)
		searches := mocks.NewMockISearchLogRepository(ctrl)
		return NewReporter(analytics, searches, 5), analytics, searches
	}

	t.Run("should render the group distribution as a table", func(t *testing.T) {
		req := require.New(t)
		reporter, analytics, _ := newReporter(t)

		analytics.EXPECT().StudentsPerGroup(ctx).Return([]repositories.Bucket{
			{Label: "ИВТ-21", Count: 12},
			{Label: "ПМИ-22", Count: 7},
		}, nil)

		out, err := reporter.GroupDistribution(ctx)
		req.NoError(err)
		req.Contains(out, "ИВТ-21")
		req.Contains(out, "12")
		req.Contains(out, "ПМИ-22")
	})

	t.Run("should explain an empty distribution in words", func(t *testing.T) {
		req := require.New(t)
		reporter, analytics, _ := newReporter(t)

		analytics.EXPECT().StudentsPerGroup(ctx).Return(nil, nil)

		out, err := reporter.GroupDistribution(ctx)
		req.NoError(err)
		req.Equal("No students registered yet.", out)
	})

	t.Run("should list students without a topic as bullets", func(t *testing.T) {
		req := require.New(t)
		reporter, analytics, _ := newReporter(t)

		analytics.EXPECT().StudentsWithoutTopic(ctx).Return([]string{"Ivan Petrov", "Anna Ivanova"}, nil)

		out, err := reporter.StudentsWithoutTopic(ctx)
		req.NoError(err)
		req.Contains(out, "• Ivan Petrov")
		req.Contains(out, "• Anna Ivanova")
	})

	t.Run("should cap popular queries at the configured limit", func(t *testing.T) {
		req := require.New(t)
		reporter, _, searches := newReporter(t)

		searches.EXPECT().Popular(ctx, 5).Return([]repositories.QueryCount{
			{Query: "graphs", Count: 19},
		}, nil)

		out, err := reporter.PopularQueries(ctx)
		req.NoError(err)
		req.Contains(out, "graphs")
		req.Contains(out, "19")
	})
}
