package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"topic-lab/domain"
	"topic-lab/services"
)

func TestConsoleNotifier(t *testing.T) {
	ctx := context.Background()

	t.Run("should print decision tokens next to their labels", func(t *testing.T) {
		req := require.New(t)
		var buf bytes.Buffer
		n := newConsoleNotifier(&buf)

		requestID := uuid.New()
		approve := services.ApprovePrefix + requestID.String()
		decline := services.DeclinePrefix + requestID.String()

		err := n.Notify(ctx, domain.Message{
			To:   "teacher-7",
			Text: "Student Ivan Petrov asks to reserve «Graph sharding».",
			Options: []domain.Option{
				{Key: approve, Label: "Approve"},
				{Key: decline, Label: "Decline"},
			},
		})
		req.NoError(err)

		out := buf.String()
		req.Contains(out, fmt.Sprintf("Approve [%s]", approve))
		req.Contains(out, fmt.Sprintf("Decline [%s]", decline))
	})

	t.Run("should print plain labels for session-scoped options", func(t *testing.T) {
		req := require.New(t)
		var buf bytes.Buffer
		n := newConsoleNotifier(&buf)

		err := n.Notify(ctx, domain.Message{
			To:   "student-42",
			Text: "Pick the topic:",
			Options: []domain.Option{
				{Key: "topic:1", Label: "Graph sharding"},
			},
		})
		req.NoError(err)

		out := buf.String()
		req.Contains(out, "Graph sharding")
		req.NotContains(out, "topic:1")
	})
}
