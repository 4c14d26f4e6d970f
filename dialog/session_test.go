package dialog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"topic-lab/domain"
)

func TestStore(t *testing.T) {
	t.Run("should treat an idle-expired session as cancelled", func(t *testing.T) {
		req := require.New(t)
		st := NewStore(10 * time.Minute)
		current := time.Now()
		st.now = func() time.Time { return current }

		st.Begin("student-42", KindRegistration, stepRole)
		_, ok := st.Get("student-42")
		req.True(ok)

		current = current.Add(11 * time.Minute)
		_, ok = st.Get("student-42")
		req.False(ok)
		req.Equal(0, st.Len())
	})

	t.Run("should touch a session on every lookup", func(t *testing.T) {
		req := require.New(t)
		st := NewStore(10 * time.Minute)
		current := time.Now()
		st.now = func() time.Time { return current }

		st.Begin("student-42", KindAuthor, stepTitle)
		for range 3 {
			current = current.Add(9 * time.Minute)
			_, ok := st.Get("student-42")
			req.True(ok)
		}
	})

	t.Run("should replace an in-progress dialog on Begin", func(t *testing.T) {
		req := require.New(t)
		st := NewStore(time.Minute)

		st.Begin("student-42", KindRegistration, stepRole)
		st.Begin("student-42", KindSearch, stepSearchMode)

		sess, ok := st.Get("student-42")
		req.True(ok)
		req.Equal(KindSearch, sess.Kind)
		req.Equal(1, st.Len())
	})

	t.Run("should sweep only the idle sessions", func(t *testing.T) {
		req := require.New(t)
		st := NewStore(10 * time.Minute)
		current := time.Now()
		st.now = func() time.Time { return current }

		st.Begin("student-1", KindRegistration, stepRole)
		current = current.Add(11 * time.Minute)
		st.Begin("student-2", KindRegistration, stepRole)

		req.Equal(1, st.EvictIdle())
		req.Equal(1, st.Len())
		_, ok := st.Get("student-2")
		req.True(ok)
	})
}

func TestSessionOptions(t *testing.T) {
	t.Run("should resolve typed labels case-insensitively to keys", func(t *testing.T) {
		req := require.New(t)
		st := NewStore(time.Minute)
		sess := st.Begin("student-42", KindReserve, stepPickTopic)

		sess.Offer([]domain.Option{
			{Key: "topic:1", Label: "Graph Sharding"},
			{Key: "topic:2", Label: "Cache warmup strategies"},
		})

		key, ok := sess.Resolve("  graph sharding ")
		req.True(ok)
		req.Equal("topic:1", key)

		_, ok = sess.Resolve("quantum gardening")
		req.False(ok)
	})

	t.Run("should accept the opaque key echoed back by the transport", func(t *testing.T) {
		req := require.New(t)
		st := NewStore(time.Minute)
		sess := st.Begin("student-42", KindReserve, stepPickTopic)

		sess.Offer([]domain.Option{{Key: "topic:1", Label: "Graph Sharding"}})

		key, ok := sess.Resolve("topic:1")
		req.True(ok)
		req.Equal("topic:1", key)
	})

	t.Run("should keep every option reachable when labels collide", func(t *testing.T) {
		req := require.New(t)
		st := NewStore(time.Minute)
		sess := st.Begin("student-42", KindReserve, stepPickTopic)

		options := []domain.Option{
			{Key: "topic:1", Label: "Graph Algorithms"},
			{Key: "topic:2", Label: "Graph Algorithms"},
			{Key: "topic:3", Label: "Graph Algorithms"},
		}
		sess.Offer(options)

		req.Equal("Graph Algorithms", options[0].Label)
		req.Equal("Graph Algorithms (2)", options[1].Label)
		req.Equal("Graph Algorithms (3)", options[2].Label)

		key, ok := sess.Resolve("graph algorithms")
		req.True(ok)
		req.Equal("topic:1", key)

		key, ok = sess.Resolve("Graph Algorithms (2)")
		req.True(ok)
		req.Equal("topic:2", key)

		key, ok = sess.Resolve("topic:3")
		req.True(ok)
		req.Equal("topic:3", key)
	})

	t.Run("should forget previous options on a new offer", func(t *testing.T) {
		req := require.New(t)
		st := NewStore(time.Minute)
		sess := st.Begin("student-42", KindReserve, stepPickTopic)

		sess.Offer([]domain.Option{{Key: "topic:1", Label: "Graph sharding"}})
		sess.Offer([]domain.Option{{Key: "topic:2", Label: "Cache warmup strategies"}})

		_, ok := sess.Resolve("Graph sharding")
		req.False(ok)
	})
}
