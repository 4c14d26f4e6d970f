package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gookit/color"

	"topic-lab/domain"
	"topic-lab/services"
)

// consoleNotifier renders outbound messages on a writer, one block per
// message. It stands where a chat transport adapter would.
type consoleNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func newConsoleNotifier(out io.Writer) *consoleNotifier {
	return &consoleNotifier{out: out}
}

func (n *consoleNotifier) Notify(_ context.Context, msg domain.Message) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := fmt.Fprintf(n.out, "%s %s\n", color.Cyan.Sprintf("[to %s]", msg.To), msg.Text); err != nil {
		return err
	}
	for _, opt := range msg.Options {
		line := opt.Label
		// Decision tokens have no session to resolve the label against,
		// so the token itself is what the teacher has to type back.
		if isDecisionKey(opt.Key) {
			line = fmt.Sprintf("%s [%s]", opt.Label, opt.Key)
		}
		if _, err := fmt.Fprintf(n.out, "  %s %s\n", color.Yellow.Sprint("·"), line); err != nil {
			return err
		}
	}
	return nil
}

func isDecisionKey(key string) bool {
	return strings.HasPrefix(key, services.ApprovePrefix) || strings.HasPrefix(key, services.DeclinePrefix)
}
