package domain

// Option is a selectable choice offered to a participant. The Key is the
// opaque correlation token the transport echoes back on selection; Label is
// display-only and may collide between two options without ambiguity.
type Option struct {
	Key   string
	Label string
}

// Message is an outbound text destined for one participant's chat session.
// Options, when present, describe the choices the transport should render
// as a keyboard.
type Message struct {
	To      Identity
	Text    string
	Options []Option
}
