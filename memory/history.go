package memory

// History is the append-only conversation buffer. The conversation loop owns
// it for the duration of one streaming call and is the only writer; callers
// inspect it through Snapshot.
type History struct {
	msgs []Message
}

// NewHistory returns a History seeded with msgs in order.
func NewHistory(msgs ...Message) *History {
	h := &History{}
	for _, m := range msgs {
		h.Append(m)
	}
	return h
}

// Append adds m to the end of the history. Appended messages are never
// mutated afterwards.
func (h *History) Append(m Message) {
	h.msgs = append(h.msgs, m)
}

// Len returns the number of messages appended so far.
func (h *History) Len() int { return len(h.msgs) }

// Messages returns the backing message slice for sending a turn. The slice is
// owned by the History; callers must not modify it or retain it across an
// Append.
func (h *History) Messages() []Message { return h.msgs }

// Snapshot returns a copy of the history safe to hold across further appends.
// Content block slices are copied; raw tool inputs are shared read-only.
func (h *History) Snapshot() []Message {
	out := make([]Message, len(h.msgs))
	for i, m := range h.msgs {
		blocks := make([]ContentBlock, len(m.Content))
		copy(blocks, m.Content)
		out[i] = Message{Role: m.Role, Content: blocks}
	}
	return out
}
