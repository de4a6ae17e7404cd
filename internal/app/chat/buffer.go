/*
Package chat contains the core logic of the chat service.

This file defines the Message value and the MessageBuffer, a bounded FIFO that keeps
only the most recent MaxHistory messages of a room. The buffer is a fixed-size ring:
both append and eviction are O(1), and an empty buffer is a fully usable value with
no lazy initialization step.
*/
package chat

// MaxHistory is the number of messages a room retains. Posting beyond this
// evicts the oldest message.
const MaxHistory = 30

// Message is a single chat message as it appears in a room's history.
// The display name is resolved from the auth key when the message is posted,
// so a later re-registration under a new name leaves history untouched.
type Message struct {
	// DisplayName is the sender's name at the time of posting.
	DisplayName string `json:"displayName"`

	// Body is the message text.
	Body string `json:"body"`
}

// MessageBuffer is a bounded FIFO of the most recent MaxHistory messages.
// The zero value is an empty, ready-to-use buffer. MessageBuffer is not
// concurrency-safe on its own; the owning Room serializes access to it.
type MessageBuffer struct {
	// ring holds the messages; only the count entries starting at head are live.
	ring [MaxHistory]Message

	// head is the index of the oldest live message.
	head int

	// count is the number of live messages (0..MaxHistory).
	count int
}

// Append inserts a message at the tail. When the buffer is already full the
// oldest message is evicted in the same step.
func (b *MessageBuffer) Append(msg Message) {
	if b.count < MaxHistory {
		b.ring[(b.head+b.count)%MaxHistory] = msg
		b.count++
		return
	}

	// Full: the slot holding the oldest message becomes the newest.
	b.ring[b.head] = msg
	b.head = (b.head + 1) % MaxHistory
}

// Len returns the number of messages currently held.
func (b *MessageBuffer) Len() int {
	return b.count
}

// Snapshot returns a copy of the current contents, oldest first.
// An empty buffer yields a non-nil empty slice, so callers can distinguish
// "room with no messages yet" from "no room" without nil checks.
func (b *MessageBuffer) Snapshot() []Message {
	out := make([]Message, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.ring[(b.head+i)%MaxHistory]
	}
	return out
}
