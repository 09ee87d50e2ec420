package testutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/MrMalina/Hero-Wars/internal/model"
)

// ChatMessage — одно записанное чат-сообщение. Target == nil означает
// broadcast.
type ChatMessage struct {
	Target model.Player
	Text   string
}

// ChatRecorder записывает чат-вывод вместо отправки в игру.
// Структурно совместим с session.Messenger.
type ChatRecorder struct {
	mu       sync.Mutex
	messages []ChatMessage
}

func (c *ChatRecorder) Tell(p model.Player, format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, ChatMessage{Target: p, Text: fmt.Sprintf(format, args...)})
}

func (c *ChatRecorder) Broadcast(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, ChatMessage{Text: fmt.Sprintf(format, args...)})
}

// Messages returns every recorded message in send order.
func (c *ChatRecorder) Messages() []ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Contains reports whether any recorded message contains substr.
func (c *ChatRecorder) Contains(substr string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.messages {
		if strings.Contains(m.Text, substr) {
			return true
		}
	}
	return false
}

// Reset discards recorded messages.
func (c *ChatRecorder) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}
