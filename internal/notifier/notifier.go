package notifier

import (
	"car-auction/utils"
	"sync"
	"time"
)

// Notification is a message delivered to a single user
type Notification struct {
	Recipient string    `json:"recipient"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sent_at"`
}

// Inbox logs every notification and keeps it for the recipient to read back
type Inbox struct {
	mu    sync.RWMutex
	boxes map[string][]Notification
	now   utils.Clock
}

// NewInbox creates an empty Inbox
func NewInbox(clock utils.Clock) *Inbox {
	if clock == nil {
		clock = utils.SystemClock
	}
	return &Inbox{
		boxes: make(map[string][]Notification),
		now:   clock,
	}
}

// Notify delivers message to recipient
func (i *Inbox) Notify(recipient, message string) {
	n := Notification{Recipient: recipient, Message: message, SentAt: i.now()}

	i.mu.Lock()
	i.boxes[recipient] = append(i.boxes[recipient], n)
	i.mu.Unlock()

	utils.Info("notification sent", map[string]any{
		"recipient": recipient,
		"message":   message,
	})
}

// For returns the notifications delivered to recipient, oldest first
func (i *Inbox) For(recipient string) []Notification {
	i.mu.RLock()
	defer i.mu.RUnlock()

	return append([]Notification(nil), i.boxes[recipient]...)
}
