// Package reminder schedules one-shot delayed notifications for users.
//
// Reminders live in memory only. Each reminder runs in its own goroutine and
// is removed automatically when it fires or is cancelled.
package reminder

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// DefaultManager is the global reminder manager.
var DefaultManager = NewManager()

// Reminder is a pending notification.
type Reminder struct {
	ID        string
	GuildID   string
	ChannelID string
	UserID    string
	Text      string
	DueAt     time.Time

	cancel context.CancelFunc
}

// NotifyFunc delivers a fired reminder to the user.
type NotifyFunc func(Reminder)

// Manager tracks pending reminders. It is safe for concurrent use.
type Manager struct {
	mu      sync.Mutex
	seq     int
	pending map[string]*Reminder
	notify  NotifyFunc
}

func NewManager() *Manager {
	return &Manager{pending: make(map[string]*Reminder)}
}

// SetNotify installs the delivery callback. Reminders that fire before a
// callback is set are dropped.
func (m *Manager) SetNotify(fn NotifyFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notify = fn
}

// Schedule arms a reminder and returns its ID.
func (m *Manager) Schedule(guildID, channelID, userID, text string, in time.Duration) string {
	ctx, cancel := context.WithCancel(context.Background())

	m.mu.Lock()
	m.seq++
	r := &Reminder{
		ID:        fmt.Sprintf("r%d", m.seq),
		GuildID:   guildID,
		ChannelID: channelID,
		UserID:    userID,
		Text:      text,
		DueAt:     time.Now().Add(in),
		cancel:    cancel,
	}
	m.pending[r.ID] = r
	m.mu.Unlock()

	go func() {
		timer := time.NewTimer(in)
		defer timer.Stop()

		select {
		case <-timer.C:
			m.mu.Lock()
			delete(m.pending, r.ID)
			fn := m.notify
			m.mu.Unlock()
			if fn != nil {
				fn(*r)
			}
		case <-ctx.Done():
		}
	}()

	return r.ID
}

// Cancel stops a pending reminder. It reports whether anything was cancelled.
func (m *Manager) Cancel(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.pending[id]
	if !ok {
		return false
	}
	r.cancel()
	delete(m.pending, id)
	return true
}

// Pending lists reminders for a user within a guild, soonest first.
func (m *Manager) Pending(guildID, userID string) []Reminder {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Reminder
	for _, r := range m.pending {
		if r.GuildID == guildID && r.UserID == userID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueAt.Before(out[j].DueAt) })
	return out
}

// Shutdown cancels every pending reminder.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.pending {
		r.cancel()
		delete(m.pending, id)
	}
}
