package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleFires(t *testing.T) {
	m := NewManager()
	fired := make(chan Reminder, 1)
	m.SetNotify(func(r Reminder) { fired <- r })

	id := m.Schedule("g1", "c1", "u1", "stretch", 10*time.Millisecond)
	require.NotEmpty(t, id)

	select {
	case r := <-fired:
		assert.Equal(t, "stretch", r.Text)
		assert.Equal(t, "u1", r.UserID)
	case <-time.After(time.Second):
		t.Fatal("reminder never fired")
	}

	assert.Empty(t, m.Pending("g1", "u1"))
}

func TestCancel(t *testing.T) {
	m := NewManager()
	fired := make(chan Reminder, 1)
	m.SetNotify(func(r Reminder) { fired <- r })

	id := m.Schedule("g1", "c1", "u1", "never", 50*time.Millisecond)
	require.True(t, m.Cancel(id))
	assert.False(t, m.Cancel(id))

	select {
	case <-fired:
		t.Fatal("cancelled reminder fired")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestPendingSortedByDue(t *testing.T) {
	m := NewManager()
	m.Schedule("g1", "c1", "u1", "later", time.Hour)
	m.Schedule("g1", "c1", "u1", "sooner", time.Minute)
	m.Schedule("g1", "c1", "u2", "other user", time.Minute)

	pending := m.Pending("g1", "u1")
	require.Len(t, pending, 2)
	assert.Equal(t, "sooner", pending[0].Text)
	assert.Equal(t, "later", pending[1].Text)

	m.Shutdown()
	assert.Empty(t, m.Pending("g1", "u1"))
}
