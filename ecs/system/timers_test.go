package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimers_FireInDueOrder(t *testing.T) {
	ts := NewTimers()
	var got []string
	ts.After(30, func() { got = append(got, "c") })
	ts.After(10, func() { got = append(got, "a") })
	ts.After(10, func() { got = append(got, "b") })

	ts.Update(9)
	assert.Empty(t, got)
	ts.Update(25)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Zero(t, ts.Len())
}

func TestTimers_Cancel(t *testing.T) {
	ts := NewTimers()
	fired := false
	tm := ts.After(5, func() { fired = true })
	assert.True(t, tm.Pending())

	tm.Cancel()
	tm.Cancel()
	ts.Update(10)
	assert.False(t, fired)
	assert.False(t, tm.Pending())

	var nilTimer *Timer
	assert.NotPanics(t, nilTimer.Cancel)
}

func TestTimers_ScheduleFromCallback(t *testing.T) {
	ts := NewTimers()
	var got []string
	ts.After(10, func() {
		got = append(got, "outer")
		ts.After(0, func() { got = append(got, "now") })
		ts.After(20, func() { got = append(got, "later") })
	})

	ts.Update(10)
	assert.Equal(t, []string{"outer", "now"}, got)
	ts.Update(19)
	assert.Len(t, got, 2)
	ts.Update(1)
	assert.Equal(t, []string{"outer", "now", "later"}, got)
	assert.Equal(t, 30.0, ts.NowMs())
}
