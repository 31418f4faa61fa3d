package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFake_AdvanceFiresInOrder(t *testing.T) {
	f := NewFake(epoch)
	var fired []string

	f.Schedule(30*time.Millisecond, func() { fired = append(fired, "b") })
	f.Schedule(10*time.Millisecond, func() { fired = append(fired, "a") })
	f.Schedule(30*time.Millisecond, func() { fired = append(fired, "c") })

	f.Advance(20 * time.Millisecond)
	assert.Equal(t, []string{"a"}, fired)
	assert.Equal(t, epoch.Add(20*time.Millisecond), f.Now())

	f.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"a", "b", "c"}, fired)
	assert.Equal(t, 0, f.Pending())
}

func TestFake_NestedScheduling(t *testing.T) {
	f := NewFake(epoch)
	var at []time.Duration

	f.Schedule(10*time.Millisecond, func() {
		at = append(at, f.Now().Sub(epoch))
		f.Schedule(10*time.Millisecond, func() {
			at = append(at, f.Now().Sub(epoch))
		})
	})

	f.Advance(25 * time.Millisecond)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, at)
}

func TestFake_RunAll(t *testing.T) {
	f := NewFake(epoch)
	count := 0
	for i := 0; i < 5; i++ {
		f.Schedule(time.Duration(i)*time.Second, func() { count++ })
	}

	end := f.RunAll()
	assert.Equal(t, 5, count)
	assert.Equal(t, epoch.Add(4*time.Second), end)
}

func TestFake_NegativeDelay(t *testing.T) {
	f := NewFake(epoch)
	ran := false
	f.Schedule(-time.Second, func() { ran = true })

	f.Advance(0)
	assert.True(t, ran)
	assert.Equal(t, epoch, f.Now())
}
