package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_OnlyFinalCallExecutes(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls int32

	for i := 0; i < 5; i++ {
		d.Do(func() { atomic.AddInt32(&calls, 1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestDebouncer_StopCancelsPendingCall(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls int32

	d.Do(func() { atomic.AddInt32(&calls, 1) })
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestDebouncer_SeparateBurstsBothExecute(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls int32

	d.Do(func() { atomic.AddInt32(&calls, 1) })
	time.Sleep(60 * time.Millisecond)
	d.Do(func() { atomic.AddInt32(&calls, 1) })
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
