package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitQueue_Dequeue_FIFOOrder(t *testing.T) {
	// GIVEN a queue with customers arriving at minutes 1, 2, 3
	wq := NewWaitQueue()
	for m := 1; m <= 3; m++ {
		wq.Enqueue(NewCustomer(m))
	}

	// WHEN all are dequeued
	// THEN they come out in arrival order
	for want := 1; want <= 3; want++ {
		c, err := wq.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, want, c.ArrivalTime)
	}
	assert.True(t, wq.IsEmpty())
}

func TestWaitQueue_Dequeue_Empty_ReturnsErrEmptyQueue(t *testing.T) {
	// GIVEN an empty queue
	wq := NewWaitQueue()

	// WHEN Dequeue() is called
	_, err := wq.Dequeue()

	// THEN it fails with ErrEmptyQueue
	if !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("Dequeue on empty queue: got %v, want ErrEmptyQueue", err)
	}
}

func TestWaitQueue_Len_TracksEnqueueAndDequeue(t *testing.T) {
	wq := NewWaitQueue()
	assert.Equal(t, 0, wq.Len())

	wq.Enqueue(NewCustomer(0))
	wq.Enqueue(NewCustomer(0))
	assert.Equal(t, 2, wq.Len())
	assert.False(t, wq.IsEmpty())

	_, err := wq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 1, wq.Len())

	_, err = wq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 0, wq.Len())
	assert.True(t, wq.IsEmpty())
}

func TestWaitQueue_Peek_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a queue with customers [A@4, B@5]
	wq := NewWaitQueue()
	wq.Enqueue(NewCustomer(4))
	wq.Enqueue(NewCustomer(5))

	// WHEN Peek() is called
	got, ok := wq.Peek()

	// THEN it returns the front element without removing it
	if !ok || got.ArrivalTime != 4 {
		t.Errorf("Peek: got (%v, %v), want arrival 4", got, ok)
	}
	if wq.Len() != 2 {
		t.Errorf("Peek modified queue length: got %d, want 2", wq.Len())
	}
}

func TestWaitQueue_Peek_Empty_ReturnsFalse(t *testing.T) {
	wq := NewWaitQueue()
	if _, ok := wq.Peek(); ok {
		t.Error("Peek on empty queue: got ok=true, want false")
	}
}

func TestWaitQueue_InterleavedOps_KeepOrderAcrossCompaction(t *testing.T) {
	// GIVEN a long interleaving of enqueues and dequeues that forces compaction
	wq := NewWaitQueue()
	next := 0
	want := 0
	for round := 0; round < 50; round++ {
		for i := 0; i < 5; i++ {
			wq.Enqueue(NewCustomer(next))
			next++
		}
		for i := 0; i < 3; i++ {
			c, err := wq.Dequeue()
			require.NoError(t, err)
			// THEN every dequeue returns the oldest remaining customer
			require.Equal(t, want, c.ArrivalTime)
			want++
		}
		require.Equal(t, next-want, wq.Len())
	}

	for !wq.IsEmpty() {
		c, err := wq.Dequeue()
		require.NoError(t, err)
		require.Equal(t, want, c.ArrivalTime)
		want++
	}
	assert.Equal(t, next, want)
}

func TestWaitQueue_String(t *testing.T) {
	wq := NewWaitQueue()
	assert.Equal(t, "[]", wq.String())
	wq.Enqueue(NewCustomer(1))
	wq.Enqueue(NewCustomer(3))
	assert.Equal(t, "[1 3]", wq.String())
}
