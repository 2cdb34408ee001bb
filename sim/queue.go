// Implements the WaitQueue, which holds all customers waiting for a teller.
// Customers are enqueued on arrival and served strictly in arrival order.

package sim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyQueue is returned by Dequeue when no customer is waiting.
// Callers check IsEmpty first; hitting this error inside the simulator is a bug.
var ErrEmptyQueue = errors.New("dequeue from empty wait queue")

// compactThreshold is the number of consumed slots after which the backing
// slice is shifted down so it does not grow without bound during long runs.
const compactThreshold = 64

// WaitQueue represents a FIFO queue of customers waiting to be served.
// The backing slice keeps consumed entries in front of head until
// enough of them pile up to be worth compacting.
type WaitQueue struct {
	queue []Customer
	head  int // index of the front customer in queue
}

// NewWaitQueue returns an empty queue.
func NewWaitQueue() *WaitQueue {
	return &WaitQueue{}
}

// Enqueue adds a customer to the back of the wait queue.
func (wq *WaitQueue) Enqueue(c Customer) {
	wq.queue = append(wq.queue, c)
}

// Dequeue removes and returns the customer at the front of the queue.
func (wq *WaitQueue) Dequeue() (Customer, error) {
	if wq.IsEmpty() {
		return Customer{}, ErrEmptyQueue
	}
	c := wq.queue[wq.head]
	wq.queue[wq.head] = Customer{}
	wq.head++

	switch {
	case wq.head == len(wq.queue):
		wq.queue = wq.queue[:0]
		wq.head = 0
	case wq.head >= compactThreshold && wq.head*2 >= len(wq.queue):
		n := copy(wq.queue, wq.queue[wq.head:])
		wq.queue = wq.queue[:n]
		wq.head = 0
	}
	return c, nil
}

// IsEmpty reports whether no customer is waiting.
func (wq *WaitQueue) IsEmpty() bool {
	return wq.Len() == 0
}

// Len returns the number of customers in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue) - wq.head
}

// Peek returns the customer at the front of the queue without removing it.
// The boolean is false if the queue is empty.
func (wq *WaitQueue) Peek() (Customer, bool) {
	if wq.IsEmpty() {
		return Customer{}, false
	}
	return wq.queue[wq.head], true
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	items := wq.queue[wq.head:]
	for i, val := range items {
		sb.WriteString(fmt.Sprint(val.ArrivalTime))
		if i < len(items)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
