// Defines the Customer type: one person waiting at the counter.

package sim

import "fmt"

// Unserved marks a Customer whose service has not started yet.
const Unserved = -1

// Customer is a single arrival at the counter.
// ServiceStartTime stays Unserved until a teller picks the customer up,
// after which the customer is never mutated again.
type Customer struct {
	ArrivalTime      int // minute the customer joined the queue
	ServiceStartTime int // minute a teller started serving, or Unserved
	WaitTime         int // ServiceStartTime - ArrivalTime, 0 until served
}

// NewCustomer creates an unserved customer that arrived at the given minute.
func NewCustomer(arrival int) Customer {
	return Customer{
		ArrivalTime:      arrival,
		ServiceStartTime: Unserved,
	}
}

// Served reports whether a teller has started serving this customer.
func (c Customer) Served() bool {
	return c.ServiceStartTime != Unserved
}

// startService records the minute service began and derives the wait time.
func (c *Customer) startService(minute int) {
	if c.Served() {
		panic(fmt.Sprintf("startService: customer arriving at %d already served at %d", c.ArrivalTime, c.ServiceStartTime))
	}
	if minute < c.ArrivalTime {
		panic(fmt.Sprintf("startService: minute %d precedes arrival %d", minute, c.ArrivalTime))
	}
	c.ServiceStartTime = minute
	c.WaitTime = minute - c.ArrivalTime
}

func (c Customer) String() string {
	if !c.Served() {
		return fmt.Sprintf("Customer{arrived=%d, waiting}", c.ArrivalTime)
	}
	return fmt.Sprintf("Customer{arrived=%d, served=%d, wait=%d}", c.ArrivalTime, c.ServiceStartTime, c.WaitTime)
}
