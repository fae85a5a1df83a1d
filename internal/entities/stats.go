package entities

// OrderStats is the per-customer order summary. Pending includes
// confirmed-but-unpaid orders.
type OrderStats struct {
	Total     int
	Pending   int
	Delivered int
	Cancelled int
}

// SalesStats is the administrative counterpart across all customers.
type SalesStats struct {
	Total     int
	Pending   int
	Confirmed int
	Paid      int
	Shipped   int
	Delivered int
	Cancelled int
}
