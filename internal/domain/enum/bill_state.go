package enum

// BillState tracks a bill through its lifecycle. A bill exists remotely from
// Created onward; Uncommitted means the sale lives only in the local cart.
type BillState int

const (
	BillStateUncommitted BillState = iota
	BillStateCreated
	BillStateDetailed
	BillStateCompleted
	BillStateHeld
	BillStateCancelled
)

// String returns the human-readable state name.
func (s BillState) String() string {
	switch s {
	case BillStateUncommitted:
		return "uncommitted"
	case BillStateCreated:
		return "created"
	case BillStateDetailed:
		return "detailed"
	case BillStateCompleted:
		return "completed"
	case BillStateHeld:
		return "held"
	case BillStateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
