package types

// Slot geometry. A day is divided into fixed-width slots; slot 0 starts at
// midnight, so 9:00 is slot 18.
const (
	SlotMinutes = 30
	SlotsPerDay = 24 * 60 / SlotMinutes
)

// DayBlock is a scheduled time interval on a given date, optionally
// associated with a task. An empty TaskID marks an unassigned block and
// persists as NULL.
type DayBlock struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	StartSlot int64  `json:"start_slot"`
	EndSlot   int64  `json:"end_slot"`
}

// Validate checks that the block can be persisted: non-empty ID and date,
// non-negative start, and StartSlot strictly before EndSlot.
func (b DayBlock) Validate() error {
	if b.ID == "" {
		return ErrInvalidID
	}
	if b.Date == "" {
		return ErrInvalidDate
	}
	if b.StartSlot < 0 || b.StartSlot >= b.EndSlot {
		return ErrInvalidSlotRange
	}
	return nil
}
