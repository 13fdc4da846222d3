package types

// Task represents a single to-do item. IDs are opaque strings assigned by
// the caller (the CLI generates UUID v7) and are stable for the task's
// lifetime.
type Task struct {
	ID         string   `json:"id"`          // Caller-assigned unique ID.
	Title      string   `json:"title"`       // Required, non-empty.
	Done       bool     `json:"done"`        // Completion flag.
	IsToday    bool     `json:"is_today"`    // On today's plan.
	EstMinutes *int64   `json:"est_minutes"` // Estimated effort; nil when unknown.
	Notes      string   `json:"notes"`       // Optional free text; "" persists as NULL.
	Project    string   `json:"project"`     // Optional label; "" persists as NULL.
	Tags       []string `json:"tags"`        // Ordered; never nil after a read.
	Due        string   `json:"due"`         // Optional date, YYYY-MM-DD.
	CreatedAt  string   `json:"created_at"`  // RFC 3339; stamped on first insert when empty.
}

// Validate checks that the task can be persisted. It returns a sentinel
// error from this package on failure.
func (t Task) Validate() error {
	if t.ID == "" {
		return ErrInvalidID
	}
	if t.Title == "" {
		return ErrInvalidTitle
	}
	return nil
}
