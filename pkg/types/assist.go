package types

// Enrichment is the assist layer's answer to "flesh out this task": a short
// description and suggested tags. Field names match the model's JSON
// output contract.
type Enrichment struct {
	Notes string   `json:"notes"`
	Tags  []string `json:"tags"`
}

// PlannedBlock is one scheduled interval proposed by the assist layer.
// Slots use the same geometry as DayBlock.
type PlannedBlock struct {
	TaskID    string `json:"task_id"`
	StartSlot int64  `json:"start_slot"`
	EndSlot   int64  `json:"end_slot"`
}

// PlanResult is the assist layer's proposed schedule, for both initial
// planning and refinement of an existing schedule.
type PlanResult struct {
	Blocks []PlannedBlock `json:"blocks"`
}
