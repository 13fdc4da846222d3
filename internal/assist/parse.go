// Response parsing for the assist layer. Kept as pure functions: the
// model's JSON payload sometimes arrives wrapped in markdown fences, and
// these decoders are the part worth testing without a network.
package assist

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dukaforge/cadence/pkg/types"
)

// parseEnrichment decodes the enrich payload. Tags normalize to a non-nil
// slice.
func parseEnrichment(content string) (types.Enrichment, error) {
	var enrichment types.Enrichment
	if err := json.Unmarshal([]byte(stripFences(content)), &enrichment); err != nil {
		return types.Enrichment{}, fmt.Errorf("decode enrichment: %w", err)
	}
	if enrichment.Tags == nil {
		enrichment.Tags = []string{}
	}
	return enrichment, nil
}

// parsePlan decodes a plan or refine payload. Blocks normalize to a
// non-nil slice.
func parsePlan(content string) (types.PlanResult, error) {
	var plan types.PlanResult
	if err := json.Unmarshal([]byte(stripFences(content)), &plan); err != nil {
		return types.PlanResult{}, fmt.Errorf("decode plan: %w", err)
	}
	if plan.Blocks == nil {
		plan.Blocks = []types.PlannedBlock{}
	}
	return plan, nil
}

// stripFences removes a surrounding markdown code fence, with or without
// a language tag, and leaves anything else untouched.
func stripFences(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 {
		return trimmed
	}
	// Drop the opening fence line (``` or ```json) and a closing fence.
	lines = lines[1:]
	if strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
