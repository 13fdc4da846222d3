// Shared helpers for cadence CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dukaforge/cadence/internal/assist"
	"github.com/dukaforge/cadence/internal/sqlite"
	"github.com/dukaforge/cadence/pkg/types"
)

// dateLayout is the YYYY-MM-DD encoding used for block dates and due dates.
const dateLayout = "2006-01-02"

// openStore resolves the data directory and opens the store, running the
// backup guard and migrations. The caller must defer store.Close().
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.New()
	if err := store.Open(types.Config{DataDir: dataDir, Model: configModel}); err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return store, nil
}

// assistClient reads the stored credential and builds an assist client.
// The store is only held while reading the setting; the network call
// happens after the caller releases it.
func assistClient(store *sqlite.Store) (*assist.Client, error) {
	apiKey, err := store.Settings().Get(types.SettingAPIKey)
	if err != nil {
		return nil, fmt.Errorf("no API key stored; run: cadence settings set %s <key>", types.SettingAPIKey)
	}
	return assist.NewClient(apiKey, configModel), nil
}

// newID generates a UUID v7 for a new task or block. The stores take ids
// as the caller supplies them; the CLI is that caller.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// today returns the current date in YYYY-MM-DD.
func today() string {
	return time.Now().Format(dateLayout)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseBlockSpec parses a --block value of the form start:end[:task-id]
// into a DayBlock for the given date. Slots are integers.
func parseBlockSpec(spec, date string) (types.DayBlock, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 {
		return types.DayBlock{}, fmt.Errorf("invalid block %q: want start:end[:task-id]", spec)
	}

	start, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return types.DayBlock{}, fmt.Errorf("invalid start slot in %q: %w", spec, err)
	}
	end, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return types.DayBlock{}, fmt.Errorf("invalid end slot in %q: %w", spec, err)
	}

	block := types.DayBlock{
		ID:        newID(),
		Date:      date,
		StartSlot: start,
		EndSlot:   end,
	}
	if len(parts) == 3 {
		block.TaskID = parts[2]
	}

	if err := block.Validate(); err != nil {
		return types.DayBlock{}, fmt.Errorf("invalid block %q: %w", spec, err)
	}
	return block, nil
}

// slotClock formats a slot index as a wall-clock time for human output.
func slotClock(slot int64) string {
	minutes := slot * types.SlotMinutes
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
