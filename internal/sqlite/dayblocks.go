// Day-block store. The only mutation primitive is replace-for-date:
// callers always submit a date's complete plan, and readers never observe
// a partially written set.
package sqlite

import (
	"database/sql"

	"github.com/dukaforge/cadence/pkg/types"
)

// DayBlockStore provides day-block operations against the owning store's
// connection.
type DayBlockStore struct {
	store *Store
}

// ForDate returns all blocks scheduled on the given YYYY-MM-DD date.
func (bs *DayBlockStore) ForDate(date string) ([]types.DayBlock, error) {
	if date == "" {
		return nil, types.ErrInvalidDate
	}

	bs.store.mu.Lock()
	defer bs.store.mu.Unlock()

	if !bs.store.open {
		return nil, types.ErrStoreClosed
	}

	rows, err := bs.store.db.Query(
		"SELECT id, task_id, date, start_slot, end_slot FROM day_blocks WHERE date = ? ORDER BY start_slot, id",
		date,
	)
	if err != nil {
		return nil, storageErr("list day blocks", err)
	}
	defer rows.Close()

	blocks := make([]types.DayBlock, 0)
	for rows.Next() {
		block, err := scanDayBlock(rows)
		if err != nil {
			return nil, storageErr("list day blocks", err)
		}
		blocks = append(blocks, block)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list day blocks", err)
	}

	return blocks, nil
}

// ReplaceForDate atomically replaces the full block set for a date:
// existing blocks for the date are deleted and the replacement set is
// inserted in one transaction. Every block is validated, and must carry
// the target date, before the database is touched. An empty replacement
// set clears the date.
func (bs *DayBlockStore) ReplaceForDate(date string, blocks []types.DayBlock) error {
	if date == "" {
		return types.ErrInvalidDate
	}
	for _, block := range blocks {
		if err := block.Validate(); err != nil {
			return err
		}
		if block.Date != date {
			return types.ErrDateMismatch
		}
	}

	bs.store.mu.Lock()
	defer bs.store.mu.Unlock()

	if !bs.store.open {
		return types.ErrStoreClosed
	}

	tx, err := bs.store.db.Begin()
	if err != nil {
		return storageErr("replace day blocks", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM day_blocks WHERE date = ?", date); err != nil {
		return storageErr("replace day blocks", err)
	}
	for _, block := range blocks {
		if _, err := tx.Exec(
			"INSERT INTO day_blocks (id, task_id, date, start_slot, end_slot) VALUES (?, ?, ?, ?, ?)",
			block.ID, nullString(block.TaskID), block.Date, block.StartSlot, block.EndSlot,
		); err != nil {
			return storageErr("replace day blocks", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("replace day blocks", err)
	}
	return nil
}

// scanDayBlock hydrates one day_blocks row. A NULL task_id comes back as
// the empty string (unassigned block).
func scanDayBlock(s scanner) (types.DayBlock, error) {
	var (
		block  types.DayBlock
		taskID sql.NullString
	)
	if err := s.Scan(&block.ID, &taskID, &block.Date, &block.StartSlot, &block.EndSlot); err != nil {
		return types.DayBlock{}, err
	}
	block.TaskID = taskID.String
	return block, nil
}
