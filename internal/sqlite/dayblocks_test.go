package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/cadence/pkg/types"
)

func TestReplaceForDateSupersedes(t *testing.T) {
	// Setting a day plan replaces the whole date, never merges into it.
	store := newTestStore(t)
	require.NoError(t, store.Tasks().Save(types.Task{ID: "t1", Title: "Scheduled"}))

	require.NoError(t, store.Blocks().ReplaceForDate("2024-01-01", []types.DayBlock{
		{ID: "b1", TaskID: "t1", Date: "2024-01-01", StartSlot: 18, EndSlot: 20},
		{ID: "b2", Date: "2024-01-01", StartSlot: 20, EndSlot: 22},
	}))

	require.NoError(t, store.Blocks().ReplaceForDate("2024-01-01", []types.DayBlock{
		{ID: "b3", Date: "2024-01-01", StartSlot: 30, EndSlot: 32},
	}))

	blocks, err := store.Blocks().ForDate("2024-01-01")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "b3", blocks[0].ID)
	assert.Equal(t, int64(30), blocks[0].StartSlot)
	assert.Equal(t, int64(32), blocks[0].EndSlot)
}

func TestReplaceForDateEmptyClears(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Blocks().ReplaceForDate("2024-01-01", []types.DayBlock{
		{ID: "b1", Date: "2024-01-01", StartSlot: 18, EndSlot: 20},
	}))

	require.NoError(t, store.Blocks().ReplaceForDate("2024-01-01", nil))

	blocks, err := store.Blocks().ForDate("2024-01-01")
	require.NoError(t, err)
	require.NotNil(t, blocks)
	assert.Empty(t, blocks)
}

func TestReplaceForDateValidatesBeforeWriting(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Blocks().ReplaceForDate("2024-01-01", []types.DayBlock{
		{ID: "b1", Date: "2024-01-01", StartSlot: 18, EndSlot: 20},
	}))

	tests := []struct {
		name    string
		blocks  []types.DayBlock
		wantErr error
	}{
		{
			name: "inverted slot range",
			blocks: []types.DayBlock{
				{ID: "b2", Date: "2024-01-01", StartSlot: 20, EndSlot: 18},
			},
			wantErr: types.ErrInvalidSlotRange,
		},
		{
			name: "missing id",
			blocks: []types.DayBlock{
				{Date: "2024-01-01", StartSlot: 18, EndSlot: 20},
			},
			wantErr: types.ErrInvalidID,
		},
		{
			name: "date mismatch",
			blocks: []types.DayBlock{
				{ID: "b2", Date: "2024-06-15", StartSlot: 18, EndSlot: 20},
			},
			wantErr: types.ErrDateMismatch,
		},
		{
			name: "one bad block rejects the set",
			blocks: []types.DayBlock{
				{ID: "b2", Date: "2024-01-01", StartSlot: 18, EndSlot: 20},
				{ID: "b3", Date: "2024-01-01", StartSlot: -1, EndSlot: 2},
			},
			wantErr: types.ErrInvalidSlotRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Blocks().ReplaceForDate("2024-01-01", tt.blocks)
			require.ErrorIs(t, err, tt.wantErr)

			// The existing plan is untouched.
			blocks, err := store.Blocks().ForDate("2024-01-01")
			require.NoError(t, err)
			require.Len(t, blocks, 1)
			assert.Equal(t, "b1", blocks[0].ID)
		})
	}
}

func TestForDateScopedToDate(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Blocks().ReplaceForDate("2024-01-01", []types.DayBlock{
		{ID: "b1", Date: "2024-01-01", StartSlot: 18, EndSlot: 20},
	}))
	require.NoError(t, store.Blocks().ReplaceForDate("2024-01-02", []types.DayBlock{
		{ID: "b2", Date: "2024-01-02", StartSlot: 18, EndSlot: 20},
	}))

	blocks, err := store.Blocks().ForDate("2024-01-01")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "b1", blocks[0].ID)

	blocks, err = store.Blocks().ForDate("2024-01-03")
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestForDateOrderedByStartSlot(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Blocks().ReplaceForDate("2024-01-01", []types.DayBlock{
		{ID: "late", Date: "2024-01-01", StartSlot: 30, EndSlot: 32},
		{ID: "early", Date: "2024-01-01", StartSlot: 18, EndSlot: 20},
	}))

	blocks, err := store.Blocks().ForDate("2024-01-01")
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "early", blocks[0].ID)
	assert.Equal(t, "late", blocks[1].ID)
}

func TestUnassignedBlockRoundTrips(t *testing.T) {
	// An empty task id stores as NULL and reads back as "".
	store := newTestStore(t)
	require.NoError(t, store.Blocks().ReplaceForDate("2024-01-01", []types.DayBlock{
		{ID: "b1", Date: "2024-01-01", StartSlot: 18, EndSlot: 20},
	}))

	var taskID any
	require.NoError(t, store.db.QueryRow(
		"SELECT task_id FROM day_blocks WHERE id = ?", "b1",
	).Scan(&taskID))
	assert.Nil(t, taskID)

	blocks, err := store.Blocks().ForDate("2024-01-01")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Empty(t, blocks[0].TaskID)
}
