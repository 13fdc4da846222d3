package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/cadence/pkg/types"
)

func TestParseBlockSpec(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		wantStart  int64
		wantEnd    int64
		wantTaskID string
		wantErr    bool
	}{
		{name: "unassigned block", spec: "18:20", wantStart: 18, wantEnd: 20},
		{name: "assigned block", spec: "18:20:t1", wantStart: 18, wantEnd: 20, wantTaskID: "t1"},
		{name: "missing end", spec: "18", wantErr: true},
		{name: "non-numeric start", spec: "x:20", wantErr: true},
		{name: "non-numeric end", spec: "18:y", wantErr: true},
		{name: "inverted range", spec: "20:18", wantErr: true},
		{name: "negative start", spec: "-1:2", wantErr: true},
		{name: "empty", spec: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := parseBlockSpec(tt.spec, "2024-01-01")
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, block.ID)
			assert.Equal(t, "2024-01-01", block.Date)
			assert.Equal(t, tt.wantStart, block.StartSlot)
			assert.Equal(t, tt.wantEnd, block.EndSlot)
			assert.Equal(t, tt.wantTaskID, block.TaskID)
			assert.NoError(t, block.Validate())
		})
	}
}

func TestSlotClock(t *testing.T) {
	tests := []struct {
		slot int64
		want string
	}{
		{0, "00:00"},
		{1, "00:30"},
		{18, "09:00"},
		{19, "09:30"},
		{int64(types.SlotsPerDay) - 1, "23:30"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slotClock(tt.slot), "slot %d", tt.slot)
	}
}

func TestNewIDUnique(t *testing.T) {
	a, b := newID(), newID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
