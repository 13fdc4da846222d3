package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskValidate(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr error
	}{
		{"valid minimal", Task{ID: "t1", Title: "Write"}, nil},
		{"missing id", Task{Title: "Write"}, ErrInvalidID},
		{"missing title", Task{ID: "t1"}, ErrInvalidTitle},
		{"empty", Task{}, ErrInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDayBlockValidate(t *testing.T) {
	tests := []struct {
		name    string
		block   DayBlock
		wantErr error
	}{
		{"valid", DayBlock{ID: "b1", Date: "2024-01-01", StartSlot: 18, EndSlot: 20}, nil},
		{"valid unassigned", DayBlock{ID: "b1", Date: "2024-01-01", StartSlot: 0, EndSlot: 1}, nil},
		{"missing id", DayBlock{Date: "2024-01-01", StartSlot: 18, EndSlot: 20}, ErrInvalidID},
		{"missing date", DayBlock{ID: "b1", StartSlot: 18, EndSlot: 20}, ErrInvalidDate},
		{"negative start", DayBlock{ID: "b1", Date: "2024-01-01", StartSlot: -1, EndSlot: 2}, ErrInvalidSlotRange},
		{"zero-length", DayBlock{ID: "b1", Date: "2024-01-01", StartSlot: 18, EndSlot: 18}, ErrInvalidSlotRange},
		{"inverted", DayBlock{ID: "b1", Date: "2024-01-01", StartSlot: 20, EndSlot: 18}, ErrInvalidSlotRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.block.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSlotGeometry(t *testing.T) {
	assert.Equal(t, 48, SlotsPerDay)
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{DataDir: "/data"}.Validate())
	assert.ErrorIs(t, Config{}.Validate(), ErrDataDirEmpty)
}

func TestStorageErrorUnwrap(t *testing.T) {
	inner := ErrNotFound
	err := &StorageError{Op: "get task", Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "get task")
}
