package assist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnrichment(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantNotes string
		wantTags  []string
	}{
		{
			name:      "plain json",
			content:   `{"notes": "Break into subtasks.", "tags": ["planning", "writing"]}`,
			wantNotes: "Break into subtasks.",
			wantTags:  []string{"planning", "writing"},
		},
		{
			name:      "fenced json",
			content:   "```json\n{\"notes\": \"Fenced.\", \"tags\": [\"a\"]}\n```",
			wantNotes: "Fenced.",
			wantTags:  []string{"a"},
		},
		{
			name:      "missing tags normalize to empty",
			content:   `{"notes": "No tags."}`,
			wantNotes: "No tags.",
			wantTags:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseEnrichment(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.wantNotes, got.Notes)
			require.NotNil(t, got.Tags)
			assert.Equal(t, tt.wantTags, got.Tags)
		})
	}
}

func TestParseEnrichmentMalformed(t *testing.T) {
	_, err := parseEnrichment("the model apologized instead of answering")
	assert.Error(t, err)
}

func TestParsePlan(t *testing.T) {
	content := `{"blocks": [{"task_id": "t1", "start_slot": 18, "end_slot": 20}]}`
	got, err := parsePlan(content)
	require.NoError(t, err)
	require.Len(t, got.Blocks, 1)
	assert.Equal(t, "t1", got.Blocks[0].TaskID)
	assert.Equal(t, int64(18), got.Blocks[0].StartSlot)
	assert.Equal(t, int64(20), got.Blocks[0].EndSlot)
}

func TestParsePlanEmptyNormalizes(t *testing.T) {
	got, err := parsePlan(`{}`)
	require.NoError(t, err)
	require.NotNil(t, got.Blocks)
	assert.Empty(t, got.Blocks)
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"language tag", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  ```json\n{\"a\": 1}\n```  ", `{"a": 1}`},
		{"missing closing fence", "```json\n{\"a\": 1}", `{"a": 1}`},
		{"multiline body", "```json\n{\n  \"a\": 1\n}\n```", "{\n  \"a\": 1\n}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.content))
		})
	}
}
