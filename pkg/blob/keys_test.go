package blob

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"simple", "stories/p1/twine/v1_1700000000000.json", false},
		{"safe punctuation", "exports/study-1/batch-b!('x').csv", false},
		{"empty", "", true},
		{"leading slash", "/stories/p1/file.json", true},
		{"empty segment", "stories//file.json", true},
		{"dot segment", "stories/./file.json", true},
		{"traversal", "stories/../secrets", true},
		{"space", "stories/p 1/file.json", true},
		{"backslash", `stories\p1\file.json`, true},
		{"percent", "stories/p%201/file.json", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKeyLayouts(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	storyKey := StoryKey("p1", "twine", 3, at)
	assert.Equal(t, "stories/p1/twine/v3_1773480413000.json", storyKey)
	assert.NoError(t, ValidateKey(storyKey))

	exportKey := ExportKey("study1", "b1", "jsonl", at)
	assert.Equal(t, "exports/study1/batch-b1/2026-03-14T09-26-53Z.jsonl", exportKey)
	assert.NoError(t, ValidateKey(exportKey))

	bioKey := BiosignalKey("p1", "eda", "", at)
	assert.Equal(t, "biosignals/p1/eda_1773480413000.json", bioKey)
	assert.NoError(t, ValidateKey(bioKey))

	bioDeviceKey := BiosignalKey("p1", "hr", "polar-h10", at)
	assert.Equal(t, "biosignals/p1/hr_polar-h10_1773480413000.json", bioDeviceKey)
	assert.NoError(t, ValidateKey(bioDeviceKey))
}
