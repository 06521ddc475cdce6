package blob

import (
	"fmt"
	"strings"
	"time"
)

// ValidateKey checks an object key against the safe S3 character set and
// rejects path traversal. Allowed characters: letters, digits, and
// ! _ . * ' ( ) / -
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("object key is empty")
	}
	if strings.HasPrefix(key, "/") {
		return fmt.Errorf("object key must not start with '/': %q", key)
	}
	if strings.Contains(key, "//") {
		return fmt.Errorf("object key contains empty path segment: %q", key)
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == "." || segment == ".." {
			return fmt.Errorf("object key contains path traversal: %q", key)
		}
	}
	for _, r := range key {
		if !isSafeKeyRune(r) {
			return fmt.Errorf("object key contains unsafe character %q: %q", r, key)
		}
	}
	return nil
}

func isSafeKeyRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '!', '_', '.', '*', '\'', '(', ')', '/', '-':
		return true
	}
	return false
}

// StoryKey builds the object key for a story artifact version.
// Layout: stories/{participantID}/{pluginType}/v{version}_{epochMillis}.json
func StoryKey(participantID, pluginType string, version int, at time.Time) string {
	return fmt.Sprintf("stories/%s/%s/v%d_%d.json",
		participantID, pluginType, version, at.UnixMilli())
}

// ExportKey builds the object key for a batch export file.
// Layout: exports/{studyID}/batch-{batchID}/{timestamp}.{ext}
func ExportKey(studyID, batchID, ext string, at time.Time) string {
	ts := at.UTC().Format("2006-01-02T15-04-05Z")
	return fmt.Sprintf("exports/%s/batch-%s/%s.%s", studyID, batchID, ts, ext)
}

// BiosignalKey builds the object key for a raw biosignal capture upload.
// Layout: biosignals/{participantID}/{type}[_{deviceID}]_{epochMillis}.json
func BiosignalKey(participantID, signalType, deviceID string, at time.Time) string {
	if deviceID != "" {
		return fmt.Sprintf("biosignals/%s/%s_%s_%d.json",
			participantID, signalType, deviceID, at.UnixMilli())
	}
	return fmt.Sprintf("biosignals/%s/%s_%d.json",
		participantID, signalType, at.UnixMilli())
}
