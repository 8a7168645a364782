package upload

import (
	"path/filepath"
	"strings"
)

// DefaultContentType is used for any extension outside the fixed table.
const DefaultContentType = "application/octet-stream"

var contentTypes = map[string]string{
	".m4a":  "audio/m4a",
	".flac": "audio/flac",
	".wav":  "audio/wav",
	".opus": "audio/opus",
	".amr":  "audio/amr",
	".caf":  "audio/x-caf",
}

// ContentTypeFor maps a filename extension to its MIME type. The mapping is
// total: unknown extensions map to the generic binary type.
func ContentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return DefaultContentType
}
