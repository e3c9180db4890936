package base64

import "strings"

const (
	scheme    = "data:"
	separator = ";base64,"
)

// GetContentType extracts the MIME type from a data URL such as
// "data:image/png;base64,...". It returns an empty string when the
// base64 separator is missing or sits before the scheme prefix ends.
func GetContentType(file string) string {
	end := strings.Index(file, separator)
	if end < len(scheme) {
		return ""
	}

	return file[len(scheme):end]
}
