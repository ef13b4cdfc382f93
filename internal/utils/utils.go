package utils

import (
	"github.com/dustin/go-humanize"
)

// FormatFileSize formats file size using humanize
func FormatFileSize(size int64) string {
	if size < 0 {
		return "0 B"
	}
	return humanize.Bytes(uint64(size))
}

// TruncatePath truncates a path if it's too long
func TruncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	if maxLen <= 3 {
		return path[:maxLen]
	}
	return "..." + path[len(path)-maxLen+3:]
}

// PadRight pads s with spaces up to width, truncating if it is longer.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	for len(s) < width {
		s += " "
	}
	return s
}
