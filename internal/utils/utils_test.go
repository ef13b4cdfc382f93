package utils

import "testing"

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{-1, "0 B"},
		{500, "500 B"},
		{1500, "1.5 kB"},
		{2_000_000, "2.0 MB"},
		{3_500_000_000, "3.5 GB"},
	}

	for _, tt := range tests {
		if got := FormatFileSize(tt.size); got != tt.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		path   string
		maxLen int
		want   string
	}{
		{"/short", 20, "/short"},
		{"/home/user/projects/app", 15, "...projects/app"},
		{"/abcdef", 3, "/ab"},
		{"exact", 5, "exact"},
	}

	for _, tt := range tests {
		if got := TruncatePath(tt.path, tt.maxLen); got != tt.want {
			t.Errorf("TruncatePath(%q, %d) = %q, want %q", tt.path, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight(\"ab\", 5) = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abcd" {
		t.Errorf("PadRight(\"abcdef\", 4) = %q", got)
	}
	if got := PadRight("same", 4); got != "same" {
		t.Errorf("PadRight(\"same\", 4) = %q", got)
	}
}
