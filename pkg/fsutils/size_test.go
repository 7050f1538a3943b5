package fsutils

import (
	"testing"
)

func TestGetSizeShortText(t *testing.T) {
	const kb = int64(1024)
	tests := []struct {
		size     int64
		expected string
	}{
		{0, "0B"},
		{999, "999B"},
		{1023, "1023B"},
		{kb, "1KB"},
		{kb + kb/2 - 1, "1KB"},
		{kb + kb/2, "2KB"},
		{kb * kb, "1MB"},
		{kb*kb*kb - 1, "1GB"},
		{3 * kb * kb * kb, "3GB"},
		{kb * kb * kb * kb, "1TB"},
		{kb * kb * kb * kb * kb, "1024TB"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			actual := GetSizeShortText(tt.size)
			if actual != tt.expected {
				t.Errorf("GetSizeShortText(%d) = %s; want %s", tt.size, actual, tt.expected)
			}
		})
	}
}
