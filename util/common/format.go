package common

import (
	"fmt"
)

// FormatBytes renders a byte count as a human readable size.
func FormatBytes(sizeBytes int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	unitIndex := 0
	size := float64(sizeBytes)

	for size >= 1024 && unitIndex < len(units)-1 {
		size /= 1024
		unitIndex++
	}
	return fmt.Sprintf("%.2f%s", size, units[unitIndex])
}
