package stats

import (
	"fmt"
	"time"
)

// Stats accumulates byte totals for successfully converted files only;
// skipped and failed tasks never touch it.
type Stats struct {
	Files          int
	OriginalBytes  int64
	ConvertedBytes int64
}

func (s *Stats) Add(originalBytes, convertedBytes int64) {
	s.Files++
	s.OriginalBytes += originalBytes
	s.ConvertedBytes += convertedBytes
}

// Ratio is converted/original. Zero when nothing was converted.
func (s Stats) Ratio() float64 {
	if s.OriginalBytes == 0 {
		return 0
	}
	return float64(s.ConvertedBytes) / float64(s.OriginalBytes)
}

// SpaceSaved is negative when the batch grew the data.
func (s Stats) SpaceSaved() int64 {
	return s.OriginalBytes - s.ConvertedBytes
}

func FormatSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024.0 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024.0
	}
	return fmt.Sprintf("%.2f TB", size)
}

func FormatDuration(d time.Duration) string {
	secs := d.Seconds()
	switch {
	case secs < 60:
		return fmt.Sprintf("%.2f seconds", secs)
	case secs < 3600:
		minutes := int(secs) / 60
		return fmt.Sprintf("%d minutes %.2f seconds", minutes, secs-float64(minutes*60))
	default:
		hours := int(secs) / 3600
		minutes := (int(secs) % 3600) / 60
		return fmt.Sprintf("%d hours %d minutes %.2f seconds", hours, minutes, secs-float64(hours*3600+minutes*60))
	}
}
