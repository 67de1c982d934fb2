package utils

import "fmt"

const metersPerMile = 0.000621371

// FormatTravelDuration renders a second count as "H hr M min", dropping
// the hour component when zero
func FormatTravelDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%d hr %d min", hours, minutes)
	}
	return fmt.Sprintf("%d min", minutes)
}

// FormatTravelDistance renders meters as miles with one decimal place
func FormatTravelDistance(meters int) string {
	return fmt.Sprintf("%.1f mi", float64(meters)*metersPerMile)
}
