package services

import (
	"fmt"
	"time"
)

// TimeAgo buckets the elapsed time since t into the display strings the
// request and testimonial cards use: "Just now" under a minute, then
// minutes, hours and days. There are deliberately no week/month/year
// buckets.
func TimeAgo(t, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())
	if seconds < 60 {
		return "Just now"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}

// DaysRemaining returns the ceiling of whole days between today and the
// event date, both normalized to midnight. 0 means the event is today;
// negative means it is already past (callers prune those).
func DaysRemaining(eventDate, today time.Time) int {
	diff := midnight(eventDate).Sub(midnight(today))
	days := int(diff.Hours() / 24)
	if diff > 0 && diff.Hours() != float64(days*24) {
		days++
	}
	return days
}

// DaysRemainingLabel renders the badge text shown on event cards.
func DaysRemainingLabel(days int) string {
	if days == 0 {
		return "Today"
	}
	if days == 1 {
		return "1 Day Left"
	}
	return fmt.Sprintf("%d Days Left", days)
}
