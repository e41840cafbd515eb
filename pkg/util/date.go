package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatDateTpl formats a millisecond Unix timestamp using a template with
// YYYY/YY/MM/DD/hh/mm/ss placeholders. Returns "" when ts is zero.
//
// Example:
//
//	FormatDateTpl(1699603200000, "YYYY-MM-DD hh:mm") // "2023-11-10 00:00"
func FormatDateTpl(ts int64, tpl string) string {
	if ts == 0 {
		return ""
	}

	goTpl := tpl
	replacements := map[string]string{
		"YYYY": "2006",
		"YY":   "06",
		"MM":   "01",
		"DD":   "02",
		"hh":   "15",
		"mm":   "04",
		"ss":   "05",
	}
	for k, v := range replacements {
		goTpl = strings.ReplaceAll(goTpl, k, v)
	}

	return time.UnixMilli(ts).Format(goTpl)
}

// HumanDuration renders a duration as "2d 3h 4m 5s", dropping leading zero
// units.
func HumanDuration(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	d = d.Round(time.Second)

	total := int64(d / time.Second)
	days := total / 86400
	hours := total % 86400 / 3600
	mins := total % 3600 / 60
	secs := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}
	parts = append(parts, fmt.Sprintf("%ds", secs))
	return strings.Join(parts, " ")
}
