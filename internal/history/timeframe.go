package history

import (
	"fmt"
	"time"
)

// ParseTimeframe converts a cleanup timeframe argument into the cutoff time:
// entries created before the cutoff are removed. Accepted forms are 1d, 1w,
// 2w, 1m (30 days), all, or an absolute YYYY-MM-DD date.
func ParseTimeframe(arg string, now time.Time) (time.Time, error) {
	switch arg {
	case "all":
		return now, nil
	case "1d":
		return now.AddDate(0, 0, -1), nil
	case "1w":
		return now.AddDate(0, 0, -7), nil
	case "2w":
		return now.AddDate(0, 0, -14), nil
	case "1m":
		return now.AddDate(0, 0, -30), nil
	}
	cutoff, err := time.Parse("2006-01-02", arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timeframe %q: use 1d, 1w, 2w, 1m, all, or YYYY-MM-DD", arg)
	}
	return cutoff, nil
}
