package dateonly

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	time24Pattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2}(?:\.\d+)?)?$`)
	time12Pattern = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(AM|PM)?$`)
)

// ToTimeInputValue normalizes a wall-clock time to HH:mm. It accepts H:mm,
// HH:mm (optionally with seconds, as time columns are returned) and 12-hour
// "h[:mm] AM|PM". Anything else, including out-of-range values, yields "".
func ToTimeInputValue(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if m := time24Pattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		return clock(h, mins)
	}

	m := time12Pattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	h, _ := strconv.Atoi(m[1])
	mins := 0
	if m[2] != "" {
		mins, _ = strconv.Atoi(m[2])
	}

	switch strings.ToUpper(m[3]) {
	case "PM":
		if h < 1 || h > 12 {
			return ""
		}
		if h != 12 {
			h += 12
		}
	case "AM":
		if h < 1 || h > 12 {
			return ""
		}
		if h == 12 {
			h = 0
		}
	}
	return clock(h, mins)
}

func clock(h, mins int) string {
	if h < 0 || h > 23 || mins < 0 || mins > 59 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", h, mins)
}
