package scheduling

import (
	"fmt"
	"strconv"
	"strings"
)

// parseSlotLabel converts a 12-hour slot label such as "2:00 PM" to a
// 24-hour clock offset. Noon stays 12 and midnight becomes 0.
func parseSlotLabel(label string) (hour, minute int, err error) {
	parts := strings.Fields(label)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time label %q", label)
	}

	clock := strings.SplitN(parts[0], ":", 2)
	if len(clock) != 2 {
		return 0, 0, fmt.Errorf("malformed time label %q", label)
	}
	hour, err = strconv.Atoi(clock[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed time label %q", label)
	}
	minute, err = strconv.Atoi(clock[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed time label %q", label)
	}

	switch strings.ToUpper(parts[1]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	default:
		return 0, 0, fmt.Errorf("malformed time label %q", label)
	}
	return hour, minute, nil
}
