package martdb

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Night window: departures at or after 20:00 and before 06:00.
const (
	nightStartHour = 20
	nightEndHour   = 6
)

// IsNightHour reports whether an hour of day falls within the night window.
func IsNightHour(hour int) bool {
	h := ((hour % 24) + 24) % 24
	return h >= nightStartHour || h < nightEndHour
}

// NewTimeOfDay parses an HH:MM or HH:MM:SS value into time dimension
// attributes. Hours of 24 and above are wrapped into the next day, the way
// GTFS feeds encode services running past midnight.
func NewTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}, fmt.Errorf("invalid time value %q", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 {
		return TimeOfDay{}, fmt.Errorf("invalid hour in time value %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute in time value %q", value)
	}
	second := 0
	if len(parts) == 3 {
		second, err = strconv.Atoi(parts[2])
		if err != nil || second < 0 || second > 59 {
			return TimeOfDay{}, fmt.Errorf("invalid second in time value %q", value)
		}
	}

	hour %= 24
	return TimeOfDay{
		Value:   fmt.Sprintf("%02d:%02d:%02d", hour, minute, second),
		Hour:    hour,
		Minute:  minute,
		Second:  second,
		IsNight: IsNightHour(hour),
	}, nil
}

// NewCalendarDate parses a YYYY-MM-DD value into calendar dimension
// attributes. The surrogate key is the YYYYMMDD integer of the value.
func NewCalendarDate(value string) (CalendarDate, error) {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid date value %q: %w", value, err)
	}

	year, month, day := parsed.Date()
	return CalendarDate{
		Key:   int64(year*10000 + int(month)*100 + day),
		Value: parsed.Format("2006-01-02"),
		Year:  year,
		Month: int(month),
		Day:   day,
	}, nil
}

// IsCrossBorder reports whether two station country labels name different
// countries. Labels are compared after trimming and uppercasing; an unknown
// (empty) label on either side is treated as not cross-border.
func IsCrossBorder(departureCountry, arrivalCountry string) bool {
	dep := strings.ToUpper(strings.TrimSpace(departureCountry))
	arr := strings.ToUpper(strings.TrimSpace(arrivalCountry))
	if dep == "" || arr == "" {
		return false
	}
	return dep != arr
}
