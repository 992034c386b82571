package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	ErrInvalidSlotTime = errors.New("invalid slot time")
	ErrInvalidDate     = errors.New("invalid date format")
)

var slotTimeRegex = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)

// ParseSlotTime переводит строку "HH:MM" в момент времени на сегодняшнюю дату.
// Дата и часовой пояс берутся из now, секунды и наносекунды обнуляются.
func ParseSlotTime(s string, now time.Time) (time.Time, error) {
	hours, minutes, err := parseClock(s)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := now.Date()
	return time.Date(year, month, day, hours, minutes, 0, 0, now.Location()), nil
}

// parseClock проверяет "H:M"/"HH:MM" без привязки к дате.
func parseClock(s string) (hours, minutes int, err error) {
	m := slotTimeRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSlotTime, s)
	}
	hours, _ = strconv.Atoi(m[1])
	minutes, _ = strconv.Atoi(m[2])
	if hours > 23 || minutes > 59 {
		return 0, 0, fmt.Errorf("%w: %q out of range", ErrInvalidSlotTime, s)
	}
	return hours, minutes, nil
}

// Форматы, которые принимаются для createdAt/updatedAt.
// Дата-время без зоны трактуется как локальное время, чистая дата как полночь UTC.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		time.RFC1123Z,
		time.RFC1123,
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
	dateOnlyLayout = "2006-01-02"
)

// ParseDate разбирает строку даты/времени общего вида.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}
