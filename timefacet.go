package locale

import (
	"strings"
	"time"

	"github.com/dmitrymomot/locale/internal/scan"
)

// DateOrder reports how a locale orders the day, month and year components
// of a numeric date.
type DateOrder int

const (
	NoOrder DateOrder = iota
	DMY
	MDY
	YMD
	YDM
)

// TimeFields is the shared calendar record the time facets parse into and
// format from. Month is 1-based; Weekday counts from Sunday as 0. Fields a
// parse does not mention are left untouched, so a caller composes a full
// date from several unit parses into one record.
type TimeFields struct {
	Sec     int
	Min     int
	Hour    int
	Day     int
	Month   int
	Year    int
	Weekday int
}

// Time returns the record as a time.Time in UTC.
func (f TimeFields) Time() time.Time {
	return time.Date(f.Year, time.Month(f.Month), f.Day, f.Hour, f.Min, f.Sec, 0, time.UTC)
}

// TimeGet parses calendar text one structural unit at a time. Each method
// consumes the longest valid prefix of s, fills the corresponding fields of
// f, and returns the number of bytes consumed. Zero consumption signals
// failure and leaves f untouched.
//
// TimeGet is immutable after construction and safe for concurrent use.
type TimeGet struct {
	order        DateOrder
	weekdays     []string
	weekdaysAbbr []string
	months       []string
	monthsAbbr   []string
}

// TimeGetOption configures a TimeGet during construction.
type TimeGetOption func(*TimeGet)

// NewTimeGet creates a calendar parsing facet. Without options it uses
// English names and month/day/year ordering.
func NewTimeGet(opts ...TimeGetOption) *TimeGet {
	tg := &TimeGet{
		order:        MDY,
		weekdays:     englishWeekdays,
		weekdaysAbbr: englishWeekdaysAbbr,
		months:       englishMonths,
		monthsAbbr:   englishMonthsAbbr,
	}
	for _, opt := range opts {
		opt(tg)
	}
	return tg
}

// WithDateOrder sets the day/month/year ordering for numeric dates.
func WithDateOrder(order DateOrder) TimeGetOption {
	return func(tg *TimeGet) {
		tg.order = order
	}
}

// WithWeekdayNames sets the full and abbreviated weekday names, Sunday
// first. Both slices must have seven entries; short slices are ignored.
func WithWeekdayNames(full, abbr []string) TimeGetOption {
	return func(tg *TimeGet) {
		if len(full) == 7 {
			tg.weekdays = full
		}
		if len(abbr) == 7 {
			tg.weekdaysAbbr = abbr
		}
	}
}

// WithMonthNames sets the full and abbreviated month names, January first.
// Both slices must have twelve entries; short slices are ignored.
func WithMonthNames(full, abbr []string) TimeGetOption {
	return func(tg *TimeGet) {
		if len(full) == 12 {
			tg.months = full
		}
		if len(abbr) == 12 {
			tg.monthsAbbr = abbr
		}
	}
}

// Category returns CategoryTimeGet. Callable on a nil receiver.
func (*TimeGet) Category() Category { return CategoryTimeGet }

// DateOrder returns the locale's day/month/year ordering, used by callers
// composing a full date parse from the individual unit parses.
func (tg *TimeGet) DateOrder() DateOrder { return tg.order }

// GetTime parses a time of day, "HH:MM" or "HH:MM:SS", into Hour, Min and
// Sec.
func (tg *TimeGet) GetTime(s string, f *TimeFields) int {
	h, n := fixedInt(s, 1, 2, 0, 23)
	if n == 0 || n >= len(s) || s[n] != ':' {
		return 0
	}
	m, mn := fixedInt(s[n+1:], 2, 2, 0, 59)
	if mn == 0 {
		return 0
	}
	i := n + 1 + mn

	sec := 0
	if i < len(s) && s[i] == ':' {
		v, sn := fixedInt(s[i+1:], 2, 2, 0, 59)
		if sn == 0 {
			return 0
		}
		sec = v
		i += 1 + sn
	}

	f.Hour, f.Min, f.Sec = h, m, sec
	return i
}

// GetDate parses a numeric date separated by '/', '-' or '.', assigning the
// three components to Day, Month and Year per the locale's date order.
func (tg *TimeGet) GetDate(s string, f *TimeFields) int {
	var parts [3]int
	i := 0
	var sep byte
	for pi := range parts {
		maxDigits := 2
		if tg.yearFirst() && pi == 0 || !tg.yearFirst() && pi == 2 {
			maxDigits = 4
		}
		v, n := fixedInt(s[i:], 1, maxDigits, 0, 9999)
		if n == 0 {
			return 0
		}
		parts[pi] = v
		i += n
		if pi == 2 {
			break
		}
		if i >= len(s) {
			return 0
		}
		c := s[i]
		if c != '/' && c != '-' && c != '.' {
			return 0
		}
		if sep == 0 {
			sep = c
		} else if c != sep {
			return 0
		}
		i++
	}

	var day, month, year int
	switch tg.order {
	case DMY:
		day, month, year = parts[0], parts[1], parts[2]
	case YMD:
		year, month, day = parts[0], parts[1], parts[2]
	case YDM:
		year, day, month = parts[0], parts[1], parts[2]
	default:
		month, day, year = parts[0], parts[1], parts[2]
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0
	}

	f.Day, f.Month, f.Year = day, month, expandYear(year)
	return i
}

// GetWeekday parses a weekday name, full or abbreviated, case-insensitively.
func (tg *TimeGet) GetWeekday(s string, f *TimeFields) int {
	idx, n := matchName(s, tg.weekdays, tg.weekdaysAbbr)
	if n == 0 {
		return 0
	}
	f.Weekday = idx
	return n
}

// GetMonthName parses a month name, full or abbreviated, case-insensitively.
func (tg *TimeGet) GetMonthName(s string, f *TimeFields) int {
	idx, n := matchName(s, tg.months, tg.monthsAbbr)
	if n == 0 {
		return 0
	}
	f.Month = idx + 1
	return n
}

// GetYear parses a year: four digits taken literally, two digits expanded
// with 69 as the century pivot (69-99 map to 1900s, 00-68 to 2000s).
func (tg *TimeGet) GetYear(s string, f *TimeFields) int {
	digits, n := scan.Digits(s, 10)
	if n != 2 && n != 4 {
		return 0
	}
	v := 0
	for _, c := range []byte(digits) {
		v = v*10 + int(c-'0')
	}
	f.Year = expandYear(v)
	return n
}

func (tg *TimeGet) yearFirst() bool {
	return tg.order == YMD || tg.order == YDM
}

// matchName finds the longest case-insensitive prefix match among the full
// and abbreviated name lists. Full names win over abbreviations.
func matchName(s string, full, abbr []string) (idx, n int) {
	idx = -1
	for i, name := range full {
		if len(name) > n && len(s) >= len(name) && strings.EqualFold(s[:len(name)], name) {
			idx, n = i, len(name)
		}
	}
	for i, name := range abbr {
		if len(name) > n && len(s) >= len(name) && strings.EqualFold(s[:len(name)], name) {
			idx, n = i, len(name)
		}
	}
	if idx < 0 {
		return 0, 0
	}
	return idx, n
}

// fixedInt parses between minDigits and maxDigits decimal digits into an
// integer within [lo, hi]. Returns the value and bytes consumed.
func fixedInt(s string, minDigits, maxDigits, lo, hi int) (int, int) {
	n := 0
	v := 0
	for n < len(s) && n < maxDigits && s[n] >= '0' && s[n] <= '9' {
		v = v*10 + int(s[n]-'0')
		n++
	}
	if n < minDigits || v < lo || v > hi {
		return 0, 0
	}
	return v, n
}

func expandYear(y int) int {
	switch {
	case y >= 100:
		return y
	case y >= 69:
		return 1900 + y
	default:
		return 2000 + y
	}
}

// TimePut formats a calendar record into a caller-supplied buffer using Go
// time layouts configured per locale. Output is truncated at the buffer
// boundary, like NumPut.
type TimePut struct {
	dateLayout     string
	timeLayout     string
	dateTimeLayout string
}

// TimePutOption configures a TimePut during construction.
type TimePutOption func(*TimePut)

// NewTimePut creates a calendar formatting facet. Without options it uses
// US layouts: "01/02/2006" and "15:04:05".
func NewTimePut(opts ...TimePutOption) *TimePut {
	tp := &TimePut{
		dateLayout:     "01/02/2006",
		timeLayout:     "15:04:05",
		dateTimeLayout: "01/02/2006 15:04:05",
	}
	for _, opt := range opts {
		opt(tp)
	}
	return tp
}

// WithDateLayout sets the Go time layout for dates.
func WithDateLayout(layout string) TimePutOption {
	return func(tp *TimePut) {
		tp.dateLayout = layout
	}
}

// WithTimeLayout sets the Go time layout for times of day.
func WithTimeLayout(layout string) TimePutOption {
	return func(tp *TimePut) {
		tp.timeLayout = layout
	}
}

// WithDateTimeLayout sets the Go time layout for combined date and time.
func WithDateTimeLayout(layout string) TimePutOption {
	return func(tp *TimePut) {
		tp.dateTimeLayout = layout
	}
}

// Category returns CategoryTimePut. Callable on a nil receiver.
func (*TimePut) Category() Category { return CategoryTimePut }

// Put formats the full record (date and time) and returns the number of
// bytes written.
func (tp *TimePut) Put(dst []byte, flags Flags, f *TimeFields, filler byte) int {
	return emit(dst, f.Time().Format(tp.dateTimeLayout), flags, filler)
}

// PutDate formats only the date components.
func (tp *TimePut) PutDate(dst []byte, flags Flags, f *TimeFields, filler byte) int {
	return emit(dst, f.Time().Format(tp.dateLayout), flags, filler)
}

// PutTime formats only the time-of-day components.
func (tp *TimePut) PutTime(dst []byte, flags Flags, f *TimeFields, filler byte) int {
	return emit(dst, f.Time().Format(tp.timeLayout), flags, filler)
}

var (
	englishWeekdays = []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	}
	englishWeekdaysAbbr = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	englishMonths       = []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	englishMonthsAbbr = []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
)
