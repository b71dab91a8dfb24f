package format

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// Calendar approximations used by FormatWordTime. There is no week unit:
// days run up to 7 and then switch straight to months.
const (
	DaysPerMonth = 30.4
	DaysPerYear  = 365.2425
)

var exponentSign = regexp.MustCompile(`\+0*`)

// FormatWordTime renders a number of seconds as a short word such as "3ms",
// "2h" or "5y". The value walks down a cascade of units, each rule dividing
// into the next unit before the following test:
//
//	0        -> "0s"
//	< 1ms    -> nanoseconds in scientific notation ("5e2ns")
//	< 1s     -> milliseconds
//	< 60s    -> seconds
//	< 60m    -> minutes ("m")
//	< 24h    -> hours
//	< 7d     -> days
//	< 1y     -> months ("M", 30.4 days)
//	< 1000y  -> years
//	beyond   -> years in scientific notation ("3e300y") while log10 < 1000
//
// Anything else, including +Inf and NaN, is "inf".
func FormatWordTime(t float64) string {
	if t == 0 {
		return "0s"
	}
	if t < .001 {
		return strings.ReplaceAll(fmt.Sprintf("%.0ens", t*1e9), "+0", "")
	}
	if t < 1 {
		return fmt.Sprintf("%.0fms", t*1000)
	}
	if t < 60 {
		return fmt.Sprintf("%.0fs", t)
	}
	t /= 60
	if t < 60 {
		return fmt.Sprintf("%.0fm", t)
	}
	t /= 60
	if t < 24 {
		return fmt.Sprintf("%.0fh", t)
	}
	t /= 24
	if t < 7 {
		return fmt.Sprintf("%.0fd", t)
	}
	if t < DaysPerYear {
		return fmt.Sprintf("%.0fM", t/DaysPerMonth)
	}
	t /= DaysPerYear
	if t < 1000 {
		return fmt.Sprintf("%.0fy", t)
	}
	if math.Log10(t) < 1000 {
		return exponentSign.ReplaceAllString(fmt.Sprintf("%.0ey", t), "")
	}
	return "inf"
}

// FormatExecutionDuration formats a measured time.Duration for log output.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
