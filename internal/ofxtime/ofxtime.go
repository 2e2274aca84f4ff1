package ofxtime

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// Accepted shapes:
//
//	YYYYMMDD
//	YYYYMMDDHHMMSS
//	YYYYMMDDHHMMSS.XXX
//	YYYYMMDDHHMMSS.XXX[gmt offset:tz name]
var pattern = regexp.MustCompile(`^\s*` +
	`(\d{4})(\d{2})(\d{2})` +
	`(?:(\d{2})(\d{2})(\d{2}))?` +
	`(?:\.(\d{3}))?` +
	`(?:\[([-+]?[.\d]+):\w{3}\])?` +
	`\s*$`)

const (
	grpYear = iota + 1
	grpMonth
	grpDay
	grpHour
	grpMin
	grpSec
	grpMillis
	grpOffset
)

// Parse converts an OFX datetime into a time.Time whose zone is the bracketed
// offset (UTC when none is given). Milliseconds are dropped and the zone name
// is not kept. Anything outside the grammar, or naming an impossible calendar
// moment, returns ok == false.
func Parse(s string) (time.Time, bool) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	year := atoi(m[grpYear])
	month := atoi(m[grpMonth])
	day := atoi(m[grpDay])
	hour := atoi(m[grpHour])
	minute := atoi(m[grpMin])
	sec := atoi(m[grpSec])

	loc := time.UTC
	if m[grpOffset] != "" {
		hours, err := strconv.ParseFloat(m[grpOffset], 64)
		if err != nil || math.Abs(hours) >= 24 {
			return time.Time{}, false
		}
		loc = time.FixedZone("", int(math.Round(hours*3600)))
	}

	t := time.Date(year, time.Month(month), day, hour, minute, sec, 0, loc)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); reject it instead.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != sec {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
