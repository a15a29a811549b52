package history

import "fmt"

var daysInMonth = [12]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Timestamp renders seconds since the Unix epoch as YYYY-MM-DDTHH:MM:SSZ.
// The calendar math is done by hand so no timezone database is consulted.
// Times before the epoch clamp to 1970-01-01T00:00:00Z.
func Timestamp(unix int64) string {
	if unix < 0 {
		unix = 0
	}
	days := unix / 86400
	secs := unix % 86400

	year := int64(1970)
	for {
		n := int64(365)
		if isLeapYear(year) {
			n = 366
		}
		if days < n {
			break
		}
		days -= n
		year++
	}

	month := 0
	for ; month < 12; month++ {
		n := daysInMonth[month]
		if month == 1 && isLeapYear(year) {
			n = 29
		}
		if days < n {
			break
		}
		days -= n
	}

	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02dZ",
		year, month+1, days+1, secs/3600, (secs%3600)/60, secs%60)
}

func isLeapYear(y int64) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}
