// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package solrdate normalizes catalog date strings to the index date format.
//
// Catalogers type dates freely: "1998", "1998-3", "03/15/1998", "[ca. 1998]",
// "March 1998". [Sanitize] reduces all of them to a full timestamp, filling
// a missing month or day with 01 and clamping impossible days to the end of
// the month.
package solrdate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layout is the index date format.
const Layout = "2006-01-02T15:04:05Z"

var (
	leadingYear  = regexp.MustCompile(`^\d{4}`)
	approximate  = regexp.MustCompile(`(?i)^(?:circa|ca\.?|c\.?)\s*`)
	yearMonthDay = regexp.MustCompile(`^\d{4}-(\d{1,2})(?:-(\d{1,2}))?`)
	monthDayYear = regexp.MustCompile(`(\d{1,2})[-/](\d{1,2})[-/](\d{4})`)
	monthYear    = regexp.MustCompile(`(\d{1,2})[-/](\d{4})`)
	fourDigits   = regexp.MustCompile(`\b(\d{4})\b`)
	oneOrTwo     = regexp.MustCompile(`\b(\d{1,2})\b`)
	words        = regexp.MustCompile(`\p{L}+`)
)

// months maps month names and their common abbreviations in the catalog
// languages to month numbers.
var months = map[string]time.Month{
	"january": time.January, "jan": time.January, "janvier": time.January, "januar": time.January, "enero": time.January, "gennaio": time.January, "januari": time.January,
	"february": time.February, "feb": time.February, "fevrier": time.February, "février": time.February, "februar": time.February, "febrero": time.February, "febbraio": time.February, "februari": time.February,
	"march": time.March, "mar": time.March, "mars": time.March, "märz": time.March, "marzo": time.March, "maart": time.March,
	"april": time.April, "apr": time.April, "avril": time.April, "abril": time.April, "aprile": time.April,
	"may": time.May, "mai": time.May, "mayo": time.May, "maggio": time.May, "mei": time.May,
	"june": time.June, "jun": time.June, "juin": time.June, "juni": time.June, "junio": time.June, "giugno": time.June,
	"july": time.July, "jul": time.July, "juillet": time.July, "juli": time.July, "julio": time.July, "luglio": time.July,
	"august": time.August, "aug": time.August, "aout": time.August, "août": time.August, "agosto": time.August, "augustus": time.August,
	"september": time.September, "sep": time.September, "sept": time.September, "septembre": time.September, "septiembre": time.September, "settembre": time.September,
	"october": time.October, "oct": time.October, "octobre": time.October, "oktober": time.October, "octubre": time.October, "ottobre": time.October,
	"november": time.November, "nov": time.November, "novembre": time.November, "noviembre": time.November,
	"december": time.December, "dec": time.December, "decembre": time.December, "décembre": time.December, "dezember": time.December, "diciembre": time.December, "dicembre": time.December,
}

/*
Sanitize converts a free-form date to "YYYY-MM-DDT00:00:00Z".

Returns:
  - string: The normalized date
  - bool: False when no year can be recognized; the string is then empty
*/
func Sanitize(raw string) (string, bool) {
	date := strings.TrimSpace(strings.NewReplacer("[", "", "]", "").Replace(raw))
	date = approximate.ReplaceAllString(date, "")
	if date == "" || strings.EqualFold(date, "n.d.") {
		return "", false
	}

	var year, month, day int
	if leadingYear.MatchString(date) {
		year, month, day = parseYearFirst(date)
	} else {
		var ok bool
		if year, month, day, ok = parseFreeForm(date); !ok {
			return "", false
		}
	}

	return format(year, month, day), true
}

// parseYearFirst handles "YYYY", "YYYY-M", "YYYY-MM-DD" and punctuated
// variants such as "1998/03/15" or "1998--1999".
func parseYearFirst(date string) (year, month, day int) {
	year, _ = strconv.Atoi(date[:4])

	date = strings.NewReplacer(".", "", " ", "", "?", "").Replace(date)
	date = strings.NewReplacer("/", "-", "--", "-").Replace(date)
	date, _, _ = strings.Cut(date, "&")

	month, day = 1, 1
	if m := yearMonthDay.FindStringSubmatch(date); m != nil {
		month, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			day, _ = strconv.Atoi(m[2])
		}
	}
	return year, month, day
}

// parseFreeForm handles dates whose first characters are not a year:
// "MM/DD/YYYY", "MM/YYYY" and text with a month name and a year.
func parseFreeForm(date string) (year, month, day int, ok bool) {
	if m := monthDayYear.FindStringSubmatch(date); m != nil {
		month, _ = strconv.Atoi(m[1])
		day, _ = strconv.Atoi(m[2])
		year, _ = strconv.Atoi(m[3])
		return year, month, day, true
	}

	if m := monthYear.FindStringSubmatch(date); m != nil {
		month, _ = strconv.Atoi(m[1])
		year, _ = strconv.Atoi(m[2])
		return year, month, 1, true
	}

	y := fourDigits.FindStringSubmatch(date)
	if y == nil {
		return 0, 0, 0, false
	}
	year, _ = strconv.Atoi(y[1])

	for _, word := range words.FindAllString(strings.ToLower(date), -1) {
		if m, found := months[word]; found {
			month = int(m)
			break
		}
	}
	if month == 0 {
		return 0, 0, 0, false
	}

	day = 1
	if d := oneOrTwo.FindStringSubmatch(date); d != nil {
		day, _ = strconv.Atoi(d[1])
	}
	return year, month, day, true
}

// format renders a date, repairing out-of-range components: a bad month
// becomes January and a bad day moves back to the last day of the month.
func format(year, month, day int) string {
	if month < 1 || month > 12 {
		month = 1
	}
	if day < 1 {
		day = 1
	}
	if last := daysIn(year, time.Month(month)); day > last {
		day = last
	}
	return fmt.Sprintf("%04d-%02d-%02dT00:00:00Z", year, month, day)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SharesPrefix reports whether any of the reference dates ("YYYY" or
// "YYYY-MM") is a prefix of the normalized date.
func SharesPrefix(normalized string, references []string) bool {
	for _, ref := range references {
		if ref != "" && strings.HasPrefix(normalized, ref) {
			return true
		}
	}
	return false
}
