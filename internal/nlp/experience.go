package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// explicitYearPatterns capture "N years experience"-style statements. The
// first capture group is the year count.
var explicitYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+\.?\d*)\s*\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`experience:\s*(\d+\.?\d*)\s*years?`),
	regexp.MustCompile(`(\d+\.?\d*)\s*years?\s+in\s+industry`),
	regexp.MustCompile(`(\d+\.?\d*)\s*years?\s+(?:of\s+)?professional`),
	regexp.MustCompile(`(\d+\.?\d*)\s*years?\s+(?:of\s+)?expertise`),
	regexp.MustCompile(`(\d+\.?\d*)\s*years?\s+(?:of\s+)?relevant`),
}

var monthYearRe = regexp.MustCompile(`(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec)\s+(\d{4})`)

var monthNumbers = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// ExtractExperienceYears estimates total years of experience from text.
// Explicit "N years experience" statements win, taking the maximum across all
// matches. When none exist, the span between the earliest and latest
// "month year" mention is used. Returns 0 when neither strategy succeeds.
func ExtractExperienceYears(text string) int {
	textLower := strings.ToLower(text)

	maxYears := 0
	found := false
	for _, pattern := range explicitYearPatterns {
		for _, m := range pattern.FindAllStringSubmatch(textLower, -1) {
			value, err := strconv.ParseFloat(m[1], 64)
			if err != nil || value <= 0 || value >= 100 {
				continue
			}
			found = true
			if int(value) > maxYears {
				maxYears = int(value)
			}
		}
	}
	if found {
		return maxYears
	}

	return yearsFromDateSpan(textLower)
}

// yearsFromDateSpan computes the whole years between the earliest and latest
// month/year mentions in the text.
func yearsFromDateSpan(textLower string) int {
	mentions := monthYearRe.FindAllStringSubmatch(textLower, -1)
	if len(mentions) < 2 {
		return 0
	}

	dates := make([]time.Time, 0, len(mentions))
	for _, m := range mentions {
		month, ok := monthNumbers[m[1]]
		if !ok {
			month = time.January
		}
		year, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		dates = append(dates, time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	}
	if len(dates) < 2 {
		return 0
	}

	earliest, latest := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
	}

	span := latest.Sub(earliest).Hours() / 24 / 365.25
	if span <= 0 || span >= 100 {
		return 0
	}
	return int(span)
}
