// Package query extracts a fund code and result count from free-text input.
package query

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// MinTopN and MaxTopN bound the holdings count. The upstream provider
	// hard-caps archive results at 20 rows.
	MinTopN = 1
	MaxTopN = 20

	// DefaultTopN is used when the query names no count.
	DefaultTopN = 20
)

var (
	fundCodePattern  = regexp.MustCompile(`\d{6}`)
	chineseTopNRegex = regexp.MustCompile(`前(\d+)[条大个]`)
	englishTopNRegex = regexp.MustCompile(`(?i)top\s+(\d+)`)

	// Fund name heuristics for queries without a code, tried in order.
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(.+?)基金`),
		regexp.MustCompile(`(.+?)的持仓`),
		regexp.MustCompile(`(.+?)重仓股`),
		regexp.MustCompile(`(.+?)前十大`),
	}

	nonWordRegex = regexp.MustCompile(`[^\w\p{Han}]`)
)

// Request is a parsed holdings query.
type Request struct {
	FundCode string // 6-digit fund code, empty when the query named none
	FundName string // name keyword fallback, empty when a code was found
	TopN     int    // requested holdings count, clamped to [MinTopN, MaxTopN]
}

// Parse extracts the fund code (6 digits) and requested count from a
// free-text query. Counts are recognized in Chinese ("前10条", "前5大",
// "前3个") and English ("top 10") forms; English takes precedence when both
// appear, matching original behavior. Queries naming no count get
// defaultTopN. Without a code, a fund name keyword is extracted instead.
func Parse(input string, defaultTopN int) Request {
	req := Request{TopN: ClampTopN(defaultTopN)}

	if m := chineseTopNRegex.FindStringSubmatch(input); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			req.TopN = n
		}
	}
	if m := englishTopNRegex.FindStringSubmatch(input); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			req.TopN = n
		}
	}
	req.TopN = ClampTopN(req.TopN)

	if m := fundCodePattern.FindString(input); m != "" {
		req.FundCode = m
		return req
	}

	req.FundName = extractName(input)
	return req
}

// ClampTopN clamps a requested holdings count to [MinTopN, MaxTopN].
func ClampTopN(n int) int {
	if n > MaxTopN {
		return MaxTopN
	}
	if n < MinTopN {
		return MinTopN
	}
	return n
}

// IsFundCode reports whether s is a well-formed 6-digit fund code.
func IsFundCode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func extractName(input string) string {
	for _, pattern := range namePatterns {
		if m := pattern.FindStringSubmatch(input); m != nil {
			name := strings.TrimSpace(m[1])
			if len([]rune(name)) > 1 {
				return name
			}
		}
	}
	return nonWordRegex.ReplaceAllString(input, "")
}
