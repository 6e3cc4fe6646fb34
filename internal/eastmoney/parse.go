package eastmoney

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ternarybob/aestimo/internal/models"
)

// The archive endpoint answers with a JavaScript assignment
// (var apidata={ content:"<div>...</div>",arryear:[...],...};) whose content
// field embeds the holdings table. The outer payload is not parseable markup,
// so the fund title and report date are lifted with the provider's known
// attribute patterns; the table itself is well-formed enough for a tolerant
// fragment scan.
var (
	fundNameRegex   = regexp.MustCompile(`title='([^']+)'[^>]*href='http://fund\.eastmoney\.com/\d+\.html'`)
	reportDateRegex = regexp.MustCompile(`截止至：<font[^>]*>(\d{4}-\d{2}-\d{2})</font>`)
	contentRegex    = regexp.MustCompile(`(?s)content:"(.*?)",arryear`)

	stockCodeRegex   = regexp.MustCompile(`^\d+$`)
	proportionRegex  = regexp.MustCompile(`^[\d.]+%$`)
	marketValueRegex = regexp.MustCompile(`^[\d,]+(?:\.\d+)?$`)
)

// parseArchive extracts a FundReport from an archive response body. Missing
// name and date fall back to their unknown sentinels; rows are truncated to
// limit. A report with zero holdings is the caller's cue for unavailability.
func parseArchive(body, fundCode string, limit int) *models.FundReport {
	name := models.UnknownFundName
	if m := fundNameRegex.FindStringSubmatch(body); m != nil {
		name = m[1]
	}

	date := models.UnknownReportDate
	if m := reportDateRegex.FindStringSubmatch(body); m != nil {
		date = m[1]
	}

	return &models.FundReport{
		FundInfo:   models.FundInfo{Name: name, Code: fundCode},
		ReportDate: date,
		Holdings:   parseHoldingRows(tableFragment(body), limit),
	}
}

// tableFragment extracts the embedded HTML fragment from the JS assignment,
// undoing the escaped quotes. Falls back to the full body when the wrapper
// is absent (already-bare fragments, test fixtures).
func tableFragment(body string) string {
	if m := contentRegex.FindStringSubmatch(body); m != nil {
		return strings.ReplaceAll(m[1], `\"`, `"`)
	}
	return body
}

func parseHoldingRows(fragment string, limit int) []models.HoldingRecord {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	var holdings []models.HoldingRecord
	doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if len(holdings) >= limit {
			return false
		}
		if record, ok := parseHoldingRow(row); ok {
			holdings = append(holdings, record)
		}
		return true
	})
	return holdings
}

// parseHoldingRow reads one table row: the stock code is the first cell whose
// anchor text is all digits, the stock name the anchor in the cell right
// after it, the weight the first right-aligned percentage cell past the name
// and the market value the next right-aligned numeric cell. Header rows and
// rows missing any field are skipped.
func parseHoldingRow(row *goquery.Selection) (models.HoldingRecord, bool) {
	record := models.HoldingRecord{ChangePercent: models.ChangeUnavailable}
	cells := row.Find("td")

	codeIndex := -1
	cells.EachWithBreak(func(i int, cell *goquery.Selection) bool {
		text := strings.TrimSpace(cell.Find("a").First().Text())
		if text != "" && stockCodeRegex.MatchString(text) {
			codeIndex = i
			record.StockCode = text
			return false
		}
		return true
	})
	if codeIndex < 0 {
		return record, false
	}

	record.StockName = strings.TrimSpace(cells.Eq(codeIndex + 1).Find("a").First().Text())
	if record.StockName == "" {
		return record, false
	}

	haveProportion := false
	cells.EachWithBreak(func(i int, cell *goquery.Selection) bool {
		if i <= codeIndex+1 || !cell.HasClass("tor") {
			return true
		}
		text := strings.TrimSpace(cell.Text())
		if !haveProportion {
			if proportionRegex.MatchString(text) {
				value, err := strconv.ParseFloat(strings.TrimSuffix(text, "%"), 64)
				if err == nil {
					record.Proportion = value
					haveProportion = true
				}
			}
			return true
		}
		if marketValueRegex.MatchString(text) {
			record.MarketValue = text + "万元"
			return false
		}
		return true
	})

	if !haveProportion || record.MarketValue == "" {
		return record, false
	}
	return record, true
}
