// Package report renders fund holdings query results as fixed-width text.
package report

import (
	"fmt"
	"strings"

	"github.com/ternarybob/aestimo/internal/models"
	"github.com/ternarybob/aestimo/internal/valuation"
)

// NotFoundAdvisory is the fixed message for an unavailable holdings result.
const NotFoundAdvisory = "No fund holdings data found. Check that the fund code is correct; " +
	"some funds (money market funds in particular) legitimately disclose no stock holdings."

// Format renders a fund report as a ranked fixed-width table, preceded by the
// fund identity, report date and the weighted valuation estimate. A nil
// report yields the fixed not-found advisory.
func Format(report *models.FundReport) string {
	if report == nil {
		return NotFoundAdvisory
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Fund: %s (%s)\n", report.FundInfo.Name, report.FundInfo.Code))
	sb.WriteString(fmt.Sprintf("Report date: %s\n", report.ReportDate))
	sb.WriteString(fmt.Sprintf("Estimated change today: %s\n", valuation.Estimate(report.Holdings)))
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("%-5s %-10s %-14s %-12s %-10s %s\n",
		"Rank", "Code", "Name", "Weight(%)", "Change", "Value"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	for i, holding := range report.Holdings {
		sb.WriteString(fmt.Sprintf("%-5d %-10s %-14s %-12.2f %-10s %s\n",
			i+1,
			holding.StockCode,
			holding.StockName,
			holding.Proportion,
			holding.ChangePercent,
			holding.MarketValue,
		))
	}

	sb.WriteString(fmt.Sprintf("\nNote: data from the fund's latest disclosed archive; showing the top %d holdings.\n",
		len(report.Holdings)))

	return sb.String()
}

// FormatSearchResults renders fund name search candidates for queries that
// named a fund but not its code.
func FormatSearchResults(keyword string, funds []models.FundSearchResult) string {
	if len(funds) == 0 {
		return fmt.Sprintf("No funds found matching %q. Provide a 6-digit fund code to query holdings.", keyword)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Funds matching %q:\n", keyword))
	for _, fund := range funds {
		sb.WriteString(fmt.Sprintf("  %s  %s (%s)\n", fund.Code, fund.Name, fund.Type))
	}
	sb.WriteString("\nRe-run with one of the codes above to query its holdings.\n")
	return sb.String()
}
