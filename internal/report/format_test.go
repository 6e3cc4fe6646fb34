package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ternarybob/aestimo/internal/models"
)

func TestFormat(t *testing.T) {
	fundReport := &models.FundReport{
		FundInfo:   models.FundInfo{Name: "测试成长混合", Code: "005827"},
		ReportDate: "2025-06-30",
		Holdings: []models.HoldingRecord{
			{StockCode: "600519", StockName: "贵州茅台", Proportion: 10, MarketValue: "178,456.78万元", ChangePercent: "+2.00%"},
			{StockCode: "000858", StockName: "五粮液", Proportion: 5, MarketValue: "98,765.00万元", ChangePercent: "-4.00%"},
			{StockCode: "430047", StockName: "诺思兰德", Proportion: 3, MarketValue: "1,000.00万元", ChangePercent: "--"},
		},
	}

	out := Format(fundReport)

	assert.Contains(t, out, "Fund: 测试成长混合 (005827)")
	assert.Contains(t, out, "Report date: 2025-06-30")
	// (10*2.00 + 5*(-4.00)) / 15 = 0.00, sentinel row excluded
	assert.Contains(t, out, "Estimated change today: +0.00%")
	assert.Contains(t, out, "top 3 holdings")

	// Rank order must match the report's holdings order.
	maotai := strings.Index(out, "600519")
	wuliangye := strings.Index(out, "000858")
	nuosilande := strings.Index(out, "430047")
	assert.True(t, maotai < wuliangye && wuliangye < nuosilande)

	// Proportions render with two decimals, changes verbatim.
	assert.Contains(t, out, "10.00")
	assert.Contains(t, out, "-4.00%")
	assert.Contains(t, out, "--")
}

func TestFormat_Unavailable(t *testing.T) {
	out := Format(nil)
	assert.Equal(t, NotFoundAdvisory, out)
	assert.Contains(t, out, "money market")
}

func TestFormatSearchResults(t *testing.T) {
	funds := []models.FundSearchResult{
		{Code: "005827", Name: "易方达蓝筹精选混合", Type: "混合型"},
	}

	out := FormatSearchResults("易方达", funds)
	assert.Contains(t, out, "005827")
	assert.Contains(t, out, "易方达蓝筹精选混合")

	empty := FormatSearchResults("nothing", nil)
	assert.Contains(t, empty, "No funds found")
}
