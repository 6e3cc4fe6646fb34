package eastmoney

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ternarybob/aestimo/internal/models"
)

const archiveFixture = `var apidata={ content:"<div class='boxitem w790'><h4 class='t'><label class='left'>测试成长混合持仓</label><a title='测试成长混合' class='e' href='http://fund.eastmoney.com/005827.html'>基金详情</a><label class='right lab2'>截止至：<font class='px12'>2025-06-30</font></label></h4><table class='w782 comm tzxq'><thead><tr><th>序号</th><th>股票代码</th><th>股票名称</th><th>相关资讯</th><th class='tor'>占净值比例</th><th class='tor'>持股数（万股）</th><th class='tor'>持仓市值（万元）</th></tr></thead><tbody><tr><td>1</td><td><a href='http://quote.eastmoney.com/sh600519.html'>600519</a></td><td class='tol'><a href='http://quote.eastmoney.com/sh600519.html'>贵州茅台</a></td><td class='xglj'><a href='#'>变动详情</a></td><td class='tor'>9.85%</td><td class='tor'>120.55</td><td class='tor'>178,456.78</td></tr><tr><td>2</td><td><a href='http://quote.eastmoney.com/sz000858.html'>000858</a></td><td class='tol'><a href='http://quote.eastmoney.com/sz000858.html'>五粮液</a></td><td class='xglj'><a href='#'>变动详情</a></td><td class='tor'>7.12%</td><td class='tor'>310.00</td><td class='tor'>98,765.00</td></tr></tbody></table></div>",arryear:[2025,2024],curyear:2025};`

func TestParseArchive(t *testing.T) {
	report := parseArchive(archiveFixture, "005827", 20)

	assert.Equal(t, "测试成长混合", report.FundInfo.Name)
	assert.Equal(t, "005827", report.FundInfo.Code)
	assert.Equal(t, "2025-06-30", report.ReportDate)

	require.Len(t, report.Holdings, 2)

	first := report.Holdings[0]
	assert.Equal(t, "600519", first.StockCode)
	assert.Equal(t, "贵州茅台", first.StockName)
	assert.Equal(t, 9.85, first.Proportion)
	assert.Equal(t, "120.55万元", first.MarketValue)
	assert.Equal(t, models.ChangeUnavailable, first.ChangePercent)

	second := report.Holdings[1]
	assert.Equal(t, "000858", second.StockCode)
	assert.Equal(t, "五粮液", second.StockName)
	assert.Equal(t, 7.12, second.Proportion)
}

func TestParseArchive_TruncatesToLimit(t *testing.T) {
	report := parseArchive(archiveFixture, "005827", 1)
	require.Len(t, report.Holdings, 1)
	assert.Equal(t, "600519", report.Holdings[0].StockCode)
}

func TestParseArchive_SingleRowRoundTrip(t *testing.T) {
	body := `var apidata={ content:"<table><tr><td>1</td><td><a>603259</a></td><td><a>药明康德</a></td><td class='tor'>4.50%</td><td class='tor'>1,000.00</td></tr></table>",arryear:[2025]};`

	report := parseArchive(body, "000001", 20)

	require.Len(t, report.Holdings, 1)
	holding := report.Holdings[0]
	assert.Equal(t, "603259", holding.StockCode)
	assert.Equal(t, "药明康德", holding.StockName)
	assert.Equal(t, 4.5, holding.Proportion)

	// Name and date absent from the body: sentinels apply.
	assert.Equal(t, models.UnknownFundName, report.FundInfo.Name)
	assert.Equal(t, models.UnknownReportDate, report.ReportDate)
}

func TestParseArchive_NoRows(t *testing.T) {
	report := parseArchive(`var apidata={ content:"<div>无数据</div>",arryear:[]};`, "000000", 20)
	assert.Empty(t, report.Holdings)
}

func TestParseArchive_SkipsMalformedRows(t *testing.T) {
	body := `var apidata={ content:"<table><tr><td>1</td><td><a>600519</a></td><td><a>贵州茅台</a></td><td class='tor'>not-a-number</td></tr><tr><td>2</td><td><a>000858</a></td><td><a>五粮液</a></td><td class='tor'>7.12%</td><td class='tor'>98,765.00</td></tr></table>",arryear:[]};`

	report := parseArchive(body, "005827", 20)

	require.Len(t, report.Holdings, 1)
	assert.Equal(t, "000858", report.Holdings[0].StockCode)
}

func TestTableFragment_UnescapesQuotes(t *testing.T) {
	body := `var apidata={ content:"<div data-note=\"x\">ok</div>",arryear:[]};`
	assert.Equal(t, `<div data-note="x">ok</div>`, tableFragment(body))
}

func TestTableFragment_FallsBackToBody(t *testing.T) {
	body := `<table><tr><td>1</td></tr></table>`
	assert.Equal(t, body, tableFragment(body))
}
