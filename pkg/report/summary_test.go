package report

import (
	"testing"

	"github.com/julianyeong/EAP-Profit-Automation/pkg/models"
	"github.com/stretchr/testify/require"
)

func record(date string, category models.Category, net int64) models.CrawlRecord {
	return models.CrawlRecord{
		FilingDate: date,
		Title:      "테스트 품의",
		Category:   category,
		NetAmount:  net,
	}
}

func TestBuildMonthlySummary(t *testing.T) {
	records := []models.CrawlRecord{
		record("2025-03-05", models.CategorySales, 1_000_000),
		record("2025-03-20", models.CategorySales, 500_000),
		record("2025-03-12", models.CategoryPurchase, 600_000),
		record("2025-05-01", models.CategorySales, 2_000_000),
		record("2025-01-15", models.CategoryPurchase, 300_000),
	}

	summary := BuildMonthlySummary(records)

	require.Len(t, summary, 3)

	// 년월 오름차순
	require.Equal(t, "2025-01", summary[0].Month)
	require.Equal(t, int64(0), summary[0].SalesAmount)
	require.Equal(t, int64(300_000), summary[0].PurchaseAmount)
	require.Equal(t, int64(-300_000), summary[0].Profit)

	require.Equal(t, "2025-03", summary[1].Month)
	require.Equal(t, int64(1_500_000), summary[1].SalesAmount)
	require.Equal(t, int64(600_000), summary[1].PurchaseAmount)
	require.Equal(t, int64(900_000), summary[1].Profit)

	require.Equal(t, "2025-05", summary[2].Month)
	require.Equal(t, int64(2_000_000), summary[2].SalesAmount)
	require.Equal(t, int64(2_000_000), summary[2].Profit)
}

func TestBuildMonthlySummaryEmpty(t *testing.T) {
	summary := BuildMonthlySummary(nil)
	require.NotNil(t, summary)
	require.Empty(t, summary)
}

func TestBuildMonthlySummarySkipsMalformedDates(t *testing.T) {
	records := []models.CrawlRecord{
		record("", models.CategorySales, 1_000_000),
		record("2025", models.CategorySales, 1_000_000),
		record("2025-04-01", models.CategorySales, 700_000),
	}

	summary := BuildMonthlySummary(records)

	require.Len(t, summary, 1)
	require.Equal(t, "2025-04", summary[0].Month)
	require.Equal(t, int64(700_000), summary[0].SalesAmount)
}

func TestBuildProfitAnalysis(t *testing.T) {
	monthly := []MonthlySummary{
		{Month: "2025-01", SalesAmount: 1_000_000, PurchaseAmount: 600_000, Profit: 400_000},
		{Month: "2025-02", SalesAmount: 1_500_000, PurchaseAmount: 900_000, Profit: 600_000},
		{Month: "2025-03", SalesAmount: 0, PurchaseAmount: 200_000, Profit: -200_000},
	}

	analysis := BuildProfitAnalysis(monthly)

	require.Len(t, analysis, 3)

	// 첫 달: 증감률은 0, 수익률만 계산
	require.Equal(t, int64(400_000), analysis[0].CumulativeProfit)
	require.InDelta(t, 40.0, analysis[0].MarginPct, 0.001)
	require.Zero(t, analysis[0].SalesGrowthPct)
	require.Zero(t, analysis[0].ProfitGrowthPct)

	require.Equal(t, int64(1_000_000), analysis[1].CumulativeProfit)
	require.InDelta(t, 40.0, analysis[1].MarginPct, 0.001)
	require.InDelta(t, 50.0, analysis[1].SalesGrowthPct, 0.001)
	require.InDelta(t, 50.0, analysis[1].ProfitGrowthPct, 0.001)

	// 매출 0 인 달: 수익률은 0, 누적손익은 계속 더한다
	require.Equal(t, int64(800_000), analysis[2].CumulativeProfit)
	require.Zero(t, analysis[2].MarginPct)
	require.InDelta(t, -100.0, analysis[2].SalesGrowthPct, 0.001)
	require.InDelta(t, -133.33, analysis[2].ProfitGrowthPct, 0.001)
}

func TestBuildProfitAnalysisEmpty(t *testing.T) {
	analysis := BuildProfitAnalysis(nil)
	require.NotNil(t, analysis)
	require.Empty(t, analysis)
}
