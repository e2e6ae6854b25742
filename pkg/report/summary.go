package report

import (
	"math"
	"sort"

	"github.com/julianyeong/EAP-Profit-Automation/pkg/models"
)

// MonthlySummary 는 한 달치 매출/매입 합계와 손익이다. 금액은 공급가액 기준.
type MonthlySummary struct {
	Month          string `json:"년월"` // YYYY-MM
	SalesAmount    int64  `json:"매출액"`
	PurchaseAmount int64  `json:"매입액"`
	Profit         int64  `json:"손익"`
}

// ProfitAnalysis 는 월별 요약에 누적손익과 비율 지표를 더한 분석 행이다.
type ProfitAnalysis struct {
	MonthlySummary
	CumulativeProfit int64   `json:"누적손익"`
	MarginPct        float64 `json:"수익률"`   // 매출액 대비 손익 비율(%)
	SalesGrowthPct   float64 `json:"매출증감률"` // 전월 대비(%)
	ProfitGrowthPct  float64 `json:"손익증감률"` // 전월 대비(%)
}

// BuildMonthlySummary 는 레코드를 년월로 묶어 매출액/매입액/손익을 계산한다.
// 결과는 년월 오름차순이다. 입력이 비어 있으면 빈 슬라이스를 반환한다.
func BuildMonthlySummary(records []models.CrawlRecord) []MonthlySummary {
	type bucket struct {
		sales    int64
		purchase int64
	}
	buckets := make(map[string]*bucket)

	for _, r := range records {
		if len(r.FilingDate) < 7 {
			continue
		}
		month := r.FilingDate[:7]
		b, ok := buckets[month]
		if !ok {
			b = &bucket{}
			buckets[month] = b
		}
		switch r.Category {
		case models.CategorySales:
			b.sales += r.NetAmount
		case models.CategoryPurchase:
			b.purchase += r.NetAmount
		}
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	summary := make([]MonthlySummary, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		summary = append(summary, MonthlySummary{
			Month:          m,
			SalesAmount:    b.sales,
			PurchaseAmount: b.purchase,
			Profit:         b.sales - b.purchase,
		})
	}
	return summary
}

// BuildProfitAnalysis 는 월별 요약에서 누적손익, 수익률, 전월 대비 증감률을
// 계산한다. 첫 달과 분모가 0 인 달의 증감률/수익률은 0 으로 둔다.
func BuildProfitAnalysis(monthly []MonthlySummary) []ProfitAnalysis {
	analysis := make([]ProfitAnalysis, 0, len(monthly))

	var cumulative int64
	for i, m := range monthly {
		cumulative += m.Profit

		row := ProfitAnalysis{
			MonthlySummary:   m,
			CumulativeProfit: cumulative,
		}
		if m.SalesAmount > 0 {
			row.MarginPct = round2(float64(m.Profit) / float64(m.SalesAmount) * 100)
		}
		if i > 0 {
			prev := monthly[i-1]
			row.SalesGrowthPct = round2(pctChange(prev.SalesAmount, m.SalesAmount))
			row.ProfitGrowthPct = round2(pctChange(prev.Profit, m.Profit))
		}
		analysis = append(analysis, row)
	}
	return analysis
}

func pctChange(prev, cur int64) float64 {
	if prev == 0 {
		return 0
	}
	return float64(cur-prev) / float64(prev) * 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
