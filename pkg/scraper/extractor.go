package scraper

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/julianyeong/EAP-Profit-Automation/pkg/models"
	"github.com/julianyeong/EAP-Profit-Automation/pkg/utils"
)

// 상세 화면 템플릿은 버전 관리가 되지 않아 문서마다 구조가 다르다.
// (구분, 템플릿 변형) 으로 전략을 고르고, 기대한 마크업이 없으면 금액을 0 으로
// 남긴다. 어떤 전략도 구조 부재를 오류로 취급하지 않는다.

const (
	// 매입품의 합계 셀에 칠해지는 강조 배경 스타일 마커.
	// 실제 UI 의 선택자 확인 시 이 상수만 고치면 된다.
	purchaseHighlightMarker = "rgb(217, 226, 243)"

	// 매출품의 중 전용 템플릿을 쓰는 거래처. 제목에 이 이름이 들어간 문서만
	// 전용 전략을 탄다.
	vendorTemplateKeyword = "한빛솔루션"

	// 금액 행 라벨
	issuedAmountLabel = "발행 금액"
	totalLabel        = "합계"
	netLabel          = "공급가액"
	taxLabel          = "부가세"
)

// ExtractFinancialDetail 은 상세 화면 HTML 에서 거래처명과 금액을 추출한다.
// 추출에 실패한 필드는 기본값(0, N/A)으로 남고 오류는 반환하지 않는다.
func ExtractFinancialDetail(html string, category models.Category, title string) models.FinancialDetail {
	detail := models.NewFinancialDetail()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("⚠️ 상세 HTML 파싱 실패: %v", err)
		return detail
	}

	detail.CounterpartyName = extractCounterparty(doc)

	switch {
	case category == models.CategoryPurchase:
		extractPurchaseAmounts(doc, &detail)
	case category == models.CategorySales && strings.Contains(title, vendorTemplateKeyword):
		extractVendorSalesAmounts(doc, &detail)
	case category == models.CategorySales:
		extractGeneralSalesAmounts(doc, &detail)
	default:
		log.Printf("⚠️ 알 수 없는 문서 구분 '%s', 금액을 0 으로 둡니다", category)
	}

	return detail
}

// extractCounterparty 는 '거래처명' 라벨 셀의 바로 다음 셀을 읽는다.
// '외 N건' 꼬리표는 잘라낸다.
func extractCounterparty(doc *goquery.Document) string {
	name := models.UnknownCounterparty
	doc.Find("th").EachWithBreak(func(_ int, label *goquery.Selection) bool {
		if !strings.Contains(label.Text(), "거래처명") {
			return true
		}
		value := strings.TrimSpace(label.Next().Text())
		if value == "" {
			return true
		}
		name = strings.TrimSpace(strings.SplitN(value, "외", 2)[0])
		return false
	})
	return name
}

// extractPurchaseAmounts: 강조 배경 스타일이 칠해진 셀을 전부 모아, 문서 순서상
// 마지막 세 개를 공급가액/부가세/합계로 읽는다. 세 개 미만이면 추출 포기.
func extractPurchaseAmounts(doc *goquery.Document, detail *models.FinancialDetail) {
	var cells []*goquery.Selection
	doc.Find("td").Each(func(_ int, td *goquery.Selection) {
		style, ok := td.Attr("style")
		if ok && strings.Contains(style, purchaseHighlightMarker) {
			cells = append(cells, td)
		}
	})

	if len(cells) < 3 {
		log.Printf("⚠️ 매입 템플릿: 강조 셀이 %d개뿐이라 금액을 추출할 수 없습니다", len(cells))
		return
	}

	n := len(cells)
	detail.NetAmount = utils.CleanAmount(cells[n-3].Text())
	detail.TaxAmount = utils.CleanAmount(cells[n-2].Text())
	detail.GrossAmount = utils.CleanAmount(cells[n-1].Text())
}

// extractVendorSalesAmounts: 전용 템플릿은 '합계' 행의 9번째 셀에 총액만 적는다.
// 공급가액/부가세는 이 템플릿에 존재하지 않으므로 0 으로 남는다.
func extractVendorSalesAmounts(doc *goquery.Document, detail *models.FinancialDetail) {
	row := findRowContaining(doc, totalLabel)
	if row == nil {
		log.Printf("⚠️ 전용 매출 템플릿: '%s' 행을 찾을 수 없습니다", totalLabel)
		return
	}
	cells := row.Find("td, th")
	if cells.Length() < 9 {
		log.Printf("⚠️ 전용 매출 템플릿: 합계 행 셀이 %d개라 총액 위치가 없습니다", cells.Length())
		return
	}
	detail.GrossAmount = utils.CleanAmount(cells.Eq(8).Text())
}

// extractGeneralSalesAmounts: '발행 금액' 행에서 금액 라벨 셀의 바로 다음 셀을
// 값으로 읽는다. 세 금액을 모두 찾으면 바로 멈춘다.
func extractGeneralSalesAmounts(doc *goquery.Document, detail *models.FinancialDetail) {
	row := findRowContaining(doc, issuedAmountLabel)
	if row == nil {
		log.Printf("⚠️ 일반 매출 템플릿: '%s' 행을 찾을 수 없습니다", issuedAmountLabel)
		return
	}

	found := 0
	row.Find("td, th").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		label := strings.TrimSpace(cell.Text())

		var target *int64
		switch {
		case strings.Contains(label, netLabel):
			target = &detail.NetAmount
		case strings.Contains(label, taxLabel):
			target = &detail.TaxAmount
		case strings.Contains(label, totalLabel):
			target = &detail.GrossAmount
		default:
			return true
		}

		next := cell.Next()
		if next.Length() > 0 {
			*target = utils.CleanAmount(next.Text())
			found++
		}
		return found < 3
	})
}

// findRowContaining 은 해당 텍스트를 포함하는 첫 번째 tr 을 반환한다.
func findRowContaining(doc *goquery.Document, text string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		if strings.Contains(tr.Text(), text) {
			found = tr
			return false
		}
		return true
	})
	return found
}
