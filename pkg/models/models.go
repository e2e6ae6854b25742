package models

import (
	"fmt"
	"strings"
	"time"
)

// Category 는 품의서 구분이다. 제목 키워드에서 한 번 결정되면 바뀌지 않는다.
type Category string

const (
	CategorySales    Category = "매출"
	CategoryPurchase Category = "매입"
)

const (
	KeywordSales    = "매출품의"
	KeywordPurchase = "매입품의"
)

// CategoryFromTitle 은 문서 제목의 키워드로 구분을 판정한다.
func CategoryFromTitle(title string) (Category, bool) {
	switch {
	case strings.Contains(title, KeywordSales):
		return CategorySales, true
	case strings.Contains(title, KeywordPurchase):
		return CategoryPurchase, true
	}
	return "", false
}

// DateRange 는 조회 기간이다. 양 끝단 모두 포함한다.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s ~ %s", r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))
}

// DocumentSummary 는 목록 화면에서 발견한 문서 한 행이다.
type DocumentSummary struct {
	FilingDate time.Time // 기안일 (시각 없음)
	Title      string    // 문서제목
	Category   Category  // 구분
	RoutingID  string    // 품의번호 (<부서>-<일련번호>, 표시용)
	Status     string    // 상태 텍스트 원문
}

// UnknownCounterparty 는 거래처명을 찾지 못했을 때의 기본값이다.
const UnknownCounterparty = "N/A"

// FinancialDetail 은 상세 화면에서 추출한 재무 정보다.
// 추출에 실패한 필드는 0 으로 남는다. 0 건 기록도 버리지 않고 내보낸다.
type FinancialDetail struct {
	CounterpartyName string
	NetAmount        int64 // 공급가액
	TaxAmount        int64 // 부가세
	GrossAmount      int64 // 합계금액
}

// NewFinancialDetail 은 모든 금액이 0 인 기본 상세 정보를 만든다.
func NewFinancialDetail() FinancialDetail {
	return FinancialDetail{CounterpartyName: UnknownCounterparty}
}

// CrawlRecord 는 목록 요약과 상세 재무 정보를 합친 최종 레코드다.
// 생성 이후 변경하지 않는다. 키는 (문서제목, 기안일) 조합뿐이다.
type CrawlRecord struct {
	FilingDate       string   `json:"기안일"` // YYYY-MM-DD
	Title            string   `json:"문서제목"`
	Category         Category `json:"구분"`
	RoutingID        string   `json:"품의번호"`
	Status           string   `json:"상태"`
	CounterpartyName string   `json:"거래처명"`
	NetAmount        int64    `json:"공급가액"`
	TaxAmount        int64    `json:"부가세"`
	GrossAmount      int64    `json:"합계금액"`
}

// NewCrawlRecord 는 요약과 상세를 병합한다.
func NewCrawlRecord(doc DocumentSummary, detail FinancialDetail) CrawlRecord {
	return CrawlRecord{
		FilingDate:       doc.FilingDate.Format("2006-01-02"),
		Title:            doc.Title,
		Category:         doc.Category,
		RoutingID:        doc.RoutingID,
		Status:           doc.Status,
		CounterpartyName: detail.CounterpartyName,
		NetAmount:        detail.NetAmount,
		TaxAmount:        detail.TaxAmount,
		GrossAmount:      detail.GrossAmount,
	}
}
