package scraper

import (
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/julianyeong/EAP-Profit-Automation/pkg/models"
	"github.com/julianyeong/EAP-Profit-Automation/pkg/utils"
)

// 종결/완료 표기가 있는 문서만 추출 대상이다.
var closedMarkers = []string{"종결", "완료"}

func hasClosedMarker(status string) bool {
	for _, marker := range closedMarkers {
		if strings.Contains(status, marker) {
			return true
		}
	}
	return false
}

// ScanDocumentList 는 완전히 펼쳐진 목록 스냅샷에서 키워드가 포함된 문서 요약을
// DOM 등장 순서대로 추출한다. 행 단위 오류는 기록하고 건너뛴다. 어떤 행의 문제도
// 나머지 행의 추출을 중단시키지 않는다.
func ScanDocumentList(html string, rng models.DateRange, keyword string) []models.DocumentSummary {
	var documents []models.DocumentSummary

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		log.Printf("❌ 목록 HTML 파싱 실패: %v", err)
		return documents
	}

	container := doc.Find("ul.tableBody").First()
	if container.Length() == 0 {
		log.Printf("⚠️ 품의서 목록 컨테이너 (ul.tableBody)를 찾을 수 없습니다")
		return documents
	}

	rows := container.ChildrenFiltered("li")
	log.Printf("📊 총 %d개의 행을 찾았습니다", rows.Length())

	rows.Each(func(idx int, row *goquery.Selection) {
		summary, ok := scanRow(idx, rows.Length(), row, rng, keyword)
		if ok {
			documents = append(documents, summary)
		}
	})

	log.Printf("✅ '%s' 키워드 문서 %d건 추출 완료", keyword, len(documents))
	return documents
}

func scanRow(idx, total int, row *goquery.Selection, rng models.DateRange, keyword string) (models.DocumentSummary, bool) {
	// 1. 문서 제목: 중첩 span 이 없으면 상위 요소 텍스트로 대체 (레이아웃 변형 허용)
	title := strings.TrimSpace(row.Find(".titDiv .title span").First().Text())
	if title == "" {
		title = strings.TrimSpace(row.Find(".titDiv .title").First().Text())
	}
	if title == "" {
		return models.DocumentSummary{}, false
	}

	// 2. 품의번호: 두 번째 info 링크. 두 개 미만이면 비정상 행으로 보고 건너뛴다.
	infoLinks := row.Find(".infoDiv .h-box div").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, _ := s.Attr("class")
		return strings.Contains(class, "txt") && strings.Contains(class, "infoLink")
	})
	if infoLinks.Length() < 2 {
		log.Printf("⚠️ [%d/%d] info 링크가 부족한 행을 건너뜁니다: %s", idx+1, total, title)
		return models.DocumentSummary{}, false
	}
	routingID := strings.TrimSpace(infoLinks.Eq(1).Text())

	// 3. 기안일/상태 필터링
	status := strings.TrimSpace(row.Find(".process .ellipsis2").First().Text())
	if !hasClosedMarker(status) {
		return models.DocumentSummary{}, false
	}

	dateText := strings.TrimSpace(row.Find(".dateText").First().Text())
	filingDate, err := utils.ParseLooseDate(dateText)
	if err != nil {
		log.Printf("⚠️ [%d/%d] 행 처리 중 오류: %v", idx+1, total, err)
		return models.DocumentSummary{}, false
	}
	if !utils.IsWithinRange(filingDate, rng.Start, rng.End) {
		return models.DocumentSummary{}, false
	}

	// 4. 키워드 필터링 및 구분 판정
	if !strings.Contains(title, keyword) {
		return models.DocumentSummary{}, false
	}
	category, ok := models.CategoryFromTitle(title)
	if !ok {
		return models.DocumentSummary{}, false
	}

	return models.DocumentSummary{
		FilingDate: filingDate,
		Title:      title,
		Category:   category,
		RoutingID:  routingID,
		Status:     status,
	}, true
}
