package scraper

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/julianyeong/EAP-Profit-Automation/pkg/models"
)

// DefaultCheckpointPath 는 크롤링 직후 원본 레코드를 떨구는 위치다.
// 디버깅/복구용 체크포인트일 뿐 다른 컴포넌트가 읽는 계약은 아니다.
const DefaultCheckpointPath = "output/temp_raw_data.json"

// Crawler 는 카테고리별·문서별 순회를 담당하는 최상위 파이프라인이다.
// 문서 하나의 실패는 그 문서만 버리고, 카테고리 하나의 실패는 그 카테고리만
// 비운다. Run 은 어떤 경우에도 오류를 반환하지 않는다.
type Crawler struct {
	list   ListView
	opener DetailOpener
	rng    models.DateRange

	// CheckpointPath 가 비어 있으면 DefaultCheckpointPath 를 쓴다.
	CheckpointPath string
}

func NewCrawler(list ListView, opener DetailOpener, rng models.DateRange) *Crawler {
	return &Crawler{list: list, opener: opener, rng: rng}
}

// Run 은 매출 -> 매입 고정 순서로 전체 크롤링을 수행한다.
// 결과가 없어도 빈 슬라이스를 반환한다 (nil 아님).
func (c *Crawler) Run() []models.CrawlRecord {
	log.Printf("🚀 전체 크롤링 시작 (%s)", c.rng)

	records := make([]models.CrawlRecord, 0)
	for _, keyword := range []string{models.KeywordSales, models.KeywordPurchase} {
		records = append(records, c.crawlCategory(keyword)...)
	}

	if len(records) == 0 {
		log.Printf("⚠️ 추출된 데이터가 없습니다")
	} else {
		log.Printf("✅ 전체 크롤링 완료: %d건", len(records))
	}

	if err := c.saveCheckpoint(records); err != nil {
		log.Printf("⚠️ 체크포인트 저장 실패: %v", err)
	}
	return records
}

// crawlCategory 는 키워드 하나에 대해 목록 적재 -> 스캔 -> 문서별 상세 추출을
// 수행한다. 목록 자체를 못 읽으면 해당 카테고리는 빈 결과로 끝난다.
func (c *Crawler) crawlCategory(keyword string) []models.CrawlRecord {
	log.Printf("📋 '%s' 목록 추출 중...", keyword)

	if err := c.list.ExpandAll(); err != nil {
		log.Printf("❌ '%s' 목록 스크롤 실패: %v", keyword, err)
		return nil
	}
	html, err := c.list.Snapshot()
	if err != nil {
		log.Printf("❌ '%s' 목록 읽기 실패: %v", keyword, err)
		return nil
	}

	docs := ScanDocumentList(html, c.rng, keyword)
	if len(docs) == 0 {
		log.Printf("⚠️ '%s' 문서가 없습니다", keyword)
		return nil
	}

	var records []models.CrawlRecord
	for i, doc := range docs {
		log.Printf("📄 [%d/%d] %s 처리 중...", i+1, len(docs), doc.Title)

		detail := models.NewFinancialDetail()
		err := c.opener.WithDetail(doc.Title, func(html string) error {
			detail = ExtractFinancialDetail(html, doc.Category, doc.Title)
			return nil
		})
		if err != nil {
			// 이 문서만 버린다. 복귀 전환은 opener 가 이미 보장했다.
			log.Printf("❌ 문서 처리 중 오류: %v", err)
			continue
		}

		records = append(records, models.NewCrawlRecord(doc, detail))
		log.Printf("✅ [%d/%d] 데이터 통합 완료", i+1, len(docs))
	}
	return records
}

// saveCheckpoint 는 병합된 원본 레코드를 UTF-8 JSON 으로 저장한다.
func (c *Crawler) saveCheckpoint(records []models.CrawlRecord) error {
	path := c.CheckpointPath
	if path == "" {
		path = DefaultCheckpointPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	log.Printf("💾 원본 데이터 %d건을 %s 에 저장했습니다", len(records), path)
	return nil
}
