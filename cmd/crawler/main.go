// 영업 부서 매출/매입 현황 자동화.
// 그룹웨어 전자결재에서 종결된 매출/매입 품의서를 추출해 월별 손익을 집계한다.
package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/julianyeong/EAP-Profit-Automation/pkg/browser"
	"github.com/julianyeong/EAP-Profit-Automation/pkg/config"
	"github.com/julianyeong/EAP-Profit-Automation/pkg/database"
	"github.com/julianyeong/EAP-Profit-Automation/pkg/models"
	"github.com/julianyeong/EAP-Profit-Automation/pkg/report"
	"github.com/julianyeong/EAP-Profit-Automation/pkg/scraper"
)

func main() {
	os.Exit(run())
}

func run() int {
	mode := flag.String("mode", "auto", "날짜 범위 모드: auto(최근 12개월) 또는 manual")
	startDate := flag.String("start-date", "", "시작 날짜 (YYYY-MM-DD, manual 모드)")
	endDate := flag.String("end-date", "", "종료 날짜 (YYYY-MM-DD, manual 모드)")
	headless := flag.Bool("headless", true, "브라우저 창 숨김 (디버깅 시 false)")
	url := flag.String("url", "", "그룹웨어 URL (기본: GROUPWARE_URL)")
	id := flag.String("id", "", "로그인 ID (기본: GROUPWARE_ID)")
	pw := flag.String("pw", "", "로그인 비밀번호 (기본: GROUPWARE_PW)")
	flag.Parse()

	cfg := config.Load()
	if *url != "" {
		cfg.GroupwareURL = *url
	}
	if *id != "" {
		cfg.GroupwareID = *id
	}
	if *pw != "" {
		cfg.GroupwarePW = *pw
	}
	if !cfg.HasCredentials() {
		log.Printf("❌ 오류: 그룹웨어 URL, ID, 비밀번호가 필요합니다 (.env 또는 플래그)")
		return 1
	}

	// 날짜 범위 결정. 설정 오류는 브라우저를 띄우기 전에 잡는다.
	var rng models.DateRange
	switch *mode {
	case "auto":
		rng = scraper.ResolveAutoRange()
		log.Printf("📅 자동 모드: 최근 12개월 데이터 추출 (%s)", rng)
	case "manual":
		if *startDate == "" || *endDate == "" {
			log.Printf("❌ 오류: manual 모드에서는 -start-date 와 -end-date 가 필요합니다")
			return 1
		}
		var err error
		rng, err = scraper.ResolveManualRange(*startDate, *endDate)
		if err != nil {
			log.Printf("❌ %v", err)
			return 1
		}
		log.Printf("📅 수동 모드: 지정된 기간 데이터 추출 (%s)", rng)
	default:
		log.Printf("❌ 오류: 알 수 없는 모드 '%s'", *mode)
		return 1
	}

	log.Printf("🚀 시스템 초기화 중...")
	session, err := browser.NewSession(*headless)
	if err != nil {
		log.Printf("❌ 브라우저 설정 실패: %v", err)
		return 1
	}
	defer session.Close()

	log.Printf("🔐 그룹웨어 로그인 중...")
	if err := session.Login(cfg.GroupwareURL, cfg.GroupwareID, cfg.GroupwarePW); err != nil {
		log.Printf("❌ 로그인 실패: %v", err)
		return 1
	}

	log.Printf("▶️ 품의서 목록 페이지로 이동 중...")
	if err := session.OpenHandoverDocumentList(); err != nil {
		log.Printf("❌ 인수인계문서 목록 페이지 이동 실패: %v", err)
		return 1
	}

	log.Printf("📊 데이터 크롤링 시작...")
	crawler := scraper.NewCrawler(
		scraper.NewRodListView(session.Page),
		scraper.NewRodDetailOpener(session.Browser, session.Page),
		rng,
	)
	records := crawler.Run()
	if len(records) == 0 {
		log.Printf("⚠️ 추출된 데이터가 없습니다")
		return 0
	}
	log.Printf("✅ 총 %d건의 데이터 추출 완료", len(records))

	// 월별 손익 집계
	monthly := report.BuildMonthlySummary(records)
	analysis := report.BuildProfitAnalysis(monthly)
	printAnalysis(analysis)

	// 선택적 DB 저장
	if cfg.DatabaseDSN != "" {
		if err := saveToDatabase(cfg.DatabaseDSN, rng, records); err != nil {
			log.Printf("⚠️ DB 저장 실패 (크롤링 결과는 체크포인트에 남아 있습니다): %v", err)
		}
	}

	return 0
}

func printAnalysis(analysis []report.ProfitAnalysis) {
	for _, row := range analysis {
		log.Printf("📈 %s  매출 %s  매입 %s  손익 %s (누적 %s, 수익률 %.2f%%)",
			row.Month,
			formatAmount(row.SalesAmount), formatAmount(row.PurchaseAmount),
			formatAmount(row.Profit), formatAmount(row.CumulativeProfit),
			row.MarginPct)
	}
}

// formatAmount 는 천 단위 쉼표를 붙인다.
func formatAmount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

func saveToDatabase(dsn string, rng models.DateRange, records []models.CrawlRecord) error {
	db, err := database.New(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.EnsureSchema(); err != nil {
		return err
	}
	if err := db.SaveCrawlRun(rng, records); err != nil {
		return err
	}
	log.Printf("💾 DB 저장 완료: %d건", len(records))
	return nil
}
