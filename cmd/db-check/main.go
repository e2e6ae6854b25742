// DB 연결 점검용 도구. DATABASE_DSN 으로 접속해 스키마를 만들고
// 저장된 레코드 수를 출력한다.
package main

import (
	"fmt"
	"log"

	"github.com/julianyeong/EAP-Profit-Automation/pkg/config"
	"github.com/julianyeong/EAP-Profit-Automation/pkg/database"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseDSN == "" {
		log.Fatal("❌ DATABASE_DSN 이 설정되지 않았습니다")
	}

	fmt.Println("PostgreSQL 연결 시도 중...")
	db, err := database.New(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("❌ 연결 실패: ", err)
	}
	defer db.Close()
	fmt.Println("✅ 연결 성공")

	if err := db.EnsureSchema(); err != nil {
		log.Fatal("❌ 스키마 생성 실패: ", err)
	}
	fmt.Println("✅ 스키마 확인 완료")

	n, err := db.CountRecords()
	if err != nil {
		log.Fatal("❌ 레코드 조회 실패: ", err)
	}
	fmt.Printf("📦 저장된 크롤링 레코드: %d건\n", n)
}
