package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/julianyeong/EAP-Profit-Automation/pkg/models"
)

// Service 는 크롤링 결과를 보관하는 선택적 PostgreSQL 싱크다.
// DSN 이 설정된 경우에만 사용한다. 파이프라인 자체는 JSON 체크포인트만으로 돈다.
type Service struct {
	db *sql.DB
}

func New(dsn string) (*Service, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return &Service{db: db}, nil
}

func (s *Service) Close() error {
	return s.db.Close()
}

// EnsureSchema 는 실행에 필요한 테이블을 만든다.
func (s *Service) EnsureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS crawl_runs (
		id SERIAL PRIMARY KEY,
		range_start DATE NOT NULL,
		range_end DATE NOT NULL,
		record_count INT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE TABLE IF NOT EXISTS crawl_records (
		id SERIAL PRIMARY KEY,
		run_id INT NOT NULL REFERENCES crawl_runs(id) ON DELETE CASCADE,
		filing_date DATE NOT NULL,
		title TEXT NOT NULL,
		category TEXT NOT NULL,
		routing_id TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT '',
		counterparty TEXT NOT NULL DEFAULT '',
		net_amount BIGINT NOT NULL DEFAULT 0,
		tax_amount BIGINT NOT NULL DEFAULT 0,
		gross_amount BIGINT NOT NULL DEFAULT 0
	);`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("error creating schema: %w", err)
	}
	return nil
}

// SaveCrawlRun 은 한 번의 크롤링 결과 전체를 트랜잭션으로 저장한다.
func (s *Service) SaveCrawlRun(rng models.DateRange, records []models.CrawlRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	var runID int64
	err = tx.QueryRow(
		`INSERT INTO crawl_runs (range_start, range_end, record_count) VALUES ($1, $2, $3) RETURNING id`,
		rng.Start, rng.End, len(records),
	).Scan(&runID)
	if err != nil {
		return fmt.Errorf("error inserting crawl run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO crawl_records
			(run_id, filing_date, title, category, routing_id, status, counterparty, net_amount, tax_amount, gross_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`)
	if err != nil {
		return fmt.Errorf("error preparing record insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(
			runID, r.FilingDate, r.Title, string(r.Category),
			r.RoutingID, r.Status, r.CounterpartyName,
			r.NetAmount, r.TaxAmount, r.GrossAmount,
		)
		if err != nil {
			return fmt.Errorf("error inserting crawl record '%s': %w", r.Title, err)
		}
	}

	return tx.Commit()
}

// CountRecords 는 저장된 전체 레코드 수를 반환한다 (연결 점검용).
func (s *Service) CountRecords() (int64, error) {
	var n int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM crawl_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting records: %w", err)
	}
	return n, nil
}
