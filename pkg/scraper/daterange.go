package scraper

import (
	"fmt"
	"time"

	"github.com/julianyeong/EAP-Profit-Automation/pkg/models"
)

// InvalidRangeError 는 조회 기간 입력이 잘못됐을 때 반환된다.
// 설정 오류이므로 브라우저를 띄우기 전에 즉시 실행을 중단해야 한다.
type InvalidRangeError struct {
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("날짜 범위 오류: %s", e.Reason)
}

// ResolveAutoRange 는 최근 12개월(오늘-365일 ~ 오늘)을 반환한다.
func ResolveAutoRange() models.DateRange {
	end := truncateToDate(time.Now())
	return models.DateRange{Start: end.AddDate(0, 0, -365), End: end}
}

// ResolveManualRange 는 YYYY-MM-DD 형식의 수동 입력 기간을 파싱하고 검증한다.
func ResolveManualRange(startText, endText string) (models.DateRange, error) {
	start, err := time.ParseInLocation("2006-01-02", startText, time.Local)
	if err != nil {
		return models.DateRange{}, &InvalidRangeError{Reason: "날짜 형식이 올바르지 않습니다. YYYY-MM-DD 형식을 사용하세요"}
	}
	end, err := time.ParseInLocation("2006-01-02", endText, time.Local)
	if err != nil {
		return models.DateRange{}, &InvalidRangeError{Reason: "날짜 형식이 올바르지 않습니다. YYYY-MM-DD 형식을 사용하세요"}
	}
	if start.After(end) {
		return models.DateRange{}, &InvalidRangeError{Reason: "시작 날짜가 종료 날짜보다 늦습니다"}
	}
	if end.After(time.Now()) {
		return models.DateRange{}, &InvalidRangeError{Reason: "종료 날짜가 현재 날짜보다 늦습니다"}
	}
	return models.DateRange{Start: start, End: end}, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
