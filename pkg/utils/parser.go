package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateParseError 는 날짜 텍스트가 어떤 패턴에도 맞지 않을 때 반환된다.
// 호출자는 해당 행만 건너뛰어야 하며 전체 실행을 중단해서는 안 된다.
type DateParseError struct {
	Text string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("날짜 텍스트 파싱 실패: '%s'", e.Text)
}

var (
	// 괄호 안 요일 표기 제거용 (예: '10-17 (금)' -> '10-17')
	weekdayPattern = regexp.MustCompile(`\s*\(.+?\)`)

	// 목록 페이지 형식: 연도 없는 월-일
	monthDayPattern = regexp.MustCompile(`(\d{1,2})[.-]\s*(\d{1,2})`)

	// 연도 포함 형식
	fullDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{4})[.-](\d{1,2})[.-](\d{1,2})`), // YYYY-MM-DD, YYYY.MM.DD
		regexp.MustCompile(`(\d{4})/(\d{1,2})/(\d{1,2})`),       // YYYY/MM/DD
		regexp.MustCompile(`(\d{1,2})[.-](\d{1,2})[.-](\d{4})`), // MM-DD-YYYY, MM.DD.YYYY
	}
)

// ParseLooseDate 는 목록/상세 화면에 나타나는 느슨한 날짜 텍스트를 파싱한다.
// 연도가 없는 '월-일' 형식은 현재 연도로 해석한다.
func ParseLooseDate(text string) (time.Time, error) {
	cleaned := strings.TrimSpace(weekdayPattern.ReplaceAllString(text, ""))

	if m := monthDayPattern.FindStringSubmatch(cleaned); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		if d, ok := makeDate(time.Now().Year(), month, day); ok {
			return d, nil
		}
		// 잘못된 월/일이면 연도 포함 패턴으로 넘어간다 (예: '2025.03.05' 의 앞자리 매칭)
	}

	for _, pattern := range fullDatePatterns {
		m := pattern.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		var year, month, day int
		if len(m[1]) == 4 {
			year, _ = strconv.Atoi(m[1])
			month, _ = strconv.Atoi(m[2])
			day, _ = strconv.Atoi(m[3])
		} else {
			month, _ = strconv.Atoi(m[1])
			day, _ = strconv.Atoi(m[2])
			year, _ = strconv.Atoi(m[3])
		}
		if d, ok := makeDate(year, month, day); ok {
			return d, nil
		}
	}

	return time.Time{}, &DateParseError{Text: text}
}

// makeDate 는 달력상 유효한 날짜만 만든다. time.Date 의 정규화(2월 30일 -> 3월 2일)를
// 역검증으로 걸러낸다.
func makeDate(year, month, day int) (time.Time, bool) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// IsWithinRange 는 start <= d <= end 여부를 반환한다.
// 경계값이 비어 있으면 오류 대신 false 를 반환한다.
func IsWithinRange(d, start, end time.Time) bool {
	if d.IsZero() || start.IsZero() || end.IsZero() {
		return false
	}
	return !d.Before(start) && !d.After(end)
}

// CleanAmount 는 금액 문자열을 정수로 변환한다. 쉼표와 통화 표기를 제거하고
// 숫자만 남긴다. 변환할 수 없으면 0 을 반환한다 (오류를 내지 않는다).
func CleanAmount(text string) int64 {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
