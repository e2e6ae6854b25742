package browser

import "fmt"

// NavigationError 는 기대한 랜드마크 요소를 제한 시간 안에 찾거나 클릭하지
// 못했음을 뜻한다. 문서 목록 도달 전에 발생하면 실행 전체가 실패하고,
// 개별 문서 처리 중이면 그 문서만 건너뛴다.
type NavigationError struct {
	Step string
	Err  error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("탐색 실패 (%s): %v", e.Step, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}
