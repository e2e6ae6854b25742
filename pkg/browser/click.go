package browser

import (
	"github.com/go-rod/rod"
)

// RobustClick 은 요소를 활성화하는 단일 동작이다. 내부적으로 네이티브 클릭을
// 먼저 시도하고, 오버레이에 가로채이면 스크립트 강제 클릭으로 넘어간다.
// 호출자는 폴백 순서를 알 필요 없이 성공/실패만 본다.
func RobustClick(el *rod.Element) error {
	if err := rod.Try(func() {
		el.MustScrollIntoView()
		el.MustClick()
	}); err == nil {
		return nil
	}
	return rod.Try(func() {
		el.MustEval(`() => this.click()`)
	})
}
