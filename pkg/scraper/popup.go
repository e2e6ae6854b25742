package scraper

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"

	"github.com/julianyeong/EAP-Profit-Automation/pkg/browser"
)

// ErrNoPopup 은 제한 시간 안에 상세 창이 열리지 않았음을 뜻한다.
// 해당 문서만 건너뛰면 되는 회복 가능한 오류다.
var ErrNoPopup = errors.New("상세 팝업이 열리지 않았습니다")

// DetailOpener 는 문서 하나의 상세 화면을 열고 그 HTML 을 fn 에 넘긴 뒤,
// 어떤 경로로 끝나든 목록 화면으로 복귀시킨다.
type DetailOpener interface {
	WithDetail(title string, fn func(html string) error) error
}

const (
	popupWaitTimeout = 10 * time.Second
	popupPollDelay   = 500 * time.Millisecond
)

// RodDetailOpener 는 목록 페이지와 상세 창 사이의 전환을 소유한다.
// 상태는 둘뿐이다: 목록에 붙어 있거나, 상세에 붙어 있거나. 상세 상태는
// WithDetail 호출 동안에만 존재하고 반드시 목록 상태로 되돌아온다.
type RodDetailOpener struct {
	browser *rod.Browser
	list    *rod.Page
}

func NewRodDetailOpener(b *rod.Browser, list *rod.Page) *RodDetailOpener {
	return &RodDetailOpener{browser: b, list: list}
}

// runWithRelease 는 상세 상태에서 fn 을 실행하고, fn 이 패닉을 일으켜도
// release 를 반드시 실행한다. 패닉은 오류로 변환되어 반환된다.
// release 는 recover 이후에 실행되므로 fn 의 오류를 덮어쓸 수 없다.
func runWithRelease(release func(), fn func() error) (err error) {
	defer release()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("상세 추출 중 패닉: %v", r)
		}
	}()
	return fn()
}

// WithDetail 은 제목으로 문서를 찾아 클릭해 상세 창을 연다. fn 이 패닉을
// 일으켜도 복귀 전환은 실행된다.
func (o *RodDetailOpener) WithDetail(title string, fn func(html string) error) error {
	span, findErr := o.list.Timeout(popupWaitTimeout).ElementX(fmt.Sprintf(`//span[text()="%s"]`, title))
	if findErr != nil {
		return fmt.Errorf("문서 제목 요소를 찾을 수 없습니다: %w", findErr)
	}

	// 오버레이가 네이티브 클릭을 가로챌 수 있어 스크립트 클릭까지 시도한다
	if clickErr := browser.RobustClick(span); clickErr != nil {
		return fmt.Errorf("문서 제목 클릭 실패: %w", clickErr)
	}

	detail, popupErr := o.waitForDetailPage()
	if popupErr != nil {
		// 목록 상태 그대로다. 레이어 모달만 떠 있을 수 있으니 정리한다.
		o.releaseToList(nil)
		return popupErr
	}

	return runWithRelease(func() { o.releaseToList(detail) }, func() error {
		html, htmlErr := detail.HTML()
		if htmlErr != nil {
			return fmt.Errorf("상세 화면 HTML 읽기 실패: %w", htmlErr)
		}
		return fn(html)
	})
}

// waitForDetailPage 는 목록이 아닌 새 브라우징 컨텍스트 핸들을 기다린다.
func (o *RodDetailOpener) waitForDetailPage() (*rod.Page, error) {
	deadline := time.Now().Add(popupWaitTimeout)
	for time.Now().Before(deadline) {
		pages, err := o.browser.Pages()
		if err == nil {
			for _, p := range pages {
				if p.TargetID != o.list.TargetID {
					if loadErr := rod.Try(func() { p.Timeout(popupWaitTimeout).MustWaitLoad() }); loadErr != nil {
						log.Printf("⚠️ 팝업 로딩 대기 실패: %v", loadErr)
					}
					return p, nil
				}
			}
		}
		time.Sleep(popupPollDelay)
	}
	return nil, ErrNoPopup
}

// releaseToList 는 상세 컨텍스트를 닫고 목록으로 복귀한다. 복귀 실패는
// 기록만 하고 삼킨다. 복귀 중의 오류가 문서 처리 오류를 덮어쓰면 안 된다.
func (o *RodDetailOpener) releaseToList(detail *rod.Page) {
	if detail != nil {
		if err := rod.Try(detail.MustClose); err != nil {
			log.Printf("⚠️ 상세 창 닫기 실패: %v", err)
		}
	}
	if err := rod.Try(func() {
		o.list.MustActivate()
		// 레이어 모달은 ESC 로 닫힌다
		o.list.Keyboard.MustType(input.Escape)
	}); err != nil {
		log.Printf("⚠️ 목록 화면 복귀 실패: %v", err)
	}
}
