package browser

import (
	"fmt"
	"log"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// Session 은 자동화가 붙어 있는 단일 브라우저 세션이다.
// 모든 작업은 이 세션 위에서 순차 실행된다. 내부 병렬성은 없다.
type Session struct {
	Browser *rod.Browser
	Page    *rod.Page
}

// NewSession 은 Chromium 을 띄우고 빈 페이지 하나를 준비한다.
func NewSession(headless bool) (*Session, error) {
	l := launcher.New().
		Headless(headless).
		Set("no-sandbox").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("window-size", "1920,1080").
		Set("disable-blink-features", "AutomationControlled")

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("브라우저 실행 실패: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("브라우저 연결 실패: %w", err)
	}

	var page *rod.Page
	if err := rod.Try(func() {
		page = browser.MustPage("about:blank")
		page.MustSetViewport(1920, 1080, 1, false)
	}); err != nil {
		browser.Close()
		return nil, fmt.Errorf("페이지 준비 실패: %w", err)
	}

	log.Printf("✅ 브라우저 세션 준비 완료 (headless=%v)", headless)
	return &Session{Browser: browser, Page: page}, nil
}

// Close 는 페이지와 브라우저를 순서대로 닫는다.
func (s *Session) Close() {
	if s.Page != nil {
		if err := rod.Try(s.Page.MustClose); err != nil {
			log.Printf("⚠️ 페이지 종료 실패: %v", err)
		}
	}
	if s.Browser != nil {
		if err := s.Browser.Close(); err != nil {
			log.Printf("⚠️ 브라우저 종료 실패: %v", err)
		}
	}
}

// WaitStable 은 페이지 로딩과 네트워크 안정화를 짧게 기다린다.
func (s *Session) WaitStable(extra time.Duration) {
	if err := rod.Try(func() { s.Page.Timeout(15 * time.Second).MustWaitLoad() }); err != nil {
		log.Printf("⚠️ 페이지 로딩 대기 타임아웃: %v", err)
	}
	time.Sleep(extra)
}
