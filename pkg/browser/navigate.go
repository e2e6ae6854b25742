package browser

import (
	"log"
	"time"
)

// 전자결재 메뉴 선택자
const (
	approvalMenuXPath   = `//span[text()='전자결재']`
	sideMenuSelector    = "#sideLnb"
	handoverDocXPath    = `//span[text()='인수인계문서']`
	listContainerCSS    = "ul.tableBody"
	navigateStepTimeout = 15 * time.Second
)

// OpenHandoverDocumentList 는 전자결재 모듈로 들어가 인수인계문서 목록까지
// 이동한다. 랜드마크 요소가 없으면 즉시 NavigationError 로 실패한다.
// 이 함수가 실패하면 문서를 하나도 발견할 수 없으므로 실행 전체를 중단해야 한다.
func (s *Session) OpenHandoverDocumentList() error {
	// 1단계: '전자결재' 메뉴 진입
	log.Printf("▶️ 1단계: '전자결재' 메뉴 클릭 시도 중...")
	menu, err := s.Page.Timeout(navigateStepTimeout).ElementX(approvalMenuXPath)
	if err != nil {
		return &NavigationError{Step: "전자결재 메뉴", Err: err}
	}
	if err := RobustClick(menu); err != nil {
		return &NavigationError{Step: "전자결재 메뉴 클릭", Err: err}
	}

	// 전자결재 페이지 내부 요소(사이드 메뉴) 로딩 대기
	if _, err := s.Page.Timeout(navigateStepTimeout).Element(sideMenuSelector); err != nil {
		return &NavigationError{Step: "사이드 메뉴 로딩", Err: err}
	}
	log.Printf("✅ 전자결재 페이지 내부 요소 로딩 완료")
	time.Sleep(2 * time.Second)

	// 2단계: '인수인계문서' 서브 메뉴 클릭. span 의 부모 div 가 실제 클릭 대상이다.
	log.Printf("▶️ 2단계: '인수인계문서' 서브 메뉴 클릭 시도 중...")
	subMenu, err := s.Page.Timeout(navigateStepTimeout).ElementX(handoverDocXPath)
	if err != nil {
		return &NavigationError{Step: "인수인계문서 메뉴", Err: err}
	}
	parent, err := subMenu.ElementX("./..")
	if err != nil {
		return &NavigationError{Step: "인수인계문서 메뉴 부모", Err: err}
	}
	if err := RobustClick(parent); err != nil {
		return &NavigationError{Step: "인수인계문서 클릭", Err: err}
	}

	// 목록 컨테이너가 보여야 이동 성공이다
	if _, err := s.Page.Timeout(navigateStepTimeout).Element(listContainerCSS); err != nil {
		return &NavigationError{Step: "문서 목록 로딩", Err: err}
	}

	log.Printf("🎉 '인수인계문서' 목록 페이지 이동 완료")
	return nil
}
