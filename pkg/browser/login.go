package browser

import (
	"log"
	"time"

	"github.com/go-rod/rod"
)

// 로그인 화면 선택자. UI 개편 시 여기만 고친다.
const (
	idFieldSelector  = "#reqLoginId"
	pwFieldSelector  = "#reqLoginPw"
	nextButtonXPath  = `//button[.//span[text()='다음']]`
	loginButtonXPath = `//button[.//span[text()='로그인']]`
	mainSearchXPath  = `//input[@placeholder='통합 검색']`

	loginStepTimeout = 10 * time.Second
)

// Login 은 그룹웨어에 2단계(아이디 -> 비밀번호) 로그인한다.
func (s *Session) Login(url, userID, password string) error {
	log.Printf("🌐 그룹웨어 접속 중: %s", url)
	if err := s.Page.Navigate(url); err != nil {
		return &NavigationError{Step: "접속", Err: err}
	}
	s.WaitStable(3 * time.Second)

	// 1단계: 아이디 입력 후 '다음'
	log.Printf("🔑 1단계: ID 입력 및 다음 버튼 탐색 중...")
	if err := rod.Try(func() {
		idField := s.Page.Timeout(loginStepTimeout).MustElement(idFieldSelector)
		idField.MustSelectAllText()
		idField.MustInput(userID)
	}); err != nil {
		return &NavigationError{Step: "아이디 입력", Err: err}
	}
	nextBtn, err := s.Page.Timeout(loginStepTimeout).ElementX(nextButtonXPath)
	if err != nil {
		return &NavigationError{Step: "다음 버튼", Err: err}
	}
	if err := RobustClick(nextBtn); err != nil {
		return &NavigationError{Step: "다음 버튼 클릭", Err: err}
	}

	// 2단계: 비밀번호 입력 후 '로그인'
	log.Printf("🔑 2단계: PW 필드 대기 및 정보 입력 중...")
	if err := rod.Try(func() {
		pwField := s.Page.Timeout(loginStepTimeout).MustElement(pwFieldSelector)
		pwField.MustSelectAllText()
		pwField.MustInput(password)
	}); err != nil {
		return &NavigationError{Step: "비밀번호 입력", Err: err}
	}
	loginBtn, err := s.Page.Timeout(loginStepTimeout).ElementX(loginButtonXPath)
	if err != nil {
		return &NavigationError{Step: "로그인 버튼", Err: err}
	}
	if err := RobustClick(loginBtn); err != nil {
		return &NavigationError{Step: "로그인 버튼 클릭", Err: err}
	}

	// 성공 확인: 메인 화면의 통합 검색 필드가 나타나야 한다
	if _, err := s.Page.Timeout(15 * time.Second).ElementX(mainSearchXPath); err != nil {
		return &NavigationError{Step: "로그인 확인", Err: err}
	}

	log.Printf("✅ 로그인 성공")
	return nil
}
