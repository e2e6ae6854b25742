package scraper

import (
	"fmt"
	"log"
	"time"

	"github.com/go-rod/rod"
)

// ListView 는 크롤러가 읽는 문서 목록 화면이다.
type ListView interface {
	// ExpandAll 은 가상 스크롤 목록을 끝까지 내려 전체 행을 DOM 에 적재한다.
	ExpandAll() error
	// Snapshot 은 적재가 끝난 목록 화면의 HTML 을 반환한다.
	Snapshot() (string, error)
}

const (
	// 스크롤 높이가 더 이상 늘지 않아도 이 횟수를 넘기면 중단한다.
	// 로딩 스피너 등으로 높이가 수렴하지 않는 경우에 대한 안전 장치.
	maxScrollIterations = 30
	scrollSettleDelay   = 1500 * time.Millisecond
)

// 가상 스크롤 컨테이너는 인라인 overflow 스타일로 식별한다.
const scrollContainerXPath = `//div[contains(@style, 'overflow: scroll')]`

// RodListView 는 go-rod 페이지 위의 실제 목록 화면이다.
type RodListView struct {
	page *rod.Page
}

func NewRodListView(page *rod.Page) *RodListView {
	return &RodListView{page: page}
}

// ExpandAll 은 컨테이너의 스크롤 오프셋을 스크롤 높이까지 반복해서 내리고,
// 비동기 행 로딩을 기다린 뒤 높이를 다시 읽는다. 높이가 멈추면 종료한다.
func (v *RodListView) ExpandAll() error {
	container, err := v.page.Timeout(10 * time.Second).ElementX(scrollContainerXPath)
	if err != nil {
		return fmt.Errorf("스크롤 컨테이너를 찾을 수 없습니다: %w", err)
	}

	lastHeight := -1
	for i := 0; i < maxScrollIterations; i++ {
		res, err := container.Eval(`() => {
			this.scrollTop = this.scrollHeight;
			return this.scrollHeight;
		}`)
		if err != nil {
			return fmt.Errorf("목록 스크롤 실패: %w", err)
		}
		height := res.Value.Int()
		if height == lastHeight {
			log.Printf("📜 목록 스크롤 완료 (높이 %dpx, %d회)", height, i)
			return nil
		}
		lastHeight = height
		time.Sleep(scrollSettleDelay)
	}

	log.Printf("⚠️ 목록 스크롤이 %d회 안에 수렴하지 않았습니다. 현재 상태로 진행합니다", maxScrollIterations)
	return nil
}

func (v *RodListView) Snapshot() (string, error) {
	return v.page.HTML()
}
