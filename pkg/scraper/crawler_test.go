package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/julianyeong/EAP-Profit-Automation/pkg/models"
	"github.com/stretchr/testify/require"
)

// fakeListView 는 호출될 때마다 같은 목록 스냅샷을 돌려준다.
type fakeListView struct {
	html        string
	expandErr   error
	expandCalls int
}

func (f *fakeListView) ExpandAll() error {
	f.expandCalls++
	return f.expandErr
}

func (f *fakeListView) Snapshot() (string, error) {
	return f.html, nil
}

// fakeDetailOpener 는 제목별 상세 HTML 을 돌려주고, 지정된 제목에서는 실패한다.
type fakeDetailOpener struct {
	details  map[string]string
	failOn   map[string]bool
	panicOn  map[string]bool
	opened   []string
	detached bool
	released int
}

func (f *fakeDetailOpener) WithDetail(title string, fn func(html string) error) error {
	if f.detached {
		return fmt.Errorf("목록 창이 활성 상태가 아닙니다")
	}
	f.opened = append(f.opened, title)
	if f.failOn[title] {
		return fmt.Errorf("'%s' 상세 창 열기 실패", title)
	}

	f.detached = true
	return runWithRelease(func() {
		f.detached = false
		f.released++
	}, func() error {
		if f.panicOn[title] {
			panic(fmt.Sprintf("'%s' 상세 레이아웃 파싱 불가", title))
		}
		html, ok := f.details[title]
		if !ok {
			return ErrNoPopup
		}
		return fn(html)
	})
}

func detailFixture(counterparty, net, tax, gross string) string {
	return fmt.Sprintf(`<table>
		<tr><th>거래처명</th><td>%s</td></tr>
		<tr>
			<th>발행 금액</th>
			<th>공급가액</th><td>%s</td>
			<th>부가세</th><td>%s</td>
			<th>합계</th><td>%s</td>
		</tr>
	</table>`, counterparty, net, tax, gross)
}

// 매입 상세의 강조 셀은 문서 순서상 공급가액, 부가세, 합계다
func purchaseDetailFixture(counterparty, net, tax, gross string) string {
	return fmt.Sprintf(`<table>
		<tr><th>거래처명</th><td>%s</td></tr>
		<tr>
			<td style="background-color: rgb(217, 226, 243);">%s</td>
			<td style="background-color: rgb(217, 226, 243);">%s</td>
			<td style="background-color: rgb(217, 226, 243);">%s</td>
		</tr>
	</table>`, counterparty, net, tax, gross)
}

func TestCrawlerRun(t *testing.T) {
	html := `<ul class="tableBody">` +
		listRow("매출품의 - ABC상사", "2025-매출-001", "종결", "2025.03.05 (수)") +
		listRow("매출품의 - DEF물산", "2025-매출-002", "진행중", "2025.03.10 (월)") +
		listRow("매출품의 - GHI유통", "2025-매출-003", "완료", "2025.04.02 (수)") +
		listRow("매입품의 - 부품 구매", "2025-매입-001", "종결", "2025.05.12 (월)") +
		listRow("매입품의 - 자재 구매", "2025-매입-002", "종결", "2023.05.12 (금)") +
		`</ul>`

	list := &fakeListView{html: html}
	opener := &fakeDetailOpener{
		details: map[string]string{
			"매출품의 - ABC상사":  detailFixture("ABC상사", "1,000,000", "100,000", "1,100,000"),
			"매출품의 - GHI유통":  detailFixture("GHI유통 외 1건", "2,000,000", "200,000", "2,200,000"),
			"매입품의 - 부품 구매": purchaseDetailFixture("부품상사", "3,000,000", "300,000", "3,300,000"),
		},
		failOn: map[string]bool{},
	}

	crawler := NewCrawler(list, opener, fixtureRange(t))
	crawler.CheckpointPath = filepath.Join(t.TempDir(), "raw.json")
	records := crawler.Run()

	require.Len(t, records, 3)

	// 매출 -> 매입 고정 순서, 카테고리 안에서는 목록 등장 순서
	require.Equal(t, "매출품의 - ABC상사", records[0].Title)
	require.Equal(t, models.CategorySales, records[0].Category)
	require.Equal(t, int64(1_000_000), records[0].NetAmount)
	require.Equal(t, "2025-03-05", records[0].FilingDate)

	require.Equal(t, "GHI유통", records[1].CounterpartyName)
	require.Equal(t, int64(2_200_000), records[1].GrossAmount)

	require.Equal(t, models.CategoryPurchase, records[2].Category)
	require.Equal(t, int64(3_000_000), records[2].NetAmount)
	require.Equal(t, int64(300_000), records[2].TaxAmount)
	require.Equal(t, int64(3_300_000), records[2].GrossAmount)

	// 카테고리마다 목록을 다시 펼친다
	require.Equal(t, 2, list.expandCalls)
}

func TestCrawlerRunSkipsFailedDocument(t *testing.T) {
	html := `<ul class="tableBody">` +
		listRow("매출품의 - 1번", "2025-매출-001", "종결", "2025.03.01 (토)") +
		listRow("매출품의 - 2번", "2025-매출-002", "종결", "2025.03.02 (일)") +
		listRow("매출품의 - 3번", "2025-매출-003", "종결", "2025.03.03 (월)") +
		`</ul>`

	detail := detailFixture("상사", "1,000", "100", "1,100")
	list := &fakeListView{html: html}
	opener := &fakeDetailOpener{
		details: map[string]string{
			"매출품의 - 1번": detail,
			"매출품의 - 3번": detail,
		},
		failOn: map[string]bool{"매출품의 - 2번": true},
	}

	crawler := NewCrawler(list, opener, fixtureRange(t))
	crawler.CheckpointPath = filepath.Join(t.TempDir(), "raw.json")
	records := crawler.Run()

	// 2번 문서 실패는 해당 문서만 버리고 이후 문서는 계속 처리한다
	require.Len(t, records, 2)
	require.Equal(t, "매출품의 - 1번", records[0].Title)
	require.Equal(t, "매출품의 - 3번", records[1].Title)
	require.Equal(t, []string{"매출품의 - 1번", "매출품의 - 2번", "매출품의 - 3번"}, opener.opened)
}

func TestCrawlerRunRecoversFromPanickingDocument(t *testing.T) {
	html := `<ul class="tableBody">` +
		listRow("매출품의 - 1번", "2025-매출-001", "종결", "2025.03.01 (토)") +
		listRow("매출품의 - 2번", "2025-매출-002", "종결", "2025.03.02 (일)") +
		listRow("매출품의 - 3번", "2025-매출-003", "종결", "2025.03.03 (월)") +
		listRow("매출품의 - 4번", "2025-매출-004", "종결", "2025.03.04 (화)") +
		listRow("매출품의 - 5번", "2025-매출-005", "종결", "2025.03.05 (수)") +
		`</ul>`

	detail := detailFixture("상사", "1,000", "100", "1,100")
	list := &fakeListView{html: html}
	opener := &fakeDetailOpener{
		details: map[string]string{
			"매출품의 - 1번": detail,
			"매출품의 - 2번": detail,
			"매출품의 - 4번": detail,
			"매출품의 - 5번": detail,
		},
		panicOn: map[string]bool{"매출품의 - 3번": true},
	}

	crawler := NewCrawler(list, opener, fixtureRange(t))
	crawler.CheckpointPath = filepath.Join(t.TempDir(), "raw.json")
	records := crawler.Run()

	// 추출 중 패닉은 해당 문서만 버리고, 복귀는 문서마다 빠짐없이 실행된다
	require.Len(t, records, 4)
	require.Equal(t, "매출품의 - 2번", records[1].Title)
	require.Equal(t, "매출품의 - 4번", records[2].Title)
	require.Len(t, opener.opened, 5)
	require.Equal(t, 5, opener.released)
	require.False(t, opener.detached)
}

func TestCrawlerRunEmptyList(t *testing.T) {
	list := &fakeListView{html: `<ul class="tableBody"></ul>`}
	opener := &fakeDetailOpener{}

	crawler := NewCrawler(list, opener, fixtureRange(t))
	crawler.CheckpointPath = filepath.Join(t.TempDir(), "raw.json")
	records := crawler.Run()

	require.NotNil(t, records)
	require.Empty(t, records)
	require.Empty(t, opener.opened)
}

func TestCrawlerRunExpandFailure(t *testing.T) {
	list := &fakeListView{expandErr: fmt.Errorf("스크롤 컨테이너 없음")}
	crawler := NewCrawler(list, &fakeDetailOpener{}, fixtureRange(t))
	crawler.CheckpointPath = filepath.Join(t.TempDir(), "raw.json")

	records := crawler.Run()

	require.Empty(t, records)
}

func TestCrawlerSavesCheckpoint(t *testing.T) {
	html := `<ul class="tableBody">` +
		listRow("매출품의 - ABC상사", "2025-매출-001", "종결", "2025.03.05 (수)") +
		`</ul>`

	list := &fakeListView{html: html}
	opener := &fakeDetailOpener{
		details: map[string]string{
			"매출품의 - ABC상사": detailFixture("ABC상사", "1,000,000", "100,000", "1,100,000"),
		},
	}

	path := filepath.Join(t.TempDir(), "output", "raw.json")
	crawler := NewCrawler(list, opener, fixtureRange(t))
	crawler.CheckpointPath = path
	crawler.Run()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []models.CrawlRecord
	require.NoError(t, json.Unmarshal(data, &records))
	require.Len(t, records, 1)
	require.Equal(t, "매출품의 - ABC상사", records[0].Title)
	require.Equal(t, int64(1_100_000), records[0].GrossAmount)
}
