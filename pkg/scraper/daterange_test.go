package scraper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveManualRange(t *testing.T) {
	rng, err := ResolveManualRange("2025-01-01", "2025-03-31")
	require.NoError(t, err)
	require.Equal(t, "2025-01-01", rng.Start.Format("2006-01-02"))
	require.Equal(t, "2025-03-31", rng.End.Format("2006-01-02"))
}

func TestResolveManualRangeStartAfterEnd(t *testing.T) {
	_, err := ResolveManualRange("2025-03-31", "2025-01-01")
	require.Error(t, err)

	var rangeErr *InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestResolveManualRangeEndInFuture(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	_, err := ResolveManualRange("2025-01-01", future)
	require.Error(t, err)

	var rangeErr *InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestResolveManualRangeBadFormat(t *testing.T) {
	for _, in := range []string{"2025/01/01", "01-01-2025", "어제", ""} {
		_, err := ResolveManualRange(in, "2025-01-31")
		require.Error(t, err, "입력: %q", in)
	}
}

func TestResolveAutoRange(t *testing.T) {
	rng := ResolveAutoRange()
	require.Equal(t, time.Now().Format("2006-01-02"), rng.End.Format("2006-01-02"))
	require.Equal(t, rng.End.AddDate(0, 0, -365), rng.Start)
}
