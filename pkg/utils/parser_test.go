package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseLooseDateMonthDay(t *testing.T) {
	d, err := ParseLooseDate("10-17 (금)")
	require.NoError(t, err)
	require.Equal(t, time.Now().Year(), d.Year())
	require.Equal(t, time.October, d.Month())
	require.Equal(t, 17, d.Day())
}

func TestParseLooseDateFullPatterns(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2025.03.05", "2025-03-05"},
		{"2025-3-5", "2025-03-05"},
		{"2025/03/05", "2025-03-05"},
		{"2024.12.01 (일)", "2024-12-01"},
	}
	for _, c := range cases {
		d, err := ParseLooseDate(c.in)
		require.NoError(t, err, c.in)
		require.Equal(t, c.want, d.Format("2006-01-02"), c.in)
	}
}

func TestParseLooseDateFailure(t *testing.T) {
	_, err := ParseLooseDate("not a date")
	require.Error(t, err)

	var parseErr *DateParseError
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, parseErr.Text, "not a date")
}

func TestIsWithinRange(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.ParseInLocation("2006-01-02", s, time.Local)
		require.NoError(t, err)
		return d
	}
	start := day("2025-01-01")
	end := day("2025-01-31")

	require.True(t, IsWithinRange(day("2025-01-01"), start, end), "경계 시작일 포함")
	require.True(t, IsWithinRange(day("2025-01-31"), start, end), "경계 종료일 포함")
	require.True(t, IsWithinRange(day("2025-01-15"), start, end))
	require.False(t, IsWithinRange(day("2024-12-31"), start, end))
	require.False(t, IsWithinRange(day("2025-02-01"), start, end))

	// 비정상 경계값은 오류 대신 false
	require.False(t, IsWithinRange(day("2025-01-15"), time.Time{}, end))
	require.False(t, IsWithinRange(day("2025-01-15"), start, time.Time{}))
	require.False(t, IsWithinRange(time.Time{}, start, end))
}

func TestCleanAmount(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1,234,000원", 1234000},
		{"1,234,000", 1234000},
		{"  12,345 ", 12345},
		{"₩987,654", 987654},
		{"", 0},
		{"N/A", 0},
		{"-", 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, CleanAmount(c.in), "입력: %q", c.in)
	}
}
