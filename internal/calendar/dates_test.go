package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParseInputDays(t *testing.T) {
	got, err := ParseInputDays("3,4:5,6")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{3, 4}, {5, 6}}, got)
}

func TestParseInputDays_SkipsBadTokens(t *testing.T) {
	got, err := ParseInputDays(" 1,x,2 : 7 ")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {7}}, got)
}

func TestCreateDates(t *testing.T) {
	got, err := CreateDates(2023, []int{4, 5}, [][]int{{1, 2}, {3, 4}}, []int{3, 4})
	require.NoError(t, err)

	want := []DatePair{
		{date(2023, 4, 1), date(2023, 4, 4)},
		{date(2023, 4, 1), date(2023, 4, 5)},
		{date(2023, 4, 2), date(2023, 4, 5)},
		{date(2023, 4, 2), date(2023, 4, 6)},
		{date(2023, 5, 3), date(2023, 5, 6)},
		{date(2023, 5, 3), date(2023, 5, 7)},
		{date(2023, 5, 4), date(2023, 5, 7)},
		{date(2023, 5, 4), date(2023, 5, 8)},
	}
	assert.Equal(t, want, got)
}

func TestCreateDates_LengthMismatch(t *testing.T) {
	_, err := CreateDates(2023, []int{4, 5}, [][]int{{1}}, []int{3})
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestCreateDates_DropsInvalidDates(t *testing.T) {
	got, err := CreateDates(2023, []int{2}, [][]int{{28, 30}}, []int{1})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, date(2023, 2, 28), got[0].Outbound)
}

func TestIsWeekend(t *testing.T) {
	cases := []struct {
		day  int
		want bool
	}{
		{6, false},  // Mon
		{7, false},  // Tue
		{8, false},  // Wed
		{9, false},  // Thu
		{10, false}, // Fri
		{11, true},  // Sat
		{12, true},  // Sun
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsWeekend(date(2023, 3, c.day)), "2023-03-%02d", c.day)
	}
}
