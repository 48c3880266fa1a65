package month

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: "2025-06-01"},
		{name: "valid december", input: "2024-12-01"},
		{name: "not first day", input: "2025-06-10", wantErr: true},
		{name: "month out of range", input: "2025-13-01", wantErr: true},
		{name: "no zero padding", input: "2025-6-01", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "june", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := Parse(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, Key(tt.input), k)
		})
	}
}

func TestKey_NextPrev(t *testing.T) {
	tests := []struct {
		key  Key
		next Key
		prev Key
	}{
		{key: "2025-06-01", next: "2025-07-01", prev: "2025-05-01"},
		{key: "2025-12-01", next: "2026-01-01", prev: "2025-11-01"},
		{key: "2025-01-01", next: "2025-02-01", prev: "2024-12-01"},
		{key: "0999-09-01", next: "0999-10-01", prev: "0999-08-01"},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.next, tt.key.Next())
			assert.Equal(t, tt.prev, tt.key.Prev())
		})
	}
}

// Для всех месяцев next(prev(M)) == M и prev(next(M)) == M
func TestKey_RoundTrip(t *testing.T) {
	for year := 1970; year <= 2100; year++ {
		for m := 1; m <= 12; m++ {
			k := newKey(year, m)
			require.True(t, k.Valid(), k)
			assert.Equal(t, k, k.Prev().Next(), "next(prev(%s))", k)
			assert.Equal(t, k, k.Next().Prev(), "prev(next(%s))", k)
		}
	}
}

func TestKey_InvalidArithmetic(t *testing.T) {
	assert.Equal(t, Key(""), Key("garbage").Next())
	assert.Equal(t, Key(""), Key("2025-00-01").Prev())
}

func TestOf(t *testing.T) {
	k, err := Of("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, Key("2025-06-01"), k)

	_, err = Of("2025-02-30")
	assert.Error(t, err)
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2024, time.February, 29, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, Key("2024-02-01"), FromTime(ts))
}

func TestKey_Contains(t *testing.T) {
	k := MustParse("2025-06-01")

	assert.True(t, k.Contains("2025-06-01"))
	assert.True(t, k.Contains("2025-06-30"))
	assert.False(t, k.Contains("2025-07-01"))
	assert.False(t, k.Contains("2025-05-31"))
}

func TestKey_Add(t *testing.T) {
	k := MustParse("2025-11-01")

	assert.Equal(t, Key("2026-02-01"), k.Add(3))
	assert.Equal(t, Key("2024-11-01"), k.Add(-12))
	assert.Equal(t, k, k.Add(0))
}

func TestKey_Adjacent(t *testing.T) {
	k := MustParse("2025-01-01")

	got := k.Adjacent(2)
	assert.Equal(t, []Key{"2024-12-01", "2025-02-01", "2024-11-01", "2025-03-01"}, got)
	assert.NotContains(t, got, k)

	assert.Empty(t, k.Adjacent(0))
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("2025-06-15")
	})
}
