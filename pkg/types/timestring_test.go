package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 8, 27, 9, 30, 45, 0, time.UTC))
	assert.Equal(t, "09:30", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid morning", "08:00", false},
		{"valid midnight", "00:00", false},
		{"valid late evening", "23:59", false},
		{"extended range", "24:30", false},
		{"missing leading zero", "8:00", true},
		{"no colon", "0800", true},
		{"minutes out of range", "10:60", true},
		{"hours out of range", "48:00", true},
		{"empty", "", true},
		{"garbage", "ab:cd", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.input, ts.String())
			}
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("22:00").IsAfter("08:00"))
	assert.False(t, TimeString("08:00").IsAfter("22:00"))

	assert.True(t, TimeString("10:00").Equal("10:00"))
	assert.False(t, TimeString("10:00").Equal("10:30"))

	// Некорректные значения не равны ничему
	assert.False(t, TimeString("bad").Equal("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("bad"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	// Переход через час
	ts, err = TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "10:15", ts.String())

	// Переход через полночь остается в расширенном диапазоне
	ts, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "24:00", ts.String())

	// Выход за верхнюю границу
	_, err = TimeString("47:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	// Уход в минус
	_, err = TimeString("00:00").AddMinutes(-30)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_MinutesBetween(t *testing.T) {
	m, err := TimeString("09:00").MinutesBetween("11:00")
	require.NoError(t, err)
	assert.Equal(t, 120, m)

	m, err = TimeString("11:00").MinutesBetween("09:00")
	require.NoError(t, err)
	assert.Equal(t, -120, m)

	_, err = TimeString("xx").MinutesBetween("09:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// TIME колонка приходит как time.Time
	require.NoError(t, ts.Scan(time.Date(2000, 1, 1, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, "14:30", ts.String())

	// Строка с секундами - секунды отбрасываются
	require.NoError(t, ts.Scan("08:00:00"))
	assert.Equal(t, "08:00", ts.String())

	require.NoError(t, ts.Scan([]byte("21:30:00")))
	assert.Equal(t, "21:30", ts.String())

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
