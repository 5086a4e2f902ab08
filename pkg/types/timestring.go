package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString время в формате HH:MM (24-часовой формат)
// Используется для хранения времени слотов и рабочих часов без привязки к дате.
// Поддерживает значения больше 23:59 (например "24:30") - они возникают как
// промежуточный результат AddMinutes и корректно сравниваются с обычными значениями.
type TimeString string

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда результат вычисления выходит за допустимые пределы
	ErrTimeOutOfRange = errors.New("time string out of range")
)

// maxMinutes верхняя граница представимого времени (двое суток)
const maxMinutes = 48 * 60

// NewTimeString создает TimeString из time.Time (берет только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет корректность формата HH:MM
func (t TimeString) Validate() error {
	_, err := t.minutes()
	return err
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	tm, err1 := t.minutes()
	om, err2 := other.minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return tm < om
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	tm, err1 := t.minutes()
	om, err2 := other.minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return tm > om
}

// Equal возвращает true, если времена совпадают
func (t TimeString) Equal(other TimeString) bool {
	tm, err1 := t.minutes()
	om, err2 := other.minutes()
	if err1 != nil || err2 != nil {
		return false
	}
	return tm == om
}

// AddMinutes возвращает новое время, сдвинутое на m минут вперед
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	tm, err := t.minutes()
	if err != nil {
		return "", err
	}

	total := tm + m
	if total < 0 || total >= maxMinutes {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, m)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// MinutesBetween возвращает разницу other - t в минутах
func (t TimeString) MinutesBetween(other TimeString) (int, error) {
	tm, err := t.minutes()
	if err != nil {
		return 0, err
	}
	om, err := other.minutes()
	if err != nil {
		return 0, err
	}
	return om - tm, nil
}

// minutes парсит значение в количество минут от начала суток
func (t TimeString) minutes() (int, error) {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidTimeFormat, s)
	}

	var hours, mins int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &hours, &mins); err != nil {
		return 0, fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidTimeFormat, s)
	}

	if hours < 0 || hours >= 48 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return hours*60 + mins, nil
}

// Scan реализует sql.Scanner
// Поддерживает time.Time (колонки TIME), []byte и string
func (t *TimeString) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, value)
	}
}

// scanString парсит строковое значение из БД
// Колонки TIME приходят как "HH:MM:SS" - секунды отбрасываются
func (t *TimeString) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}

	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}

	*t = ts
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}
