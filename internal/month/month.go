// Package month содержит чистую арифметику ключей месяцев (YYYY-MM-01),
// по которым индексируется клиентский кэш событий.
package month

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout формат даты события (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// ErrInvalidKey возвращается для строк, не являющихся каноническим ключом месяца
var ErrInvalidKey = errors.New("invalid month key")

// Key канонический ключ месяца в формате YYYY-MM-01
type Key string

// Parse проверяет строку и возвращает ключ месяца.
// Принимается только точный формат YYYY-MM-01.
func Parse(s string) (Key, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	if t.Day() != 1 || t.Format(DateLayout) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return Key(s), nil
}

// MustParse как Parse, но паникует на невалидном ключе. Только для констант и тестов.
func MustParse(s string) Key {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Of возвращает ключ месяца, которому принадлежит дата YYYY-MM-DD
func Of(date string) (Key, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return FromTime(t), nil
}

// FromTime возвращает ключ месяца для момента времени
func FromTime(t time.Time) Key {
	return newKey(t.Year(), int(t.Month()))
}

func newKey(year, month int) Key {
	return Key(fmt.Sprintf("%04d-%02d-01", year, month))
}

func (k Key) String() string {
	return string(k)
}

// Valid сообщает, является ли ключ каноническим
func (k Key) Valid() bool {
	_, err := Parse(string(k))
	return err == nil
}

func (k Key) parts() (year, month int, ok bool) {
	t, err := time.Parse(DateLayout, string(k))
	if err != nil || t.Day() != 1 {
		return 0, 0, false
	}
	return t.Year(), int(t.Month()), true
}

// Next возвращает следующий месяц; декабрь переходит в январь следующего года.
// Для невалидного ключа возвращает пустой ключ.
func (k Key) Next() Key {
	year, month, ok := k.parts()
	if !ok {
		return ""
	}
	if month == 12 {
		return newKey(year+1, 1)
	}
	return newKey(year, month+1)
}

// Prev возвращает предыдущий месяц; обратная операция к Next
func (k Key) Prev() Key {
	year, month, ok := k.parts()
	if !ok {
		return ""
	}
	if month == 1 {
		return newKey(year-1, 12)
	}
	return newKey(year, month-1)
}

// Add сдвигает ключ на n месяцев (n может быть отрицательным)
func (k Key) Add(n int) Key {
	out := k
	for ; n > 0; n-- {
		out = out.Next()
	}
	for ; n < 0; n++ {
		out = out.Prev()
	}
	return out
}

// Contains сообщает, попадает ли дата YYYY-MM-DD в диапазон [k, k.Next())
func (k Key) Contains(date string) bool {
	return date >= string(k) && date < string(k.Next())
}

// Adjacent возвращает соседние месяцы в радиусе radius, без самого центра.
// Порядок: ближайшие первыми (-1, +1, -2, +2, ...).
func (k Key) Adjacent(radius int) []Key {
	if radius <= 0 {
		return nil
	}
	out := make([]Key, 0, radius*2)
	for i := 1; i <= radius; i++ {
		out = append(out, k.Add(-i), k.Add(i))
	}
	return out
}
