package models

import (
	"strings"
	"time"
)

// TempIDPrefix зарезервированный префикс временных идентификаторов.
// Серверные идентификаторы его никогда не содержат.
const TempIDPrefix = "tmp_"

// Event событие календаря
type Event struct {
	CreatedAt time.Time `json:"created_at"` // время создания на сервере
	ID        string    `json:"id"`         // серверный UUID или временный tmp_<uuid>
	Title     string    `json:"title"`      // заголовок без пробелов по краям
	Date      string    `json:"date"`       // YYYY-MM-DD
	Time      string    `json:"time"`       // HH:MM
	OwnerID   string    `json:"owner_id"`   // uid владельца
}

// EventDraft данные события до сохранения
type EventDraft struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// IsTemporary сообщает, что событие еще не подтверждено сервером
func (e Event) IsTemporary() bool {
	return IsTempID(e.ID)
}

// IsTempID сообщает, является ли id временным
func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}

// SortKey ключ упорядочивания событий: дата, затем время
func (e Event) SortKey() string {
	return e.Date + " " + e.Time
}

// Less сравнивает события по дате и времени, при равенстве по id
func (e Event) Less(other Event) bool {
	if a, b := e.SortKey(), other.SortKey(); a != b {
		return a < b
	}
	return e.ID < other.ID
}

// Equal сравнивает все поля события
func (e Event) Equal(other Event) bool {
	return e.ID == other.ID &&
		e.Title == other.Title &&
		e.Date == other.Date &&
		e.Time == other.Time &&
		e.OwnerID == other.OwnerID &&
		e.CreatedAt.Equal(other.CreatedAt)
}
