package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
)

const (
	// MaxTitleLen максимальная длина заголовка события (в символах)
	MaxTitleLen = 30
	// DefaultTime время события, если пользователь его не указал
	DefaultTime = "00:00"

	timeLayout = "15:04"
)

// ValidateTitle проверяет заголовок и возвращает его без пробелов по краям
func ValidateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fieldError("title", "title cannot be empty")
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return "", fieldError("title", "title must not exceed %d characters", MaxTitleLen)
	}
	return title, nil
}

// ValidateDate проверяет, что дата имеет формат YYYY-MM-DD и существует в календаре
func ValidateDate(date string) error {
	if date == "" {
		return fieldError("date", "date cannot be empty")
	}
	t, err := time.Parse(month.DateLayout, date)
	if err != nil || t.Format(month.DateLayout) != date {
		return fieldError("date", "date must be a real calendar date in YYYY-MM-DD format")
	}
	return nil
}

// NormalizeTime приводит время к формату HH:MM.
// Пустая строка превращается в 00:00, всё кроме ровно пяти символов HH:MM отклоняется.
func NormalizeTime(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTime, nil
	}
	if len(value) != len(timeLayout) {
		return "", fieldError("time", "time must be in HH:MM format")
	}
	t, err := time.Parse(timeLayout, value)
	if err != nil || t.Format(timeLayout) != value {
		return "", fieldError("time", "time must be in HH:MM format")
	}
	return value, nil
}

// ValidateEventDraft проверяет черновик события и возвращает нормализованную копию.
// Сетевых вызовов не делает.
func ValidateEventDraft(draft models.EventDraft) (models.EventDraft, error) {
	// 1. Заголовок
	title, err := ValidateTitle(draft.Title)
	if err != nil {
		return models.EventDraft{}, err
	}

	// 2. Дата
	if err := ValidateDate(draft.Date); err != nil {
		return models.EventDraft{}, err
	}

	// 3. Время
	tm, err := NormalizeTime(draft.Time)
	if err != nil {
		return models.EventDraft{}, err
	}

	return models.EventDraft{Title: title, Date: draft.Date, Time: tm}, nil
}

// ValidateEventID проверяет идентификатор удаляемого события
func ValidateEventID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fieldError("id", "event id cannot be empty")
	}
	return nil
}
