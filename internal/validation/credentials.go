package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// EmailPattern допустимый формат email
var EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

const (
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// MaxDisplayNameLen максимальная длина отображаемого имени
	MaxDisplayNameLen = 64
)

// ValidateEmail проверяет формат email
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fieldError("email", "email cannot be empty")
	}
	if !EmailPattern.MatchString(email) {
		return fieldError("email", "invalid email format")
	}
	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fieldError("password", "password cannot be empty")
	}
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return fieldError("password", "password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}

// ValidateDisplayName проверяет имя, указываемое при регистрации
func ValidateDisplayName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fieldError("display_name", "name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxDisplayNameLen {
		return fieldError("display_name", "name must not exceed %d characters", MaxDisplayNameLen)
	}
	return nil
}

// ValidateSignUp проверяет все поля формы регистрации
func ValidateSignUp(email, password, displayName string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	if err := ValidatePassword(password); err != nil {
		return err
	}
	return ValidateDisplayName(displayName)
}
