package validation

import (
	"fmt"
	"regexp"
)

// OwnerIDPattern определяет допустимый формат идентификатора владельца
// Латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_), дефис (-)
// Длина: 1-64 символа
var OwnerIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// FieldNamePattern определяет допустимый формат имени поля профиля
// Строчная латинская буква, далее строчные буквы, цифры и нижнее подчеркивание
var FieldNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,63}$`)

const (
	// MaxOwnerIDLen максимальная длина идентификатора владельца
	MaxOwnerIDLen = 64
	// MaxFieldNameLen максимальная длина имени поля
	MaxFieldNameLen = 64
)

// ValidateOwnerID проверяет, что идентификатор владельца соответствует требованиям
func ValidateOwnerID(ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("owner id cannot be empty")
	}

	if len(ownerID) > MaxOwnerIDLen {
		return fmt.Errorf("owner id must not exceed %d characters", MaxOwnerIDLen)
	}

	if !OwnerIDPattern.MatchString(ownerID) {
		return fmt.Errorf("owner id can only contain letters (a-z, A-Z), numbers (0-9), underscores (_) and hyphens (-)")
	}

	return nil
}

// ValidateFieldName проверяет, что имя поля профиля соответствует требованиям
func ValidateFieldName(field string) error {
	if field == "" {
		return fmt.Errorf("field name cannot be empty")
	}

	if len(field) > MaxFieldNameLen {
		return fmt.Errorf("field name must not exceed %d characters", MaxFieldNameLen)
	}

	if !FieldNamePattern.MatchString(field) {
		return fmt.Errorf("field name must start with a lowercase letter and contain only lowercase letters, numbers and underscores")
	}

	return nil
}
