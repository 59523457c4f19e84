package api

import "time"

// Profile представляет серверное состояние профиля владельца
type Profile struct {
	UpdatedAt time.Time      `json:"updated_at"` // время последнего изменения на сервере
	Fields    map[string]any `json:"fields"`     // поля профиля
	OwnerID   string         `json:"owner_id"`   // идентификатор владельца
}

// UpdateProfileRequest представляет запрос на обновление профиля.
// Fields содержит только изменяемые поля (частичное обновление).
type UpdateProfileRequest struct {
	Fields map[string]any `json:"fields"`
}

// UpdateProfileResponse представляет ответ сервера на обновление профиля
type UpdateProfileResponse struct {
	Profile *Profile `json:"profile,omitempty"`
	Status  string   `json:"status"` // "success" при успешном применении
}

// StatusSuccess значение Status при успешном обновлении
const StatusSuccess = "success"

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
