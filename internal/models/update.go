package models

import (
	"maps"
	"time"
)

// PendingUpdate представляет локальную мутацию профиля, поставленную
// в очередь на синхронизацию с сервером. Запись создается при
// редактировании в offline-режиме (или спекулятивно) и удаляется
// только после подтверждения сервером.
type PendingUpdate struct {
	CreatedAt time.Time      `json:"created_at"`           // CreatedAt время постановки мутации в очередь
	SyncedAt  time.Time      `json:"synced_at,omitempty"`  // SyncedAt время подтверждения сервером
	Payload   map[string]any `json:"payload"`              // Payload изменяемые поля (имя поля -> новое значение)
	OwnerID   string         `json:"owner_id"`             // OwnerID идентификатор владельца профиля
	ID        uint64         `json:"id"`                   // ID локальный автоинкрементный суррогатный ключ
	RetryCount int           `json:"retry_count"`          // RetryCount количество неудачных попыток синхронизации
	Synced    bool           `json:"synced"`               // Synced true после подтверждения сервером
	Awaiting  bool           `json:"awaiting_resolution"`  // Awaiting true если ждет ручного разрешения конфликта
}

// Clone создает глубокую копию записи
func (u *PendingUpdate) Clone() *PendingUpdate {
	clone := *u
	clone.Payload = make(map[string]any, len(u.Payload))
	maps.Copy(clone.Payload, u.Payload)
	return &clone
}

// CachedProfile представляет последнее известное серверное состояние
// профиля владельца. Хранится не больше одного снимка на владельца,
// снимок перезаписывается целиком (без частичного слияния).
type CachedProfile struct {
	LastUpdated time.Time      `json:"last_updated"` // LastUpdated время записи в кеш
	Data        map[string]any `json:"data"`         // Data полное состояние профиля с сервера
	OwnerID     string         `json:"owner_id"`     // OwnerID идентификатор владельца (первичный ключ)
}

// Clone создает глубокую копию снимка
func (c *CachedProfile) Clone() *CachedProfile {
	clone := *c
	clone.Data = make(map[string]any, len(c.Data))
	maps.Copy(clone.Data, c.Data)
	return &clone
}
