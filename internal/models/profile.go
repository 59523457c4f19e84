package models

import (
	"maps"
	"time"
)

// Profile представляет серверное состояние профиля магазина.
// Fields хранит произвольные поля профиля (название, валюта, часовой
// пояс и т.д.), UpdatedAt меняется при каждой принятой правке.
type Profile struct {
	UpdatedAt time.Time      `json:"updated_at"`
	Fields    map[string]any `json:"fields"`
	OwnerID   string         `json:"owner_id"`
}

// Clone возвращает глубокую копию профиля
func (p *Profile) Clone() *Profile {
	clone := *p
	clone.Fields = make(map[string]any, len(p.Fields))
	maps.Copy(clone.Fields, p.Fields)
	return &clone
}
