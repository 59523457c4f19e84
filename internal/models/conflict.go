package models

import "time"

// Strategy определяет политику автоматического разрешения конфликтов
type Strategy string

const (
	// StrategyTimestamp побеждает более поздняя версия (last-write-wins)
	StrategyTimestamp Strategy = "timestamp"
	// StrategyServerWins всегда побеждает серверная версия
	StrategyServerWins Strategy = "server-wins"
	// StrategyClientWins всегда побеждает локальная версия
	StrategyClientWins Strategy = "client-wins"
	// StrategyManual решение принимает пользователь
	StrategyManual Strategy = "manual"
)

// Valid проверяет, что strategy имеет одно из допустимых значений
func (s Strategy) Valid() bool {
	switch s {
	case StrategyTimestamp, StrategyServerWins, StrategyClientWins, StrategyManual:
		return true
	}
	return false
}

// Action определяет, какая сторона побеждает при разрешении конфликта
type Action string

const (
	// ActionUseLocal применить локальную версию (push на сервер)
	ActionUseLocal Action = "use_local"
	// ActionUseServer принять серверную версию (локальная мутация отбрасывается)
	ActionUseServer Action = "use_server"
)

// Conflict представляет обнаруженное расхождение между локальной
// мутацией и серверным состоянием одного владельца. Не персистится:
// живет только в рамках одного прохода синхронизации и в audit-логе.
type Conflict struct {
	LocalTimestamp  time.Time      `json:"local_timestamp"`  // время постановки локальной мутации
	ServerTimestamp time.Time      `json:"server_timestamp"` // время последнего изменения на сервере
	DetectedAt      time.Time      `json:"detected_at"`      // время обнаружения
	LocalData       map[string]any `json:"local_data"`       // локальный payload
	ServerData      map[string]any `json:"server_data"`      // серверное состояние
	OwnerID         string         `json:"owner_id"`         // владелец
	UpdateID        uint64         `json:"update_id"`        // ID локальной PendingUpdate
}

// Resolution представляет результат разрешения конфликта
type Resolution struct {
	Data   map[string]any `json:"data"`   // данные победившей стороны
	Reason string         `json:"reason"` // причина выбора (для лога/UI)
	Action Action         `json:"action"` // победившая сторона
}

// ServerNewer возвращает true, если серверная версия строго новее локальной.
// Именно это условие определяет наличие конфликта: слепая перезапись
// потеряла бы серверные изменения.
func (c *Conflict) ServerNewer() bool {
	return c.ServerTimestamp.After(c.LocalTimestamp)
}
