package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/storekeeper/pkg/api"
)

// ErrProfileNotFound indicates that no profile exists for the owner on the server
var ErrProfileNotFound = errors.New("profile not found")

// ClientAPI определяет интерфейс клиента profile-сервера
type ClientAPI interface {
	// Health проверяет доступность сервера
	Health(ctx context.Context) error

	// GetProfile возвращает текущее серверное состояние профиля,
	// включая updated_at для сравнения при конфликтах.
	// Возвращает ErrProfileNotFound, если профиль не существует.
	GetProfile(ctx context.Context, ownerID string) (*api.Profile, error)

	// UpdateProfile отправляет частичное обновление полей профиля
	UpdateProfile(ctx context.Context, ownerID string, fields map[string]any) (*api.UpdateProfileResponse, error)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			// Собственный таймаут транспорта: зависший запрос не должен
			// блокировать следующие проходы синхронизации
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/health", nil, nil); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	return nil
}

// GetProfile получает текущее серверное состояние профиля владельца
func (c *Client) GetProfile(ctx context.Context, ownerID string) (*api.Profile, error) {
	var resp api.Profile
	path := fmt.Sprintf("/api/v1/profiles/%s", url.PathEscape(ownerID))
	err := c.doRequest(ctx, http.MethodGet, path, nil, &resp)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile отправляет мутацию профиля на сервер
func (c *Client) UpdateProfile(ctx context.Context, ownerID string, fields map[string]any) (*api.UpdateProfileResponse, error) {
	req := api.UpdateProfileRequest{Fields: fields}

	var resp api.UpdateProfileResponse
	path := fmt.Sprintf("/api/v1/profiles/%s", url.PathEscape(ownerID))
	err := c.doRequest(ctx, http.MethodPut, path, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode == http.StatusNotFound {
		return ErrProfileNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
