package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/webuxmotion/mdmfd-com/internal/config"
	"github.com/webuxmotion/mdmfd-com/internal/logger"
	"github.com/webuxmotion/mdmfd-com/internal/utils"
	"github.com/webuxmotion/mdmfd-com/models"
)

const defaultRequestTimeout = 15 * time.Second

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var registered models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&registered).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return registered, nil
}

// Login implements [ServerAdapter]. It POSTs credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. The returned
// [models.LoginResponse] carries the password-wrapped master key envelope;
// the raw master key never crosses the wire.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&loginResp).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return loginResp, nil
}

// SetupEncryption implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) SetupEncryption(ctx context.Context, req models.SetupEncryptionRequest) (models.SetupEncryptionResponse, error) {
	var setupResp models.SetupEncryptionResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&setupResp).
		Post("/api/auth/setup-encryption")
	if err != nil {
		return models.SetupEncryptionResponse{}, fmt.Errorf("setup encryption request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SetupEncryptionResponse{}, err
	}

	return setupResp, nil
}

// ChangePassword implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.ChangePasswordResponse, error) {
	var changeResp models.ChangePasswordResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&changeResp).
		Post("/api/auth/change-password")
	if err != nil {
		return models.ChangePasswordResponse{}, fmt.Errorf("change password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ChangePasswordResponse{}, err
	}

	return changeResp, nil
}

// CheckRecovery implements [ServerAdapter]. Unauthenticated.
func (h *httpServerAdapter) CheckRecovery(ctx context.Context, req models.CheckRecoveryRequest) (models.CheckRecoveryResponse, error) {
	var checkResp models.CheckRecoveryResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&checkResp).
		Post("/api/auth/check-recovery")
	if err != nil {
		return models.CheckRecoveryResponse{}, fmt.Errorf("check recovery request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CheckRecoveryResponse{}, err
	}

	return checkResp, nil
}

// ResetPassword implements [ServerAdapter]. Unauthenticated.
func (h *httpServerAdapter) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.ResetPasswordResponse, error) {
	var resetResp models.ResetPasswordResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&resetResp).
		Post("/api/auth/reset-password")
	if err != nil {
		return models.ResetPasswordResponse{}, fmt.Errorf("reset password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ResetPasswordResponse{}, err
	}

	return resetResp, nil
}

// GetPendingRecoveryKey implements [ServerAdapter]. The server answers 200
// with a null recovery_key when nothing is pending, so absence is not an
// error. Requires a valid bearer token.
func (h *httpServerAdapter) GetPendingRecoveryKey(ctx context.Context) (models.PendingRecoveryKeyResponse, error) {
	var pendingResp models.PendingRecoveryKeyResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&pendingResp).
		Get("/api/auth/pending-recovery-key")
	if err != nil {
		return models.PendingRecoveryKeyResponse{}, fmt.Errorf("get pending recovery key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PendingRecoveryKeyResponse{}, err
	}

	return pendingResp, nil
}

// AcknowledgeRecoveryKey implements [ServerAdapter]. Requires a valid bearer
// token.
func (h *httpServerAdapter) AcknowledgeRecoveryKey(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/auth/pending-recovery-key")
	if err != nil {
		return fmt.Errorf("acknowledge recovery key request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateDesk implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) CreateDesk(ctx context.Context, desk models.Desk) (models.Desk, error) {
	var created models.Desk

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(desk).
		SetResult(&created).
		Post("/api/desks")
	if err != nil {
		return models.Desk{}, fmt.Errorf("create desk request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Desk{}, err
	}

	return created, nil
}

// GetDesks implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) GetDesks(ctx context.Context) ([]models.Desk, error) {
	resp, err := h.authedRequest(ctx).Get("/api/desks")
	if err != nil {
		return nil, fmt.Errorf("get desks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var desks []models.Desk
	if err = json.Unmarshal(resp.Body(), &desks); err != nil {
		return nil, fmt.Errorf("decode desks response: %w", err)
	}

	return desks, nil
}

// GetDesk implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) GetDesk(ctx context.Context, deskID string) (models.Desk, error) {
	var desk models.Desk

	resp, err := h.authedRequest(ctx).
		SetResult(&desk).
		Get("/api/desks/" + url.PathEscape(deskID))
	if err != nil {
		return models.Desk{}, fmt.Errorf("get desk request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Desk{}, err
	}

	return desk, nil
}

// UpdateDesk implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateDesk(ctx context.Context, desk models.Desk) (models.Desk, error) {
	var updated models.Desk

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(desk).
		SetResult(&updated).
		Put("/api/desks/" + url.PathEscape(desk.DeskID))
	if err != nil {
		return models.Desk{}, fmt.Errorf("update desk request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Desk{}, err
	}

	return updated, nil
}

// DeleteDesk implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteDesk(ctx context.Context, deskID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/desks/" + url.PathEscape(deskID))
	if err != nil {
		return fmt.Errorf("delete desk request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateItem implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	var created models.Item

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(item).
		SetResult(&created).
		Post("/api/desks/" + url.PathEscape(item.DeskID) + "/items")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return created, nil
}

// GetDeskItems implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) GetDeskItems(ctx context.Context, deskID string) ([]models.Item, error) {
	resp, err := h.authedRequest(ctx).Get("/api/desks/" + url.PathEscape(deskID) + "/items")
	if err != nil {
		return nil, fmt.Errorf("get desk items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Item
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode desk items response: %w", err)
	}

	return items, nil
}

// GetItem implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) GetItem(ctx context.Context, itemID string) (models.Item, error) {
	var item models.Item

	resp, err := h.authedRequest(ctx).
		SetResult(&item).
		Get("/api/items/" + url.PathEscape(itemID))
	if err != nil {
		return models.Item{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

// UpdateItem implements [ServerAdapter]. Only non-nil fields of update are
// changed on the server. Requires a valid bearer token.
func (h *httpServerAdapter) UpdateItem(ctx context.Context, update models.ItemUpdate) (models.Item, error) {
	var updated models.Item

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&updated).
		Put("/api/items/" + url.PathEscape(update.ItemID))
	if err != nil {
		return models.Item{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return updated, nil
}

// DeleteItem implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/items/" + url.PathEscape(itemID))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

// ReorderItems implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) ReorderItems(ctx context.Context, req models.ReorderItemsRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/desks/reorder-items")
	if err != nil {
		return fmt.Errorf("reorder items request: %w", err)
	}

	return mapHTTPError(resp)
}

// MoveItem implements [ServerAdapter]. Requires a valid bearer token.
func (h *httpServerAdapter) MoveItem(ctx context.Context, req models.MoveItemRequest) (models.Item, error) {
	var moved models.Item

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&moved).
		Post("/api/desks/move-item")
	if err != nil {
		return models.Item{}, fmt.Errorf("move item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return moved, nil
}

// GetServerVersion implements [ServerAdapter]. Unauthenticated.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
