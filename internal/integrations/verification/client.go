package verification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client клиент сервиса кодов подтверждения
// Код генерируется на нашей стороне, сервис только регистрирует его и отдает ссылку на QR
type Client struct {
	baseURL    string
	httpClient *http.Client
	newCode    func() string
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		newCode: uuid.NewString,
		log:     log,
	}
}

// Generate выпускает новый код подтверждения для бронирования
func (c *Client) Generate(ctx context.Context, kind Kind, bookingID int64) (*Artifact, error) {
	code := c.newCode()

	body, err := json.Marshal(issueRequest{Code: code, Kind: kind, BookingID: bookingID})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/codes", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Verification service request failed for %s booking_id=%d: %v", kind, bookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
		// Продолжаем обработку
	case resp.StatusCode >= http.StatusInternalServerError:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, string(respBody))
	default:
		var errResp ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, errResp.Message)
	}

	// Парсим ответ
	var issued issueResponse
	if err := json.NewDecoder(resp.Body).Decode(&issued); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if issued.URL == "" {
		return nil, fmt.Errorf("%w: empty url", ErrInvalidResponse)
	}

	c.log.Info("Verification code issued for %s booking_id=%d", kind, bookingID)
	return &Artifact{Code: code, URL: issued.URL}, nil
}
