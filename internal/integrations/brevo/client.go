package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент транзакционных писем Brevo
type Client struct {
	url        string
	apiKey     string
	sender     Contact
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Brevo
func NewClient(url, apiKey string, sender Contact, timeout time.Duration, log Logger) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		sender: sender,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send отправляет письмо
func (c *Client) Send(ctx context.Context, email *Email) (*SendResponse, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	if len(email.To) == 0 {
		return nil, fmt.Errorf("%w: no recipients", ErrInternal)
	}

	body, err := json.Marshal(sendRequest{
		Sender:      c.sender,
		To:          email.To,
		Subject:     email.Subject,
		HTMLContent: email.HTML,
		ReplyTo:     email.ReplyTo,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", ErrRejected, readError(resp.Body))
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}

	// Парсим ответ
	var result SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Email sent: subject=%q, recipients=%d, message_id=%s", email.Subject, len(email.To), result.MessageID)
	return &result, nil
}

// readError извлекает сообщение об ошибке Brevo из тела ответа
func readError(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 4096))
	var e ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return string(raw)
}
