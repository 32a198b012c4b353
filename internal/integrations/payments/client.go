package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент платежного шлюза (Razorpay-совместимый API заказов)
// Создает платежный заказ до записи нашего заказа в БД; проверка подписи
// платежа и вебхуки находятся вне зоны ответственности этого сервиса
type Client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
func NewClient(baseURL, keyID, keySecret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateOrder создает заказ в платежном шлюзе
// amount - сумма в минорных единицах валюты, receipt - наш публичный референс заказа
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*GatewayOrder, error) {
	url := fmt.Sprintf("%s/v1/orders", c.baseURL)

	body, err := json.Marshal(CreateOrderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		var gatewayErr ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&gatewayErr); err != nil {
			return nil, fmt.Errorf("%w: status %d", ErrGatewayRejected, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: %s (%s)", ErrGatewayRejected, gatewayErr.Message, gatewayErr.Code)
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var order GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("Gateway order created: id=%s, amount=%d %s, receipt=%s",
		order.ID, order.Amount, order.Currency, order.Receipt)

	return &order, nil
}
