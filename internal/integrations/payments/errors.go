package payments

import "errors"

var (
	// ErrGatewayRejected возвращается, когда шлюз отклонил создание заказа
	ErrGatewayRejected = errors.New("payments client: gateway rejected order")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("payments client: invalid response")
)
