package smsgateway

import "errors"

var (
	// ErrNotConfigured возвращается, когда адрес шлюза не задан
	ErrNotConfigured = errors.New("smsgateway client: url not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("smsgateway client: internal error")

	// ErrRejected возвращается, когда шлюз отклонил сообщение (4xx)
	ErrRejected = errors.New("smsgateway client: message rejected")

	// ErrUnavailable возвращается, когда шлюз недоступен или ответил 5xx
	ErrUnavailable = errors.New("smsgateway client: gateway unavailable")
)
