package commit_hold

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationEngine/internal/domain"
)

var (
	// ErrHoldNotFound возвращается, когда холд не найден (неизвестен, освобождён или уже подтверждён)
	ErrHoldNotFound = fmt.Errorf("commit_hold: %w", domain.ErrNotFound)

	// ErrHoldExpired возвращается, когда срок холда истёк
	ErrHoldExpired = fmt.Errorf("commit_hold: %w", domain.ErrExpired)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("commit_hold: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("commit_hold: internal error")
)
