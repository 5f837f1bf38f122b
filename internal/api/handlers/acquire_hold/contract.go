package acquire_hold

import (
	"context"

	acquireHold "github.com/m04kA/SMC-ReservationEngine/internal/usecase/acquire_hold"
)

type AcquireHoldUseCase interface {
	Execute(ctx context.Context, req *acquireHold.Request) (*acquireHold.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
