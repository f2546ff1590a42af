package get_month_view

import (
	"context"

	getMonthView "github.com/m04kA/Droply-AvailabilityService/internal/usecase/get_month_view"
)

type GetMonthViewUseCase interface {
	Execute(ctx context.Context, req *getMonthView.Request) (*getMonthView.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
