package complete_reservation

import (
	"context"

	"github.com/m04kA/RSM-FacilityService/internal/service/reservations/models"
)

type ReservationService interface {
	Complete(ctx context.Context, reservationID int64, req *models.CompleteReservationRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
