package contracts

import (
	"ccsed-client/internal/app/models"
	"ccsed-client/internal/pkg/dto/requests"
	"context"
)

type ReservationController interface {
	Mount(ctx context.Context)
	Unmount()
	Load(ctx context.Context)
	Reservations() []models.Reservation
	Loading() bool
	RequestStaffAttention(ctx context.Context, reservationID string) error
	CreateReservation(ctx context.Context, request *requests.CreateReservation) (string, error)
}
