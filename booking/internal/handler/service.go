package handler

import (
	"context"

	"github.com/Astemirdum/court-booking/booking/internal/model"
	"github.com/Astemirdum/court-booking/booking/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type ReservationService interface {
	ListCourts(ctx context.Context) []model.Court
	ListAvailability(ctx context.Context, date, courtID string) ([]model.Slot, error)
	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (string, error)
	ListUserReservations(ctx context.Context, nome, telefone string) ([]model.ReservationView, error)
	ListReservations(ctx context.Context) ([]model.ReservationView, error)
	UpdateStatus(ctx context.Context, id int64, status model.Status) error
	DeleteReservation(ctx context.Context, id int64) error
	Statistics(ctx context.Context) (model.Statistics, error)
	Health(ctx context.Context) (model.StoreStatus, error)
	Status() model.StoreStatus
}

var _ ReservationService = (*service.Service)(nil)
