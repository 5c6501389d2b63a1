package repository

import (
	"context"

	"github.com/Astemirdum/court-booking/booking/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

// Repository is implemented once per storage backend.
type Repository interface {
	Driver() string
	Ping(ctx context.Context) error

	ListCourts(ctx context.Context) ([]model.Court, error)
	GetCourt(ctx context.Context, id int64) (model.Court, error)

	// TakenSlots returns the start times held on date; courtID 0 means any court.
	TakenSlots(ctx context.Context, date string, courtID int64) ([]string, error)
	SlotTaken(ctx context.Context, courtID int64, date, startTime string) (bool, error)

	UpsertUser(ctx context.Context, nome, telefone string) (int64, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	CreateReservation(ctx context.Context, res model.Reservation) (int64, error)

	ListUserReservations(ctx context.Context, nome, telefone string) ([]model.ReservationView, error)
	ListReservations(ctx context.Context) ([]model.ReservationView, error)
	UpdateStatus(ctx context.Context, id int64, status model.Status) error
	DeleteReservation(ctx context.Context, id int64) error

	CountByStatus(ctx context.Context) (map[model.Status]int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CourtUsage(ctx context.Context) ([]model.CourtUsage, error)
}

const (
	usersTableName        = `usuarios`
	courtsTableName       = `quadras`
	reservationsTableName = `reservas`

	codeUniqueIndex = `reservas_codigo_unico_key`
	slotUniqueIndex = `reservas_slot_active_key`
)

func activeStatuses() []string {
	out := make([]string, 0, len(model.ActiveStatuses))
	for _, s := range model.ActiveStatuses {
		out = append(out, string(s))
	}
	return out
}

func statusMap(counts []model.StatusCount) map[model.Status]int64 {
	m := make(map[model.Status]int64, len(counts))
	for _, c := range counts {
		m[c.Status] = c.Count
	}
	return m
}
