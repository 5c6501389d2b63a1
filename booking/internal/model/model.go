package model

import (
	"strings"
	"time"
)

type Status string

const (
	StatusPending  Status = "Pendente"
	StatusApproved Status = "Aprovado"
	StatusRejected Status = "Reprovado"
)

// ActiveStatuses hold a slot.
var ActiveStatuses = []Status{StatusPending, StatusApproved}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

const (
	DateLayout = time.DateOnly
	TimeLayout = "15:04"
)

type Court struct {
	ID    int64  `json:"id" db:"id"`
	Nome  string `json:"nome" db:"nome"`
	Local string `json:"local" db:"local"`
	Tipo  string `json:"tipo" db:"tipo"`
	Ativa bool   `json:"ativa" db:"ativa"`
}

type Slot struct {
	HoraInicio string `json:"hora_inicio"`
	HoraFim    string `json:"hora_fim"`
	Disponivel bool   `json:"disponivel"`
}

type User struct {
	ID       int64  `json:"id" db:"id"`
	Nome     string `json:"nome" db:"nome"`
	Telefone string `json:"telefone" db:"telefone"`
}

// Reservation is the row written on creation.
type Reservation struct {
	ID          int64
	Code        string
	UserID      int64
	CourtID     int64
	Date        string
	StartTime   string
	EndTime     string
	Status      Status
	Observacoes string
}

// ReservationView is a reservation joined with its user and court.
type ReservationView struct {
	ID          int64  `json:"id" db:"id"`
	CodigoUnico string `json:"codigo_unico" db:"codigo_unico"`
	Nome        string `json:"nome" db:"nome"`
	Telefone    string `json:"telefone" db:"telefone"`
	QuadraID    int64  `json:"quadra_id" db:"quadra_id"`
	QuadraNome  string `json:"quadra_nome" db:"quadra_nome"`
	Local       string `json:"local" db:"local"`
	DataReserva string `json:"data_reserva" db:"data_reserva"`
	HoraInicio  string `json:"hora_inicio" db:"hora_inicio"`
	HoraFim     string `json:"hora_fim" db:"hora_fim"`
	Status      Status `json:"status" db:"status"`
	Observacoes string `json:"observacoes" db:"observacoes"`
	CreatedAt   string `json:"created_at" db:"created_at"`
	UpdatedAt   string `json:"updated_at" db:"updated_at"`
}

type CreateReservationRequest struct {
	Nome        string `json:"nome" validate:"required"`
	Telefone    string `json:"telefone" validate:"required"`
	QuadraID    int64  `json:"quadra_id" validate:"required"`
	DataReserva string `json:"data_reserva" validate:"required"`
	HoraInicio  string `json:"hora_inicio" validate:"required"`
	Observacoes string `json:"observacoes"`
}

func (r *CreateReservationRequest) Normalize() {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Telefone = strings.TrimSpace(r.Telefone)
	r.DataReserva = strings.TrimSpace(r.DataReserva)
	r.HoraInicio = strings.TrimSpace(r.HoraInicio)
	r.Observacoes = strings.TrimSpace(r.Observacoes)
}

type CreateReservationResponse struct {
	Success     bool   `json:"success"`
	CodigoUnico string `json:"codigo_unico"`
	Message     string `json:"message"`
}

type UserReservationsRequest struct {
	Nome     string `json:"nome" validate:"required"`
	Telefone string `json:"telefone" validate:"required"`
}

type UpdateStatusRequest struct {
	ReservaID int64  `json:"reserva_id" validate:"required"`
	Status    Status `json:"status" validate:"required"`
}

type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CourtUsage struct {
	Nome          string `json:"nome" db:"nome"`
	Local         string `json:"local" db:"local"`
	TotalReservas int64  `json:"total_reservas" db:"total_reservas"`
}

type StatusCount struct {
	Status Status `db:"status"`
	Count  int64  `db:"count"`
}

type Statistics struct {
	TotalReservas     int64            `json:"total_reservas"`
	ReservasPorStatus map[Status]int64 `json:"reservas_por_status"`
	TotalUsuarios     int64            `json:"total_usuarios"`
	QuadrasPopulares  []CourtUsage     `json:"quadras_populares"`
}

type StoreStatus struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
