package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Astemirdum/court-booking/booking/internal/errs"
	"github.com/Astemirdum/court-booking/booking/internal/model"
	"github.com/Astemirdum/court-booking/booking/internal/repository"
	"github.com/Astemirdum/court-booking/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Publisher interface {
	Publish(ctx context.Context, ev kafka.ReservationEvent) error
}

const (
	defaultOpenHour     = 8
	defaultCloseHour    = 24
	defaultCodeAttempts = 100
	// inserts retried when a freshly generated code loses a race
	maxInsertAttempts = 3
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	pub  Publisher

	openHour     int
	closeHour    int
	codeAttempts int

	now     func() time.Time
	newCode func() string
}

type Option func(s *Service)

func WithPublisher(pub Publisher) Option {
	return func(s *Service) {
		if pub != nil {
			s.pub = pub
		}
	}
}

// WithOpeningHours sets the bookable window; slots start at open and the last one at closeHour-1.
func WithOpeningHours(open, closeHour int) Option {
	return func(s *Service) {
		if open >= 0 && open < closeHour && closeHour <= 24 {
			s.openHour, s.closeHour = open, closeHour
		}
	}
}

func WithCodeAttempts(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.codeAttempts = n
		}
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:          log.Named("service"),
		repo:         repo,
		pub:          nopPublisher{},
		openHour:     defaultOpenHour,
		closeHour:    defaultCloseHour,
		codeAttempts: defaultCodeAttempts,
		now:          time.Now,
		newCode:      randomCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultCourts is served when the store has no courts or cannot be read.
var DefaultCourts = []model.Court{
	{ID: 1, Nome: "Arena de Vôlei", Local: "Praça da Juventude", Tipo: "Vôlei", Ativa: true},
	{ID: 2, Nome: "Quadra Poliesportiva", Local: "Praça da Juventude", Tipo: "Poliesportiva", Ativa: true},
	{ID: 3, Nome: "Campo Sintético", Local: "Praça da Juventude", Tipo: "Futebol", Ativa: true},
	{ID: 4, Nome: "Arena de Vôlei", Local: "Praça Central", Tipo: "Vôlei", Ativa: true},
	{ID: 5, Nome: "Quadra Poliesportiva", Local: "Praça Central", Tipo: "Poliesportiva", Ativa: true},
	{ID: 6, Nome: "Quadra Poliesportiva", Local: "Quadra do Sarney", Tipo: "Poliesportiva", Ativa: true},
}

func (s *Service) ListCourts(ctx context.Context) []model.Court {
	courts, err := s.repo.ListCourts(ctx)
	if err != nil {
		s.log.Warn("list courts, serving defaults", zap.Error(err))
		return defaultCourts()
	}
	if len(courts) == 0 {
		return defaultCourts()
	}
	return courts
}

func defaultCourts() []model.Court {
	out := make([]model.Court, len(DefaultCourts))
	copy(out, DefaultCourts)
	return out
}

func (s *Service) ListAvailability(ctx context.Context, date, courtID string) ([]model.Slot, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, errs.NewValidationError("Data é obrigatória")
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, errs.NewValidationError("Data inválida. Use o formato YYYY-MM-DD")
	}
	var court int64
	if courtID = strings.TrimSpace(courtID); courtID != "" {
		id, err := strconv.ParseInt(courtID, 10, 64)
		if err != nil || id <= 0 {
			return nil, errs.NewValidationError("Quadra inválida")
		}
		court = id
	}

	taken, err := s.repo.TakenSlots(ctx, date, court)
	if err != nil {
		s.log.Warn("taken slots, reporting all available",
			zap.String("date", date), zap.Int64("quadra_id", court), zap.Error(err))
		taken = nil
	}
	held := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		held[normalizeClock(t)] = struct{}{}
	}

	slots := make([]model.Slot, 0, s.closeHour-s.openHour)
	for h := s.openHour; h < s.closeHour; h++ {
		start := clock(h)
		_, busy := held[start]
		slots = append(slots, model.Slot{
			HoraInicio: start,
			HoraFim:    clock(h + 1),
			Disponivel: !busy,
		})
	}
	return slots, nil
}

func (s *Service) CreateReservation(ctx context.Context, req model.CreateReservationRequest) (string, error) {
	req.Normalize()
	if err := requireFields(req); err != nil {
		return "", err
	}
	if _, err := time.Parse(model.DateLayout, req.DataReserva); err != nil {
		return "", errs.NewValidationError("Data inválida. Use o formato YYYY-MM-DD")
	}
	hour, err := s.parseStartHour(req.HoraInicio)
	if err != nil {
		return "", err
	}

	court, err := s.repo.GetCourt(ctx, req.QuadraID)
	if err != nil {
		if errors.Is(err, errs.ErrCourtNotFound) {
			return "", errs.NewValidationError("Quadra inválida")
		}
		return "", err
	}
	if !court.Ativa {
		return "", errs.NewValidationError("Quadra inválida")
	}

	start, end := clock(hour), clock(hour+1)
	taken, err := s.repo.SlotTaken(ctx, court.ID, req.DataReserva, start)
	if err != nil {
		return "", err
	}
	if taken {
		return "", errs.ErrConflict
	}

	userID, err := s.repo.UpsertUser(ctx, req.Nome, req.Telefone)
	if err != nil {
		return "", err
	}

	res := model.Reservation{
		UserID:      userID,
		CourtID:     court.ID,
		Date:        req.DataReserva,
		StartTime:   start,
		EndTime:     end,
		Status:      model.StatusPending,
		Observacoes: req.Observacoes,
	}
	for attempt := 0; attempt < maxInsertAttempts; attempt++ {
		if res.Code, err = s.generateCode(ctx); err != nil {
			return "", err
		}
		res.ID, err = s.repo.CreateReservation(ctx, res)
		if errors.Is(err, errs.ErrDuplicateCode) {
			s.log.Debug("codigo_unico collision, regenerating", zap.String("code", res.Code))
			continue
		}
		break
	}
	if err != nil {
		if errors.Is(err, errs.ErrDuplicateCode) {
			return "", errs.Store("create reservation", err)
		}
		return "", err
	}

	s.publish(ctx, kafka.ReservationEvent{
		Type:          kafka.EventReservationCreated,
		ReservationID: res.ID,
		Code:          res.Code,
		CourtID:       res.CourtID,
		Date:          res.Date,
		StartTime:     res.StartTime,
		Status:        string(res.Status),
	})
	return res.Code, nil
}

func requireFields(req model.CreateReservationRequest) error {
	switch {
	case req.Nome == "":
		return errs.NewValidationError("Campo nome é obrigatório")
	case req.Telefone == "":
		return errs.NewValidationError("Campo telefone é obrigatório")
	case req.QuadraID == 0:
		return errs.NewValidationError("Campo quadra_id é obrigatório")
	case req.DataReserva == "":
		return errs.NewValidationError("Campo data_reserva é obrigatório")
	case req.HoraInicio == "":
		return errs.NewValidationError("Campo hora_inicio é obrigatório")
	}
	return nil
}

func (s *Service) parseStartHour(v string) (int, error) {
	t, err := time.Parse(model.TimeLayout, v)
	if err != nil {
		if t, err = time.Parse(time.TimeOnly, v); err != nil {
			return 0, errs.NewValidationError("Horário inválido. Use o formato HH:MM")
		}
	}
	if t.Minute() != 0 || t.Second() != 0 {
		return 0, errs.NewValidationError("Horário deve ser em hora cheia")
	}
	if h := t.Hour(); h < s.openHour || h >= s.closeHour {
		return 0, errs.NewValidationError("Horário fora do funcionamento (%s às %s)",
			clock(s.openHour), clock(s.closeHour-1))
	}
	return t.Hour(), nil
}

func (s *Service) ListUserReservations(ctx context.Context, nome, telefone string) ([]model.ReservationView, error) {
	nome, telefone = strings.TrimSpace(nome), strings.TrimSpace(telefone)
	if nome == "" || telefone == "" {
		return nil, errs.NewValidationError("Nome e telefone são obrigatórios")
	}
	items, err := s.repo.ListUserReservations(ctx, nome, telefone)
	if err != nil {
		return nil, err
	}
	return nonNil(items), nil
}

func (s *Service) ListReservations(ctx context.Context) ([]model.ReservationView, error) {
	items, err := s.repo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(items), nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status model.Status) error {
	if !status.Valid() {
		return errs.NewValidationError("Status inválido")
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.publish(ctx, kafka.ReservationEvent{
		Type:          kafka.EventReservationStatusChanged,
		ReservationID: id,
		Status:        string(status),
	})
	return nil
}

func (s *Service) DeleteReservation(ctx context.Context, id int64) error {
	if err := s.repo.DeleteReservation(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, kafka.ReservationEvent{
		Type:          kafka.EventReservationDeleted,
		ReservationID: id,
	})
	return nil
}

func (s *Service) Statistics(ctx context.Context) (model.Statistics, error) {
	var (
		byStatus map[model.Status]int64
		users    int64
		usage    []model.CourtUsage
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		byStatus, err = s.repo.CountByStatus(gCtx)
		return err
	})
	g.Go(func() (err error) {
		users, err = s.repo.CountUsers(gCtx)
		return err
	})
	g.Go(func() (err error) {
		usage, err = s.repo.CourtUsage(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Statistics{}, err
	}

	stats := model.Statistics{
		ReservasPorStatus: byStatus,
		TotalUsuarios:     users,
		QuadrasPopulares:  usage,
	}
	if stats.ReservasPorStatus == nil {
		stats.ReservasPorStatus = map[model.Status]int64{}
	}
	if stats.QuadrasPopulares == nil {
		stats.QuadrasPopulares = []model.CourtUsage{}
	}
	for _, n := range stats.ReservasPorStatus {
		stats.TotalReservas += n
	}
	return stats, nil
}

func (s *Service) Health(ctx context.Context) (model.StoreStatus, error) {
	st := model.StoreStatus{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: s.now(),
	}
	if err := s.repo.Ping(ctx); err != nil {
		st.Status = "unhealthy"
		st.Database = "disconnected"
		st.Error = err.Error()
		return st, err
	}
	return st, nil
}

func (s *Service) Status() model.StoreStatus {
	return model.StoreStatus{
		Status:    "online",
		Database:  s.repo.Driver(),
		Timestamp: s.now(),
	}
}

// publish never fails the caller; the reservation is already stored.
func (s *Service) publish(ctx context.Context, ev kafka.ReservationEvent) {
	ev.Timestamp = s.now().UTC()
	if err := s.pub.Publish(ctx, ev); err != nil {
		s.log.Warn("publish event",
			zap.String("type", string(ev.Type)),
			zap.Int64("reserva_id", ev.ReservationID),
			zap.Error(err))
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, kafka.ReservationEvent) error { return nil }

// clock renders an hour of the day as HH:00; 24 wraps to 00:00.
func clock(hour int) string {
	return fmt.Sprintf("%02d:00", hour%24)
}

func normalizeClock(v string) string {
	if len(v) > 5 {
		return v[:5]
	}
	return v
}

func nonNil(items []model.ReservationView) []model.ReservationView {
	if items == nil {
		return []model.ReservationView{}
	}
	return items
}
