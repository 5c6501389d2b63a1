package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Astemirdum/court-booking/booking/internal/errs"
	"github.com/Astemirdum/court-booking/booking/internal/model"
	md "github.com/Astemirdum/court-booking/pkg/middleware"
	"github.com/Astemirdum/court-booking/pkg/validate"
	_ "github.com/Astemirdum/court-booking/swagger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	reservationSvc ReservationService
	log            *zap.Logger
}

func New(reservationSvc ReservationService, log *zap.Logger) *Handler {
	return &Handler{
		reservationSvc: reservationSvc,
		log:            log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HTTPErrorHandler = md.ErrorHandler(h.log)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost, http.MethodDelete},
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.ManageHealth)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/quadras", h.GetCourts)
	api.GET("/horarios-disponiveis", h.GetAvailability)
	api.POST("/solicitar-reserva", h.CreateReservation)
	api.POST("/minhas-reservas", h.GetUserReservations)
	api.GET("/estatisticas", h.GetStatistics)
	api.GET("/health", h.Health)
	api.GET("/status", h.Status)

	admin := api.Group("/admin")
	admin.GET("/reservas", h.GetReservations)
	admin.POST("/atualizar-status", h.UpdateStatus)
	admin.DELETE("/excluir-reserva", h.DeleteReservation)

	return e
}

func (h *Handler) ManageHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// GetCourts
// @Summary  active courts
// @Tags     quadras
// @Produce  json
// @Success  200 {array} model.Court
// @Router   /quadras [get]
func (h *Handler) GetCourts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reservationSvc.ListCourts(c.Request().Context()))
}

// GetAvailability
// @Summary  hourly slots of a day
// @Tags     quadras
// @Produce  json
// @Param    data      query string true  "YYYY-MM-DD"
// @Param    quadra_id query int    false "court id"
// @Success  200 {array}  model.Slot
// @Failure  400 {object} md.ErrorResponse
// @Router   /horarios-disponiveis [get]
func (h *Handler) GetAvailability(c echo.Context) error {
	slots, err := h.reservationSvc.ListAvailability(c.Request().Context(), c.QueryParam("data"), c.QueryParam("quadra_id"))
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, slots)
}

// CreateReservation
// @Summary  request a reservation
// @Tags     reservas
// @Accept   json
// @Produce  json
// @Param    input body     model.CreateReservationRequest true "reservation"
// @Success  200   {object} model.CreateReservationResponse
// @Failure  400   {object} md.ErrorResponse
// @Failure  500   {object} md.ErrorResponse
// @Router   /solicitar-reserva [post]
func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	req.Normalize()
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	code, err := h.reservationSvc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.CreateReservationResponse{
		Success:     true,
		CodigoUnico: code,
		Message:     "Solicitação de reserva enviada com sucesso!",
	})
}

// GetUserReservations
// @Summary  reservations of a user
// @Tags     reservas
// @Accept   json
// @Produce  json
// @Param    input body     model.UserReservationsRequest true "user"
// @Success  200   {array}  model.ReservationView
// @Failure  400   {object} md.ErrorResponse
// @Router   /minhas-reservas [post]
func (h *Handler) GetUserReservations(c echo.Context) error {
	var req model.UserReservationsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.Telefone) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Nome e telefone são obrigatórios")
	}
	items, err := h.reservationSvc.ListUserReservations(c.Request().Context(), req.Nome, req.Telefone)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetReservations
// @Summary  all reservations
// @Tags     admin
// @Produce  json
// @Success  200 {array}  model.ReservationView
// @Failure  500 {object} md.ErrorResponse
// @Router   /admin/reservas [get]
func (h *Handler) GetReservations(c echo.Context) error {
	items, err := h.reservationSvc.ListReservations(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateStatus
// @Summary  approve or reject a reservation
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    input body     model.UpdateStatusRequest true "status"
// @Success  200   {object} model.Ack
// @Failure  400   {object} md.ErrorResponse
// @Failure  404   {object} md.ErrorResponse
// @Router   /admin/atualizar-status [post]
func (h *Handler) UpdateStatus(c echo.Context) error {
	var req model.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Dados inválidos")
	}
	if req.ReservaID == 0 || req.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ID da reserva e status são obrigatórios")
	}
	if err := h.reservationSvc.UpdateStatus(c.Request().Context(), req.ReservaID, req.Status); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.Ack{Success: true, Message: "Status atualizado com sucesso!"})
}

// DeleteReservation
// @Summary  delete a reservation
// @Tags     admin
// @Produce  json
// @Param    id  query    int true "reservation id"
// @Success  200 {object} model.Ack
// @Failure  400 {object} md.ErrorResponse
// @Failure  404 {object} md.ErrorResponse
// @Router   /admin/excluir-reserva [delete]
func (h *Handler) DeleteReservation(c echo.Context) error {
	raw := c.QueryParam("id")
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "ID da reserva é obrigatório")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "ID da reserva inválido")
	}
	if err := h.reservationSvc.DeleteReservation(c.Request().Context(), id); err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.Ack{Success: true, Message: "Reserva excluída com sucesso!"})
}

// GetStatistics
// @Summary  aggregate counters
// @Tags     admin
// @Produce  json
// @Success  200 {object} model.Statistics
// @Failure  500 {object} md.ErrorResponse
// @Router   /estatisticas [get]
func (h *Handler) GetStatistics(c echo.Context) error {
	stats, err := h.reservationSvc.Statistics(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Health
// @Summary  store connectivity
// @Tags     system
// @Produce  json
// @Success  200 {object} model.StoreStatus
// @Failure  500 {object} model.StoreStatus
// @Router   /health [get]
func (h *Handler) Health(c echo.Context) error {
	st, err := h.reservationSvc.Health(c.Request().Context())
	if err != nil {
		h.log.Error("health", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, st)
	}
	return c.JSON(http.StatusOK, st)
}

// Status
// @Summary  storage backend in use
// @Tags     system
// @Produce  json
// @Success  200 {object} model.StoreStatus
// @Router   /status [get]
func (h *Handler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, h.reservationSvc.Status())
}

func (h *Handler) httpError(err error) error {
	var (
		validationErr *errs.ValidationError
		storeErr      *errs.StoreError
	)
	switch {
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrConflict.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, errs.ErrNotFound.Error())
	case errors.As(err, &storeErr):
		return echo.NewHTTPError(http.StatusInternalServerError, "Erro no banco de dados: "+storeErr.Err.Error()).SetInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error()).SetInternal(err)
}
