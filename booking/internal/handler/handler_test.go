package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Astemirdum/court-booking/booking/internal/errs"
	"github.com/Astemirdum/court-booking/booking/internal/handler"
	"github.com/Astemirdum/court-booking/booking/internal/model"
	md "github.com/Astemirdum/court-booking/pkg/middleware"
	"github.com/Astemirdum/court-booking/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/Astemirdum/court-booking/booking/internal/handler/mocks"
)

type response struct {
	expectedCode int
	expectedBody string
}

func newEcho(log *zap.Logger) *echo.Echo {
	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.HTTPErrorHandler = md.ErrorHandler(log)
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_GetCourts(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockReservationService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, log)

	e := newEcho(log)
	e.GET("/api/quadras", h.GetCourts)

	svc.EXPECT().ListCourts(context.Background()).Return([]model.Court{
		{ID: 1, Nome: "Arena de Vôlei", Local: "Praça da Juventude", Tipo: "Vôlei", Ativa: true},
	})

	w := serve(e, http.MethodGet, "/api/quadras", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`[{"id":1,"nome":"Arena de Vôlei","local":"Praça da Juventude","tipo":"Vôlei","ativa":true}]`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_GetAvailability(t *testing.T) {
	t.Parallel()
	type input struct {
		data, quadraID string
	}
	type mockBehavior func(r *service_mocks.MockReservationService, in input)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockReservationService, in input) {
				r.EXPECT().ListAvailability(context.Background(), in.data, in.quadraID).Return([]model.Slot{
					{HoraInicio: "08:00", HoraFim: "09:00", Disponivel: true},
					{HoraInicio: "09:00", HoraFim: "10:00", Disponivel: false},
				}, nil)
			},
			input: input{data: "2025-01-20", quadraID: "1"},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"hora_inicio":"08:00","hora_fim":"09:00","disponivel":true},{"hora_inicio":"09:00","hora_fim":"10:00","disponivel":false}]`,
			},
		},
		{
			name: "err. data required",
			mockBehavior: func(r *service_mocks.MockReservationService, in input) {
				r.EXPECT().ListAvailability(context.Background(), "", "").
					Return(nil, errs.NewValidationError("Data é obrigatória"))
			},
			input: input{},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"Data é obrigatória"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockReservationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := newEcho(log)
			e.GET("/api/horarios-disponiveis", h.GetAvailability)

			tt.mockBehavior(svc, tt.input)
			target := "/api/horarios-disponiveis?data=" + tt.input.data + "&quadra_id=" + tt.input.quadraID
			w := serve(e, http.MethodGet, target, "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockReservationService)
	req := model.CreateReservationRequest{
		Nome:        "Maria",
		Telefone:    "98999990000",
		QuadraID:    1,
		DataReserva: "2025-01-20",
		HoraInicio:  "10:00",
	}
	const body = `{"nome":" Maria ","telefone":"98999990000","quadra_id":1,"data_reserva":"2025-01-20","hora_inicio":"10:00"}`

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().CreateReservation(context.Background(), req).Return("1234", nil)
			},
			body: body,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"codigo_unico":"1234","message":"Solicitação de reserva enviada com sucesso!"}`,
			},
		},
		{
			name:         "err. field required",
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			body:         `{"nome":"Maria","quadra_id":1,"data_reserva":"2025-01-20","hora_inicio":"10:00"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"Campo telefone é obrigatório"}`,
			},
		},
		{
			name:         "err. malformed body",
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			body:         `{"nome":`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"Dados inválidos"}`,
			},
		},
		{
			name: "err. conflict",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().CreateReservation(context.Background(), req).Return("", errs.ErrConflict)
			},
			body: body,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"Horário não está mais disponível"}`,
			},
		},
		{
			name: "err. invalid court",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().CreateReservation(context.Background(), req).
					Return("", errs.NewValidationError("Quadra inválida"))
			},
			body: body,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"Quadra inválida"}`,
			},
		},
		{
			name: "err. store",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().CreateReservation(context.Background(), req).
					Return("", errs.Store("upsert user", errors.New("database is locked")))
			},
			body: body,
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"error":"Erro no banco de dados: database is locked"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockReservationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := newEcho(log)
			e.POST("/api/solicitar-reserva", h.CreateReservation)

			tt.mockBehavior(svc)
			w := serve(e, http.MethodPost, "/api/solicitar-reserva", tt.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetUserReservations(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockReservationService)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().ListUserReservations(context.Background(), "Maria", "98999990000").Return([]model.ReservationView{
					{
						ID:          3,
						CodigoUnico: "1234",
						Nome:        "Maria",
						Telefone:    "98999990000",
						QuadraID:    1,
						QuadraNome:  "Arena de Vôlei",
						Local:       "Praça da Juventude",
						DataReserva: "2025-01-20",
						HoraInicio:  "10:00",
						HoraFim:     "11:00",
						Status:      model.StatusPending,
						CreatedAt:   "2025-01-19 12:00:00",
						UpdatedAt:   "2025-01-19 12:00:00",
					},
				}, nil)
			},
			body: `{"nome":"Maria","telefone":"98999990000"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":3,"codigo_unico":"1234","nome":"Maria","telefone":"98999990000","quadra_id":1,"quadra_nome":"Arena de Vôlei","local":"Praça da Juventude","data_reserva":"2025-01-20","hora_inicio":"10:00","hora_fim":"11:00","status":"Pendente","observacoes":"","created_at":"2025-01-19 12:00:00","updated_at":"2025-01-19 12:00:00"}]`,
			},
		},
		{
			name:         "err. missing phone",
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			body:         `{"nome":"Maria"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"Nome e telefone são obrigatórios"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockReservationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := newEcho(log)
			e.POST("/api/minhas-reservas", h.GetUserReservations)

			tt.mockBehavior(svc)
			w := serve(e, http.MethodPost, "/api/minhas-reservas", tt.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_UpdateStatus(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockReservationService)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		body         string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().UpdateStatus(context.Background(), int64(3), model.StatusApproved).Return(nil)
			},
			body: `{"reserva_id":3,"status":"Aprovado"}`,
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"message":"Status atualizado com sucesso!"}`,
			},
		},
		{
			name:         "err. missing fields",
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			body:         `{"status":"Aprovado"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"ID da reserva e status são obrigatórios"}`,
			},
		},
		{
			name: "err. invalid status",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().UpdateStatus(context.Background(), int64(3), model.Status("Cancelado")).
					Return(errs.NewValidationError("Status inválido"))
			},
			body: `{"reserva_id":3,"status":"Cancelado"}`,
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"Status inválido"}`,
			},
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().UpdateStatus(context.Background(), int64(99), model.StatusRejected).Return(errs.ErrNotFound)
			},
			body: `{"reserva_id":99,"status":"Reprovado"}`,
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"error":"Reserva não encontrada"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockReservationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := newEcho(log)
			e.POST("/api/admin/atualizar-status", h.UpdateStatus)

			tt.mockBehavior(svc)
			w := serve(e, http.MethodPost, "/api/admin/atualizar-status", tt.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_DeleteReservation(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockReservationService)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		target       string
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().DeleteReservation(context.Background(), int64(3)).Return(nil)
			},
			target: "/api/admin/excluir-reserva?id=3",
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"success":true,"message":"Reserva excluída com sucesso!"}`,
			},
		},
		{
			name:         "err. id required",
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			target:       "/api/admin/excluir-reserva",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"ID da reserva é obrigatório"}`,
			},
		},
		{
			name:         "err. id malformed",
			mockBehavior: func(r *service_mocks.MockReservationService) {},
			target:       "/api/admin/excluir-reserva?id=abc",
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"error":"ID da reserva inválido"}`,
			},
		},
		{
			name: "err. not found",
			mockBehavior: func(r *service_mocks.MockReservationService) {
				r.EXPECT().DeleteReservation(context.Background(), int64(42)).Return(errs.ErrNotFound)
			},
			target: "/api/admin/excluir-reserva?id=42",
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"error":"Reserva não encontrada"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockReservationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := newEcho(log)
			e.DELETE("/api/admin/excluir-reserva", h.DeleteReservation)

			tt.mockBehavior(svc)
			w := serve(e, http.MethodDelete, tt.target, "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetStatistics(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockReservationService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, log)

	e := newEcho(log)
	e.GET("/api/estatisticas", h.GetStatistics)

	svc.EXPECT().Statistics(context.Background()).Return(model.Statistics{
		TotalReservas: 3,
		ReservasPorStatus: map[model.Status]int64{
			model.StatusPending:  2,
			model.StatusApproved: 1,
		},
		TotalUsuarios: 2,
		QuadrasPopulares: []model.CourtUsage{
			{Nome: "Campo Sintético", Local: "Praça da Juventude", TotalReservas: 3},
		},
	}, nil)

	w := serve(e, http.MethodGet, "/api/estatisticas", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`{"total_reservas":3,"reservas_por_status":{"Aprovado":1,"Pendente":2},"total_usuarios":2,"quadras_populares":[{"nome":"Campo Sintético","local":"Praça da Juventude","total_reservas":3}]}`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_HealthAndStatus(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockReservationService(c)
	log := zap.NewExample().Named("test")
	h := handler.New(svc, log)
	ts := time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

	e := newEcho(log)
	e.GET("/api/health", h.Health)
	e.GET("/api/status", h.Status)

	svc.EXPECT().Health(context.Background()).
		Return(model.StoreStatus{Status: "healthy", Database: "connected", Timestamp: ts}, nil)
	w := serve(e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"status":"healthy","database":"connected","timestamp":"2025-01-20T10:00:00Z"}`, strings.Trim(w.Body.String(), "\n"))

	svc.EXPECT().Health(context.Background()).
		Return(model.StoreStatus{Status: "unhealthy", Database: "disconnected", Error: "refused", Timestamp: ts}, errors.New("refused"))
	w = serve(e, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, `{"status":"unhealthy","database":"disconnected","error":"refused","timestamp":"2025-01-20T10:00:00Z"}`, strings.Trim(w.Body.String(), "\n"))

	svc.EXPECT().Status().Return(model.StoreStatus{Status: "online", Database: "sqlite", Timestamp: ts})
	w = serve(e, http.MethodGet, "/api/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `{"status":"online","database":"sqlite","timestamp":"2025-01-20T10:00:00Z"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_NewRouter(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockReservationService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))
	e := h.NewRouter()

	w := serve(e, http.MethodGet, "/manage/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "OK", w.Body.String())

	svc.EXPECT().ListCourts(gomock.Any()).Return([]model.Court{})
	w = serve(e, http.MethodGet, "/api/quadras", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `[]`, strings.Trim(w.Body.String(), "\n"))

	w = serve(e, http.MethodGet, "/api/nao-existe", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"error":"Not Found"}`, strings.Trim(w.Body.String(), "\n"))
}
