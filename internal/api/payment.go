package pay

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	interf "github.com/glkeru/travelbook/internal/interfaces"
	models "github.com/glkeru/travelbook/internal/models"
	service "github.com/glkeru/travelbook/internal/services"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	router  *mux.Router
	store   interf.Store
	service *service.PaymentService
	logger  *zap.Logger
}

func NewHandler(store interf.Store, serv *service.PaymentService, logger *zap.Logger) *PaymentHandler {
	router := mux.NewRouter()
	handler := &PaymentHandler{router, store, serv, logger}
	router.Use(MiddlewareLog())
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)
	router.HandleFunc("/members", handler.CreateMemberHandler).Methods(http.MethodPost)
	router.HandleFunc("/members/{id}", handler.GetMemberHandler).Methods(http.MethodGet)
	router.HandleFunc("/resources", handler.ResourcesHandler).Methods(http.MethodGet)
	router.HandleFunc("/bookings", handler.CreateBookingHandler).Methods(http.MethodPost)
	router.HandleFunc("/booking/{id}/add/{resource}", handler.AddResourceHandler).Methods(http.MethodPost)
	router.HandleFunc("/payment/summary/{id}", handler.SummaryHandler).Methods(http.MethodGet)
	router.HandleFunc("/payment/calculate", handler.CalculateHandler).Methods(http.MethodPost)
	router.HandleFunc("/payment/pay", handler.PayHandler).Methods(http.MethodPost)
	router.HandleFunc("/transactions/{member}", handler.TransactionsHandler).Methods(http.MethodGet)

	return handler
}

func (h *PaymentHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h.router.ServeHTTP(w, req)
}

func (h *PaymentHandler) Log(msg string, handler string, err error) {
	h.logger.Error(msg,
		zap.String("handler", handler),
		zap.Error(err),
	)
}

// формирование ответа
func (h *PaymentHandler) respond(w http.ResponseWriter, handler string, code int, v any) {
	j, err := json.Marshal(v)
	if err != nil {
		h.Log("Marshal", handler, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(j)
}

// перевод ошибок ядра в статусы HTTP
func httpStatus(err error) int {
	switch {
	case errors.Is(err, interf.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmptyBooking),
		errors.Is(err, service.ErrAlreadyPaid),
		errors.Is(err, service.ErrInvalidMethod),
		errors.Is(err, service.ErrInvalidSlip),
		errors.Is(err, service.ErrNotEnoughCash),
		errors.Is(err, service.ErrNotEnoughPoints),
		errors.Is(err, service.ErrCouponInvalid),
		errors.Is(err, service.ErrApprovalRejected):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *PaymentHandler) RootHandler(w http.ResponseWriter, req *http.Request) {
	h.respond(w, "RootHandler", http.StatusOK, map[string]string{"message": "Travel booking system running"})
}

type CreateMemberRequest struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Регистрация участника
func (h *PaymentHandler) CreateMemberHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "CreateMemberHandler", err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	data := &CreateMemberRequest{}
	err = json.Unmarshal(body, data)
	if err != nil {
		h.Log("Unmarshal", "CreateMemberHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	if data.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}

	level := models.Level(data.Level)
	switch level {
	case "":
		level = models.LevelNone
	case models.LevelNone, models.LevelSilver, models.LevelGold:
	default:
		http.Error(w, "Unknown membership level", http.StatusBadRequest)
		return
	}

	// приветственные баллы
	member := models.Member{
		ID:     h.store.NewID(),
		Name:   data.Name,
		Level:  level,
		Points: 100,
	}
	if err := h.store.SaveMember(req.Context(), member); err != nil {
		h.Log("SaveMember", "CreateMemberHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.respond(w, "CreateMemberHandler", http.StatusOK, map[string]any{
		"member_id": member.ID,
		"name":      member.Name,
		"level":     member.Level,
		"points":    member.Points,
	})
}

// Участник и его баланс баллов
func (h *PaymentHandler) GetMemberHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	member, err := h.store.GetMember(req.Context(), id)
	if err != nil {
		http.Error(w, "Member not found", httpStatus(err))
		return
	}
	points, err := h.service.Balance(req.Context(), id)
	if err != nil {
		h.Log("Balance", "GetMemberHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}

	coupons := []string{}
	for _, c := range member.Coupons {
		if !c.Used {
			coupons = append(coupons, c.Code)
		}
	}
	h.respond(w, "GetMemberHandler", http.StatusOK, map[string]any{
		"member_id": member.ID,
		"name":      member.Name,
		"level":     member.Level,
		"points":    points,
		"coupons":   coupons,
	})
}

// Список ресурсов
func (h *PaymentHandler) ResourcesHandler(w http.ResponseWriter, req *http.Request) {
	items, err := h.store.Resources(req.Context())
	if err != nil {
		h.Log("Resources", "ResourcesHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	recs := []models.ItemRecord{}
	for _, i := range items {
		recs = append(recs, models.RecordItem(i))
	}
	h.respond(w, "ResourcesHandler", http.StatusOK, recs)
}

type CreateBookingRequest struct {
	MemberID string `json:"member_id"`
}

// Создание брони
func (h *PaymentHandler) CreateBookingHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "CreateBookingHandler", err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	data := &CreateBookingRequest{}
	err = json.Unmarshal(body, data)
	if err != nil {
		h.Log("Unmarshal", "CreateBookingHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	memberID, err := uuid.Parse(data.MemberID)
	if err != nil {
		http.Error(w, "member_id is not correct", http.StatusBadRequest)
		return
	}

	if _, err := h.store.GetMember(req.Context(), memberID); err != nil {
		http.Error(w, "Member not found", httpStatus(err))
		return
	}

	booking := models.Booking{
		ID:     h.store.NewID(),
		Member: memberID,
		Status: models.BookingUnpaid,
	}
	if err := h.store.SaveBooking(req.Context(), booking); err != nil {
		h.Log("SaveBooking", "CreateBookingHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.respond(w, "CreateBookingHandler", http.StatusOK, map[string]any{
		"booking_id": booking.ID,
		"status":     booking.Status,
	})
}

// Добавление ресурса в бронь
func (h *PaymentHandler) AddResourceHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	resourceID, err := uuid.Parse(vars["resource"])
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	booking, err := h.store.GetBooking(req.Context(), bookingID)
	if err != nil {
		http.Error(w, "Booking not found", httpStatus(err))
		return
	}
	if booking.Status == models.BookingPaid {
		http.Error(w, service.ErrAlreadyPaid.Error(), http.StatusBadRequest)
		return
	}
	item, err := h.store.GetResource(req.Context(), resourceID)
	if err != nil {
		http.Error(w, "Resource not found", httpStatus(err))
		return
	}
	if item.Status() != models.ItemPending {
		http.Error(w, "Resource is not available", http.StatusBadRequest)
		return
	}

	booking.AddItem(item)
	if err := h.store.SaveBooking(req.Context(), booking); err != nil {
		h.Log("SaveBooking", "AddResourceHandler", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.respond(w, "AddResourceHandler", http.StatusOK, map[string]any{
		"booking_id": booking.ID,
		"added":      item.Name(),
		"items":      len(booking.Items),
	})
}

// Сводка перед оплатой
func (h *PaymentHandler) SummaryHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	view, err := h.service.Summary(req.Context(), id)
	if err != nil {
		h.Log("Summary", "SummaryHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "SummaryHandler", http.StatusOK, view)
}

type CalculateRequest struct {
	BookingID string `json:"booking_id"`
	Coupon    string `json:"coupon,omitempty"`
	UsePoints bool   `json:"use_points,omitempty"`
	Points    int    `json:"points,omitempty"`
}

// Предварительный расчет цены
func (h *PaymentHandler) CalculateHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "CalculateHandler", err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	data := &CalculateRequest{}
	err = json.Unmarshal(body, data)
	if err != nil {
		h.Log("Unmarshal", "CalculateHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	bookingID, err := uuid.Parse(data.BookingID)
	if err != nil {
		http.Error(w, "booking_id is not correct", http.StatusBadRequest)
		return
	}

	points := 0
	if data.UsePoints {
		points = data.Points
	}
	view, err := h.service.Quote(req.Context(), bookingID, data.Coupon, points)
	if err != nil {
		h.Log("Quote", "CalculateHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "CalculateHandler", http.StatusOK, view)
}

type PayBody struct {
	BookingID string  `json:"booking_id"`
	Method    string  `json:"method"`
	Slip      string  `json:"slip,omitempty"`
	Cash      float64 `json:"cash,omitempty"`
	Coupon    string  `json:"coupon,omitempty"`
	UsePoints bool    `json:"use_points,omitempty"`
	Points    int     `json:"points,omitempty"`
}

// Оплата брони
func (h *PaymentHandler) PayHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "PayHandler", err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	data := &PayBody{}
	err = json.Unmarshal(body, data)
	if err != nil {
		h.Log("Unmarshal", "PayHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}
	bookingID, err := uuid.Parse(data.BookingID)
	if err != nil {
		http.Error(w, "booking_id is not correct", http.StatusBadRequest)
		return
	}

	result, err := h.service.Pay(req.Context(), service.PayRequest{
		BookingID: bookingID,
		Method:    data.Method,
		Slip:      data.Slip,
		Cash:      data.Cash,
		Coupon:    data.Coupon,
		UsePoints: data.UsePoints,
		Points:    data.Points,
	})
	if err != nil {
		h.Log("Pay", "PayHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "PayHandler", http.StatusOK, result)
}

// Транзакции участника
func (h *PaymentHandler) TransactionsHandler(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	member, err := uuid.Parse(vars["member"])
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	tnxs, err := h.service.Transactions(req.Context(), member)
	if err != nil {
		h.Log("Transactions", "TransactionsHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	if tnxs == nil {
		tnxs = []models.Transaction{}
	}
	h.respond(w, "TransactionsHandler", http.StatusOK, tnxs)
}
