package pay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	interf "github.com/glkeru/travelbook/internal/interfaces"
	models "github.com/glkeru/travelbook/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Ошибки оплаты
var (
	ErrEmptyBooking     = errors.New("booking has no items")
	ErrAlreadyPaid      = errors.New("booking is already paid")
	ErrInvalidMethod    = errors.New("invalid payment method")
	ErrInvalidSlip      = errors.New("invalid slip")
	ErrNotEnoughCash    = errors.New("not enough cash")
	ErrNotEnoughPoints  = errors.New("not enough points")
	ErrCouponInvalid    = errors.New("coupon is not valid")
	ErrApprovalRejected = errors.New("payment approval rejected")
)

// Методы оплаты
const (
	MethodTransfer = "transfer"
	MethodCash     = "cash"
)

type PaymentService struct {
	store  interf.Store
	cache  interf.Cache  // опционально
	ledger interf.Ledger // опционально
	logger *zap.Logger

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewPaymentService(store interf.Store, cache interf.Cache, ledger interf.Ledger, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		store:  store,
		cache:  cache,
		ledger: ledger,
		logger: logger,
		locks:  make(map[uuid.UUID]*sync.Mutex),
	}
}

// log
func (s *PaymentService) Log(op string, err error) {
	s.logger.Error("Payment",
		zap.String("service", op),
		zap.Error(err),
	)
}

// Именованная блокировка: оплата идет под замком брони и замком
// участника, купон и баллы проверяются и гасятся только одной оплатой
// за раз. Карта растет на мьютекс на ключ и не чистится: ключей
// столько же, сколько броней и участников за время работы процесса.
func (s *PaymentService) lock(id uuid.UUID) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// Участник и действующие акции, читаются параллельно
func (s *PaymentService) loadMember(ctx context.Context, memberID uuid.UUID) (models.Member, []models.Promotion, error) {
	var member models.Member
	var promos []models.Promotion
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := s.store.GetMember(gctx, memberID)
		if err != nil {
			return fmt.Errorf("get member: %w", err)
		}
		member = m
		return nil
	})
	g.Go(func() error {
		p, err := s.store.ActivePromotions(gctx)
		if err != nil {
			return fmt.Errorf("get promotions: %w", err)
		}
		promos = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.Member{}, nil, err
	}
	return member, promos, nil
}

// Бронь, участник и действующие акции
func (s *PaymentService) load(ctx context.Context, bookingID uuid.UUID) (models.Booking, models.Member, []models.Promotion, error) {
	booking, err := s.store.GetBooking(ctx, bookingID)
	if err != nil {
		return models.Booking{}, models.Member{}, nil, fmt.Errorf("get booking: %w", err)
	}
	member, promos, err := s.loadMember(ctx, booking.Member)
	if err != nil {
		return models.Booking{}, models.Member{}, nil, err
	}
	return booking, member, promos, nil
}

type SummaryView struct {
	Items             []models.ReceiptItem `json:"items"`
	BasePrice         float64              `json:"base_price"`
	PromotionDiscount float64              `json:"promotion_discount"`
	MembershipRate    float64              `json:"membership_rate"`
	AvailableCoupons  []string             `json:"available_coupons"`
}

// Сводка по брони перед оплатой, только чтение
func (s *PaymentService) Summary(ctx context.Context, bookingID uuid.UUID) (SummaryView, error) {
	booking, member, promos, err := s.load(ctx, bookingID)
	if err != nil {
		return SummaryView{}, err
	}

	now := time.Now()
	base := booking.BasePrice()
	view := SummaryView{
		BasePrice:         base,
		PromotionDiscount: BestPromotion(promos, base, now),
		MembershipRate:    member.MemberRate(),
		AvailableCoupons:  []string{},
	}
	for _, i := range booking.Items {
		view.Items = append(view.Items, models.ReceiptItem{ID: i.ID(), Kind: i.Kind(), Price: i.Price()})
	}
	for _, c := range member.Coupons {
		if c.Usable(now) {
			view.AvailableCoupons = append(view.AvailableCoupons, c.Code)
		}
	}
	return view, nil
}

type QuoteView struct {
	BasePrice         float64 `json:"base_price"`
	PromotionDiscount float64 `json:"promotion_discount"`
	MembershipRate    float64 `json:"membership_rate"`
	CouponDiscount    float64 `json:"coupon_discount"`
	PointsUsed        int     `json:"points_used"`
	FinalPrice        float64 `json:"final_price"`
}

// Предварительный расчет цены. Только чтение: купон не помечается
// использованным, баллы не списываются. Неподходящий код купона здесь
// дает нулевую скидку, в отличие от Pay.
func (s *PaymentService) Quote(ctx context.Context, bookingID uuid.UUID, couponCode string, points int) (QuoteView, error) {
	booking, member, promos, err := s.load(ctx, bookingID)
	if err != nil {
		return QuoteView{}, err
	}

	now := time.Now()
	base := booking.BasePrice()
	promo := BestPromotion(promos, base, now)
	rate := member.MemberRate()

	var coupon models.Coupon
	withCoupon := false
	if couponCode != "" {
		if c, i := FindCoupon(member.Coupons, couponCode, now); i >= 0 {
			coupon = c
			withCoupon = true
		}
	}

	if points < 0 || points > member.Points {
		return QuoteView{}, ErrNotEnoughPoints
	}

	view := QuoteView{
		BasePrice:         base,
		PromotionDiscount: promo,
		MembershipRate:    rate,
		PointsUsed:        points,
		FinalPrice:        Apply(base, PriceSteps(promo, rate, coupon, withCoupon, float64(points))),
	}
	if withCoupon {
		// сумма купона считается на остатке после акции и членства
		rem := Apply(base, PriceSteps(promo, rate, models.Coupon{}, false, 0))
		view.CouponDiscount = rem - Apply(base, PriceSteps(promo, rate, coupon, true, 0))
	}
	return view, nil
}

type PayRequest struct {
	BookingID uuid.UUID
	Method    string
	Slip      string
	Cash      float64
	Coupon    string
	UsePoints bool
	Points    int
}

type PayResult struct {
	BookingID     uuid.UUID            `json:"booking_id"`
	TransactionID uuid.UUID            `json:"transaction_id"`
	Status        models.BookingStatus `json:"status"`
	FinalPrice    float64              `json:"final_price"`
	MemberPoints  int                  `json:"member_points"`
	Receipt       models.Receipt       `json:"receipt"`
}

// Оплата брони. Все проверки и изменение состояния выполняются под
// блокировкой брони и блокировкой участника: параллельные оплаты разных
// броней одного участника не могут погасить один купон дважды. Порядок
// захвата всегда бронь, затем участник. Состояние меняется только после
// прохождения всех проверок, при любой ошибке бронь остается как была.
func (s *PaymentService) Pay(ctx context.Context, req PayRequest) (PayResult, error) {
	unlock := s.lock(req.BookingID)
	defer unlock()

	booking, err := s.store.GetBooking(ctx, req.BookingID)
	if err != nil {
		return PayResult{}, fmt.Errorf("get booking: %w", err)
	}

	unlockMember := s.lock(booking.Member)
	defer unlockMember()

	member, promos, err := s.loadMember(ctx, booking.Member)
	if err != nil {
		return PayResult{}, err
	}

	if booking.Status == models.BookingPaid {
		return PayResult{}, ErrAlreadyPaid
	}
	base := booking.BasePrice()
	if len(booking.Items) == 0 || base <= 0 {
		return PayResult{}, ErrEmptyBooking
	}

	now := time.Now()
	promo := BestPromotion(promos, base, now)

	// купон: на оплате неподходящий код отклоняет запрос
	var coupon models.Coupon
	couponIdx := -1
	if req.Coupon != "" {
		coupon, couponIdx = FindCoupon(member.Coupons, req.Coupon, now)
		if couponIdx < 0 {
			return PayResult{}, ErrCouponInvalid
		}
	}

	// списание баллов
	points := 0
	if req.UsePoints {
		if req.Points <= 0 || req.Points > member.Points {
			return PayResult{}, ErrNotEnoughPoints
		}
		points = req.Points
	}

	final := Apply(base, PriceSteps(promo, member.MemberRate(), coupon, couponIdx >= 0, float64(points)))

	switch req.Method {
	case MethodTransfer:
		if !verifyTransfer(req.Slip) {
			return PayResult{}, ErrInvalidSlip
		}
	case MethodCash:
		if !verifyCash(req.Cash, final) {
			return PayResult{}, ErrNotEnoughCash
		}
	default:
		return PayResult{}, ErrInvalidMethod
	}

	tnx := models.Transaction{
		ID:        s.store.NewID(),
		Booking:   booking.ID,
		Member:    member.ID,
		Amount:    final,
		Status:    models.TnxPending,
		CreatedAt: now,
	}
	if !(Staff{}).VerifyPayment(&tnx) || !(Manager{}).VerifyPayment(&tnx) {
		return PayResult{}, ErrApprovalRejected
	}

	// фиксация: все проверки пройдены
	booking.SetPaid()
	for _, item := range booking.Items {
		item.Reserve()
	}
	if couponIdx >= 0 {
		member.Coupons[couponIdx].Used = true
	}
	member.Points -= points
	member.AddPoints(final)

	if err := s.store.SaveBooking(ctx, booking); err != nil {
		return PayResult{}, fmt.Errorf("save booking: %w", err)
	}
	for _, item := range booking.Items {
		if err := s.store.SaveResource(ctx, item); err != nil {
			return PayResult{}, fmt.Errorf("save resource: %w", err)
		}
	}
	if err := s.store.SaveMember(ctx, member); err != nil {
		return PayResult{}, fmt.Errorf("save member: %w", err)
	}
	if err := s.store.SaveTransaction(ctx, tnx); err != nil {
		return PayResult{}, fmt.Errorf("save transaction: %w", err)
	}

	// журнал и кэш вторичны, оплату не откатывают
	if s.ledger != nil {
		if err := s.ledger.TnxCreate(ctx, tnx); err != nil {
			s.Log("ledger", err)
		}
	}
	if s.cache != nil {
		if err := s.cache.InvalidateBalance(ctx, member.ID.String()); err != nil {
			s.Log("cache", err)
		}
	}

	// в ответе сумма с округлением чека, в транзакции полная
	receipt := models.NewReceipt(booking.Items, final)
	return PayResult{
		BookingID:     booking.ID,
		TransactionID: tnx.ID,
		Status:        booking.Status,
		FinalPrice:    receipt.Amount,
		MemberPoints:  member.Points,
		Receipt:       receipt,
	}, nil
}

// Баланс баллов, сквозное чтение через кэш
func (s *PaymentService) Balance(ctx context.Context, member uuid.UUID) (int, error) {
	if s.cache != nil {
		points, err := s.cache.GetBalance(ctx, member.String())
		if err == nil {
			return int(points), nil
		}
	}
	m, err := s.store.GetMember(ctx, member)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		_ = s.cache.SetBalance(ctx, member.String(), float64(m.Points))
	}
	return m.Points, nil
}

// Транзакции участника: из журнала, если он настроен, иначе из реестра
func (s *PaymentService) Transactions(ctx context.Context, member uuid.UUID) ([]models.Transaction, error) {
	if s.ledger != nil {
		return s.ledger.Tnx(ctx, member, time.Time{}, time.Now())
	}
	return s.store.Transactions(ctx, member)
}
