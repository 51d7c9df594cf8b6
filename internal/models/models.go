package pay

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Уровни членства
type Level string

const (
	LevelNone   Level = "none"
	LevelSilver Level = "silver"
	LevelGold   Level = "gold"
)

// Ставка скидки по уровню
func (l Level) Rate() float64 {
	switch l {
	case LevelGold:
		return 0.20
	case LevelSilver:
		return 0.10
	}
	return 0
}

type Member struct {
	ID           uuid.UUID `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Level        Level     `bson:"level" json:"level"`
	DiscountRate float64   `bson:"discountrate" json:"discount_rate"` // явная ставка, приоритетнее уровня
	Coupons      []Coupon  `bson:"coupons" json:"coupons"`
	Points       int       `bson:"points" json:"points"`
}

// Действующая ставка скидки участника
func (m Member) MemberRate() float64 {
	if m.DiscountRate > 0 {
		return m.DiscountRate
	}
	return m.Level.Rate()
}

// Начисление баллов после успешной оплаты: 1 балл за каждые 10 оплаченных
func (m *Member) AddPoints(amount float64) {
	m.Points += int(amount / 10)
}

// Виды купонов
const (
	CouponFlat    = "flat"    // фиксированная сумма
	CouponPercent = "percent" // процент от остатка
)

type Coupon struct {
	Code     string    `bson:"code" json:"code"`
	Kind     string    `bson:"kind" json:"kind"`
	Discount float64   `bson:"discount" json:"discount"`
	Expiry   time.Time `bson:"expiry" json:"expiry"`
	Used     bool      `bson:"used" json:"used"`
}

// Купон применим: не использован и срок не истек
func (c Coupon) Usable(now time.Time) bool {
	return !c.Used && !now.After(c.Expiry)
}

type Promotion struct {
	ID       uuid.UUID `bson:"id" json:"id"`
	Name     string    `bson:"name" json:"name"`
	Rate     float64   `bson:"rate" json:"rate"`
	MinPrice float64   `bson:"minprice" json:"min_price"`
	Expiry   time.Time `bson:"expiry" json:"expiry"`
}

// Скидка акции: base*rate при достижении порога и действующем сроке
func (p Promotion) Discount(base float64, now time.Time) float64 {
	if base >= p.MinPrice && !now.After(p.Expiry) {
		return base * p.Rate
	}
	return 0
}

// Статусы позиций
type ItemStatus string

const (
	ItemPending  ItemStatus = "pending"
	ItemReserved ItemStatus = "reserved"
)

// Виды позиций
const (
	KindLodging  = "lodging"
	KindVehicle  = "vehicle"
	KindActivity = "activity"
)

// Позиция брони: проживание, транспорт или активность.
// Цена неизменна после создания, статус меняется только через Reserve.
type Item interface {
	ID() uuid.UUID
	Name() string
	Kind() string
	Price() float64
	Status() ItemStatus
	Reserve()
}

type res struct {
	id     uuid.UUID
	name   string
	price  float64
	status ItemStatus
}

func (r *res) ID() uuid.UUID      { return r.id }
func (r *res) Name() string       { return r.name }
func (r *res) Price() float64     { return r.price }
func (r *res) Status() ItemStatus { return r.status }
func (r *res) Reserve()           { r.status = ItemReserved }

type Lodging struct{ res }

func (*Lodging) Kind() string { return KindLodging }

type Vehicle struct{ res }

func (*Vehicle) Kind() string { return KindVehicle }

type Activity struct{ res }

func (*Activity) Kind() string { return KindActivity }

// Создание позиции по виду
func NewItem(kind string, id uuid.UUID, name string, price float64) (Item, error) {
	base := res{id, name, price, ItemPending}
	switch kind {
	case KindLodging:
		return &Lodging{base}, nil
	case KindVehicle:
		return &Vehicle{base}, nil
	case KindActivity:
		return &Activity{base}, nil
	}
	return nil, fmt.Errorf("unknown item kind: %s", kind)
}

// Плоское представление позиции для хранения
type ItemRecord struct {
	ID     uuid.UUID  `bson:"id" json:"id"`
	Kind   string     `bson:"kind" json:"kind"`
	Name   string     `bson:"name" json:"name"`
	Price  float64    `bson:"price" json:"price"`
	Status ItemStatus `bson:"status" json:"status"`
}

func RecordItem(i Item) ItemRecord {
	return ItemRecord{i.ID(), i.Kind(), i.Name(), i.Price(), i.Status()}
}

func (r ItemRecord) Item() (Item, error) {
	item, err := NewItem(r.Kind, r.ID, r.Name, r.Price)
	if err != nil {
		return nil, err
	}
	if r.Status == ItemReserved {
		item.Reserve()
	}
	return item, nil
}

// Статусы брони: переход только в одну сторону
type BookingStatus string

const (
	BookingUnpaid BookingStatus = "unpaid"
	BookingPaid   BookingStatus = "paid"
)

type Booking struct {
	ID     uuid.UUID
	Member uuid.UUID
	Items  []Item
	Status BookingStatus
}

func (b *Booking) AddItem(i Item) {
	b.Items = append(b.Items, i)
}

// Базовая цена: сумма цен позиций до скидок
func (b *Booking) BasePrice() (base float64) {
	for _, i := range b.Items {
		base += i.Price()
	}
	return base
}

func (b *Booking) SetPaid() {
	b.Status = BookingPaid
}

// Статусы транзакций
type TnxStatus string

const (
	TnxPending  TnxStatus = "pending"
	TnxApproved TnxStatus = "approved"
)

type Transaction struct {
	ID        uuid.UUID `bson:"id" json:"id"`
	Booking   uuid.UUID `bson:"booking" json:"booking_id"`
	Member    uuid.UUID `bson:"member" json:"member_id"`
	Amount    float64   `bson:"amount" json:"amount"`
	Status    TnxStatus `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdat" json:"created_at"`
}

func (t *Transaction) Approve() {
	t.Status = TnxApproved
}

type ReceiptItem struct {
	ID    uuid.UUID `json:"id"`
	Kind  string    `json:"type"`
	Price float64   `json:"price"`
}

type Receipt struct {
	Items  []ReceiptItem `json:"items"`
	Amount float64       `json:"amount"`
}

// Чек: состав брони и итоговая сумма с округлением до двух знаков.
// Ничего не изменяет.
func NewReceipt(items []Item, amount float64) Receipt {
	rec := Receipt{Amount: math.Round(amount*100) / 100}
	for _, i := range items {
		rec.Items = append(rec.Items, ReceiptItem{i.ID(), i.Kind(), i.Price()})
	}
	return rec
}
