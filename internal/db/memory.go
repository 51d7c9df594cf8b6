package pay

import (
	"context"
	"sort"
	"sync"
	"time"

	interf "github.com/glkeru/travelbook/internal/interfaces"
	models "github.com/glkeru/travelbook/internal/models"
	"github.com/google/uuid"
)

// Бронь в плоском виде: позиции храним записями, чтобы Get/Save
// отдавали копии и состояние менялось только через Save
type bookingDoc struct {
	ID     uuid.UUID
	Member uuid.UUID
	Status models.BookingStatus
	Items  []models.ItemRecord
}

// Реестр в памяти. Состояние живет только в процессе и теряется при
// перезапуске.
type MemoryStore struct {
	mu         sync.RWMutex
	members    map[uuid.UUID]models.Member
	bookings   map[uuid.UUID]bookingDoc
	resources  map[uuid.UUID]models.ItemRecord
	promotions map[uuid.UUID]models.Promotion
	tnx        map[uuid.UUID]models.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		members:    make(map[uuid.UUID]models.Member),
		bookings:   make(map[uuid.UUID]bookingDoc),
		resources:  make(map[uuid.UUID]models.ItemRecord),
		promotions: make(map[uuid.UUID]models.Promotion),
		tnx:        make(map[uuid.UUID]models.Transaction),
	}
}

func (s *MemoryStore) NewID() uuid.UUID {
	return uuid.New()
}

func (s *MemoryStore) GetMember(ctx context.Context, id uuid.UUID) (models.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.members[id]
	if !ok {
		return models.Member{}, interf.ErrNotFound
	}
	m.Coupons = append([]models.Coupon(nil), m.Coupons...)
	return m, nil
}

func (s *MemoryStore) SaveMember(ctx context.Context, m models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.Coupons = append([]models.Coupon(nil), m.Coupons...)
	s.members[m.ID] = m
	return nil
}

func (s *MemoryStore) GetBooking(ctx context.Context, id uuid.UUID) (models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, interf.ErrNotFound
	}
	b := models.Booking{ID: d.ID, Member: d.Member, Status: d.Status}
	for _, rec := range d.Items {
		item, err := rec.Item()
		if err != nil {
			return models.Booking{}, err
		}
		b.AddItem(item)
	}
	return b, nil
}

func (s *MemoryStore) SaveBooking(ctx context.Context, b models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := bookingDoc{ID: b.ID, Member: b.Member, Status: b.Status}
	for _, item := range b.Items {
		d.Items = append(d.Items, models.RecordItem(item))
	}
	s.bookings[b.ID] = d
	return nil
}

func (s *MemoryStore) GetResource(ctx context.Context, id uuid.UUID) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.resources[id]
	if !ok {
		return nil, interf.ErrNotFound
	}
	return rec.Item()
}

func (s *MemoryStore) SaveResource(ctx context.Context, item models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[item.ID()] = models.RecordItem(item)
	return nil
}

func (s *MemoryStore) Resources(ctx context.Context) ([]models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Item, 0, len(s.resources))
	for _, rec := range s.resources {
		item, err := rec.Item()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name() < items[j].Name() })
	return items, nil
}

// Действующие акции: срок не истек
func (s *MemoryStore) ActivePromotions(ctx context.Context) ([]models.Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	now := time.Now()
	var promos []models.Promotion
	for _, p := range s.promotions {
		if !now.After(p.Expiry) {
			promos = append(promos, p)
		}
	}
	return promos, nil
}

func (s *MemoryStore) SavePromotion(ctx context.Context, p models.Promotion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.promotions[p.ID] = p
	return nil
}

func (s *MemoryStore) SaveTransaction(ctx context.Context, tnx models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tnx[tnx.ID] = tnx
	return nil
}

func (s *MemoryStore) Transactions(ctx context.Context, member uuid.UUID) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var tnxs []models.Transaction
	for _, t := range s.tnx {
		if t.Member == member {
			tnxs = append(tnxs, t)
		}
	}
	sort.Slice(tnxs, func(i, j int) bool { return tnxs[i].CreatedAt.Before(tnxs[j].CreatedAt) })
	return tnxs, nil
}

// Демо-данные: ресурсы, акция и участник уровня gold с купоном
func (s *MemoryStore) Seed() {
	ctx := context.Background()
	expiry := time.Now().AddDate(1, 0, 0)

	seed := []struct {
		kind  string
		name  string
		price float64
		count int
	}{
		{models.KindLodging, "Hotel Room Normal", 1200, 10},
		{models.KindLodging, "Hotel Room King", 1800, 10},
		{models.KindLodging, "Pool Villa", 4500, 5},
		{models.KindVehicle, "Car", 900, 10},
		{models.KindVehicle, "Motorcycle", 400, 10},
		{models.KindActivity, "Snorkeling Tour", 1000, 10},
		{models.KindActivity, "City Walk", 300, 10},
	}
	for _, r := range seed {
		for i := 0; i < r.count; i++ {
			item, err := models.NewItem(r.kind, s.NewID(), r.name, r.price)
			if err != nil {
				continue
			}
			s.SaveResource(ctx, item)
		}
	}

	s.SavePromotion(ctx, models.Promotion{
		ID:       s.NewID(),
		Name:     "Season opening",
		Rate:     0.1,
		MinPrice: 1000,
		Expiry:   expiry,
	})

	s.SaveMember(ctx, models.Member{
		ID:     s.NewID(),
		Name:   "Demo Gold",
		Level:  models.LevelGold,
		Points: 100,
		Coupons: []models.Coupon{
			{Code: "DISC10", Kind: models.CouponFlat, Discount: 100, Expiry: expiry},
		},
	})
}
