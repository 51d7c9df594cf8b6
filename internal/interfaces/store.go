package pay

import (
	"context"
	"errors"
	"time"

	models "github.com/glkeru/travelbook/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=./../services/mock_store_test.go -package=pay . Store,Cache,Ledger

// Сущность не найдена в реестре
var ErrNotFound = errors.New("not found")

// Реестр сущностей. Идентификаторы выдает реестр, удаления нет:
// сущности живут все время работы процесса.
type Store interface {
	NewID() uuid.UUID

	GetMember(ctx context.Context, id uuid.UUID) (models.Member, error)
	SaveMember(ctx context.Context, m models.Member) error

	GetBooking(ctx context.Context, id uuid.UUID) (models.Booking, error)
	SaveBooking(ctx context.Context, b models.Booking) error

	GetResource(ctx context.Context, id uuid.UUID) (models.Item, error)
	SaveResource(ctx context.Context, item models.Item) error
	Resources(ctx context.Context) ([]models.Item, error)

	ActivePromotions(ctx context.Context) ([]models.Promotion, error)
	SavePromotion(ctx context.Context, p models.Promotion) error

	SaveTransaction(ctx context.Context, tnx models.Transaction) error
	Transactions(ctx context.Context, member uuid.UUID) ([]models.Transaction, error)
}

// Кэш балансов баллов
type Cache interface {
	GetBalance(ctx context.Context, member string) (points float64, err error)
	SetBalance(ctx context.Context, member string, points float64) error
	InvalidateBalance(ctx context.Context, member string) error
}

// Журнал проведенных транзакций
type Ledger interface {
	TnxCreate(ctx context.Context, tnx models.Transaction) error
	Tnx(ctx context.Context, member uuid.UUID, from time.Time, to time.Time) ([]models.Transaction, error)
}
