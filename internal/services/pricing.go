package pay

import (
	"math"
	"time"

	models "github.com/glkeru/travelbook/internal/models"
)

// Виды шагов скидки
const (
	StepFlat = "flat" // вычитание суммы
	StepRate = "rate" // процент от остатка
)

type Step struct {
	Kind  string
	Value float64
}

// Применение шагов скидки строго по порядку. Отрицательные промежуточные
// значения не обрезаются, итог приводится к нулю один раз в самом конце.
func Apply(base float64, steps []Step) float64 {
	t := base
	for _, s := range steps {
		switch s.Kind {
		case StepRate:
			t -= t * s.Value
		default:
			t -= s.Value
		}
	}
	return math.Max(t, 0)
}

// Шаги стандартной схемы, фиксированный порядок:
// акция (сумма), членство (процент от остатка), купон, баллы
func PriceSteps(promo float64, memberRate float64, coupon models.Coupon, withCoupon bool, points float64) []Step {
	steps := []Step{
		{StepFlat, promo},
		{StepRate, memberRate},
	}
	if withCoupon {
		switch coupon.Kind {
		case models.CouponPercent:
			steps = append(steps, Step{StepRate, coupon.Discount / 100})
		default:
			steps = append(steps, Step{StepFlat, coupon.Discount})
		}
	}
	if points > 0 {
		steps = append(steps, Step{StepFlat, points})
	}
	return steps
}

// Итоговая цена: акция, членство, купон фиксированной суммой
func FinalPrice(base float64, promo float64, memberRate float64, coupon float64) float64 {
	return Apply(base, []Step{
		{StepFlat, promo},
		{StepRate, memberRate},
		{StepFlat, coupon},
	})
}

// Выбор акции: максимальная сумма скидки среди действующих,
// ноль если подходящих нет
func BestPromotion(promos []models.Promotion, base float64, now time.Time) float64 {
	var best float64
	for _, p := range promos {
		if d := p.Discount(base, now); d > best {
			best = d
		}
	}
	return best
}

// Первый купон с подходящим кодом в порядке коллекции
func FindCoupon(coupons []models.Coupon, code string, now time.Time) (models.Coupon, int) {
	for i, c := range coupons {
		if c.Code == code && c.Usable(now) {
			return c, i
		}
	}
	return models.Coupon{}, -1
}
