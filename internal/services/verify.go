package pay

import (
	"strings"

	models "github.com/glkeru/travelbook/internal/models"
)

// Маркер принятого банковского слипа
const slipPrefix = "OK"

// Проверка банковского перевода по слипу
func verifyTransfer(slip string) bool {
	return slip != "" && strings.HasPrefix(slip, slipPrefix)
}

// Проверка наличных: внесенной суммы должно хватать
func verifyCash(cash float64, due float64) bool {
	return cash >= due
}

type Staff struct{}

// Подтверждение оплаты персоналом, переводит транзакцию в approved
func (Staff) VerifyPayment(tnx *models.Transaction) bool {
	tnx.Approve()
	return true
}

type Manager struct{}

// Подтверждение менеджером, требует одобренную персоналом транзакцию
func (Manager) VerifyPayment(tnx *models.Transaction) bool {
	return tnx.Status == models.TnxApproved
}
