package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "PENDING"
	PaymentApproved    PaymentStatus = "APPROVED"
	PaymentAuthorized  PaymentStatus = "AUTHORIZED"
	PaymentInProcess   PaymentStatus = "IN_PROCESS"
	PaymentInMediation PaymentStatus = "IN_MEDIATION"
	PaymentRejected    PaymentStatus = "REJECTED"
	PaymentCancelled   PaymentStatus = "CANCELLED"
	PaymentRefunded    PaymentStatus = "REFUNDED"
	PaymentChargedBack PaymentStatus = "CHARGED_BACK"
)

// Payment is the one-to-one payment record of a sale. It is created as
// PENDING at checkout; the payment webhook collaborator moves it from there.
type Payment struct {
	ID                int64
	SaleID            int64
	Method            PaymentMethod
	Status            PaymentStatus
	Amount            decimal.Decimal
	PaymentURL        string
	ExternalReference string
	CardLastFour      string
	Installments      int
	CreatedAt         time.Time
	PaidAt            *time.Time
}
