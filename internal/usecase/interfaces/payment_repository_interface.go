package interfaces

import (
	"context"
	"encoding/json"

	"paychangu_service/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// The service must be able to:
//   - record a checkout attempt when a session is created
//   - look a payment up by its tx_ref (verification, status queries)
//   - list a customer's payments by email
//   - update status + provider payload after verification
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByTxRef(ctx context.Context, txRef string) (entities.Payment, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, txRef string, status entities.PaymentStatus, providerPayload json.RawMessage) (entities.Payment, error)
}
