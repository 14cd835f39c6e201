package interfaces

import (
	"context"
	"encoding/json"

	"paychangu_service/internal/domain/entities"
)

// IPayoutRepository abstracts DynamoDB persistence for Payout.
//
// Payouts are keyed by the local charge_id; verification flows arrive with
// the provider's ref_id, resolved through a GSI.
type IPayoutRepository interface {
	Create(ctx context.Context, p entities.Payout) (entities.Payout, error)
	GetByChargeID(ctx context.Context, chargeID string) (entities.Payout, error)
	GetByRefID(ctx context.Context, refID string) (entities.Payout, error)
	UpdateStatus(ctx context.Context, chargeID string, status entities.PayoutStatus, providerPayload json.RawMessage) (entities.Payout, error)
}
