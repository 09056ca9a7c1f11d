package services

import (
	"context"

	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
)

// InteractionSvc records rewardable user interactions with content.
type InteractionSvc interface {
	RecordInteraction(ctx context.Context, interaction domain.Interaction) error
}
