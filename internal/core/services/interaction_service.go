package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/coin_wallet_app/internal/apperrors"
	"github.com/SscSPs/coin_wallet_app/internal/core/domain"
	"github.com/SscSPs/coin_wallet_app/internal/core/ports/gateways"
	portssvc "github.com/SscSPs/coin_wallet_app/internal/core/ports/services"
)

// InteractionService forwards rewardable interactions to the database procedures.
type InteractionService struct {
	BaseService
	procedures gateways.RemoteProcedures
}

// NewInteractionService creates an InteractionService. A nil procedures client
// makes every call fail with a configuration error.
func NewInteractionService(procedures gateways.RemoteProcedures) *InteractionService {
	return &InteractionService{procedures: procedures}
}

var _ portssvc.InteractionSvc = (*InteractionService)(nil)

// RecordInteraction bumps the matching counter and then asks the database to reward the user.
func (s *InteractionService) RecordInteraction(ctx context.Context, in domain.Interaction) error {
	in.UserID = strings.TrimSpace(in.UserID)
	in.ContentID = strings.TrimSpace(in.ContentID)
	if in.UserID == "" || in.ContentID == "" {
		return fmt.Errorf("%w: user and content are required", apperrors.ErrValidation)
	}
	if !in.ContentType.IsValid() {
		return fmt.Errorf("%w: unsupported content type '%s'", apperrors.ErrValidation, in.ContentType)
	}
	if s.procedures == nil {
		return fmt.Errorf("%w: remote procedures not configured", apperrors.ErrConfiguration)
	}

	var err error
	switch in.Action {
	case domain.ActionView:
		err = s.procedures.IncrementViewCount(ctx, in.ContentID, in.ContentType)
	case domain.ActionContact:
		err = s.procedures.IncrementContactCount(ctx, in.ContentID, in.ContentType)
	default:
		return fmt.Errorf("%w: unsupported action '%s'", apperrors.ErrValidation, in.Action)
	}
	if err != nil {
		return fmt.Errorf("failed to record %s on %s: %w", in.Action, in.ContentID, err)
	}

	if err := s.procedures.DistributeReward(ctx, in.UserID, in.ContentID, in.ContentType, in.Action); err != nil {
		return fmt.Errorf("failed to distribute reward for %s: %w", in.ContentID, err)
	}

	s.LogInfo(ctx, "Interaction recorded",
		slog.String("content_id", in.ContentID),
		slog.String("content_type", string(in.ContentType)),
		slog.String("action", string(in.Action)))
	return nil
}
