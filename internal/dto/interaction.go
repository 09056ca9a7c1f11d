package dto

import "github.com/SscSPs/coin_wallet_app/internal/core/domain"

// RecordInteractionRequest describes a rewardable action on a piece of content.
type RecordInteractionRequest struct {
	ContentID   string `json:"contentID" binding:"required"`
	ContentType string `json:"contentType" binding:"required,oneof=job event ad property"`
	Action      string `json:"action" binding:"required,oneof=view contact"`
}

// RecordInteractionResponse acknowledges a recorded interaction.
type RecordInteractionResponse struct {
	Recorded    bool   `json:"recorded"`
	ContentID   string `json:"contentID"`
	ContentType string `json:"contentType"`
	Action      string `json:"action"`
}

// ToInteraction builds the domain interaction for the given user
func (r RecordInteractionRequest) ToInteraction(userID string) domain.Interaction {
	return domain.Interaction{
		UserID:      userID,
		ContentID:   r.ContentID,
		ContentType: domain.ContentType(r.ContentType),
		Action:      domain.InteractionAction(r.Action),
	}
}
