package service

import (
	"context"
	"fmt"

	"adgenie/internal/model"
)

// CampaignService defines the use cases for ad-platform campaigns.
type CampaignService interface {
	// Campaigns returns the campaigns payload for the given platform.
	// It fails with model.ErrUnknownPlatform for unsupported platforms.
	Campaigns(ctx context.Context, p model.Platform) (*model.Message, error)
}

// placeholderCampaignService answers every supported platform with a static message
// until the platform integration exists.
type placeholderCampaignService struct{}

// NewCampaignService constructs the placeholder CampaignService.
func NewCampaignService() CampaignService {
	return &placeholderCampaignService{}
}

func (s *placeholderCampaignService) Campaigns(ctx context.Context, p model.Platform) (*model.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !p.Valid() {
		return nil, fmt.Errorf("campaigns for %q: %w", p, model.ErrUnknownPlatform)
	}
	return &model.Message{Message: p.DisplayName() + " campaigns endpoint"}, nil
}
