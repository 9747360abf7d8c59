package azureidentity

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/elC0mpa/tag-doctor/model"
)

func NewService(subscriptionID string, credential *Credential) (*service, error) {
	client, err := armsubscriptions.NewClient(credential, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriptions client: %w", err)
	}

	return &service{
		subscriptionID: subscriptionID,
		client:         client,
	}, nil
}

// GetAccountInfo implements service.IdentityService
func (s *service) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	subscription, err := s.GetSubscriptionInfo(ctx)
	if err != nil {
		return nil, err
	}

	return accountInfo(s.subscriptionID, subscription), nil
}

// GetSubscriptionInfo returns detailed Azure subscription information
func (s *service) GetSubscriptionInfo(ctx context.Context) (*armsubscriptions.Subscription, error) {
	resp, err := s.client.Get(ctx, s.subscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription %s: %w", s.subscriptionID, err)
	}

	return &resp.Subscription, nil
}

// accountInfo falls back to the subscription id when no display name is set
func accountInfo(subscriptionID string, sub *armsubscriptions.Subscription) *model.AccountInfo {
	name := subscriptionID
	if sub != nil && sub.DisplayName != nil && *sub.DisplayName != "" {
		name = *sub.DisplayName
	}

	return &model.AccountInfo{
		Provider:    model.ProviderAzure,
		AccountID:   subscriptionID,
		AccountName: name,
	}
}
