package azureconfig

import (
	"errors"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
)

var ErrNoSubscription = errors.New("azure subscription id is required (--subscription or AZURE_SUBSCRIPTION_ID)")

type service struct {
	subscriptionID string
	credential     *azidentity.DefaultAzureCredential
}

type ConfigService interface {
	GetCredential() *azidentity.DefaultAzureCredential
	GetSubscriptionID() string
}
