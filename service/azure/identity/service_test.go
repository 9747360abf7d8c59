package azureidentity

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/stretchr/testify/assert"
)

func TestAccountInfo(t *testing.T) {
	info := accountInfo("sub-1", &armsubscriptions.Subscription{DisplayName: to.Ptr("Production")})
	assert.Equal(t, model.ProviderAzure, info.Provider)
	assert.Equal(t, "sub-1", info.AccountID)
	assert.Equal(t, "Production", info.AccountName)

	assert.Equal(t, "sub-1", accountInfo("sub-1", &armsubscriptions.Subscription{}).AccountName)
	assert.Equal(t, "sub-1", accountInfo("sub-1", nil).AccountName)
}
