package tools

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/elC0mpa/tag-doctor/cmd/mcp/response"
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/elC0mpa/tag-doctor/service/provider"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAzureTools registers all Azure tools with the MCP server
func RegisterAzureTools(s *server.MCPServer, providers provider.ProviderService, defaults model.Flags) {
	// List subscriptions (works without specific subscription ID)
	s.AddTool(
		mcp.NewTool("azure_list_subscriptions",
			mcp.WithDescription("List all Azure subscriptions the current credential has access to"),
		),
		makeAzureListSubscriptionsHandler(),
	)

	s.AddTool(
		mcp.NewTool("azure_get_subscription_info",
			mcp.WithDescription("Get Azure subscription details including ID and display name. Requires AZURE_SUBSCRIPTION_ID."),
		),
		makeAccountInfoHandler(providers, withProvider(defaults, model.ProviderAzure)),
	)

	s.AddTool(
		mcp.NewTool("azure_get_resource_group_costs",
			mcp.WithDescription("Get Azure month-to-date costs broken down by resource group. Requires AZURE_SUBSCRIPTION_ID."),
		),
		makeGroupCostsHandler(providers, withProvider(defaults, model.ProviderAzure), "resource_group"),
	)

	s.AddTool(
		mcp.NewTool("azure_get_cost_trend",
			mcp.WithDescription("Get Azure cost trend for the last 6 months with summary statistics. Requires AZURE_SUBSCRIPTION_ID."),
		),
		makeCostTrendHandler(providers, withProvider(defaults, model.ProviderAzure)),
	)
}

func makeAzureListSubscriptionsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		credential, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create Azure credential: %v", err)), nil
		}

		client, err := armsubscriptions.NewClient(credential, nil)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create subscriptions client: %v", err)), nil
		}

		subscriptions := []response.AzureSubscription{}
		pager := client.NewListPager(nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list subscriptions: %v", err)), nil
			}

			for _, sub := range page.Value {
				if sub.SubscriptionID == nil {
					continue
				}

				displayName := *sub.SubscriptionID
				if sub.DisplayName != nil {
					displayName = *sub.DisplayName
				}

				state := "Unknown"
				if sub.State != nil {
					state = string(*sub.State)
				}

				// Only include enabled subscriptions
				if state == "Enabled" {
					subscriptions = append(subscriptions, response.AzureSubscription{
						SubscriptionID: *sub.SubscriptionID,
						DisplayName:    displayName,
						State:          state,
					})
				}
			}
		}

		return jsonResult(subscriptions)
	}
}

func makeAccountInfoHandler(providers provider.ProviderService, flags model.Flags) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		identityService, err := providers.GetIdentity(ctx, flags)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure %s identity: %v", flags.Provider, err)), nil
		}

		info, err := identityService.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get account info: %v", err)), nil
		}

		return jsonResult(response.ConvertAccountInfo(info))
	}
}

func makeGroupCostsHandler(providers provider.ProviderService, flags model.Flags, groupBy string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		flags := flags
		label := groupBy
		if flags.Provider == model.ProviderAWS {
			flags.CostTag = request.GetString("tag", flags.CostTag)
			label = "tag:" + flags.CostTag
		}

		costService, err := providers.GetCostService(ctx, flags)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure %s costs: %v", flags.Provider, err)), nil
		}

		costData, err := costService.GetCurrentMonthCostsByGroup(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get costs: %v", err)), nil
		}

		return jsonResult(response.ConvertCostInfo(costData, label))
	}
}

func makeCostTrendHandler(providers provider.ProviderService, flags model.Flags) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		costService, err := providers.GetCostService(ctx, flags)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure %s costs: %v", flags.Provider, err)), nil
		}

		trendData, err := costService.GetLastSixMonthsCosts(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get cost trend: %v", err)), nil
		}

		return jsonResult(response.ConvertTrendData(trendData))
	}
}

func withProvider(flags model.Flags, name string) model.Flags {
	flags.Provider = name
	return flags
}
