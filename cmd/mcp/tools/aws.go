package tools

import (
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/elC0mpa/tag-doctor/service/provider"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAWSTools registers all AWS tools with the MCP server
func RegisterAWSTools(s *server.MCPServer, providers provider.ProviderService, defaults model.Flags) {
	awsFlags := withProvider(defaults, model.ProviderAWS)

	s.AddTool(
		mcp.NewTool("aws_get_account_info",
			mcp.WithDescription("Get AWS account identity information including account ID and ARN"),
		),
		makeAccountInfoHandler(providers, awsFlags),
	)

	s.AddTool(
		mcp.NewTool("aws_get_costs_by_tag",
			mcp.WithDescription("Get AWS month-to-date costs grouped by the values of a cost allocation tag. Spend without the tag is reported as (untagged)."),
			mcp.WithString("tag", mcp.Description("Cost allocation tag key (default Environment)")),
		),
		makeGroupCostsHandler(providers, awsFlags, ""),
	)

	s.AddTool(
		mcp.NewTool("aws_get_cost_trend",
			mcp.WithDescription("Get AWS cost trend for the last 6 months with summary statistics"),
		),
		makeCostTrendHandler(providers, awsFlags),
	)
}
