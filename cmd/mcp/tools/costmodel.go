package tools

import (
	"context"
	"fmt"

	"github.com/elC0mpa/tag-doctor/cmd/mcp/response"
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/elC0mpa/tag-doctor/service/costmodel"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterCostModelTools registers the Azure cost model tools with the MCP server
func RegisterCostModelTools(s *server.MCPServer, defaults model.Flags) {
	s.AddTool(
		mcp.NewTool("costs_model_lab",
			mcp.WithDescription("Build the sample production and development resource groups, apply the optimisation plan and report monthly costs before and after, savings and the resulting inventory"),
			mcp.WithNumber("hours", mcp.Description("Billable hours per month (default 730)")),
		),
		makeCostModelLabHandler(defaults),
	)
}

func makeCostModelLabHandler(defaults model.Flags) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		hours := request.GetFloat("hours", defaults.Hours)
		if hours <= 0 {
			return mcp.NewToolResultError(fmt.Sprintf("hours must be positive, got %v", hours)), nil
		}

		lab, err := costmodel.NewLab()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build lab: %v", err)), nil
		}

		comparison := model.CostComparison{Before: lab.TotalCost(hours)}
		steps := lab.Optimize(hours)
		comparison.After = lab.TotalCost(hours)

		items := costmodel.BuildInventory(lab.Groups(), hours)

		return jsonResult(response.LabReport{
			Hours:          hours,
			Before:         comparison.Before,
			After:          comparison.After,
			Savings:        comparison.Savings(),
			SavingsPercent: comparison.SavingsPercent(),
			AnnualSavings:  comparison.AnnualSavings(),
			ByType:         response.ConvertCostSummaries(costmodel.SummarizeByType(items)),
			ByGroup:        response.ConvertCostSummaries(costmodel.SummarizeByGroup(items)),
			Steps:          response.ConvertOptimizationSteps(steps),
			Inventory:      response.ConvertInventory(items),
		})
	}
}
