package tools

import (
	"context"

	"github.com/elC0mpa/tag-doctor/cmd/mcp/response"
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/elC0mpa/tag-doctor/service/policy"
	"github.com/elC0mpa/tag-doctor/service/provider"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterMultiCloudTools registers tools that span every configured provider
func RegisterMultiCloudTools(s *server.MCPServer, providers provider.ProviderService, policyService policy.PolicyService, defaults model.Flags) {
	s.AddTool(
		mcp.NewTool("multicloud_tag_compliance",
			mcp.WithDescription("Audit tags across Azure, AWS and GCP together and compare compliance per provider. Providers without configuration are skipped."),
		),
		makeMultiCloudComplianceHandler(providers, policyService, defaults),
	)
}

func makeMultiCloudComplianceHandler(providers provider.ProviderService, policyService policy.PolicyService, defaults model.Flags) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		flags := defaults
		flags.Workflow = model.WorkflowAudit
		flags.Source = provider.SourceAll

		report, err := runAudit(ctx, providers, policyService, flags)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return jsonResult(response.ConvertAuditReport(flags.Source, report))
	}
}
