package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elC0mpa/tag-doctor/cmd/mcp/response"
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/elC0mpa/tag-doctor/service/compliance"
	"github.com/elC0mpa/tag-doctor/service/policy"
	"github.com/elC0mpa/tag-doctor/service/provider"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// RegisterAuditTools registers the tag compliance tools with the MCP server
func RegisterAuditTools(s *server.MCPServer, providers provider.ProviderService, policyService policy.PolicyService, defaults model.Flags) {
	s.AddTool(
		mcp.NewTool("tags_audit",
			mcp.WithDescription("Audit resource tags against the tagging policy and return compliance summary, missing tags, per-type compliance, non-compliant resources and an action plan"),
			mcp.WithString("source",
				mcp.Description("Inventory source: synthetic, azure, aws or gcp"),
				mcp.Enum(model.ProviderSynthetic, model.ProviderAzure, model.ProviderAWS, model.ProviderGCP),
			),
			mcp.WithNumber("count", mcp.Description("Number of synthetic resources (synthetic source only)")),
			mcp.WithNumber("seed", mcp.Description("Seed for the synthetic generator, 0 for random")),
		),
		makeAuditHandler(providers, policyService, defaults),
	)

	s.AddTool(
		mcp.NewTool("tags_score_resource",
			mcp.WithDescription("Score a single resource's tags against the tagging policy"),
			mcp.WithString("tags",
				mcp.Required(),
				mcp.Description("Tags as comma separated key=value pairs, e.g. Environment=Production,Owner=ops@company.com"),
			),
			mcp.WithString("name", mcp.Description("Resource name")),
			mcp.WithString("type", mcp.Description("Resource type")),
		),
		makeScoreResourceHandler(policyService),
	)

	s.AddTool(
		mcp.NewTool("tags_get_policy",
			mcp.WithDescription("Get the effective tagging policy: required and recommended tags, valid values and remediation defaults"),
		),
		makeGetPolicyHandler(policyService),
	)

	s.AddTool(
		mcp.NewTool("inventory_list_resources",
			mcp.WithDescription("List inventoried resources and their tags from a source"),
			mcp.WithString("source",
				mcp.Description("Inventory source: synthetic, azure, aws, gcp or all"),
				mcp.Enum(model.ProviderSynthetic, model.ProviderAzure, model.ProviderAWS, model.ProviderGCP, provider.SourceAll),
			),
			mcp.WithNumber("count", mcp.Description("Number of synthetic resources (synthetic source only)")),
			mcp.WithNumber("seed", mcp.Description("Seed for the synthetic generator, 0 for random")),
		),
		makeListResourcesHandler(providers, defaults),
	)
}

func makeAuditHandler(providers provider.ProviderService, policyService policy.PolicyService, defaults model.Flags) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		flags, err := inventoryFlags(request, defaults)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if flags.Source == provider.SourceAll {
			return mcp.NewToolResultError("use multicloud_tag_compliance to audit every provider"), nil
		}

		report, err := runAudit(ctx, providers, policyService, flags)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return jsonResult(response.ConvertAuditReport(flags.Source, report))
	}
}

func makeScoreResourceHandler(policyService policy.PolicyService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("tags")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		tags, err := ParseTags(raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		p, err := policyService.GetPolicy()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to load policy: %v", err)), nil
		}

		resource := model.Resource{
			Name: request.GetString("name", "resource"),
			Type: request.GetString("type", "unknown"),
			Tags: tags,
		}

		return jsonResult(response.ConvertResourceCompliance(compliance.NewService(p).Evaluate(resource)))
	}
}

func makeGetPolicyHandler(policyService policy.PolicyService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p, err := policyService.GetPolicy()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to load policy: %v", err)), nil
		}

		return jsonResult(p)
	}
}

func makeListResourcesHandler(providers provider.ProviderService, defaults model.Flags) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		flags, err := inventoryFlags(request, defaults)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		inventoryService, err := providers.GetInventory(ctx, flags)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure inventory: %v", err)), nil
		}

		resources, err := inventoryService.ListResources(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list resources: %v", err)), nil
		}

		return jsonResult(response.ConvertResources(inventoryService.Sources(), resources))
	}
}

func runAudit(ctx context.Context, providers provider.ProviderService, policyService policy.PolicyService, flags model.Flags) (*model.AuditReport, error) {
	p, err := policyService.GetPolicy()
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	inventoryService, err := providers.GetInventory(ctx, flags)
	if err != nil {
		return nil, fmt.Errorf("failed to configure inventory: %w", err)
	}

	resources, err := inventoryService.ListResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list resources: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("source", flags.Source).Int("resources", len(resources)).Msg("auditing inventory")

	return compliance.NewService(p).Audit(resources), nil
}

func inventoryFlags(request mcp.CallToolRequest, defaults model.Flags) (model.Flags, error) {
	flags := defaults
	flags.Workflow = model.WorkflowAudit
	flags.Source = strings.ToLower(request.GetString("source", defaults.Source))
	flags.Count = request.GetInt("count", defaults.Count)
	flags.Seed = int64(request.GetInt("seed", int(defaults.Seed)))

	if flags.Count < 0 || flags.Count > model.MaxCount {
		return model.Flags{}, fmt.Errorf("count must be between 0 and %d, got %d", model.MaxCount, flags.Count)
	}
	return flags, nil
}

// ParseTags reads "key=value,key=value". Whitespace around keys and values is trimmed.
func ParseTags(raw string) (map[string]string, error) {
	tags := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid tag %q, expected key=value", pair)
		}
		tags[key] = strings.TrimSpace(value)
	}
	return tags, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
