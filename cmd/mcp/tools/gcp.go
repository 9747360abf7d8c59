package tools

import (
	"github.com/elC0mpa/tag-doctor/model"
	"github.com/elC0mpa/tag-doctor/service/provider"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterGCPTools registers all GCP tools with the MCP server
func RegisterGCPTools(s *server.MCPServer, providers provider.ProviderService, defaults model.Flags) {
	s.AddTool(
		mcp.NewTool("gcp_get_project_info",
			mcp.WithDescription("Get GCP project identity information. Requires GOOGLE_CLOUD_PROJECT or TAGDOCTOR_PROJECT."),
		),
		makeAccountInfoHandler(providers, withProvider(defaults, model.ProviderGCP)),
	)
}
