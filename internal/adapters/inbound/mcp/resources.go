package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/namefix/internal/adapters/outbound/history"
	"github.com/abdidvp/namefix/internal/domain"
)

// registerResources registers all namefix MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. namefix://languages - language catalog
	s.AddResource(
		mcplib.NewResource(
			"namefix://languages",
			"Languages",
			mcplib.WithResourceDescription("Supported languages, extensions and extraction rules"),
			mcplib.WithMIMEType("application/json"),
		),
		handleLanguagesResource(),
	)

	// 2. namefix://history - applied runs
	s.AddResource(
		mcplib.NewResource(
			"namefix://history",
			"Run History",
			mcplib.WithResourceDescription("Summaries of previous runs that wrote files"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(projectPath),
	)
}

func handleLanguagesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents("namefix://languages", languageInfos())
	}
}

func handleHistoryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		if entries == nil {
			entries = []domain.RunEntry{}
		}
		return jsonContents("namefix://history", entries)
	}
}

func jsonContents(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
