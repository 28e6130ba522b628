package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/zeebo/xxh3"

	"github.com/abdidvp/namefix/internal/adapters/outbound/config"
	"github.com/abdidvp/namefix/internal/adapters/outbound/filestore"
	"github.com/abdidvp/namefix/internal/adapters/outbound/scanner"
	"github.com/abdidvp/namefix/internal/application"
	"github.com/abdidvp/namefix/internal/domain"
	"github.com/abdidvp/namefix/internal/domain/catalog"
	"github.com/abdidvp/namefix/internal/domain/rewrite"
)

const memoSize = 256

// RewriteOutput is the payload of namefix_rewrite_text.
type RewriteOutput struct {
	Language     domain.Language      `json:"language"`
	Changed      bool                 `json:"changed"`
	Text         string               `json:"text"`
	Replacements []domain.Replacement `json:"replacements"`
}

// memoEntry keeps the request next to its output so a hash collision is
// detected instead of served.
type memoEntry struct {
	lang domain.Language
	text string
	out  RewriteOutput
}

// LanguageInfo describes one catalog entry.
type LanguageInfo struct {
	Language   domain.Language `json:"language"`
	Extensions []string        `json:"extensions"`
	Rules      []string        `json:"rules"`
}

// registerTools registers all namefix MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// Rewrites are pure functions of language and text, so identical
	// requests are answered from memory.
	memo, err := lru.New[uint64, memoEntry](memoSize)
	if err != nil {
		panic(fmt.Sprintf("creating rewrite memo: %v", err))
	}

	// 1. namefix_rewrite_text
	s.AddTool(
		mcplib.NewTool("namefix_rewrite_text",
			mcplib.WithDescription("Rename badly named identifiers in a snippet of source code and return the new text with the list of renames"),
			mcplib.WithString("text",
				mcplib.Required(),
				mcplib.Description("Source text to rewrite"),
			),
			mcplib.WithString("language", mcplib.Description("Language name (e.g. rust, python, go). Takes precedence over filename")),
			mcplib.WithString("filename", mcplib.Description("File name used to infer the language from its extension")),
		),
		handleRewriteText(memo),
	)

	// 2. namefix_scan
	s.AddTool(
		mcplib.NewTool("namefix_scan",
			mcplib.WithDescription("Dry run over a file or directory of the project. Nothing is written; returns the renames that would be applied"),
			mcplib.WithString("path", mcplib.Description("Path relative to the project root (default: the whole project)")),
			mcplib.WithBoolean("recursive", mcplib.Description("Descend into subdirectories (default: true)")),
		),
		handleScan(projectPath),
	)

	// 3. namefix_languages
	s.AddTool(
		mcplib.NewTool("namefix_languages",
			mcplib.WithDescription("List supported languages, their file extensions and extraction rules"),
		),
		handleLanguages(),
	)
}

func newFixService() *application.FixService {
	return application.NewFixService(scanner.New(), filestore.New(), config.New())
}

func handleRewriteText(memo *lru.Cache[uint64, memoEntry]) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		text, err := request.RequireString("text")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		lang, err := resolveLanguage(request.GetString("language", ""), request.GetString("filename", ""))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		key := xxh3.HashString(string(lang) + "\x00" + text)
		if e, ok := memo.Get(key); ok && e.lang == lang && e.text == text {
			return jsonResult(e.out)
		}

		res := rewrite.Rewrite(text, catalog.MustFor(lang))
		out := RewriteOutput{
			Language:     lang,
			Changed:      res.Changed(),
			Text:         res.Text,
			Replacements: res.Replacements,
		}
		if out.Replacements == nil {
			out.Replacements = []domain.Replacement{}
		}
		memo.Add(key, memoEntry{lang: lang, text: text, out: out})
		return jsonResult(out)
	}
}

func resolveLanguage(name, filename string) (domain.Language, error) {
	if name != "" {
		return domain.ParseLanguage(strings.ToLower(name))
	}
	if filename != "" {
		if lang, ok := domain.LanguageForPath(filename); ok {
			return lang, nil
		}
		return "", fmt.Errorf("unsupported file extension %q", filepath.Ext(filename))
	}
	return "", fmt.Errorf("either language or filename is required")
}

func handleScan(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		target, err := projectFile(projectPath, request.GetString("path", "."))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		opts := domain.FixOptions{
			DryRun:    true,
			Recursive: request.GetBool("recursive", true),
			Explicit:  map[string]bool{"recursive": true},
		}
		report, err := newFixService().Run(ctx, []string{target}, opts)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleLanguages() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(languageInfos())
	}
}

func languageInfos() []LanguageInfo {
	var infos []LanguageInfo
	for _, lang := range catalog.Languages() {
		entry := catalog.MustFor(lang)
		info := LanguageInfo{Language: lang, Extensions: lang.Extensions()}
		for _, r := range entry.Rules {
			info.Rules = append(info.Rules, r.Name)
		}
		infos = append(infos, info)
	}
	return infos
}

// projectFile resolves rel against the project root, rejecting anything
// outside it.
func projectFile(projectPath, rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("path must be relative to the project root: %s", rel)
	}
	joined := filepath.Join(projectPath, rel)
	back, err := filepath.Rel(projectPath, joined)
	if err != nil || back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path escapes the project root: %s", rel)
	}
	return joined, nil
}

// jsonResult marshals v to indented JSON and returns it as a text result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result with IsError set.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
