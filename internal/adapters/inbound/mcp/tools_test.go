package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	lru "github.com/hashicorp/golang-lru/v2"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"

	"github.com/abdidvp/namefix/internal/domain"
)

func call(t *testing.T, h func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) (*mcplib.CallToolResult, string) {
	t.Helper()
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return res, text.Text
}

func newMemo(t *testing.T) *lru.Cache[uint64, memoEntry] {
	t.Helper()
	memo, err := lru.New[uint64, memoEntry](memoSize)
	require.NoError(t, err)
	return memo
}

func TestRewriteText_ByLanguage(t *testing.T) {
	res, body := call(t, handleRewriteText(newMemo(t)), map[string]any{
		"text":     "let x = 5;",
		"language": "rust",
	})
	require.False(t, res.IsError, body)

	var out RewriteOutput
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.True(t, out.Changed)
	assert.Equal(t, "let yourmom = 5;", out.Text)
	require.Len(t, out.Replacements, 1)
	assert.Equal(t, "x", out.Replacements[0].Original)
}

func TestRewriteText_ByFilename(t *testing.T) {
	res, body := call(t, handleRewriteText(newMemo(t)), map[string]any{
		"text":     "tmp = 1\nprint(tmp)\n",
		"filename": "script.py",
	})
	require.False(t, res.IsError, body)

	var out RewriteOutput
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, domain.LanguagePython, out.Language)
	assert.Equal(t, "yourmom = 1\nprint(yourmom)\n", out.Text)
}

func TestRewriteText_Memoised(t *testing.T) {
	memo := newMemo(t)
	h := handleRewriteText(memo)
	args := map[string]any{"text": "let x = 5;", "language": "rust"}

	_, first := call(t, h, args)
	_, second := call(t, h, args)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, memo.Len())
}

func TestRewriteText_MemoEntryForOtherTextIsIgnored(t *testing.T) {
	memo := newMemo(t)
	text := "let x = 5;"
	// Same key, different request: what a hash collision looks like.
	memo.Add(xxh3.HashString("rust\x00"+text), memoEntry{
		lang: domain.LanguageRust,
		text: "let y = 1;",
		out:  RewriteOutput{Language: domain.LanguageRust, Text: "stale"},
	})

	_, body := call(t, handleRewriteText(memo), map[string]any{"text": text, "language": "rust"})
	var out RewriteOutput
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	assert.Equal(t, "let yourmom = 5;", out.Text)
}

func TestRewriteText_Errors(t *testing.T) {
	h := handleRewriteText(newMemo(t))

	res, _ := call(t, h, map[string]any{"language": "rust"})
	assert.True(t, res.IsError, "missing text")

	res, _ = call(t, h, map[string]any{"text": "x"})
	assert.True(t, res.IsError, "no language hint")

	res, body := call(t, h, map[string]any{"text": "x", "language": "cobol"})
	assert.True(t, res.IsError)
	assert.Contains(t, body, "unknown language")

	res, body = call(t, h, map[string]any{"text": "x", "filename": "notes.txt"})
	assert.True(t, res.IsError)
	assert.Contains(t, body, ".txt")
}

func TestScan_DryRunOnly(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.rs")
	require.NoError(t, os.WriteFile(src, []byte("let x = 5;\n"), 0644))

	res, body := call(t, handleScan(dir), map[string]any{})
	require.False(t, res.IsError, body)

	var report domain.RunReport
	require.NoError(t, json.Unmarshal([]byte(body), &report))
	require.Len(t, report.Files, 1)
	assert.Equal(t, domain.StatusPlanned, report.Files[0].Status)

	_, err := os.Stat(src + ".fixed")
	assert.True(t, os.IsNotExist(err), "scan must not write output")
}

func TestScan_RejectsEscapingPath(t *testing.T) {
	res, body := call(t, handleScan(t.TempDir()), map[string]any{"path": "../etc"})
	assert.True(t, res.IsError)
	assert.Contains(t, body, "escapes")
}

func TestLanguages(t *testing.T) {
	_, body := call(t, handleLanguages(), nil)

	var infos []LanguageInfo
	require.NoError(t, json.Unmarshal([]byte(body), &infos))
	assert.Len(t, infos, len(domain.AllLanguages()))
	for _, info := range infos {
		assert.NotEmpty(t, info.Extensions, info.Language)
		assert.NotEmpty(t, info.Rules, info.Language)
	}
}
