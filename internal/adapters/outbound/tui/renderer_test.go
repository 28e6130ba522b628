package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdidvp/namefix/internal/adapters/outbound/tui"
	"github.com/abdidvp/namefix/internal/domain"
	"github.com/abdidvp/namefix/internal/domain/rewrite"
)

func sampleReport() *domain.RunReport {
	return &domain.RunReport{
		Files: []domain.FileResult{
			{
				Path: "src/main.rs", Language: domain.LanguageRust, Status: domain.StatusRewritten,
				OutputPath: "src/main.rs.fixed",
				Replacements: []domain.Replacement{
					{Original: "x", Replacement: "yourmom", Index: 0, Reason: domain.ReasonOverusedLetter, Occurrences: 3},
				},
			},
			{Path: "src/lib.rs", Language: domain.LanguageRust, Status: domain.StatusClean},
			{Path: "README.md", Status: domain.StatusSkipped},
			{Path: "gone.py", Status: domain.StatusFailed, Error: "gone.py does not exist"},
		},
	}
}

func TestRenderReport_ShowsRenames(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "main.rs")
	assert.Contains(t, output, "yourmom")
	assert.Contains(t, output, "overused_letter")
	assert.Contains(t, output, "main.rs.fixed")
}

func TestRenderReport_ShowsFailures(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "gone.py does not exist")
}

func TestRenderReport_HidesCleanFiles(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.NotContains(t, output, "lib.rs")
	assert.NotContains(t, output, "README.md")
}

func TestRenderReport_Summary(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "4 files")
	assert.Contains(t, output, "1 rewritten")
	assert.Contains(t, output, "1 failed")
	assert.Contains(t, output, "1 names")
}

func TestRenderReport_NothingToRename(t *testing.T) {
	report := &domain.RunReport{
		Options: domain.FixOptions{DryRun: true},
		Files:   []domain.FileResult{{Path: "a.go", Status: domain.StatusClean}},
	}
	output := tui.RenderReport(report)
	assert.Contains(t, output, "Nothing to rename.")
	assert.Contains(t, output, "dry run")
}

func TestRenderCandidates(t *testing.T) {
	output := tui.RenderCandidates("app.py", []rewrite.Candidate{
		{Name: "tmp", Rule: "assignment", Bad: true, Reason: domain.ReasonNoiseWord},
		{Name: "total", Rule: "assignment"},
	})
	assert.Contains(t, output, "app.py")
	assert.Contains(t, output, "tmp")
	assert.Contains(t, output, "noise_word")
	assert.Contains(t, output, "total")
}

func TestRenderCandidates_Empty(t *testing.T) {
	output := tui.RenderCandidates("empty.go", nil)
	assert.Contains(t, output, "no bindings found")
}

func TestRenderLanguages(t *testing.T) {
	output := tui.RenderLanguages()
	assert.Contains(t, output, "rust")
	assert.Contains(t, output, ".rs")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "rules")
}

func TestRenderHistory_Empty(t *testing.T) {
	output := tui.RenderHistory(nil)
	assert.Contains(t, output, "No run history found.")
}

func TestRenderHistory_ShortensHash(t *testing.T) {
	output := tui.RenderHistory([]domain.RunEntry{
		{Timestamp: "2026-01-02T10:00:00Z", CommitHash: "abcdef1234567890", Files: 3, Rewritten: 2, Replacements: 5},
		{Timestamp: "2026-01-03T10:00:00Z", Files: 1, Failed: 1},
	})
	assert.Contains(t, output, "2026-01-02")
	assert.Contains(t, output, "abcdef1")
	assert.NotContains(t, output, "abcdef12")
	assert.Contains(t, output, "2 rewritten")
	assert.Contains(t, output, "1 failed")
}
