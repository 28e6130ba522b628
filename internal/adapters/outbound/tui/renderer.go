package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/namefix/internal/domain"
	"github.com/abdidvp/namefix/internal/domain/catalog"
	"github.com/abdidvp/namefix/internal/domain/rewrite"
)

// ── warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	info      = lipgloss.Color("#8B949E") // soft blue-gray
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	statusColors = map[domain.FileStatus]lipgloss.Color{
		domain.StatusRewritten: success,
		domain.StatusPlanned:   warning,
		domain.StatusClean:     info,
		domain.StatusCached:    info,
		domain.StatusSkipped:   skipColor,
		domain.StatusFailed:    danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	oldNameStyle  = lipgloss.NewStyle().Foreground(danger).Strikethrough(true)
	newNameStyle  = lipgloss.NewStyle().Foreground(accent).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(fg)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a run report: one block per file that had bad names
// or failed, then a summary line. Clean, cached and skipped files only show
// up in the counts.
func RenderReport(report *domain.RunReport) string {
	var b strings.Builder

	mode := "rewrite"
	switch {
	case report.Options.DryRun:
		mode = "dry run"
	case report.Options.InPlace:
		mode = "in place"
	}
	title := headerStyle.Render("namefix")
	subtitle := dimStyle.Render(mode)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	shown := 0
	for _, f := range report.Files {
		if !f.Changed() && f.Status != domain.StatusFailed {
			continue
		}
		renderFile(&b, f)
		shown++
	}
	if shown == 0 {
		b.WriteString("  " + passStyle.Render("Nothing to rename.") + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")
	b.WriteString("  " + summaryLine(report) + "\n\n")
	return b.String()
}

func renderFile(b *strings.Builder, f domain.FileResult) {
	tag := statusTag(f.Status)
	fmt.Fprintf(b, "  %s %s", tag, fileStyle.Render(shortenPath(f.Path)))
	if f.OutputPath != "" && f.OutputPath != f.Path {
		fmt.Fprintf(b, " %s %s", faintStyle.Render("→"), dimStyle.Render(filepath.Base(f.OutputPath)))
	}
	b.WriteString("\n")

	if f.Status == domain.StatusFailed {
		fmt.Fprintf(b, "      %s\n", failStyle.Render(f.Error))
		return
	}

	width := 0
	for _, r := range f.Replacements {
		width = max(width, len(r.Original))
	}
	for _, r := range f.Replacements {
		fmt.Fprintf(b, "      %s %s %s  %s\n",
			oldNameStyle.Render(padRight(r.Original, width)),
			faintStyle.Render("->"),
			newNameStyle.Render(padRight(r.Replacement, 12)),
			dimStyle.Render(fmt.Sprintf("%s ×%d", r.Reason, r.Occurrences)),
		)
	}
}

func summaryLine(report *domain.RunReport) string {
	parts := []string{titleStyle.Render(fmt.Sprintf("%d files", len(report.Files)))}
	for _, s := range []domain.FileStatus{
		domain.StatusRewritten,
		domain.StatusPlanned,
		domain.StatusClean,
		domain.StatusCached,
		domain.StatusSkipped,
		domain.StatusFailed,
	} {
		if n := report.Count(s); n > 0 {
			parts = append(parts, colorFor(s).Render(fmt.Sprintf("%d %s", n, s)))
		}
	}
	if n := report.TotalReplacements(); n > 0 {
		parts = append(parts, dimStyle.Render(fmt.Sprintf("%d names", n)))
	}
	return strings.Join(parts, "  ")
}

func statusTag(s domain.FileStatus) string {
	return colorFor(s).Bold(true).Render(padRight(string(s), 9))
}

func colorFor(s domain.FileStatus) lipgloss.Style {
	if c, ok := statusColors[s]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Foreground(fg)
}

// RenderCandidates lists every name found at a binding site in one file and
// how it was classified.
func RenderCandidates(path string, cands []rewrite.Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n", fileStyle.Render(shortenPath(path)))
	if len(cands) == 0 {
		b.WriteString("      " + dimStyle.Render("no bindings found") + "\n")
		return b.String()
	}
	width := 0
	for _, c := range cands {
		width = max(width, len(c.Name))
	}
	for _, c := range cands {
		icon := passStyle.Render("●")
		verdict := dimStyle.Render("ok")
		if c.Bad {
			icon = failStyle.Render("●")
			verdict = warnStyle.Render(string(c.Reason))
		}
		fmt.Fprintf(&b, "    %s %s %s  %s\n", icon, padRight(c.Name, width), verdict, faintStyle.Render(c.Rule))
	}
	return b.String()
}

// RenderLanguages formats the supported languages, their extensions and how
// many extraction rules each one has.
func RenderLanguages() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Supported languages") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")
	for _, lang := range catalog.Languages() {
		entry := catalog.MustFor(lang)
		fmt.Fprintf(&b, "  %s %s %s\n",
			newNameStyle.Render(padRight(string(lang), 12)),
			padRight(strings.Join(lang.Extensions(), " "), 24),
			dimStyle.Render(fmt.Sprintf("%d rules", len(entry.Rules))),
		)
	}
	b.WriteString("\n")
	return b.String()
}

// RenderHistory formats previous runs for terminal output.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No run history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Run History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for _, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}
		day := e.Timestamp
		if len(day) > 10 {
			day = day[:10]
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(day),
			faintStyle.Render(hash),
			padRight(fmt.Sprintf("%d files", e.Files), 10),
			passStyle.Render(fmt.Sprintf("%d rewritten", e.Rewritten)),
		)
		if e.Replacements > 0 {
			line += "  " + dimStyle.Render(fmt.Sprintf("%d names", e.Replacements))
		}
		if e.Failed > 0 {
			line += "  " + failStyle.Render(fmt.Sprintf("%d failed", e.Failed))
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func shortenPath(path string) string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return filepath.ToSlash(path)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
