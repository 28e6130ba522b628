// Package rewrite finds badly named identifiers at binding sites and renames
// every whole-identifier occurrence of them in a file.
//
// Renaming is textual: there is no notion of scope, so two unrelated
// variables that share a spelling are renamed together, and occurrences in
// comments or string literals are renamed too when they stand as whole
// identifiers.
package rewrite

import (
	"strings"

	"github.com/abdidvp/namefix/internal/domain"
	"github.com/abdidvp/namefix/internal/domain/catalog"
)

// Candidate is a distinct name found at a binding site.
type Candidate struct {
	Name   string        `json:"name"`
	Rule   string        `json:"rule"`
	Bad    bool          `json:"bad"`
	Reason domain.Reason `json:"reason,omitempty"`
}

// Result is the outcome of rewriting one file.
type Result struct {
	Text         string
	Replacements []domain.Replacement // discovery order
}

// Changed reports whether any bad name was found.
func (r Result) Changed() bool { return len(r.Replacements) > 0 }

// Candidates applies every rule of entry in order and returns each distinct
// name the first time it is seen, with its classification. A capture that
// never stands as a whole identifier in text (the "x" of "$x") is dropped.
func Candidates(text string, entry catalog.Entry) []Candidate {
	idents := identifiers(text, entry)
	seen := make(map[string]bool)
	var out []Candidate
	for _, r := range entry.Rules {
		for _, loc := range r.Pattern.FindAllStringSubmatchIndex(text, -1) {
			name, ok := r.Candidate(text, loc)
			if !ok || seen[name] || !idents[name] {
				continue
			}
			seen[name] = true
			reason, bad := Classify(name)
			out = append(out, Candidate{Name: name, Rule: r.Name, Bad: bad, Reason: reason})
		}
	}
	return out
}

// Rewrite renames every bad name found in text. When nothing is flagged the
// text is returned as is and Changed reports false.
func Rewrite(text string, entry catalog.Entry) Result {
	var reps []domain.Replacement
	index := make(map[string]int)
	for _, c := range Candidates(text, entry) {
		if !c.Bad {
			continue
		}
		n := len(reps)
		index[c.Name] = n
		reps = append(reps, domain.Replacement{
			Original:    c.Name,
			Replacement: VocabularyAt(n),
			Index:       n,
			Reason:      c.Reason,
		})
	}
	if len(reps) == 0 {
		return Result{Text: text}
	}
	return Result{Text: substitute(text, entry, reps, index), Replacements: reps}
}

// identifiers returns every maximal run of identifier bytes in text.
func identifiers(text string, entry catalog.Entry) map[string]bool {
	out := make(map[string]bool)
	for i := 0; i < len(text); {
		if !entry.IsIdentByte(text[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(text) && entry.IsIdentByte(text[j]) {
			j++
		}
		out[text[i:j]] = true
		i = j
	}
	return out
}

// substitute replaces, in one pass over the original text, every maximal run
// of identifier bytes that equals a bad name. Output is never re-scanned, so
// the result does not depend on the order of reps.
func substitute(text string, entry catalog.Entry, reps []domain.Replacement, index map[string]int) string {
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for i := 0; i < len(text); {
		if !entry.IsIdentByte(text[i]) {
			i++
			continue
		}
		j := i + 1
		for j < len(text) && entry.IsIdentByte(text[j]) {
			j++
		}
		if k, ok := index[text[i:j]]; ok {
			b.WriteString(text[last:i])
			b.WriteString(reps[k].Replacement)
			reps[k].Occurrences++
			last = j
		}
		i = j
	}
	b.WriteString(text[last:])
	return b.String()
}
