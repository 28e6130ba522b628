// Package catalog holds the per-language extraction rules that approximate
// identifier binding sites (declarations, parameters, loop variables and
// destructuring) with keyword-anchored regular expressions.
//
// Rules are data: adding a language means adding a table entry. Patterns are
// compiled at package initialisation, so a malformed rule panics at start-up
// and never surfaces while processing a file.
package catalog

import (
	"regexp"
	"slices"

	"github.com/abdidvp/namefix/internal/domain"
)

// Rule is one extraction pattern. Only non-empty capture groups are
// considered, left to right; the first one is the candidate name.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Candidate returns the first non-empty capture of a match produced by
// Pattern.FindAllStringSubmatchIndex.
func (r Rule) Candidate(text string, loc []int) (string, bool) {
	for g := 1; 2*g+1 < len(loc); g++ {
		start, end := loc[2*g], loc[2*g+1]
		if start >= 0 && end > start {
			return text[start:end], true
		}
	}
	return "", false
}

// Entry is the catalog entry of one language.
type Entry struct {
	Language domain.Language
	Rules    []Rule
	// IdentExtra lists non-alphanumeric bytes, besides '_', that belong to
	// identifiers in this language ("$" in JavaScript).
	IdentExtra string
}

// IsIdentByte reports whether b can appear inside an identifier.
func (e Entry) IsIdentByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '_':
		return true
	}
	for i := 0; i < len(e.IdentExtra); i++ {
		if e.IdentExtra[i] == b {
			return true
		}
	}
	return false
}

// For returns the entry of lang. The returned rule slice is a copy.
func For(lang domain.Language) (Entry, bool) {
	e, ok := table[lang]
	if !ok {
		return Entry{}, false
	}
	e.Rules = slices.Clone(e.Rules)
	return e, true
}

// MustFor is For for callers that already resolved lang from an extension.
func MustFor(lang domain.Language) Entry {
	e, ok := For(lang)
	if !ok {
		panic("catalog: no entry for language " + string(lang))
	}
	return e
}

// Languages lists the languages present in the catalog, in the order of
// domain.AllLanguages.
func Languages() []domain.Language {
	var out []domain.Language
	for _, l := range domain.AllLanguages() {
		if _, ok := table[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

func rule(name, expr string) Rule {
	return Rule{Name: name, Pattern: regexp.MustCompile(expr)}
}

var cFamily = []Rule{
	rule("typed-declaration", `\b(?:int|long|short|char|float|double|bool|auto|const)\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*[=;,)]`),
	rule("for-init", `\bfor\s*\([^;]*\b(?:int|auto)\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*[=;]`),
	rule("function-param", `\b\w+\s+\w+\s*\([^)]*\b\w+\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*[,)]`),
}

var table = map[domain.Language]Entry{
	domain.LanguageRust: {
		Language: domain.LanguageRust,
		Rules: []Rule{
			rule("let-binding", `\blet\s+(?:mut\s+)?([a-zA-Z_][a-zA-Z0-9_]*)\s*[=:]`),
			rule("for-in", `\bfor\s+([a-zA-Z_][a-zA-Z0-9_]*)\s+in\b`),
			rule("fn-param", `\bfn\s+[a-zA-Z_][a-zA-Z0-9_]*\s*\([^)]*\b([a-zA-Z_][a-zA-Z0-9_]*)\s*:`),
			rule("closure-param", `\|([a-zA-Z_][a-zA-Z0-9_]*)\|`),
			rule("some-pattern", `\bSome\(([a-zA-Z_][a-zA-Z0-9_]*)\)`),
			rule("ok-pattern", `\bOk\(([a-zA-Z_][a-zA-Z0-9_]*)\)`),
			rule("err-pattern", `\bErr\(([a-zA-Z_][a-zA-Z0-9_]*)\)`),
		},
	},
	domain.LanguageJavaScript: {
		Language:   domain.LanguageJavaScript,
		IdentExtra: "$",
		Rules: []Rule{
			rule("declaration", `\b(?:let|const|var)\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*[=;]`),
			rule("function-param", `\bfunction\s+[a-zA-Z_$][a-zA-Z0-9_$]*\s*\([^)]*\b([a-zA-Z_$][a-zA-Z0-9_$]*)\s*[,)]`),
			rule("arrow-param-parens", `\(([a-zA-Z_$][a-zA-Z0-9_$]*)\)\s*=>`),
			rule("arrow-param", `(?:^|[^a-zA-Z0-9_$])([a-zA-Z_$][a-zA-Z0-9_$]*)\s*=>`),
			rule("for-in-of", `\bfor\s*\(\s*(?:let|const|var)?\s*([a-zA-Z_$][a-zA-Z0-9_$]*)\s+(?:in|of)\b`),
			rule("object-destructuring", `\{\s*([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\}`),
			rule("array-destructuring", `\[\s*([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\]`),
		},
	},
	domain.LanguagePython: {
		Language: domain.LanguagePython,
		Rules: []Rule{
			rule("assignment", `(?m)^[ \t]*([a-zA-Z_][a-zA-Z0-9_]*)[ \t]*=(?:[^=]|$)`),
			rule("for-in", `\bfor\s+([a-zA-Z_][a-zA-Z0-9_]*)\s+in\b`),
			rule("def-param", `\bdef\s+[a-zA-Z_][a-zA-Z0-9_]*\s*\([^)]*\b([a-zA-Z_][a-zA-Z0-9_]*)\s*[,)]`),
			rule("lambda-param", `\blambda\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*:`),
			rule("with-as", `\bwith\s+[^)\n]+\s+as\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*:`),
			rule("except-as", `\bexcept\s+\w+\s+as\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*:`),
		},
	},
	domain.LanguageJava: {
		Language: domain.LanguageJava,
		Rules: []Rule{
			rule("typed-declaration", `\b(?:int|long|short|byte|float|double|boolean|char|String|var)\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*[=;]`),
			rule("for-init", `\bfor\s*\(\s*(?:int|long|short|byte|char|var)\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*=`),
			rule("enhanced-for", `\bfor\s*\(\s*\w+\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*:\s*[^)]+\)`),
			rule("method-param", `\b(?:public|private|protected|static)?\s*\w+\s+\w+\s*\([^)]*\b([a-zA-Z_][a-zA-Z0-9_]*)\s*[,)]`),
			rule("catch-param", `\bcatch\s*\(\s*\w+\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\)`),
		},
	},
	domain.LanguageCpp: {Language: domain.LanguageCpp, Rules: cFamily},
	domain.LanguageC:   {Language: domain.LanguageC, Rules: cFamily},
	domain.LanguageCSharp: {
		Language: domain.LanguageCSharp,
		Rules: []Rule{
			rule("typed-declaration", `\b(?:int|long|short|byte|float|double|bool|string|var)\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*[=;]`),
			rule("foreach", `\bforeach\s*\(\s*\w+\s+([a-zA-Z_][a-zA-Z0-9_]*)\s+in\s+[^)]+\)`),
			rule("method-param", `\b(?:public|private|protected|internal)?\s*\w+\s+\w+\s*\([^)]*\b([a-zA-Z_][a-zA-Z0-9_]*)\s*[,)]`),
		},
	},
	domain.LanguageGo: {
		Language: domain.LanguageGo,
		Rules: []Rule{
			rule("var-or-short-declaration", `\b(?:var\s+([a-zA-Z_][a-zA-Z0-9_]*)|([a-zA-Z_][a-zA-Z0-9_]*)\s*:=)`),
			rule("for-init", `\bfor\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*(?::=|,)`),
			rule("func-param", `\bfunc\s+\w+\s*\([^)]*\b([a-zA-Z_][a-zA-Z0-9_]*)\s+\w+\s*[,)]`),
			rule("range-key", `\bfor\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*(?:,\s*[a-zA-Z_][a-zA-Z0-9_]*)?\s*:=\s*range`),
		},
	},
	domain.LanguageRuby: {
		Language: domain.LanguageRuby,
		Rules: []Rule{
			rule("assignment", `(?m)^[ \t]*([a-zA-Z_][a-zA-Z0-9_]*)[ \t]*=(?:[^=~>]|$)`),
			rule("do-block-param", `\bdo\s*\|\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\|`),
			rule("brace-block-param", `\{\s*\|\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\|`),
			rule("def-param", `\bdef\s+\w+\s*\([^)]*\b([a-zA-Z_][a-zA-Z0-9_]*)\s*[,)]`),
		},
	},
	domain.LanguagePHP: {
		Language: domain.LanguagePHP,
		Rules: []Rule{
			rule("assignment", `\$([a-zA-Z_][a-zA-Z0-9_]*)\s*=`),
			rule("function-param", `\bfunction\s+\w+\s*\([^)]*\$([a-zA-Z_][a-zA-Z0-9_]*)\s*[,)]`),
			rule("foreach-as", `\bforeach\s*\([^)]+\s+as\s+\$([a-zA-Z_][a-zA-Z0-9_]*)\s*[,)]`),
		},
	},
	domain.LanguageKotlin: {
		Language: domain.LanguageKotlin,
		Rules: []Rule{
			rule("val-var", `\b(?:val|var)\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*[=:]`),
			rule("for-in", `\bfor\s*\(\s*([a-zA-Z_][a-zA-Z0-9_]*)\s+in\s+[^)]+\)`),
			rule("fun-param", `\bfun\s+\w+\s*\([^)]*\b([a-zA-Z_][a-zA-Z0-9_]*)\s*:\s*\w+\s*[,)]`),
		},
	},
	domain.LanguageSwift: {
		Language: domain.LanguageSwift,
		Rules: []Rule{
			rule("let-var", `\b(?:let|var)\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*[=:]`),
			rule("for-in", `\bfor\s+([a-zA-Z_][a-zA-Z0-9_]*)\s+in\s+`),
			rule("func-param", `\bfunc\s+\w+\s*\([^)]*\b([a-zA-Z_][a-zA-Z0-9_]*)\s*:\s*\w+\s*[,)]`),
		},
	},
	domain.LanguageDart: {
		Language: domain.LanguageDart,
		Rules: []Rule{
			rule("typed-declaration", `\b(?:var|final|const|int|double|String|bool)\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*[=;]`),
			rule("for-in", `\bfor\s*\(\s*\w+\s+([a-zA-Z_][a-zA-Z0-9_]*)\s+in\s+[^)]+\)`),
			rule("function-param", `\b\w+\s+\w+\s*\([^)]*\b([a-zA-Z_][a-zA-Z0-9_]*)\s*[,)]`),
		},
	},
	domain.LanguageScala: {
		Language: domain.LanguageScala,
		Rules: []Rule{
			rule("val-var", `\b(?:val|var)\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*[=:]`),
			rule("for-generator", `\bfor\s*\(\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*<-`),
			rule("def-param", `\bdef\s+\w+\s*\([^)]*\b([a-zA-Z_][a-zA-Z0-9_]*)\s*:\s*\w+\s*[,)]`),
		},
	},
}
