package domain

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Language identifies a supported host language. One tag covers a whole
// extension family (.js, .jsx, .ts and .tsx are all JavaScript).
type Language string

const (
	LanguageRust       Language = "rust"
	LanguageJavaScript Language = "javascript"
	LanguagePython     Language = "python"
	LanguageJava       Language = "java"
	LanguageCpp        Language = "cpp"
	LanguageC          Language = "c"
	LanguageCSharp     Language = "csharp"
	LanguageGo         Language = "go"
	LanguageRuby       Language = "ruby"
	LanguagePHP        Language = "php"
	LanguageKotlin     Language = "kotlin"
	LanguageSwift      Language = "swift"
	LanguageDart       Language = "dart"
	LanguageScala      Language = "scala"
)

// AllLanguages returns every supported language in a stable order.
func AllLanguages() []Language {
	return []Language{
		LanguageRust, LanguageJavaScript, LanguagePython, LanguageJava,
		LanguageCpp, LanguageC, LanguageCSharp, LanguageGo, LanguageRuby,
		LanguagePHP, LanguageKotlin, LanguageSwift, LanguageDart, LanguageScala,
	}
}

var extensions = map[string]Language{
	".rs":    LanguageRust,
	".js":    LanguageJavaScript,
	".jsx":   LanguageJavaScript,
	".ts":    LanguageJavaScript,
	".tsx":   LanguageJavaScript,
	".py":    LanguagePython,
	".java":  LanguageJava,
	".cpp":   LanguageCpp,
	".cc":    LanguageCpp,
	".cxx":   LanguageCpp,
	".c++":   LanguageCpp,
	".c":     LanguageC,
	".h":     LanguageC,
	".cs":    LanguageCSharp,
	".go":    LanguageGo,
	".rb":    LanguageRuby,
	".php":   LanguagePHP,
	".kt":    LanguageKotlin,
	".swift": LanguageSwift,
	".dart":  LanguageDart,
	".scala": LanguageScala,
}

// LanguageForExtension maps an extension including the leading dot (".rs")
// to its language. Matching is case-sensitive.
func LanguageForExtension(ext string) (Language, bool) {
	l, ok := extensions[ext]
	return l, ok
}

// LanguageForPath resolves the language of a file from its extension.
func LanguageForPath(path string) (Language, bool) {
	return LanguageForExtension(filepath.Ext(path))
}

// Extensions returns the extensions mapped to l, sorted.
func (l Language) Extensions() []string {
	var out []string
	for ext, lang := range extensions {
		if lang == l {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}

// ParseLanguage validates a language name as written in config files.
func ParseLanguage(name string) (Language, error) {
	for _, l := range AllLanguages() {
		if string(l) == name {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown language %q", name)
}
