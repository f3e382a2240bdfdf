package codegolf

import (
	"fmt"
	"sort"
)

// knownLanguages is the set of language identifiers accepted by the
// code.golf solutions-log endpoint. The endpoint does not reject unknown
// identifiers cleanly, so the identifier is validated here before any
// fetch is attempted.
var knownLanguages = map[string]struct{}{
	"assembly":     {},
	"awk":          {},
	"bash":         {},
	"basic":        {},
	"brainfuck":    {},
	"c":            {},
	"c-sharp":      {},
	"civet":        {},
	"clojure":      {},
	"cobol":        {},
	"coconut":      {},
	"coffeescript": {},
	"common-lisp":  {},
	"cpp":          {},
	"crystal":      {},
	"d":            {},
	"dart":         {},
	"elixir":       {},
	"erlang":       {},
	"f-sharp":      {},
	"factor":       {},
	"fennel":       {},
	"fish":         {},
	"forth":        {},
	"fortran":      {},
	"gleam":        {},
	"go":           {},
	"golfscript":   {},
	"hare":         {},
	"haskell":      {},
	"haxe":         {},
	"hexagony":     {},
	"j":            {},
	"janet":        {},
	"java":         {},
	"javascript":   {},
	"julia":        {},
	"k":            {},
	"kotlin":       {},
	"lua":          {},
	"nim":          {},
	"ocaml":        {},
	"odin":         {},
	"pascal":       {},
	"perl":         {},
	"php":          {},
	"powershell":   {},
	"prolog":       {},
	"python":       {},
	"r":            {},
	"raku":         {},
	"rebol":        {},
	"rockstar":     {},
	"ruby":         {},
	"rust":         {},
	"scala":        {},
	"scheme":       {},
	"sed":          {},
	"sql":          {},
	"swift":        {},
	"tcl":          {},
	"tex":          {},
	"uiua":         {},
	"v":            {},
	"viml":         {},
	"wren":         {},
	"zig":          {},
}

// DefaultLanguage is the language filter used when none is configured.
const DefaultLanguage = "rust"

// ValidateLanguage fails fast on an identifier the API would not serve.
func ValidateLanguage(lang string) error {
	if _, ok := knownLanguages[lang]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	return nil
}

// Languages returns the known identifiers in sorted order, for help text.
func Languages() []string {
	out := make([]string, 0, len(knownLanguages))
	for lang := range knownLanguages {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}
