// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "regexp"

// Placeholder names recognized by the default command template.
const (
	placeholderBin       = "bin"
	placeholderConvertTo = "convert_to"
	placeholderOutdir    = "outdir"
	placeholderSource    = "source"
)

// placeholderPattern matches a token that is exactly one placeholder: a
// bare identifier wrapped in percent signs.
var placeholderPattern = regexp.MustCompile(`^%([A-Za-z_][A-Za-z0-9_]*)%$`)

// DefaultCommand returns the default command template: a headless,
// non-interactive soffice invocation. Callers may mutate the returned
// slice freely; each call returns a fresh copy.
func DefaultCommand() []string {
	return []string{
		"%bin%",
		"--headless",
		"--convert-to", "%convert_to%",
		"--outdir", "%outdir%",
		"%source%",
	}
}

// renderCommand expands a command template into an argument vector.
// A token that is exactly a placeholder is replaced by its mapped value;
// placeholders absent from the mapping render empty. Empty renderings are
// dropped from the vector, matching the word-splitting behavior of the
// shell-string templating this replaces. Literal tokens pass through
// untouched. The process is invoked with the resulting vector directly,
// so no escaping is performed or needed.
func renderCommand(template []string, subs map[string]string) []string {
	argv := make([]string, 0, len(template))
	for _, token := range template {
		m := placeholderPattern.FindStringSubmatch(token)
		if m == nil {
			argv = append(argv, token)
			continue
		}
		if value := subs[m[1]]; value != "" {
			argv = append(argv, value)
		}
	}
	return argv
}
