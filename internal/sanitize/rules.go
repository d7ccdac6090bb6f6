package sanitize

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PromptGlyph is the decorative marker prepended to user-entered lines for
// display. The default pipeline strips it before text leaves the
// application.
const PromptGlyph = '▌'

// defaultRules builds the built-in pipeline: strip the prompt glyph,
// nothing else. Kept intentionally minimal; additional rules are opt-in.
func defaultRules() []Rule {
	return []Rule{StripPromptGlyph()}
}

// StripPromptGlyph returns the default rule. For each line starting with
// the prompt glyph, one glyph and one following space are removed; stacked
// glyphs lose a single layer per application. Other lines pass through. When any line is stripped the result is rejoined with
// "\n" regardless of the original line endings. If the glyph does not occur
// anywhere in the input the rule returns the input without scanning lines.
func StripPromptGlyph() Rule {
	glyph := string(PromptGlyph)
	return FuncRule("strip_prompt_glyph", func(input string) (string, bool) {
		if !strings.ContainsRune(input, PromptGlyph) {
			return input, false
		}
		changed := false
		var b strings.Builder
		b.Grow(len(input))
		for i, line := range splitLines(input) {
			if rest, ok := strings.CutPrefix(line, glyph+" "); ok {
				line = rest
				changed = true
			} else if rest, ok := strings.CutPrefix(line, glyph); ok {
				line = rest
				changed = true
			}
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(line)
		}
		if !changed {
			return input, false
		}
		return b.String(), true
	})
}

// TrimTrailingSpace returns a rule that removes trailing spaces and tabs
// from every line. Changed output is rejoined with "\n".
func TrimTrailingSpace() Rule {
	return FuncRule("trim_trailing_space", func(input string) (string, bool) {
		changed := false
		var b strings.Builder
		b.Grow(len(input))
		for i, line := range splitLines(input) {
			trimmed := strings.TrimRight(line, " \t")
			if trimmed != line {
				changed = true
			}
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(trimmed)
		}
		if !changed {
			return input, false
		}
		return b.String(), true
	})
}

// CollapseBlankLines returns a rule that caps runs of consecutive blank
// lines at max. A blank line is completely empty after line splitting.
// max < 1 is treated as 1.
func CollapseBlankLines(max int) Rule {
	if max < 1 {
		max = 1
	}
	return FuncRule("collapse_blank_lines", func(input string) (string, bool) {
		changed := false
		blanks := 0
		var b strings.Builder
		b.Grow(len(input))
		wrote := false
		for _, line := range splitLines(input) {
			if line == "" {
				blanks++
				if blanks > max {
					changed = true
					continue
				}
			} else {
				blanks = 0
			}
			if wrote {
				b.WriteByte('\n')
			}
			b.WriteString(line)
			wrote = true
		}
		if !changed {
			return input, false
		}
		return b.String(), true
	})
}

// zero-width code points worth stripping from pasted text.
func isZeroWidth(r rune) bool {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\ufeff':
		return true
	}
	return false
}

// StripZeroWidth returns a rule that removes zero-width spaces, joiners,
// non-joiners and BOMs. Intended for inbound text where invisible
// characters can smuggle content past review.
func StripZeroWidth() Rule {
	return FuncRule("strip_zero_width", func(input string) (string, bool) {
		if !strings.ContainsFunc(input, isZeroWidth) {
			return input, false
		}
		out := strings.Map(func(r rune) rune {
			if isZeroWidth(r) {
				return -1
			}
			return r
		}, input)
		return out, true
	})
}

// NormalizeNFC returns a rule that normalizes text to Unicode NFC. Already
// normalized input passes through without allocation.
func NormalizeNFC() Rule {
	return FuncRule("normalize_nfc", func(input string) (string, bool) {
		if norm.NFC.IsNormalString(input) {
			return input, false
		}
		return norm.NFC.String(input), true
	})
}

// Redact returns a rule replacing every match of re with replacement.
// Idempotency depends on the pattern: choose replacements the pattern
// cannot re-match.
func Redact(re *regexp.Regexp, replacement string) Rule {
	name := fmt.Sprintf("redact(%s)", re.String())
	return FuncRule(name, func(input string) (string, bool) {
		if !re.MatchString(input) {
			return input, false
		}
		out := re.ReplaceAllString(input, replacement)
		return out, out != input
	})
}

// splitLines splits on '\n', dropping one trailing '\r' per line and any
// final empty line, so "a\r\nb\n" yields ["a", "b"].
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			line := s[start:i]
			if len(line) > 0 && line[len(line)-1] == '\r' {
				line = line[:len(line)-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
