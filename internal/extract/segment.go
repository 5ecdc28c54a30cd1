package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinBlockLength is the shortest block, in characters, that can hold an offer.
const MinBlockLength = 20

var blankLine = regexp.MustCompile(`\n[ \t\r\f\v\x{00a0}]*\n`)

// Segment splits pasted text into blocks that each plausibly describe one
// offer. A block starts at every case-insensitive occurrence of one of the
// keywords and keeps the keyword. Text without keywords is split on blank
// lines instead. Blocks shorter than MinBlockLength are dropped.
func Segment(text string, keywords []string) []string {
	normalized := normalizeLines(text)

	blocks := splitBeforeKeywords(normalized, keywordPattern(keywords))
	if len(blocks) < 2 {
		blocks = blocks[:0]
		for _, para := range blankLine.Split(strings.ReplaceAll(text, "\r\n", "\n"), -1) {
			blocks = append(blocks, normalizeLines(para))
		}
	}

	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		b = strings.TrimSpace(b)
		if utf8.RuneCountInString(b) < MinBlockLength {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

// normalizeLines trims every line and drops the blank ones.
func normalizeLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func keywordPattern(keywords []string) *regexp.Regexp {
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			quoted = append(quoted, regexp.QuoteMeta(k))
		}
	}
	if len(quoted) == 0 {
		return nil
	}
	return regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)`)
}

// splitBeforeKeywords cuts text right before each keyword occurrence. The
// text ahead of the first keyword is its own block, even when empty.
func splitBeforeKeywords(text string, re *regexp.Regexp) []string {
	if re == nil {
		return []string{text}
	}
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []string{text}
	}

	blocks := make([]string, 0, len(locs)+1)
	start := 0
	for _, loc := range locs {
		blocks = append(blocks, text[start:loc[0]])
		start = loc[0]
	}
	return append(blocks, text[start:])
}
