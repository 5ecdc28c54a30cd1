package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Veraticus/quota-sniper/internal/model"
)

// maxRelaxedSpan is the longest label-to-amount span, in characters, accepted
// when the label and the amount sit on different lines.
const maxRelaxedSpan = 50

// ws also covers the non-breaking spaces common in copied listings.
const ws = `[\s\x{00a0}]`

var (
	creditLabeled      = regexp.MustCompile(`(?i)(?:crédito|credito|bem|valor)[^\d\n]*?r\$` + ws + `?([\d.,]+)`)
	downPaymentLabeled = regexp.MustCompile(`(?i)(?:entrada|ágio|agio|quero|pago)[^\d\n]*?r\$` + ws + `?([\d.,]+)`)
	downPaymentRelaxed = regexp.MustCompile(`(?is)(?:entrada|ágio|agio).*?r\$` + ws + `?([\d.,]+)`)
	currencyAmount     = regexp.MustCompile(`(?i)r\$` + ws + `?([\d.,]+)`)
	scheduleEntry      = regexp.MustCompile(`(?i)(\d+)` + ws + `*x` + ws + `*r?\$` + ws + `?([\d.,]+)`)
)

// Figure is an extracted amount together with the path that produced it.
type Figure struct {
	Source model.Source
	Value  float64
}

// Found reports whether any extraction path matched.
func (f Figure) Found() bool {
	return f.Source != model.SourceNone
}

var notFound = Figure{Source: model.SourceNone}

// Schedule summarizes the "<term> x R$ <value>" installment plans of a block.
type Schedule struct {
	Installment      float64
	RemainingBalance float64
	Term             int
	Occurrences      int
}

// TypeRule maps keywords to the asset type they indicate.
type TypeRule struct {
	Type     model.AssetType `mapstructure:"type"`
	Keywords []string        `mapstructure:"keywords"`
}

// DetectAdmin returns the first administrator in admins named anywhere in the
// block, upper-cased, or model.AdminOther.
func DetectAdmin(block string, admins []string) string {
	lower := strings.ToLower(block)
	for _, adm := range admins {
		if adm == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(adm)) {
			return strings.ToUpper(adm)
		}
	}
	return model.AdminOther
}

// ClassifyType returns the type of the first rule with a keyword present in
// the block, or model.AssetGeneral.
func ClassifyType(block string, rules []TypeRule) model.AssetType {
	lower := strings.ToLower(block)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				return rule.Type
			}
		}
	}
	return model.AssetGeneral
}

// ExtractCredit finds the quota's face value. A labeled amount wins; without
// one the largest amount in the block is used.
func ExtractCredit(block string) Figure {
	if m := creditLabeled.FindStringSubmatch(block); m != nil {
		return Figure{Value: NormalizeCurrency(m[1]), Source: model.SourceLabeled}
	}
	if amounts := rankedAmounts(block); len(amounts) > 0 {
		return Figure{Value: amounts[0], Source: model.SourcePositional}
	}
	return notFound
}

// ExtractDownPayment finds the upfront amount. It tries a same-line label,
// then a label with the amount on a following line within a short span, then
// the second largest amount in the block.
func ExtractDownPayment(block string) Figure {
	if m := downPaymentLabeled.FindStringSubmatch(block); m != nil {
		return Figure{Value: NormalizeCurrency(m[1]), Source: model.SourceLabeled}
	}

	if m := downPaymentRelaxed.FindStringSubmatch(block); m != nil && utf8.RuneCountInString(m[0]) < maxRelaxedSpan {
		if v := NormalizeCurrency(m[1]); v != 0 {
			return Figure{Value: v, Source: model.SourceRelaxed}
		}
	}

	if amounts := rankedAmounts(block); len(amounts) > 1 {
		return Figure{Value: amounts[1], Source: model.SourcePositional}
	}
	return notFound
}

// ExtractSchedule sums every installment plan in the block. The representative
// installment is the largest one with more than one payment left; a block
// with a single plan uses that plan whatever its term.
func ExtractSchedule(block string) Schedule {
	matches := scheduleEntry.FindAllStringSubmatch(block, -1)

	var s Schedule
	for _, m := range matches {
		term, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		value := NormalizeCurrency(m[2])

		s.Occurrences++
		s.RemainingBalance += float64(term) * value
		if term > 1 && value > s.Installment {
			s.Installment = value
			s.Term = term
		} else if len(matches) == 1 {
			s.Installment = value
			s.Term = term
		}
	}
	return s
}

// HasCurrencyMarker reports whether the block mentions marker, case-insensitively.
func HasCurrencyMarker(block, marker string) bool {
	return strings.Contains(strings.ToLower(block), strings.ToLower(marker))
}

// rankedAmounts returns every currency amount in the block, largest first.
func rankedAmounts(block string) []float64 {
	matches := currencyAmount.FindAllStringSubmatch(block, -1)
	values := make([]float64, 0, len(matches))
	for _, m := range matches {
		values = append(values, NormalizeCurrency(m[1]))
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))
	return values
}
