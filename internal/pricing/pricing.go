// Package pricing reads registrar price text: the quoted amount, premium
// designations and registry minimum terms. The rules are assumptions about
// upstream wording and are loaded from YAML so they can change without a
// release.
package pricing

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"domainscout/internal/domain"
)

//go:embed rules.yaml
var defaultRules []byte

type Rules struct {
	Currency       string         `yaml:"currency"`
	Symbol         string         `yaml:"symbol"`
	MinYears       map[string]int `yaml:"min_years"`
	PremiumPhrases []string       `yaml:"premium_phrases"`
	NegatedPhrases []string       `yaml:"negated_phrases"`
}

type Quote struct {
	Formatted string
	Amount    float64
	HasAmount bool
	Premium   bool
	Years     int
}

var amountPattern = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// Default returns the embedded rules.
func Default() *Rules {
	r, err := Parse(defaultRules)
	if err != nil {
		panic(fmt.Sprintf("embedded pricing rules: %v", err))
	}
	return r
}

// Load reads rules from path, or returns the embedded rules when path is
// empty.
func Load(path string) (*Rules, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing rules: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse pricing rules: %w", err)
	}

	normalized := make(map[string]int, len(r.MinYears))
	for suffix, years := range r.MinYears {
		if years < 1 {
			return nil, fmt.Errorf("min_years for %q must be at least 1, got %d", suffix, years)
		}
		s := strings.ToLower(strings.TrimSpace(suffix))
		if !strings.HasPrefix(s, ".") {
			s = "." + s
		}
		normalized[s] = years
	}
	r.MinYears = normalized
	r.PremiumPhrases = lowerAll(r.PremiumPhrases)
	r.NegatedPhrases = lowerAll(r.NegatedPhrases)
	if r.Currency == "" {
		r.Currency = "USD"
	}
	return &r, nil
}

// MinTerm is the minimum registration term in years for the longest
// configured suffix of domainName.
func (r *Rules) MinTerm(domainName string) int {
	name := strings.ToLower(domainName)
	years, best := 1, 0
	for suffix, y := range r.MinYears {
		if strings.HasSuffix(name, suffix) && len(suffix) > best {
			years, best = y, len(suffix)
		}
	}
	return years
}

// IsPremium looks for a premium phrase once every negated phrase has been
// blanked out, so "is not a premium domain" never counts.
func (r *Rules) IsPremium(raw string) bool {
	text := strings.ToLower(raw)
	for _, neg := range r.NegatedPhrases {
		text = strings.ReplaceAll(text, neg, " ")
	}
	for _, phrase := range r.PremiumPhrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

func (r *Rules) Format(amount float64) string {
	p := message.NewPrinter(language.English)
	n := p.Sprintf("%.2f", amount)
	if r.Symbol == "" {
		return r.Currency + " " + n
	}
	return r.Symbol + n
}

// Quote reads raw price text for domainName. The leading number is a per-year
// price and is scaled by the minimum term before rounding to cents.
func (r *Rules) Quote(domainName, raw string) Quote {
	q := Quote{
		Premium: r.IsPremium(raw),
		Years:   r.MinTerm(domainName),
	}

	token := amountPattern.FindString(raw)
	if token == "" {
		return q
	}
	base, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", ""), 64)
	if err != nil {
		return q
	}

	q.Amount = math.Round(base*float64(q.Years)*100) / 100
	q.HasAmount = true
	q.Formatted = r.Format(q.Amount)
	return q
}

// Apply copies the quote onto an outcome.
func (q Quote) Apply(o *domain.Outcome) {
	premium := q.Premium
	o.Premium = &premium
	if !q.HasAmount {
		return
	}
	formatted, amount := q.Formatted, q.Amount
	o.Price = &formatted
	o.PriceUSD = &amount
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
