package question

import (
	"fmt"
	"math/rand"
	"unicode"

	"go.uber.org/zap"

	"github.com/snapshot-reflect/reflectbot/internal/grammar"
	"github.com/snapshot-reflect/reflectbot/pkg/logger"
	"github.com/snapshot-reflect/reflectbot/pkg/metrics"
)

const (
	// WildcardSymbol is the generic category every exhausted expansion
	// point falls back to.
	WildcardSymbol = "origin"

	// SelfieConcept marks a reply that asked whether the image is a
	// selfie; the caller must record a pending confirmation.
	SelfieConcept = "Isselfie"

	// FeelingsConcept triggers the feelings followup on the next turn.
	FeelingsConcept = "Feelings"

	// maxAttempts is how often the same symbol is re-expanded before
	// falling back to the wildcard.
	maxAttempts = 5

	// attemptCeiling is a hard stop against a rule table too small to
	// ever produce an unused concept. The shipped wildcard set is large
	// enough that this is never reached in practice.
	attemptCeiling = 200
)

// Selector draws not-yet-used questions from the question grammar.
// Repeat tracking is the caller's job: Next is pure apart from randomness.
type Selector struct {
	g   *grammar.Grammar
	log *logger.Logger
}

// NewSelector creates a Selector over the given rule table. Pass
// QuestionRules for production use; tests may inject a smaller table.
func NewSelector(rules map[string][]string, rng *rand.Rand, log *logger.Logger) *Selector {
	if log == nil {
		log = logger.Global()
	}
	return &Selector{g: grammar.New(rules, rng), log: log}
}

// Next expands startSymbol into a question whose concepts are all absent
// from used, retrying with fresh randomness on collision. After maxAttempts
// failures the expansion point is forced to the wildcard symbol. Returns the
// rendered text and the ordered set of concept names the caller must merge
// into the conversation's used set.
func (s *Selector) Next(startSymbol string, used []string) (string, []string, error) {
	symbol := startSymbol
	attempts := 0

	for {
		if attempts >= attemptCeiling {
			return "", nil, fmt.Errorf("question: no unused expansion of %q after %d attempts", startSymbol, attempts)
		}

		tree, err := s.g.Expand(symbol)
		if err != nil {
			return "", nil, fmt.Errorf("question: expand %q: %w", symbol, err)
		}

		concepts := Concepts(tree)
		if collides(concepts, used) {
			attempts++
			if attempts == maxAttempts && symbol != WildcardSymbol {
				s.log.Debug("expansion point exhausted, falling back to wildcard",
					zap.String("symbol", symbol),
					zap.Int("attempts", attempts),
				)
				metrics.WildcardFallbacks.Inc()
				symbol = WildcardSymbol
			}
			continue
		}

		metrics.GrammarRetries.Observe(float64(attempts))
		return tree.Text, concepts, nil
	}
}

// Concepts returns the question-concept names present in an expansion tree,
// depth-first, deduplicated, preserving first-seen order. A node is a
// concept when it is a symbol node whose raw rule name begins with an
// uppercase letter; lowercase symbols are reusable thesaurus substitutions.
func Concepts(tree *grammar.Node) []string {
	var names []string
	seen := make(map[string]bool)
	for _, node := range grammar.Flatten(tree) {
		if node.Literal || node.Raw == "" {
			continue
		}
		if !unicode.IsUpper(rune(node.Raw[0])) {
			continue
		}
		if !seen[node.Raw] {
			seen[node.Raw] = true
			names = append(names, node.Raw)
		}
	}
	return names
}

func collides(concepts, used []string) bool {
	for _, c := range concepts {
		for _, u := range used {
			if c == u {
				return true
			}
		}
	}
	return false
}

// ContainsConcept reports whether name is among the returned concepts.
func ContainsConcept(concepts []string, name string) bool {
	for _, c := range concepts {
		if c == name {
			return true
		}
	}
	return false
}

// Prompter renders generic photo prompts from the prompt grammar. Prompts
// carry no repeat tracking.
type Prompter struct {
	g *grammar.Grammar
}

// NewPrompter creates a Prompter over PromptRules (or an injected table).
func NewPrompter(rules map[string][]string, rng *rand.Rand) *Prompter {
	return &Prompter{g: grammar.New(rules, rng)}
}

// Generate renders one photo prompt from the wildcard symbol.
func (p *Prompter) Generate() (string, error) {
	text, err := p.g.Render(WildcardSymbol)
	if err != nil {
		return "", fmt.Errorf("question: prompt: %w", err)
	}
	return text, nil
}

// PickExcuse selects one conversation-ending excuse uniformly at random.
func PickExcuse(rng *rand.Rand) string {
	return Excuses[rng.Intn(len(Excuses))]
}
