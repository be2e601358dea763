// Package grammar implements the production-rule text engine used to
// generate questions and photo prompts.
//
// A Grammar is built from an immutable rule table mapping symbol names to
// alternative templates. Templates mix literal text with symbol references
// written as #name# or #name.modifier#. Expanding a symbol picks one
// alternative uniformly at random and recursively expands every reference,
// producing a tree of nodes whose rendered text is the finished output.
package grammar

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// maxDepth bounds recursive expansion so a cyclic rule table fails loudly
// instead of recursing forever.
const maxDepth = 64

// Node is one node of an expansion tree. Literal nodes carry raw template
// text; symbol nodes carry the unexpanded rule name in Raw and their chosen
// alternative's expansion in Children.
type Node struct {
	Raw       string
	Modifiers []string
	Literal   bool
	Text      string
	Children  []*Node
}

// Grammar expands symbols against a fixed rule table. The table is never
// mutated after construction; the only state is the random source, so a
// Grammar is not safe for concurrent use.
type Grammar struct {
	rules map[string][]string
	rng   *rand.Rand
}

// New creates a Grammar over the given rule table. A nil rng gets a
// time-seeded source.
func New(rules map[string][]string, rng *rand.Rand) *Grammar {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Grammar{rules: rules, rng: rng}
}

// Expand expands the named symbol into a tree.
func (g *Grammar) Expand(symbol string) (*Node, error) {
	return g.expand(symbol, nil, 0)
}

// Render expands the named symbol and returns only the finished text.
func (g *Grammar) Render(symbol string) (string, error) {
	node, err := g.Expand(symbol)
	if err != nil {
		return "", err
	}
	return node.Text, nil
}

func (g *Grammar) expand(symbol string, modifiers []string, depth int) (*Node, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("grammar: expansion of %q exceeds depth %d", symbol, maxDepth)
	}

	alternatives, ok := g.rules[symbol]
	if !ok {
		return nil, fmt.Errorf("grammar: unknown symbol %q", symbol)
	}
	if len(alternatives) == 0 {
		return nil, fmt.Errorf("grammar: symbol %q has no alternatives", symbol)
	}

	template := alternatives[g.rng.Intn(len(alternatives))]

	node := &Node{Raw: symbol, Modifiers: modifiers}

	segments, err := parseTemplate(template)
	if err != nil {
		return nil, fmt.Errorf("grammar: symbol %q: %w", symbol, err)
	}

	var text strings.Builder
	for _, seg := range segments {
		if seg.literal {
			child := &Node{Raw: seg.text, Literal: true, Text: seg.text}
			node.Children = append(node.Children, child)
			text.WriteString(seg.text)
			continue
		}
		child, err := g.expand(seg.symbol, seg.modifiers, depth+1)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
		text.WriteString(child.Text)
	}

	node.Text = applyModifiers(text.String(), modifiers)
	return node, nil
}

// Flatten walks the tree depth-first, preserving child order, and returns
// every node including the root.
func Flatten(root *Node) []*Node {
	if root == nil {
		return nil
	}
	nodes := []*Node{root}
	for _, child := range root.Children {
		nodes = append(nodes, Flatten(child)...)
	}
	return nodes
}

type segment struct {
	literal   bool
	text      string
	symbol    string
	modifiers []string
}

// parseTemplate splits a template into literal runs and #symbol.mod#
// references. References never nest.
func parseTemplate(template string) ([]segment, error) {
	var segments []segment
	rest := template
	for {
		open := strings.IndexByte(rest, '#')
		if open < 0 {
			if rest != "" {
				segments = append(segments, segment{literal: true, text: rest})
			}
			return segments, nil
		}
		if open > 0 {
			segments = append(segments, segment{literal: true, text: rest[:open]})
		}
		close := strings.IndexByte(rest[open+1:], '#')
		if close < 0 {
			return nil, fmt.Errorf("unterminated symbol reference in %q", template)
		}
		ref := rest[open+1 : open+1+close]
		parts := strings.Split(ref, ".")
		if parts[0] == "" {
			return nil, fmt.Errorf("empty symbol reference in %q", template)
		}
		segments = append(segments, segment{symbol: parts[0], modifiers: parts[1:]})
		rest = rest[open+close+2:]
	}
}
