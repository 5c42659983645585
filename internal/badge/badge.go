// SPDX-License-Identifier: MPL-2.0

package badge

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const (
	// ClassPrimary marks platform availability.
	ClassPrimary = "badge badge--primary"
	// ClassDanger marks deprecated APIs.
	ClassDanger = "badge badge--danger"
	// ClassWarning marks experimental APIs.
	ClassWarning = "badge badge--warning"
	// ClassInfo marks read-only properties.
	ClassInfo = "badge badge--info"

	// transformerPriority runs after the default inline transformers.
	transformerPriority = 500
)

type (
	// Rule styles one emphasised word.
	Rule struct {
		// Class is the value written to the element's class attribute.
		Class string
		// Replace, when non-empty, substitutes the displayed text.
		Replace string
	}

	// Vocabulary maps the exact emphasised text to its badge rule.
	Vocabulary map[string]Rule

	// Transformer is a goldmark AST transformer applying a Vocabulary.
	Transformer struct {
		vocab Vocabulary
	}

	// Extension registers a Transformer with a goldmark instance.
	Extension struct {
		Vocabulary Vocabulary
	}
)

// DefaultVocabulary returns the platform and stability badges used by the
// API reference.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		"macOS":        {Class: ClassPrimary},
		"mas":          {Class: ClassPrimary, Replace: "MAS"},
		"Windows":      {Class: ClassPrimary},
		"Linux":        {Class: ClassPrimary},
		"Deprecated":   {Class: ClassDanger},
		"Experimental": {Class: ClassWarning},
		"Readonly":     {Class: ClassInfo},
	}
}

// NewTransformer returns a transformer for vocab. A nil vocab uses
// DefaultVocabulary.
func NewTransformer(vocab Vocabulary) *Transformer {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Transformer{vocab: vocab}
}

// New returns an extension using vocab, or the default vocabulary when nil.
func New(vocab Vocabulary) goldmark.Extender {
	return &Extension{Vocabulary: vocab}
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(NewTransformer(e.Vocabulary), transformerPriority),
	))
}

// Transform implements parser.ASTTransformer.
func (t *Transformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		em, ok := n.(*ast.Emphasis)
		if !ok || em.Level != 1 {
			return ast.WalkContinue, nil
		}
		t.apply(em, source)
		return ast.WalkSkipChildren, nil
	})
}

func (t *Transformer) apply(em *ast.Emphasis, source []byte) {
	if em.ChildCount() != 1 {
		return
	}
	txt, ok := em.FirstChild().(*ast.Text)
	if !ok {
		return
	}
	rule, ok := t.vocab[string(txt.Segment.Value(source))]
	if !ok {
		return
	}
	em.SetAttributeString("class", []byte(rule.Class))
	if rule.Replace != "" {
		em.ReplaceChild(em, txt, ast.NewString([]byte(rule.Replace)))
	}
}
