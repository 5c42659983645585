// SPDX-License-Identifier: MPL-2.0

package components

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const (
	cjsLanguage = "cjs"
	mjsLanguage = "mjs"

	codeTabsPriority = 500
)

// KindCodeTabs is the node kind of a CodeTabsNode.
var KindCodeTabs = ast.NewNodeKind("CodeTabs")

type (
	// CodeTabsNode replaces a cjs fence immediately followed by an mjs fence.
	CodeTabsNode struct {
		ast.BaseBlock
		CJS string
		MJS string
	}

	codeTabsTransformer struct{}

	codeTabsRenderer struct{}

	codeTabsExtension struct{}
)

// CodeTabsExtension pairs adjacent cjs and mjs fenced code blocks into a
// single tab switcher.
var CodeTabsExtension goldmark.Extender = codeTabsExtension{}

// Kind implements ast.Node.
func (n *CodeTabsNode) Kind() ast.NodeKind {
	return KindCodeTabs
}

// Dump implements ast.Node.
func (n *CodeTabsNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"CJS": n.CJS,
		"MJS": n.MJS,
	}, nil)
}

func (codeTabsExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(codeTabsTransformer{}, codeTabsPriority),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(codeTabsRenderer{}, codeTabsPriority),
	))
}

func (codeTabsTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	source := reader.Source()

	var pairs [][2]*ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		first, ok := n.(*ast.FencedCodeBlock)
		if !ok || string(first.Language(source)) != cjsLanguage {
			return ast.WalkContinue, nil
		}
		second, ok := first.NextSibling().(*ast.FencedCodeBlock)
		if ok && string(second.Language(source)) == mjsLanguage {
			pairs = append(pairs, [2]*ast.FencedCodeBlock{first, second})
		}
		return ast.WalkSkipChildren, nil
	})

	for _, p := range pairs {
		parent := p[0].Parent()
		tabs := &CodeTabsNode{
			CJS: blockContent(p[0], source),
			MJS: blockContent(p[1], source),
		}
		parent.ReplaceChild(parent, p[0], tabs)
		parent.RemoveChild(parent, p[1])
	}
}

func blockContent(n *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

func (codeTabsRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindCodeTabs, renderCodeTabs)
}

func renderCodeTabs(w util.BufWriter, _ []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	tabs := n.(*CodeTabsNode)
	out, err := CodeTabs(tabs.CJS, tabs.MJS)
	if err != nil {
		return ast.WalkStop, err
	}
	_, _ = w.WriteString(string(out))
	return ast.WalkSkipChildren, nil
}
