// SPDX-License-Identifier: MPL-2.0

package sidebar

import (
	"strings"
	"testing"

	"github.com/docsite/docsite/internal/jsmodule"

	"pgregory.net/rapid"
)

var (
	segmentGen = rapid.StringMatching(`[a-z]{1,6}(-[a-z]{1,4})?`)
	// quotedSegmentGen produces names that need escaping in every quote style.
	quotedSegmentGen = rapid.StringMatching(`[a-z'"\\]{1,6}(-[a-z'"]{1,4})?`)
)

func documentGen() *rapid.Generator[string] {
	return documentGenFrom(segmentGen)
}

func documentGenFrom(segments *rapid.Generator[string]) *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		dirs := rapid.SliceOfN(segments, 0, 3).Draw(t, "dirs")
		name := segments.Draw(t, "name")
		parts := append([]string{"latest"}, dirs...)
		parts = append(parts, name+MarkdownExt)
		return strings.Join(parts, "/")
	})
}

func TestProperty_ReconcileIsIdempotent(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		docs := rapid.SliceOfDistinct(documentGenFrom(quotedSegmentGen), rapid.ID[string]).Draw(t, "docs")
		style := rapid.SampledFrom(propertyStyles()).Draw(t, "style")
		opts := DefaultOptions()
		s := Default(opts.GroupNames()...)

		Reconcile(s, docs, opts)
		out := Marshal(s, style)
		reloaded, err := Parse(out)
		if err != nil {
			t.Fatalf("reparse: %v\n%s", err, out)
		}
		if again := Marshal(reloaded, style); string(again) != string(out) {
			t.Fatalf("rewrite changed the module:\n%s\nvs\n%s", out, again)
		}
		if second := Reconcile(reloaded, docs, opts); second.Changed() {
			t.Fatalf("second pass placed %v", second.Placements)
		}
	})
}

// propertyStyles covers compact output and the quote preferences.
func propertyStyles() []*jsmodule.Style {
	def := jsmodule.DefaultStyle()
	single := jsmodule.DefaultStyle()
	single.SingleQuote = true
	tabs := jsmodule.DefaultStyle()
	tabs.UseTabs = true
	tabs.PrintWidth = 40
	return []*jsmodule.Style{nil, &def, &single, &tabs}
}

func TestProperty_EveryPlacedDocumentIsFoundOnce(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		docs := rapid.SliceOfDistinct(documentGen(), rapid.ID[string]).Draw(t, "docs")
		opts := DefaultOptions()
		s := Default(opts.GroupNames()...)
		res := Reconcile(s, docs, opts)

		counts := make(map[string]int)
		var walk func(items []Item)
		walk = func(items []Item) {
			for _, it := range items {
				switch it.Kind {
				case ItemDoc, ItemDocRef:
					counts[it.ID]++
				case ItemCategory:
					walk(it.Category.Items)
				}
			}
		}
		for _, g := range s.Groups {
			walk(g.Items)
		}

		lookup := BuildLookup(s)
		for _, p := range res.Placements {
			if counts[p.ID] != 1 {
				t.Fatalf("%s placed %d times", p.ID, counts[p.ID])
			}
			if !lookup.Has(p.ID) {
				t.Fatalf("lookup misses %s", p.ID)
			}
		}
		if len(res.Placements)+res.Ignored != len(docs) {
			t.Fatalf("placed %d + ignored %d != %d documents", len(res.Placements), res.Ignored, len(docs))
		}
	})
}

func TestProperty_ExistingOrderIsPreserved(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		existing := rapid.SliceOfNDistinct(segmentGen, 1, 8, rapid.ID[string]).Draw(t, "existing")
		added := rapid.SliceOfDistinct(segmentGen, rapid.ID[string]).Draw(t, "added")

		opts := DefaultOptions()
		opts.IgnoreSuffixes = nil
		category := NewCategory("Guide")
		for _, name := range existing {
			category.AddDoc("latest/guide/" + name)
		}
		s := &Sidebars{Groups: []*Group{{Name: DefaultGroupName, Items: []Item{CategoryItem(category)}}}}

		var docs []string
		for _, name := range added {
			docs = append(docs, "latest/guide/"+name+MarkdownExt)
		}
		Reconcile(s, docs, opts)

		ids := category.DocIDs()
		for i, name := range existing {
			if ids[i] != "latest/guide/"+name {
				t.Fatalf("entry %d changed from %s to %s", i, name, ids[i])
			}
		}
	})
}

func TestProperty_LookupSeesEveryDepth(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		depth := rapid.IntRange(1, 6).Draw(t, "depth")
		leaf := segmentGen.Draw(t, "leaf")

		root := NewCategory("L0")
		current := root
		for i := 1; i < depth; i++ {
			child := NewCategory("L")
			current.Items = append(current.Items, CategoryItem(child))
			current = child
		}
		current.AddDoc("latest/" + leaf)
		current.LinkDocID = "latest/" + leaf + "-index"

		s := &Sidebars{Groups: []*Group{{Name: APIGroupName, Items: []Item{CategoryItem(root)}}}}
		l := BuildLookup(s)
		if !l.Has("latest/"+leaf) || !l.Has("latest/"+leaf+"-index") {
			t.Fatalf("lookup misses entries at depth %d", depth)
		}
	})
}
