// SPDX-License-Identifier: MPL-2.0

package sidebar

import "strings"

type (
	// Placement records a document appended to a category by Reconcile.
	Placement struct {
		// Document is the discovered relative path.
		Document string
		// ID is the document identifier appended to the category.
		ID string
		// Category is the label of the receiving category.
		Category string
		// Group is the group a new category was created in, or the group the
		// document targeted when an existing category was reused.
		Group string
		// Created is true when the category did not exist before.
		Created bool
	}

	// Result summarises a reconciliation pass.
	Result struct {
		Placements []Placement
		// Known counts documents already present in the tree.
		Known int
		// Ignored counts documents skipped by the ignore list.
		Ignored int
	}
)

// Changed reports whether any document was placed.
func (r *Result) Changed() bool {
	return len(r.Placements) > 0
}

// FindOrCreateCategory returns the top-level category, in any group, whose label
// matches label case-insensitively after alias substitution. When none matches,
// a new category labelled label is appended to the target group.
func FindOrCreateCategory(s *Sidebars, label, target string, opts Options) (c *Category, created bool) {
	want := strings.ToLower(opts.matchLabel(label))
	for _, g := range s.Groups {
		for _, existing := range g.Categories() {
			if strings.ToLower(existing.Label) == want {
				return existing, false
			}
		}
	}

	c = NewCategory(label)
	g := s.EnsureGroup(target)
	g.Items = append(g.Items, CategoryItem(c))
	return c, true
}

// Reconcile appends every document in documents that the tree does not yet
// reference, in the order given. documents are slash-separated paths relative
// to the docs root. s is mutated in place.
func Reconcile(s *Sidebars, documents []string, opts Options) *Result {
	lookup := BuildLookup(s)
	res := &Result{}

	for _, document := range documents {
		id := DocumentID(document)
		if lookup.Has(id) {
			res.Known++
			continue
		}
		if opts.Ignored(id) {
			res.Ignored++
			continue
		}

		label := CategoryLabel(document)
		target := opts.TargetGroup(document)
		category, created := FindOrCreateCategory(s, label, target, opts)
		category.AddDoc(id)
		lookup.set(id, category)

		res.Placements = append(res.Placements, Placement{
			Document: document,
			ID:       id,
			Category: category.Label,
			Group:    target,
			Created:  created,
		})
	}

	return res
}
