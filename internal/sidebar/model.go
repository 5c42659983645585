// SPDX-License-Identifier: MPL-2.0

package sidebar

import "github.com/docsite/docsite/internal/jsmodule"

const (
	// ItemDoc is a bare document identifier (string shorthand).
	ItemDoc ItemKind = iota
	// ItemDocRef is an object entry `{ type: 'doc', id: ... }`.
	ItemDocRef
	// ItemCategory is a nested category.
	ItemCategory
	// ItemOther is any other object entry (links, html, autogenerated). It is
	// kept as written and does not reference a document.
	ItemOther
)

type (
	// ItemKind classifies a sidebar entry.
	ItemKind int

	// Sidebars is the root of a sidebars module: top-level groups in file order.
	Sidebars struct {
		Groups []*Group
	}

	// Group is a named top-level bucket of entries.
	Group struct {
		Name  string
		Items []Item
	}

	// Category is a labelled node holding an ordered list of entries.
	Category struct {
		Label string
		Items []Item
		// LinkDocID is set when the category itself links to a document.
		LinkDocID string

		// object keeps every key of the entry as read so unknown metadata and key
		// order survive a rewrite. Nil for categories created by a run.
		object *jsmodule.Object
	}

	// Item is one entry of a group or category.
	Item struct {
		Kind ItemKind
		// ID is the document identifier for ItemDoc and ItemDocRef.
		ID string
		// Category is set for ItemCategory.
		Category *Category
		// Raw is the entry as read for ItemDocRef and ItemOther.
		Raw *jsmodule.Object
	}
)

// DocItem returns the shorthand entry for id.
func DocItem(id string) Item {
	return Item{Kind: ItemDoc, ID: id}
}

// CategoryItem wraps c as an entry.
func CategoryItem(c *Category) Item {
	return Item{Kind: ItemCategory, Category: c}
}

// NewCategory returns an empty category labelled label.
func NewCategory(label string) *Category {
	return &Category{Label: label, Items: []Item{}}
}

// Default returns the shape used when no sidebars module exists yet: one empty
// group per name, in order.
func Default(groupNames ...string) *Sidebars {
	s := &Sidebars{Groups: make([]*Group, 0, len(groupNames))}
	for _, name := range groupNames {
		s.EnsureGroup(name)
	}
	return s
}

// Group returns the group called name, or nil.
func (s *Sidebars) Group(name string) *Group {
	for _, g := range s.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// EnsureGroup returns the group called name, appending an empty one if needed.
func (s *Sidebars) EnsureGroup(name string) *Group {
	if g := s.Group(name); g != nil {
		return g
	}
	g := &Group{Name: name, Items: []Item{}}
	s.Groups = append(s.Groups, g)
	return g
}

// Categories returns the top-level categories of the group.
func (g *Group) Categories() []*Category {
	var out []*Category
	for _, it := range g.Items {
		if it.Kind == ItemCategory {
			out = append(out, it.Category)
		}
	}
	return out
}

// AddDoc appends id to the category's entries.
func (c *Category) AddDoc(id string) {
	c.Items = append(c.Items, DocItem(id))
}

// DocIDs returns the document identifiers held directly by the category, in order.
func (c *Category) DocIDs() []string {
	var ids []string
	for _, it := range c.Items {
		if it.Kind == ItemDoc || it.Kind == ItemDocRef {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// Tags returns the platform tags stored under customProps.tags of a document
// entry. Shorthand entries carry no tags.
func (it Item) Tags() []string {
	if it.Raw == nil {
		return nil
	}
	props, ok := it.Raw.Get("customProps")
	if !ok {
		return nil
	}
	propsObj, ok := props.(*jsmodule.Object)
	if !ok {
		return nil
	}
	tags, ok := propsObj.Get("tags")
	if !ok {
		return nil
	}
	arr, ok := tags.(*jsmodule.Array)
	if !ok {
		return nil
	}
	var out []string
	for _, e := range arr.Elems {
		if s, ok := e.(jsmodule.String); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// Label returns the display label of a non-shorthand entry, if any.
func (it Item) Label() string {
	switch {
	case it.Kind == ItemCategory:
		return it.Category.Label
	case it.Raw != nil:
		label, _ := it.Raw.GetString("label")
		return label
	}
	return ""
}
