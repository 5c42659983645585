// SPDX-License-Identifier: MPL-2.0

package sidebar

// Lookup maps every document referenced by a tree to its owning category.
// Documents listed directly in a group map to a nil category.
type Lookup struct {
	owners map[string]*Category
}

// BuildLookup walks every group and every nested category of s.
func BuildLookup(s *Sidebars) *Lookup {
	l := &Lookup{owners: make(map[string]*Category)}
	for _, g := range s.Groups {
		l.addItems(nil, g.Items)
	}
	return l
}

func (l *Lookup) addCategory(c *Category) {
	if c.LinkDocID != "" {
		l.owners[c.LinkDocID] = c
	}
	l.addItems(c, c.Items)
}

func (l *Lookup) addItems(owner *Category, items []Item) {
	for _, it := range items {
		switch it.Kind {
		case ItemDoc, ItemDocRef:
			l.owners[it.ID] = owner
		case ItemCategory:
			l.addCategory(it.Category)
		}
	}
}

// Has reports whether id is referenced anywhere in the tree.
func (l *Lookup) Has(id string) bool {
	_, ok := l.owners[id]
	return ok
}

// Owner returns the category that references id.
func (l *Lookup) Owner(id string) (*Category, bool) {
	c, ok := l.owners[id]
	return c, ok
}

// Len returns the number of referenced documents.
func (l *Lookup) Len() int {
	return len(l.owners)
}

func (l *Lookup) set(id string, owner *Category) {
	l.owners[id] = owner
}
