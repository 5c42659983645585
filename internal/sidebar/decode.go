// SPDX-License-Identifier: MPL-2.0

package sidebar

import (
	"errors"
	"fmt"
	"os"

	"github.com/docsite/docsite/internal/jsmodule"
)

const (
	typeCategory = "category"
	typeDoc      = "doc"
)

// ErrMalformedSidebars is returned when an existing sidebars module cannot be
// read into groups and categories.
var ErrMalformedSidebars = errors.New("malformed sidebars module")

// Load reads the sidebars module at path. When no file exists, it returns the
// default shape built from groupNames and exists=false. A file that exists but
// cannot be read or parsed is always an error.
func Load(path string, groupNames ...string) (s *Sidebars, exists bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(groupNames...), false, nil
		}
		return nil, true, fmt.Errorf("read sidebars %s: %w", path, err)
	}

	s, err = Parse(data)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", path, err)
	}
	return s, true, nil
}

// Parse decodes the text of a sidebars module.
func Parse(data []byte) (*Sidebars, error) {
	v, err := jsmodule.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSidebars, err)
	}
	return Decode(v)
}

// Decode converts an exported object literal into Sidebars.
func Decode(v jsmodule.Value) (*Sidebars, error) {
	root, ok := v.(*jsmodule.Object)
	if !ok {
		return nil, malformed("", "exported value must be an object of groups")
	}

	s := &Sidebars{Groups: make([]*Group, 0, len(root.Fields))}
	for _, f := range root.Fields {
		arr, ok := f.Value.(*jsmodule.Array)
		if !ok {
			return nil, malformed(f.Key, "group must be an array")
		}
		items, err := decodeItems(f.Key, arr)
		if err != nil {
			return nil, err
		}
		s.Groups = append(s.Groups, &Group{Name: f.Key, Items: items})
	}
	return s, nil
}

func decodeItems(path string, arr *jsmodule.Array) ([]Item, error) {
	items := make([]Item, 0, len(arr.Elems))
	for i, e := range arr.Elems {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		switch typed := e.(type) {
		case jsmodule.String:
			items = append(items, DocItem(string(typed)))
		case *jsmodule.Object:
			it, err := decodeObjectItem(itemPath, typed)
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		default:
			return nil, malformed(itemPath, "entry must be a string or an object")
		}
	}
	return items, nil
}

func decodeObjectItem(path string, obj *jsmodule.Object) (Item, error) {
	kind, _ := obj.GetString("type")
	switch kind {
	case typeCategory:
		c, err := decodeCategory(path, obj)
		if err != nil {
			return Item{}, err
		}
		return CategoryItem(c), nil
	case typeDoc:
		if id, ok := obj.GetString("id"); ok && id != "" {
			return Item{Kind: ItemDocRef, ID: id, Raw: obj}, nil
		}
	}
	return Item{Kind: ItemOther, Raw: obj}, nil
}

func decodeCategory(path string, obj *jsmodule.Object) (*Category, error) {
	label, ok := obj.GetString("label")
	if !ok {
		return nil, malformed(path, "category needs a string label")
	}

	c := &Category{Label: label, Items: []Item{}, object: obj}

	if raw, ok := obj.Get("items"); ok {
		arr, ok := raw.(*jsmodule.Array)
		if !ok {
			return nil, malformed(path+".items", "items must be an array")
		}
		items, err := decodeItems(path+".items", arr)
		if err != nil {
			return nil, err
		}
		c.Items = items
	}

	if raw, ok := obj.Get("link"); ok {
		if link, ok := raw.(*jsmodule.Object); ok {
			linkType, _ := link.GetString("type")
			if id, ok := link.GetString("id"); ok && linkType == typeDoc && id != "" {
				c.LinkDocID = id
			}
		}
	}

	return c, nil
}

func malformed(path, msg string) error {
	if path == "" {
		return fmt.Errorf("%w: %s", ErrMalformedSidebars, msg)
	}
	return fmt.Errorf("%w: %s: %s", ErrMalformedSidebars, path, msg)
}
