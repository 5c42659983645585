// SPDX-License-Identifier: MPL-2.0

package sidebar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docsite/docsite/internal/jsmodule"
)

// ErrWriteSidebars is returned when the rewritten module cannot be persisted.
var ErrWriteSidebars = errors.New("write sidebars module")

// Encode converts the tree back into an object literal, keeping the key order
// and unknown keys of every entry that was read from disk.
func Encode(s *Sidebars) *jsmodule.Object {
	root := &jsmodule.Object{Fields: make([]jsmodule.Field, 0, len(s.Groups))}
	for _, g := range s.Groups {
		root.Fields = append(root.Fields, jsmodule.Field{Key: g.Name, Value: encodeItems(g.Items)})
	}
	return root
}

// Marshal renders the module text. A nil style yields compact output.
func Marshal(s *Sidebars, style *jsmodule.Style) []byte {
	return jsmodule.Format(Encode(s), style)
}

func encodeItems(items []Item) *jsmodule.Array {
	arr := &jsmodule.Array{Elems: make([]jsmodule.Value, 0, len(items))}
	for _, it := range items {
		switch it.Kind {
		case ItemDoc:
			arr.Elems = append(arr.Elems, jsmodule.String(it.ID))
		case ItemCategory:
			arr.Elems = append(arr.Elems, encodeCategory(it.Category))
		case ItemDocRef:
			if it.Raw == nil {
				arr.Elems = append(arr.Elems, jsmodule.NewObject(
					jsmodule.Field{Key: "type", Value: jsmodule.String(typeDoc)},
					jsmodule.Field{Key: "id", Value: jsmodule.String(it.ID)},
				))
				continue
			}
			arr.Elems = append(arr.Elems, it.Raw)
		default:
			if it.Raw != nil {
				arr.Elems = append(arr.Elems, it.Raw)
			}
		}
	}
	return arr
}

func encodeCategory(c *Category) *jsmodule.Object {
	items := encodeItems(c.Items)
	if c.object == nil {
		return jsmodule.NewObject(
			jsmodule.Field{Key: "type", Value: jsmodule.String(typeCategory)},
			jsmodule.Field{Key: "label", Value: jsmodule.String(c.Label)},
			jsmodule.Field{Key: "items", Value: items},
		)
	}

	obj := c.object.Clone()
	obj.Set("label", jsmodule.String(c.Label))
	if _, ok := obj.Get("items"); ok || len(c.Items) > 0 {
		obj.Set("items", items)
	}
	return obj
}

// WriteFile replaces path with data. The content goes to a temporary file in
// the same directory first, so a failed write leaves the old file untouched.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteSidebars, err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w: %w", ErrWriteSidebars, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("%w: %w", ErrWriteSidebars, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("%w: %w", ErrWriteSidebars, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("%w: %w", ErrWriteSidebars, err)
	}
	return nil
}
