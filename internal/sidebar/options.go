// SPDX-License-Identifier: MPL-2.0

package sidebar

import (
	"errors"
	"strings"
)

const (
	// DefaultGroupName receives every document outside the API tree.
	DefaultGroupName = "docs"
	// APIGroupName receives documents whose first category segment is the API marker.
	APIGroupName = "api"
	// DefaultAPIMarker is the directory name that routes documents to the API group.
	DefaultAPIMarker = "api"
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("invalid sidebar options")

// Options carries the vocabularies that drive placement.
type Options struct {
	// IgnoreSuffixes skips any document whose identifier ends with one of them.
	IgnoreSuffixes []string
	// CategoryAliases maps a derived label to the label it should match.
	// The alias is used for matching only; new categories keep the derived label.
	CategoryAliases map[string]string
	// APIMarker is compared against the first category segment of a document.
	APIMarker string
	// DefaultGroup and APIGroup name the top-level groups.
	DefaultGroup string
	APIGroup     string
}

// DefaultOptions returns the vocabulary used for the documentation site.
func DefaultOptions() Options {
	return Options{
		IgnoreSuffixes: []string{
			"README",
			"styleguide",
			// not part of any category yet
			"api/accelerator",
			"experimental",
			// limited relevance
			"tutorial/using-pepper-flash-plugin",
			"latest/development/README",
			"tutorial/support",
			"api/synopsis",
		},
		CategoryAliases: map[string]string{
			"Tutorial": "How To",
		},
		APIMarker:    DefaultAPIMarker,
		DefaultGroup: DefaultGroupName,
		APIGroup:     APIGroupName,
	}
}

// Validate checks that the group names are usable.
func (o Options) Validate() error {
	if strings.TrimSpace(o.DefaultGroup) == "" {
		return errors.Join(ErrInvalidOptions, errors.New("default group name is required"))
	}
	if strings.TrimSpace(o.APIGroup) == "" {
		return errors.Join(ErrInvalidOptions, errors.New("api group name is required"))
	}
	for _, suffix := range o.IgnoreSuffixes {
		if suffix == "" {
			// An empty suffix would match every document.
			return errors.Join(ErrInvalidOptions, errors.New("ignore suffixes must not be empty"))
		}
	}
	return nil
}

// GroupNames returns the groups of an empty sidebars module, in order.
func (o Options) GroupNames() []string {
	if o.DefaultGroup == o.APIGroup {
		return []string{o.DefaultGroup}
	}
	return []string{o.DefaultGroup, o.APIGroup}
}

// Ignored reports whether id ends with one of the ignore suffixes.
func (o Options) Ignored(id string) bool {
	for _, suffix := range o.IgnoreSuffixes {
		if strings.HasSuffix(id, suffix) {
			return true
		}
	}
	return false
}

// matchLabel returns the label a derived label is matched under.
func (o Options) matchLabel(label string) string {
	if alias, ok := o.CategoryAliases[label]; ok {
		return alias
	}
	return label
}
