// SPDX-License-Identifier: MPL-2.0

package sidebar

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DocumentPattern selects the Markdown files under the documentation root.
const DocumentPattern = "**/*" + MarkdownExt

// ErrDocsRootUnreadable is returned when the documentation root cannot be walked.
var ErrDocsRootUnreadable = errors.New("documentation root unreadable")

// Discover lists every file under root matching DocumentPattern as a
// slash-separated path relative to root, sorted by full path. Paths with a
// hidden segment and paths that pass through a symbolic link are skipped.
func Discover(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocsRootUnreadable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDocsRootUnreadable, root)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var documents []string
	globErr := doublestar.GlobWalk(os.DirFS(root), DocumentPattern, func(match string, d fs.DirEntry) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if hasHiddenSegment(match) {
			return nil
		}
		regular, err := isRegularWithoutLinks(root, match)
		if err != nil {
			return err
		}
		if regular {
			documents = append(documents, match)
		}
		return nil
	}, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if globErr != nil {
		if errors.Is(globErr, context.Canceled) || errors.Is(globErr, context.DeadlineExceeded) {
			return nil, globErr
		}
		return nil, fmt.Errorf("%w: %w", ErrDocsRootUnreadable, globErr)
	}

	slices.Sort(documents)
	return documents, nil
}

func hasHiddenSegment(match string) bool {
	for _, segment := range strings.Split(match, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

// isRegularWithoutLinks reports whether match is a regular file reached
// without following a symbolic link at any level.
func isRegularWithoutLinks(root, match string) (bool, error) {
	for prefix := match; prefix != "." && prefix != "/"; prefix = path.Dir(prefix) {
		info, err := os.Lstat(filepath.Join(root, filepath.FromSlash(prefix)))
		if err != nil {
			return false, err
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			return false, nil
		}
		if prefix == match && !info.Mode().IsRegular() {
			return false, nil
		}
	}
	return true, nil
}
