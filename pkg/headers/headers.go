// Package headers discovers C header files on disk and runs macro
// extraction across them. The core extractor never touches the
// filesystem; this package is the batch driver around it.
package headers

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/raymyers/cmacro/pkg/cmacro"
)

// DefaultWorkers is the number of files processed concurrently when no
// explicit worker count is given.
const DefaultWorkers = 4

// IsHeader reports whether the path looks like a C or C++ header file.
func IsHeader(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".h", ".hpp":
		return true
	}
	return false
}

// FindHeaders walks root and returns every header file under it, in
// walk order.
func FindHeaders(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !IsHeader(path) {
			log.Debugf("ignoring %s", path)
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return paths, nil
}

// Result holds the extraction outcome for one header file. Err is set
// when the file could not be read or a #define in it failed to parse.
// Such failures are per-file: they do not abort the batch.
type Result struct {
	Path   string
	Macros []cmacro.Macro
	Err    error
}

// ExtractDir extracts macros from every header under root, processing
// up to workers files concurrently. Results come back in discovery
// order. The returned error is non-nil only for batch-level failures:
// a walk error or context cancellation.
func ExtractDir(ctx context.Context, root string, workers int) ([]Result, error) {
	paths, err := FindHeaders(root)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = extractFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func extractFile(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("reading %s: %v", path, err)
		return Result{Path: path, Err: err}
	}
	macros, err := cmacro.Extract(string(data))
	if err != nil {
		log.Warnf("extracting from %s: %v", path, err)
		return Result{Path: path, Err: err}
	}
	return Result{Path: path, Macros: macros}
}

// FormatDefine reconstructs the #define directive for a macro as a
// single line, for listing output.
func FormatDefine(m cmacro.Macro) string {
	var sb strings.Builder
	sb.WriteString("#define ")
	sb.WriteString(m.Name)
	if m.FunctionLike() {
		sb.WriteString("(")
		sb.WriteString(strings.Join(m.Args, ","))
		sb.WriteString(")")
	}
	if m.Body != "" {
		sb.WriteString(" ")
		sb.WriteString(m.Body)
	}
	return sb.String()
}
