package walker

import (
	"context"
	"os"
	"path/filepath"

	"github.com/wakabaloola/visualise-code-structure/core/cache"
	"github.com/wakabaloola/visualise-code-structure/core/extractor"
	"github.com/wakabaloola/visualise-code-structure/core/ignore"
	"github.com/wakabaloola/visualise-code-structure/core/logger"
	"github.com/wakabaloola/visualise-code-structure/core/models"
)

type FileWalker interface {
	Walk(ctx context.Context, root string) (*models.Report, error)
}

type FileWalkerImpl struct {
	Matcher *ignore.Matcher
	Options extractor.Options
	Cache   *cache.ParseCache
}

func NewFileWalker(matcher *ignore.Matcher, opts extractor.Options) *FileWalkerImpl {
	return &FileWalkerImpl{
		Matcher: matcher,
		Options: opts,
	}
}

// Walk traverses root sequentially, parsing each Python file in turn.
// Per-file parse failures are collected in the report; they never stop the
// walk. Only traversal-level failures (unreadable directories, cancellation)
// are returned as an error.
func (w *FileWalkerImpl) Walk(ctx context.Context, root string) (*models.Report, error) {
	report := &models.Report{Files: []*models.FileStructure{}}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		if info.IsDir() {
			if w.Matcher.Match(relPath) {
				logger.Debug("Ignoring directory: %s", relPath)
				return filepath.SkipDir
			}
			return nil
		}

		if w.Matcher.Match(relPath) || !extractor.IsPythonFile(path) {
			return nil
		}

		structure, ok := w.cachedStructure(path, relPath)
		if !ok {
			structure, err = extractor.ParseFile(ctx, path, w.Options)
			if err != nil {
				logger.Debug("Parse failure for %s: %v", relPath, err)
				report.Errors = append(report.Errors, err.Error())
				return nil
			}
			structure.Path = relPath
			w.storeStructure(path, structure)
		}

		report.Files = append(report.Files, structure)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

func (w *FileWalkerImpl) cachedStructure(path, relPath string) (*models.FileStructure, bool) {
	if w.Cache == nil {
		return nil, false
	}
	structure, ok := w.Cache.ValidateAndGet(path)
	if ok {
		logger.Debug("Using cached outline for %s", relPath)
	}
	return structure, ok
}

func (w *FileWalkerImpl) storeStructure(path string, structure *models.FileStructure) {
	if w.Cache == nil {
		return
	}
	if err := w.Cache.Set(path, structure); err != nil {
		logger.Debug("Failed to cache outline for %s: %v", path, err)
	}
}
