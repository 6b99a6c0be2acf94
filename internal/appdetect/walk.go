package appdetect

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// walkFiles visits every regular file within maxDepth path elements of root.
// Files directly under root are at depth 1; files at the depth boundary are
// included, deeper files are not. Directories whose root-relative path
// matches an exclude pattern are not descended into. Unreadable entries are
// logged and skipped, never fatal; only a failure on root itself surfaces.
func walkFiles(root string, maxDepth int, cfg detectConfig, fn func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}

			log.Printf("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		depth := strings.Count(rel, string(os.PathSeparator)) + 1

		if d.IsDir() {
			if cfg.excluded(rel) {
				return filepath.SkipDir
			}
			// Entries inside this directory would exceed the bound.
			if depth >= maxDepth {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		return fn(path)
	})
}

type detectConfig struct {
	// ExcludePatterns are doublestar globs matched against root-relative
	// directory paths, in slash form. Matching directories are skipped
	// entirely. Empty by default: the scan deliberately looks everywhere,
	// vendored trees included.
	ExcludePatterns []string
}

func (c detectConfig) excluded(rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range c.ExcludePatterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}

	return false
}

func newConfig(options ...DetectOption) detectConfig {
	c := detectConfig{}
	for _, opt := range options {
		c = opt.apply(c)
	}

	return c
}

type DetectOption interface {
	apply(detectConfig) detectConfig
}

type excludePatternsOption struct {
	patterns []string
}

func (o *excludePatternsOption) apply(c detectConfig) detectConfig {
	c.ExcludePatterns = append(c.ExcludePatterns, o.patterns...)
	return c
}

func WithExcludePatterns(patterns []string) DetectOption {
	return &excludePatternsOption{patterns}
}
