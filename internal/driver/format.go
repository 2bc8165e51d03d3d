// Package driver orchestrates formatting over files and directories: path
// collection, per-file parallelism, check/stdout/update modes, the result
// cache and diff rendering for check output.
//
// Назначение: всё, что между CLI и чистым конвейером format.
// Не делает: разбора аргументов и вывода в терминал (это cmd/pasfmt).
// Зависимости: internal/{format,options,replace,source}, errgroup,
// sergi/go-diff, fatih/color, vmihailenco/msgpack.
package driver

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"pasfmt/internal/diag"
	"pasfmt/internal/format"
	"pasfmt/internal/options"
	"pasfmt/internal/replace"
	"pasfmt/internal/source"
)

// FormatOptions configures one formatting run.
type FormatOptions struct {
	// Check leaves files untouched and only reports whether they would
	// change; the CLI maps a nonzero change count to a nonzero exit status.
	Check bool
	// Stdout returns formatted content in the results instead of writing
	// files.
	Stdout bool
	// Jobs caps per-file parallelism; zero means GOMAXPROCS.
	Jobs int
	// Options is the formatting configuration; nil means defaults.
	Options *options.Options
	// Cache, when non-nil, skips the pipeline for content formatted before
	// with the same configuration.
	Cache *FormatCache
	// Events, when non-nil, receives per-file progress notifications. The
	// channel is not closed by FormatPaths.
	Events chan<- FormatEvent
}

// FormatStatus is the lifecycle of one file inside a run.
type FormatStatus uint8

const (
	StatusFormatting FormatStatus = iota
	StatusClean
	StatusChanged
	StatusError
)

// FormatEvent is one progress notification.
type FormatEvent struct {
	Path   string
	Status FormatStatus
}

// FormatResult captures the outcome for a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte // заполнено в режиме Stdout
	// Skipped describes regions the parser could not understand and the
	// formatter therefore left untouched.
	Skipped []diag.Diagnostic
}

var sourceExtensions = map[string]bool{
	".pas": true,
	".pp":  true,
	".dpr": true,
	".lpr": true,
}

// FormatPaths formats the given files and directories (collecting Pascal
// sources recursively) and returns one result per file in path order. Update
// mode preserves the on-disk encoding: files loaded from UTF-16 are encoded
// back to UTF-16 on write.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Options == nil {
		def := options.Default()
		opts.Options = &def
	}

	files, err := CollectSourceFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no source files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FormatResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			notify(opts.Events, path, StatusFormatting)
			results[i] = formatOneFile(path, opts)
			switch {
			case results[i].Err != nil:
				notify(opts.Events, path, StatusError)
			case results[i].Changed:
				notify(opts.Events, path, StatusChanged)
			default:
				notify(opts.Events, path, StatusClean)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func formatOneFile(path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}

	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		result.Err = err
		return result
	}
	file := fileSet.Get(fileID)

	formatted, skipped, cached := opts.Cache.Get(file.Content, opts.Options)
	result.Skipped = skipped
	if !cached {
		bag := diag.NewBag(64)
		reps := format.ProduceReplacementsReported(fileSet, file, opts.Options, bag)
		formatted = []byte(replace.Merge(string(file.Content), reps))
		bag.Sort()
		result.Skipped = bag.Items()
		opts.Cache.Put(file.Content, opts.Options, formatted, result.Skipped)
	}
	changed := !bytes.Equal(file.Content, formatted)

	if opts.Check {
		result.Changed = changed
		return result
	}
	if opts.Stdout {
		result.Changed = changed
		result.Formatted = formatted
		return result
	}
	if !changed {
		return result
	}

	raw, err := source.EncodeContent(formatted, file.Flags)
	if err != nil {
		result.Err = err
		return result
	}
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, raw, mode.Perm()); err != nil {
		result.Err = err
		return result
	}
	result.Changed = true
	return result
}

// FormatStdin formats a single stream without touching the filesystem.
func FormatStdin(src []byte, opts *options.Options) []byte {
	if opts == nil {
		def := options.Default()
		opts = &def
	}
	out, _ := format.FormatText("<stdin>", string(src), opts)
	return []byte(out)
}

func notify(events chan<- FormatEvent, path string, status FormatStatus) {
	if events != nil {
		events <- FormatEvent{Path: path, Status: status}
	}
}

// CollectSourceFiles expands directories recursively and deduplicates paths.
// Порядок детерминирован: пути сортируются.
func CollectSourceFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			// явно названный файл берётся независимо от расширения
			addFile(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if !d.IsDir() && sourceExtensions[strings.ToLower(filepath.Ext(path))] {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
