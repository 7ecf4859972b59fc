package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path"
	"path/filepath"
)

// TranslationAdapter loads raw catalogs: language code to message tree.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// AdapterOption configures the file based adapters.
type AdapterOption func(*adapterOptions)

type adapterOptions struct {
	logger *slog.Logger
}

// WithAdapterLogger sets the logger that receives warnings about catalogs
// skipped while loading. Warnings are discarded by default.
func WithAdapterLogger(logger *slog.Logger) AdapterOption {
	return func(o *adapterOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newAdapterOptions(opts []AdapterOption) adapterOptions {
	o := adapterOptions{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// mergeTranslations copies every language of src into dst. Later catalogs
// win on key conflicts within a language.
func mergeTranslations(dst, src map[string]map[string]any) {
	for lang, translations := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any)
		}
		maps.Copy(dst[lang], translations)
	}
}

// readWithContext runs read in a goroutine so slow storage respects ctx.
func readWithContext(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = read()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-done:
		return content, readErr
	}
}

// parseCatalog decodes one named document with parser.
func parseCatalog(ctx context.Context, parser Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidCatalog, name)
	}
	catalogs, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return catalogs, nil
}

// MapAdapter serves catalogs held in memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads catalogs from a file system: either every supported file of
// a directory, merged in name order, or one named file.
//
// In directory mode a file that fails to load is skipped with a warning; a
// single file must load.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
	file   string
	opts   adapterOptions
}

// NewFSAdapter reads the supported files of dir in fsys. It serves embedded
// catalogs as well as any other fs.FS.
//
//	//go:embed locales/*.yaml
//	var locales embed.FS
//
//	adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), locales, "locales")
func NewFSAdapter(parser Parser, fsys fs.FS, dir string, opts ...AdapterOption) *FSAdapter {
	return &FSAdapter{
		parser: parser,
		fsys:   fsys,
		dir:    dir,
		opts:   newAdapterOptions(opts),
	}
}

// NewDirectoryAdapter reads the supported files of a directory on disk.
func NewDirectoryAdapter(parser Parser, dir string, opts ...AdapterOption) *FSAdapter {
	return NewFSAdapter(parser, os.DirFS(dir), ".", opts...)
}

// NewFileAdapter reads a single catalog file from disk.
func NewFileAdapter(parser Parser, file string, opts ...AdapterOption) *FSAdapter {
	a := NewFSAdapter(parser, os.DirFS(filepath.Dir(file)), ".", opts...)
	a.file = filepath.Base(file)
	return a
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, ErrNilParser
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	names, err := a.names()
	if err != nil {
		return nil, err
	}

	all := make(map[string]map[string]any)
	for _, name := range names {
		catalogs, err := a.loadFile(ctx, name)
		if errors.Is(err, ErrLoadCancelled) || (err != nil && a.file != "") {
			return nil, err
		}
		if err != nil {
			a.opts.logger.WarnContext(ctx, "Skipping message catalog", "path", name, "error", err)
			continue
		}
		mergeTranslations(all, catalogs)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoCatalogs, a.dir)
	}
	return all, nil
}

// names lists the files to load, in name order.
func (a *FSAdapter) names() ([]string, error) {
	if a.file != "" {
		return []string{path.Join(a.dir, a.file)}, nil
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.Supports(entry.Name()) {
			continue
		}
		// fs.FS paths always use forward slashes.
		names = append(names, path.Join(a.dir, entry.Name()))
	}
	return names, nil
}

func (a *FSAdapter) loadFile(ctx context.Context, name string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadCancelled, err)
	}

	content, err := readWithContext(ctx, func() ([]byte, error) {
		return fs.ReadFile(a.fsys, name)
	})
	if ctx.Err() != nil {
		return nil, errors.Join(ErrLoadCancelled, ctx.Err())
	}
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}
	return parseCatalog(ctx, a.parser, name, content)
}
