// Package resolver implements the directory walk and section merge
// that turn a target file path into its normalized property set.
package resolver

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/arthur-debert/editorconfig/pkg/errors"
	"github.com/arthur-debert/editorconfig/pkg/glob"
	"github.com/arthur-debert/editorconfig/pkg/ini"
	"github.com/arthur-debert/editorconfig/pkg/logging"
	"github.com/arthur-debert/editorconfig/pkg/properties"
)

// DefaultConfigFileName is the file looked for at every directory level.
const DefaultConfigFileName = ".editorconfig"

// Options configures a Resolver.
type Options struct {
	// ConfigFileName overrides the name of the config files discovered
	// during the walk. Defaults to ".editorconfig".
	ConfigFileName string

	// ConfigPath, when set, names a single config file used instead of
	// the directory walk.
	ConfigPath string

	// DevelopVersion suppresses behaviors introduced after the given
	// version. Empty means current.
	DevelopVersion string

	// Glob controls how section patterns are compiled and matched.
	// Nil means the reference behavior: dotfiles match and backslashes
	// in inputs count as separators.
	Glob *glob.Options

	// FS is the filesystem read from. Defaults to the OS filesystem.
	FS afero.Fs
}

// Resolver resolves property sets for target paths. Safe for concurrent
// use; each Resolve call carries its own state.
type Resolver struct {
	opts   Options
	fs     afero.Fs
	logger zerolog.Logger
}

// New returns a Resolver for the given options.
func New(opts Options) *Resolver {
	if opts.ConfigFileName == "" {
		opts.ConfigFileName = DefaultConfigFileName
	}
	if opts.Glob == nil {
		opts.Glob = &glob.Options{Dot: true, AllowWindowsPaths: true}
	}
	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Resolver{
		opts:   opts,
		fs:     fs,
		logger: logging.GetLogger("resolver"),
	}
}

// Resolve computes the normalized property set for target. The target
// is made absolute against the working directory and compared with
// forward slashes.
func (r *Resolver) Resolve(target string) (*properties.Set, error) {
	abs, err := filepath.Abs(target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTargetPath, "resolving target path %s", target).
			WithDetail("target", target)
	}
	slashed := filepath.ToSlash(abs)
	r.logger.Debug().Str("target", slashed).Msg("resolving properties")

	files, err := r.collect(path.Dir(slashed))
	if err != nil {
		return nil, err
	}

	set := properties.NewSet()
	for _, f := range files {
		for _, section := range f.Sections {
			g := r.sectionGlob(f.Dir, section.Name)
			if !g.Match(slashed) {
				continue
			}
			r.logger.Debug().
				Str("file", f.Path).
				Str("section", section.Name).
				Msg("section matched")
			for _, line := range section.Lines {
				if line.Kind == ini.LineProperty {
					set.Add(line.Key, line.Value)
				}
			}
		}
	}
	set.Normalize(r.opts.DevelopVersion)
	return set, nil
}

// collect gathers the config files that govern dir, outermost first.
// The upward walk stops at (and includes) the first root-marked file.
func (r *Resolver) collect(dir string) ([]*ini.File, error) {
	if r.opts.ConfigPath != "" {
		f, err := ini.ParseFile(r.fs, filepath.ToSlash(r.opts.ConfigPath))
		if err != nil {
			return nil, err
		}
		return []*ini.File{f}, nil
	}

	var files []*ini.File
	for d := dir; ; {
		candidate := path.Join(d, r.opts.ConfigFileName)
		ok, err := afero.Exists(r.fs, candidate)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigRead, "probing %s", candidate).
				WithDetail("path", candidate)
		}
		if ok {
			f, err := ini.ParseFile(r.fs, candidate)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
			if f.Root {
				break
			}
		}
		parent := path.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}

	// Reverse so the outermost file is folded first and deeper files
	// overwrite it.
	for i, j := 0, len(files)-1; i < j; i, j = i+1, j-1 {
		files[i], files[j] = files[j], files[i]
	}
	return files, nil
}

// sectionGlob builds the fully qualified glob for a section of the file
// rooted at dir. Names containing a separator anchor at the file's
// directory; bare names match at any depth below it.
func (r *Resolver) sectionGlob(dir, name string) *glob.Glob {
	base := strings.TrimSuffix(dir, "/")
	var pattern string
	if strings.Contains(name, "/") {
		pattern = base + "/" + strings.TrimPrefix(name, "/")
	} else {
		pattern = base + "/**/" + name
	}
	return glob.New(pattern, r.opts.Glob)
}
