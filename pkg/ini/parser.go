package ini

import (
	"bufio"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/editorconfig/pkg/errors"
)

// Line grammars, tried in this order. Anything that matches none of
// them is skipped silently.
var (
	commentRe  = regexp.MustCompile(`^\s*[#;](.*)`)
	propertyRe = regexp.MustCompile(`^\s*([A-Za-z0-9._-]+)\s*[=:]\s*(.*?)\s*([#;].*)?$`)
	sectionRe  = regexp.MustCompile(`^\s*\[(([^#;]|\\#|\\;)+)\]\s*([#;].*)?$`)
)

// Parse reads a config file from r. The reader is not closed; callers
// own its lifetime.
func Parse(r io.Reader) (*File, error) {
	f := &File{Global: &Section{Name: "Global"}}
	current := f.Global

	scanner := bufio.NewScanner(r)
	number := 0
	for scanner.Scan() {
		number++
		raw := scanner.Text()

		if m := commentRe.FindStringSubmatch(raw); m != nil {
			current.Lines = append(current.Lines, Line{
				Number: number,
				Kind:   LineComment,
				Text:   m[1],
				Raw:    raw,
			})
			continue
		}
		if m := propertyRe.FindStringSubmatch(raw); m != nil {
			current.Lines = append(current.Lines, Line{
				Number: number,
				Kind:   LineProperty,
				Key:    m[1],
				Value:  m[2],
				Raw:    raw,
			})
			continue
		}
		if m := sectionRe.FindStringSubmatch(raw); m != nil {
			section := &Section{Name: m[1]}
			section.Lines = append(section.Lines, Line{
				Number: number,
				Kind:   LineSectionHeader,
				Name:   m[1],
				Raw:    raw,
			})
			f.Sections = append(f.Sections, section)
			current = section
			continue
		}
		// Unrecognized or blank: skipped, but the line count advances.
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigRead, "reading config stream")
	}

	if v, ok := f.Global.Get("root"); ok {
		if b, err := strconv.ParseBool(strings.ToLower(v)); err == nil {
			f.Root = b
		}
	}
	return f, nil
}

// ParseFile opens and parses path on the given filesystem. The handle
// is closed on every path out, including parse failures.
func ParseFile(fsys afero.Fs, path string) (*File, error) {
	handle, err := fsys.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigRead, "opening %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = handle.Close() }()

	f, err := Parse(handle)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "parsing %s", path).
			WithDetail("path", path)
	}
	f.Path = path
	f.Dir = filepath.ToSlash(filepath.Dir(path))
	return f, nil
}
