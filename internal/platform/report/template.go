package report

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// ErrTemplateNotFound means the report template file is missing from the
// template directory.
var ErrTemplateNotFound = errors.New("HTML template not found")

var tokenPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// Source loads report templates from a directory. Templates are read per
// request so edits to the HTML take effect without a restart.
type Source struct {
	dir string
}

func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

func (s *Source) Load(name string) (*Template, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return &Template{name: name, raw: string(raw)}, nil
}

// Template is a raw HTML document with {{token}} placeholders.
type Template struct {
	name string
	raw  string
}

// Bind substitutes every placeholder in the template. Tokens bound in
// data take its value; tokens outside the data set render as empty
// strings so no placeholder ever survives into a printed report.
func (t *Template) Bind(data map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(t.raw, func(tok string) string {
		key := tok[2 : len(tok)-2]
		return data[key]
	})
}

// UnknownTokens lists the placeholders in the template that the data set
// does not cover, for template-drift warnings at startup.
func (t *Template) UnknownTokens(data map[string]string) []string {
	seen := map[string]bool{}
	var unknown []string
	for _, m := range tokenPattern.FindAllStringSubmatch(t.raw, -1) {
		key := m[1]
		if _, ok := data[key]; !ok && !seen[key] {
			seen[key] = true
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}
