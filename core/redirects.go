package core

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Redirect is a single named redirect: a page called Name pointing at URL.
type Redirect struct {
	Name string
	URL  string
}

// Filename returns the name of the generated file for this redirect. The
// .html extension is only appended if the name does not already carry it.
func (r *Redirect) Filename() string {
	if strings.HasSuffix(r.Name, ".html") {
		return r.Name
	}

	return r.Name + ".html"
}

type Redirects []*Redirect

// LoadRedirects reads and parses the redirects file. The order of the
// returned redirects matches the order of the entries in the file.
func (co *Core) LoadRedirects() (Redirects, error) {
	data, err := co.sourceFS.ReadFile(co.cfg.RedirectsFile)
	if err != nil {
		return nil, err
	}

	redirects, err := parseRedirects(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", co.cfg.RedirectsFile, err)
	}

	return redirects, nil
}

// parseRedirects decodes a flat YAML mapping of names to destination URLs.
// Document order is preserved. A name that appears more than once keeps its
// first position and takes its last value. Destinations are not validated
// here: a malformed URL surfaces later, when it is fetched.
func parseRedirects(data []byte) (Redirects, error) {
	var doc yaml.Node
	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, err
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, errors.New("expected a mapping of names to destination URLs")
	}

	mapping := doc.Content[0]
	redirects := Redirects{}
	byName := map[string]*Redirect{}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		if value.Kind == yaml.AliasNode {
			value = value.Alias
		}

		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: name must be a plain string", key.Line)
		}

		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("destination of %q must be a single URL", key.Value)
		}

		if strings.ContainsAny(key.Value, `/\`) {
			return nil, fmt.Errorf("name %q must not contain path separators", key.Value)
		}

		if r, ok := byName[key.Value]; ok {
			r.URL = value.Value
			continue
		}

		r := &Redirect{Name: key.Value, URL: value.Value}
		byName[key.Value] = r
		redirects = append(redirects, r)
	}

	return redirects, nil
}
