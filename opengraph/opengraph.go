// Package opengraph extracts Open Graph metadata from HTML documents.
package opengraph

import (
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Property is a single Open Graph property, e.g. og:title.
type Property struct {
	Name    string
	Content string
}

// Properties is an ordered set of Open Graph properties. Order follows the
// first occurrence of each property in the source document.
type Properties []Property

// Set records a property. Setting an existing name overwrites its content
// while keeping its original position.
func (pp *Properties) Set(name, content string) {
	for i := range *pp {
		if (*pp)[i].Name == name {
			(*pp)[i].Content = content
			return
		}
	}

	*pp = append(*pp, Property{Name: name, Content: content})
}

// Get returns the content for the given property name, or an empty string.
func (pp Properties) Get(name string) string {
	for _, p := range pp {
		if p.Name == name {
			return p.Content
		}
	}

	return ""
}

// Extract collects all og:-prefixed meta properties from the document. Tags
// missing a non-empty content attribute are skipped. Later occurrences of a
// property overwrite earlier ones.
func Extract(doc *goquery.Document) Properties {
	props := Properties{}

	doc.Find("meta[property^='og:']").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("property")
		content, ok := s.Attr("content")
		if !ok || content == "" {
			return
		}

		props.Set(name, content)
	})

	return props
}

// ExtractReader parses r as HTML and extracts its Open Graph properties.
func ExtractReader(r io.Reader) (Properties, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	return Extract(doc), nil
}
