package pipeline

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Reference is a local file reference left in a document.
type Reference struct {
	Element string // Tag name, e.g. "img" or "style"
	Attr    string // Attribute holding the reference; empty for <style> text
	Value   string // The referenced path as written
}

// cssURLPattern captures the target of a CSS url() token.
var cssURLPattern = regexp.MustCompile(`url\(\s*['"]?([^'")\s]+)['"]?\s*\)`)

// srcElements carry a src attribute that loads a resource.
var srcElements = map[string]bool{
	"img":    true,
	"source": true,
	"script": true,
	"video":  true,
	"audio":  true,
	"embed":  true,
	"track":  true,
}

// linkRels are <link rel> tokens whose href loads a resource.
var linkRels = map[string]bool{
	"stylesheet":       true,
	"icon":             true,
	"apple-touch-icon": true,
	"preload":          true,
	"prefetch":         true,
	"manifest":         true,
}

// FindUnresolved lists, in document order, references to local files that a
// bundled document still depends on.
//
// Inspected:
//   - src on img, source, script, video, audio, embed, track
//   - href on link elements that load resources (stylesheet, icon, preload, ...)
//   - url() inside <style> elements and style attributes
//
// Ignored:
//   - data: URIs, remote URLs, protocol-relative URLs, fragments
//   - srcset attributes (complex format, out of scope)
//   - a[href] navigation links
func FindUnresolved(htmlContent string) ([]Reference, error) {
	root, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	var refs []Reference
	doc := goquery.NewDocumentFromNode(root)
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		tag := goquery.NodeName(sel)

		if srcElements[tag] {
			if v, ok := sel.Attr("src"); ok && isLocalReference(v) {
				refs = append(refs, Reference{Element: tag, Attr: "src", Value: v})
			}
		}

		if tag == "link" && loadsResource(sel.AttrOr("rel", "")) {
			if v, ok := sel.Attr("href"); ok && isLocalReference(v) {
				refs = append(refs, Reference{Element: tag, Attr: "href", Value: v})
			}
		}

		if style, ok := sel.Attr("style"); ok {
			for _, v := range cssURLs(style) {
				refs = append(refs, Reference{Element: tag, Attr: "style", Value: v})
			}
		}

		if tag == "style" {
			for _, v := range cssURLs(sel.Text()) {
				refs = append(refs, Reference{Element: tag, Value: v})
			}
		}
	})

	return refs, nil
}

// cssURLs returns the local url() targets in a CSS fragment.
func cssURLs(css string) []string {
	var out []string
	for _, m := range cssURLPattern.FindAllStringSubmatch(css, -1) {
		if isLocalReference(m[1]) {
			out = append(out, m[1])
		}
	}
	return out
}

// loadsResource reports whether a rel attribute names a resource-loading link.
func loadsResource(rel string) bool {
	for _, token := range strings.Fields(strings.ToLower(rel)) {
		if linkRels[token] {
			return true
		}
	}
	return false
}

// isLocalReference returns true if the value points at a file next to the document.
func isLocalReference(ref string) bool {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return false
	}

	// Skip protocol-relative URLs and anchors
	if strings.HasPrefix(ref, "//") || strings.HasPrefix(ref, "#") {
		return false
	}

	// Windows drive paths are local; url.Parse would read "C:" as a scheme
	if filepath.VolumeName(ref) != "" {
		return true
	}

	// Skip anything with a scheme: http, https, file, data, blob, ...
	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		return false
	}

	return true
}
