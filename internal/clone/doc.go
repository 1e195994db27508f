// Package clone implements the heuristic content-replacement and
// asset-localization pipeline: given an arbitrary third-party HTML page and a
// hotel record, it identifies the page's semantic slots, rewrites them in
// place and mirrors every referenced asset to a per-site directory.
package clone

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Parse builds the mutable document a pipeline run owns exclusively.
func Parse(htmlContent string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// Render serializes the whole document back to HTML.
func Render(doc *goquery.Document) (string, error) {
	root := doc.Get(0)
	if root == nil {
		return "", fmt.Errorf("render html: empty document")
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// walkTextNodes visits every text node except script/style bodies.
func walkTextNodes(n *html.Node, fn func(*html.Node)) {
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	if n.Type == html.TextNode {
		fn(n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkTextNodes(c, fn)
	}
}

// nodeText is the concatenated text content of a node subtree, trimmed.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	walkTextNodes(n, func(t *html.Node) { sb.WriteString(t.Data) })
	return strings.TrimSpace(sb.String())
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// setText replaces the node's children with a single text node.
func setText(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
