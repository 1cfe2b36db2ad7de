// Package goquery provides tokenizers that convert rendered menu HTML into
// the flat, role-tagged token streams consumed by the extraction engine.
// One tokenizer exists per known menu format, managed by a Registry.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	beer "github.com/lfe011969/local-beer-app"
)

// DocumentLines collapses a parsed document into trimmed,
// whitespace-normalized text lines with empty lines removed, preserving
// source order. Script, style, and similar non-content subtrees are
// excluded.
func DocumentLines(rawHTML string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, beer.Errorf(beer.EINVALID, "failed to parse HTML: %v", err)
	}

	var lines []string
	for _, node := range doc.Nodes {
		collectLines(node, &lines)
	}
	return lines, nil
}

func collectLines(n *html.Node, lines *[]string) {
	switch n.Type {
	case html.TextNode:
		if line := collapseSpace(n.Data); line != "" {
			*lines = append(*lines, line)
		}
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template", "iframe":
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLines(c, lines)
	}
}

// collapseSpace trims a string and collapses internal whitespace runs to
// single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// nodeText returns the collapsed text content of a node subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return collapseSpace(sb.String())
}

// classifyLine tags a plain content line as a stat candidate or body text.
func classifyLine(line string) beer.TokenRole {
	if beer.HasStatMarker(line) {
		return beer.RoleStatCandidate
	}
	return beer.RoleBodyText
}
