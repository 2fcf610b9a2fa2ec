package fetch

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoContent indicates that an HTML page contained no extractable text.
var ErrNoContent = errors.New("no extractable content in HTML document")

// contentContainerNames lists EUR-Lex content container ids and classes,
// tried in order. The first match wins; if none match, extraction falls
// back to the <body> element.
var contentContainerNames = []string{
	"TexteOnly",
	"eli-container",
	"PP4Contents",
	"tabContent",
}

// skippedElements are HTML elements whose subtrees carry no document text.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"nav":      true,
	"header":   true,
	"footer":   true,
}

// blockElements are HTML elements rendered as their own lines.
var blockElements = map[string]bool{
	"p":       true,
	"div":     true,
	"li":      true,
	"tr":      true,
	"table":   true,
	"section": true,
	"article": true,
	"h1":      true,
	"h2":      true,
	"h3":      true,
	"h4":      true,
	"h5":      true,
	"h6":      true,
}

// ExtractMainText parses raw HTML and returns the main document text.
// Entities are decoded by the parser; block elements become line breaks.
func ExtractMainText(rawHTML []byte) (string, error) {
	document, err := html.Parse(bytes.NewReader(rawHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	container := findContentContainer(document)
	if container == nil {
		container = document
	}

	var textBuilder strings.Builder
	collectText(&textBuilder, container)

	text := normalizeWhitespace(textBuilder.String())
	if text == "" {
		return "", ErrNoContent
	}
	return text, nil
}

// findContentContainer locates the main content element, trying each
// known EUR-Lex container name before falling back to <body>.
func findContentContainer(document *html.Node) *html.Node {
	for _, containerName := range contentContainerNames {
		if node := findByIDOrClass(document, containerName); node != nil {
			return node
		}
	}
	return findElement(document, "body")
}

// findByIDOrClass searches the tree for an element whose id attribute
// equals name or whose class attribute contains name.
func findByIDOrClass(node *html.Node, name string) *html.Node {
	if node.Type == html.ElementNode {
		for _, attribute := range node.Attr {
			if attribute.Key == "id" && attribute.Val == name {
				return node
			}
			if attribute.Key == "class" && classListContains(attribute.Val, name) {
				return node
			}
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findByIDOrClass(child, name); found != nil {
			return found
		}
	}
	return nil
}

// findElement returns the first element with the given tag name.
func findElement(node *html.Node, tagName string) *html.Node {
	if node.Type == html.ElementNode && node.Data == tagName {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tagName); found != nil {
			return found
		}
	}
	return nil
}

// classListContains reports whether the space-separated class attribute
// value includes the given class name.
func classListContains(classAttribute, className string) bool {
	for _, class := range strings.Fields(classAttribute) {
		if class == className {
			return true
		}
	}
	return false
}

// collectText walks the subtree appending text content, inserting line
// breaks around block elements and skipping non-content subtrees.
func collectText(textBuilder *strings.Builder, node *html.Node) {
	if node.Type == html.ElementNode {
		if skippedElements[node.Data] {
			return
		}
		if node.Data == "br" {
			textBuilder.WriteString("\n")
			return
		}
	}
	if node.Type == html.TextNode {
		textBuilder.WriteString(node.Data)
		return
	}

	isBlock := node.Type == html.ElementNode && blockElements[node.Data]
	if isBlock {
		textBuilder.WriteString("\n")
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(textBuilder, child)
	}
	if isBlock {
		textBuilder.WriteString("\n")
	}
}

// normalizeWhitespace collapses intra-line whitespace and runs of blank
// lines, preserving single blank lines as paragraph separators.
func normalizeWhitespace(text string) string {
	rawLines := strings.Split(text, "\n")
	normalizedLines := make([]string, 0, len(rawLines))
	blankPending := false

	for _, rawLine := range rawLines {
		line := strings.Join(strings.Fields(rawLine), " ")
		if line == "" {
			if len(normalizedLines) > 0 {
				blankPending = true
			}
			continue
		}
		if blankPending {
			normalizedLines = append(normalizedLines, "")
			blankPending = false
		}
		normalizedLines = append(normalizedLines, line)
	}

	return strings.Join(normalizedLines, "\n")
}
