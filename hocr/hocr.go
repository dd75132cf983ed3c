package hocr

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/ThadlerK/formHTR/model"
)

// Word is a single recognized word from an hOCR document. Bounds are image
// pixel coordinates with the origin at the top-left corner.
type Word struct {
	Text   string
	StartX float64
	StartY float64
	EndX   float64
	EndY   float64

	// Confidence is the word's x_wconf value in percent, or -1 when the
	// document does not carry one.
	Confidence float64
}

// Rectangle converts the word into a pipeline rectangle.
func (w Word) Rectangle() model.Rectangle {
	return model.NewRectangle(w.StartX, w.StartY, w.EndX, w.EndY, w.Text)
}

// Line groups the words of one ocr_line element in document order.
type Line struct {
	Words []Word
}

// Page is the parsed content of an hOCR document.
type Page struct {
	Lines []Line
}

// Words returns all words on the page in document order.
func (p Page) Words() []Word {
	var words []Word
	for _, line := range p.Lines {
		words = append(words, line.Words...)
	}
	return words
}

// Candidate returns the page's words overlapping the region of interest,
// converted into one source's pipeline candidate.
func (p Page) Candidate(roi model.ROI) model.Candidate {
	var candidate model.Candidate
	for _, word := range p.Words() {
		rect := word.Rectangle()
		if roi.Intersects(rect) {
			candidate = append(candidate, rect)
		}
	}
	return candidate
}

// ParseConfig holds configuration for hOCR parsing.
type ParseConfig struct {
	// MinConfidence drops words whose x_wconf falls below it (percent).
	// Zero keeps every word. Words without a confidence value are always
	// kept.
	MinConfidence float64
}

// hOCR encodes geometry in title attributes, e.g.
// title="bbox 36 92 96 116; x_wconf 93".
var (
	bboxPattern = regexp.MustCompile(`bbox ([0-9]+) ([0-9]+) ([0-9]+) ([0-9]+)`)
	confPattern = regexp.MustCompile(`x_wconf ([0-9.]+)`)
)

// Parse reads an hOCR document and returns its line and word structure.
// hOCR is HTML, so the tolerant HTML parser is used rather than an XML one;
// real engine output frequently omits the XHTML niceties.
func Parse(r io.Reader) (Page, error) {
	return ParseWithConfig(r, ParseConfig{})
}

// ParseWithConfig reads an hOCR document with custom configuration.
func ParseWithConfig(r io.Reader, config ParseConfig) (Page, error) {
	root, err := html.Parse(r)
	if err != nil {
		return Page{}, fmt.Errorf("failed to parse hOCR document: %w", err)
	}

	var page Page
	collectLines(root, &page, config)
	return page, nil
}

func collectLines(n *html.Node, page *Page, config ParseConfig) {
	if n.Type == html.ElementNode && hasClass(n, "ocr_line") {
		line := parseLine(n, config)
		if len(line.Words) > 0 {
			page.Lines = append(page.Lines, line)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLines(c, page, config)
	}
}

func parseLine(n *html.Node, config ParseConfig) Line {
	var line Line

	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode && hasClass(node, "ocrx_word") {
			if word, ok := parseWord(node, config); ok {
				line.Words = append(line.Words, word)
			}
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visit(c)
	}

	return line
}

func parseWord(n *html.Node, config ParseConfig) (Word, bool) {
	title := attrValue(n, "title")

	coords := bboxPattern.FindStringSubmatch(title)
	if coords == nil {
		return Word{}, false
	}

	text := strings.TrimSpace(textContent(n))
	if text == "" {
		return Word{}, false
	}

	confidence := -1.0
	if m := confPattern.FindStringSubmatch(title); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			confidence = v
		}
	}
	if confidence >= 0 && confidence < config.MinConfidence {
		return Word{}, false
	}

	var bounds [4]float64
	for i := range bounds {
		v, err := strconv.Atoi(coords[i+1])
		if err != nil {
			return Word{}, false
		}
		bounds[i] = float64(v)
	}

	return Word{
		Text:       text,
		StartX:     bounds[0],
		StartY:     bounds[1],
		EndX:       bounds[2],
		EndY:       bounds[3],
		Confidence: confidence,
	}, true
}

func hasClass(n *html.Node, name string) bool {
	for _, class := range strings.Fields(attrValue(n, "class")) {
		if class == name {
			return true
		}
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// textContent collects the node's text, ignoring markup such as the <em>
// and <strong> tags engines wrap words in.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}
