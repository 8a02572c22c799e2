package bank

import (
	"errors"
	"io"
	"log"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// correctMarkerPrefix is the id prefix the source markup puts on the span of
// the correct answer, e.g. id="correctAnswer0862".
const correctMarkerPrefix = "correctAnswer"

// answerScan accumulates the state of one decode pass. All accumulation is
// local to a single decodeAnswerMarkup call.
type answerScan struct {
	answers  AnswerSet
	classes  []LicenseClass
	imageURL string
}

// decodeAnswerMarkup scans one description4 cell in a single forward pass.
// The markup is presentational HTML, not a schema: anything unexpected is
// skipped, never fatal. Text runs become answers until four are collected;
// after that, a run that starts and (ignoring trailing whitespace) ends with
// a pipe is the license-class metadata line. A span whose id starts with
// correctMarkerPrefix marks the answer collected just before it as correct,
// and an img src supplies the optional image reference (last one wins).
func decodeAnswerMarkup(markup string) (AnswerSet, []LicenseClass, string) {
	var scan answerScan
	scan.answers.Choices = make([]string, 0, maxAnswers)
	scan.classes = make([]LicenseClass, 0, 5)

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				log.Printf("answer markup scan stopped: %v", err)
			}
			return scan.answers, scan.classes, scan.imageURL
		case html.TextToken:
			scan.text(string(z.Text()))
		case html.StartTagToken:
			name, hasAttr := z.TagName()
			switch string(name) {
			case "span":
				if hasAttr && hasCorrectMarker(z) {
					scan.answers.Correct = len(scan.answers.Choices)
					scan.answers.MarkerFound = true
				}
			case "img":
				// img is a void element; tolerate it written as an
				// opening tag as well as self-closed.
				scan.image(z, hasAttr)
			}
		case html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			if string(name) == "img" {
				scan.image(z, hasAttr)
			}
		}
	}
}

func (s *answerScan) text(text string) {
	if len(s.answers.Choices) < maxAnswers {
		s.answers.Choices = append(s.answers.Choices, text)
		return
	}
	if isLicenseLine(text) {
		s.classes = append(s.classes, scanLicenseTags(text)...)
	}
}

func (s *answerScan) image(z *html.Tokenizer, hasAttr bool) {
	if !hasAttr {
		return
	}
	for {
		key, val, more := z.TagAttr()
		if string(key) == "src" {
			s.imageURL = string(val)
		}
		if !more {
			return
		}
	}
}

func hasCorrectMarker(z *html.Tokenizer) bool {
	marked := false
	for {
		key, val, more := z.TagAttr()
		if string(key) == "id" && strings.HasPrefix(string(val), correctMarkerPrefix) {
			marked = true
		}
		if !more {
			return marked
		}
	}
}

// isLicenseLine reports whether a text run is the pipe-delimited license
// metadata line, e.g. "| «C1» | «C» | «D» | «A» | «В» | ".
func isLicenseLine(text string) bool {
	trimmed := strings.TrimRightFunc(text, unicode.IsSpace)
	return strings.HasPrefix(text, "|") && strings.HasSuffix(trimmed, "|")
}
