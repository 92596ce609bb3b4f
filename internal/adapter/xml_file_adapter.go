package adapter

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	m "github.com/mouse-blink/contractfind/internal/model"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var (
	// ErrNoRoot is reported (inside a ParseError) for documents without an element.
	ErrNoRoot = errors.New("no element found")
	// ErrMissingText is reported when a qualifying element has no text content.
	ErrMissingText = errors.New("element has no text content")
)

// ParseError marks a document that is not well-formed markup.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}

	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// XMLFileAdapter encapsulates markup parsing so the domain layer only deals
// with qualified names and element texts.
type XMLFileAdapter interface {
	// Scan reads a whole document from r and returns the root element name and
	// the trimmed texts of every descendant element named local in the root's
	// namespace, in document order. Syntax errors are returned as *ParseError.
	Scan(r io.Reader, local string) (m.QName, []string, error)
}

// LocalXMLFileAdapter provides an XMLFileAdapter backed by encoding/xml. It
// streams tokens and keeps no tree; documents declaring a non UTF-8 encoding
// are decoded through x/net/html/charset.
type LocalXMLFileAdapter struct{}

// NewLocalXMLFileAdapter constructs a LocalXMLFileAdapter.
func NewLocalXMLFileAdapter() *LocalXMLFileAdapter {
	return &LocalXMLFileAdapter{}
}

type elementFrame struct {
	candidate bool
	slot      int
	hasText   bool
	closed    bool // a child started; later text is tail text
	text      strings.Builder
}

// Scan implements XMLFileAdapter.
func (a *LocalXMLFileAdapter) Scan(r io.Reader, local string) (m.QName, []string, error) {
	dec := xml.NewDecoder(skipBOM(r))
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root       m.QName
		haveRoot   bool
		stack      []*elementFrame
		texts      []string
		contentErr error
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				return m.QName{}, nil, &ParseError{Line: syntaxErr.Line, Err: errors.New(syntaxErr.Msg)}
			}

			return m.QName{}, nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if len(stack) == 0 {
				if haveRoot {
					return m.QName{}, nil, a.junk(dec)
				}

				root = m.QName{Space: t.Name.Space, Local: t.Name.Local}
				haveRoot = true
				stack = append(stack, &elementFrame{})

				continue
			}

			stack[len(stack)-1].closed = true

			frame := &elementFrame{
				candidate: t.Name.Local == local && t.Name.Space == root.Space,
			}
			if frame.candidate {
				frame.slot = len(texts)
				texts = append(texts, "")
			}

			stack = append(stack, frame)
		case xml.EndElement:
			frame := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !frame.candidate {
				continue
			}

			if !frame.hasText && contentErr == nil {
				line, _ := dec.InputPos()
				contentErr = fmt.Errorf("%s at line %d: %w", m.QName{Space: root.Space, Local: local}, line, ErrMissingText)
			}

			texts[frame.slot] = strings.TrimSpace(frame.text.String())
		case xml.CharData:
			if len(stack) == 0 {
				if len(strings.TrimSpace(string(t))) == 0 {
					continue
				}

				if !haveRoot {
					line, _ := dec.InputPos()
					return m.QName{}, nil, &ParseError{Line: line, Err: errors.New("text before document element")}
				}

				return m.QName{}, nil, a.junk(dec)
			}

			frame := stack[len(stack)-1]
			if frame.candidate && !frame.closed {
				frame.hasText = true
				frame.text.Write(t)
			}
		}
	}

	if !haveRoot {
		return m.QName{}, nil, &ParseError{Err: ErrNoRoot}
	}

	if contentErr != nil {
		return root, nil, contentErr
	}

	return root, texts, nil
}

func (a *LocalXMLFileAdapter) junk(dec *xml.Decoder) error {
	line, _ := dec.InputPos()
	return &ParseError{Line: line, Err: errors.New("junk after document element")}
}

// skipBOM drops a leading UTF-8 byte order mark, which the decoder would
// otherwise return as text before the root element.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, _ := br.Peek(len(utf8BOM)); bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	return br
}
