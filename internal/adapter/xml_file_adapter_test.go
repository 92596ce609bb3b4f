package adapter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/contractfind/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalXMLFileAdapter_Scan(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantRoot  m.QName
		wantTexts []string
	}{
		{
			name: "default namespace at any depth",
			doc: `<?xml version="1.0" encoding="UTF-8"?>
<Root xmlns="urn:test">
  <Contract><ContractCode> A </ContractCode></Contract>
  <Deep><Deeper><ContractCode>B</ContractCode></Deeper></Deep>
</Root>`,
			wantRoot:  m.QName{Space: "urn:test", Local: "Root"},
			wantTexts: []string{"A", "B"},
		},
		{
			name: "prefixed root and elements",
			doc: `<ns2:Export xmlns:ns2="urn:export">
  <ns2:ContractCode>X-1</ns2:ContractCode>
</ns2:Export>`,
			wantRoot:  m.QName{Space: "urn:export", Local: "Export"},
			wantTexts: []string{"X-1"},
		},
		{
			name: "elements in another namespace are ignored",
			doc: `<Root xmlns="urn:a" xmlns:b="urn:b">
  <b:ContractCode>B</b:ContractCode>
  <ContractCode>A</ContractCode>
</Root>`,
			wantRoot:  m.QName{Space: "urn:a", Local: "Root"},
			wantTexts: []string{"A"},
		},
		{
			name:      "root itself never qualifies",
			doc:       `<ContractCode xmlns="urn:a">A</ContractCode>`,
			wantRoot:  m.QName{Space: "urn:a", Local: "ContractCode"},
			wantTexts: nil,
		},
		{
			name:      "namespace-less documents match namespace-less elements",
			doc:       `<Root><ContractCode>A</ContractCode></Root>`,
			wantRoot:  m.QName{Local: "Root"},
			wantTexts: []string{"A"},
		},
		{
			name:      "text before the first child only",
			doc:       `<Root xmlns="urn:a"><ContractCode>A<note/>tail</ContractCode></Root>`,
			wantRoot:  m.QName{Space: "urn:a", Local: "Root"},
			wantTexts: []string{"A"},
		},
		{
			name:      "nested candidates keep document order",
			doc:       `<Root xmlns="urn:a"><ContractCode>outer<ContractCode>inner</ContractCode></ContractCode></Root>`,
			wantRoot:  m.QName{Space: "urn:a", Local: "Root"},
			wantTexts: []string{"outer", "inner"},
		},
		{
			name:      "whitespace only text is empty, not missing",
			doc:       "<Root xmlns=\"urn:a\"><ContractCode>\n\t </ContractCode></Root>",
			wantRoot:  m.QName{Space: "urn:a", Local: "Root"},
			wantTexts: []string{""},
		},
		{
			name:      "cdata counts as text",
			doc:       `<Root xmlns="urn:a"><ContractCode><![CDATA[C]]></ContractCode></Root>`,
			wantRoot:  m.QName{Space: "urn:a", Local: "Root"},
			wantTexts: []string{"C"},
		},
		{
			name:      "byte order mark before declaration",
			doc:       "\uFEFF" + `<?xml version="1.0" encoding="UTF-8"?><R xmlns="urn:t"><ContractCode>A</ContractCode></R>`,
			wantRoot:  m.QName{Space: "urn:t", Local: "R"},
			wantTexts: []string{"A"},
		},
		{
			name:      "byte order mark without declaration",
			doc:       "\uFEFF" + `<R xmlns="urn:t"><ContractCode>A</ContractCode></R>`,
			wantRoot:  m.QName{Space: "urn:t", Local: "R"},
			wantTexts: []string{"A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := NewLocalXMLFileAdapter()

			root, texts, err := adapter.Scan(strings.NewReader(tt.doc), m.DefaultElement)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRoot, root)
			assert.Equal(t, tt.wantTexts, texts)
		})
	}
}

func TestLocalXMLFileAdapter_Scan_Windows1251(t *testing.T) {
	adapter := NewLocalXMLFileAdapter()

	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0" encoding="windows-1251"?>`)
	doc.WriteString(`<Root xmlns="urn:a"><ContractCode>`)
	doc.Write([]byte{0xC0, 0xC1, '-', '1'}) // "АБ-1"
	doc.WriteString(`</ContractCode></Root>`)

	_, texts, err := adapter.Scan(&doc, m.DefaultElement)
	require.NoError(t, err)
	assert.Equal(t, []string{"АБ-1"}, texts)
}

func TestLocalXMLFileAdapter_Scan_Errors(t *testing.T) {
	t.Run("syntax errors are parse errors", func(t *testing.T) {
		for name, doc := range map[string]string{
			"truncated":       `<Root xmlns="urn:a"><ContractCode>A</ContractCode>`,
			"unbalanced":      `<Root xmlns="urn:a"><ContractCode>A</Other></Root>`,
			"empty":           ``,
			"junk after root": `<Root/><Root/>`,
			"text after root": `<Root/>trailing`,
		} {
			t.Run(name, func(t *testing.T) {
				_, texts, err := NewLocalXMLFileAdapter().Scan(strings.NewReader(doc), m.DefaultElement)

				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Nil(t, texts)
			})
		}
	})

	t.Run("text before the root has its own message", func(t *testing.T) {
		_, _, err := NewLocalXMLFileAdapter().Scan(strings.NewReader(`leading<Root/>`), m.DefaultElement)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, err.Error(), "text before document element")
	})

	t.Run("byte order mark after the root is still junk", func(t *testing.T) {
		_, _, err := NewLocalXMLFileAdapter().Scan(strings.NewReader("<Root/>\uFEFF"), m.DefaultElement)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, err.Error(), "junk after document element")
	})

	t.Run("empty document reports no root", func(t *testing.T) {
		_, _, err := NewLocalXMLFileAdapter().Scan(strings.NewReader("  \n"), m.DefaultElement)
		require.ErrorIs(t, err, ErrNoRoot)
	})

	t.Run("missing text is a content error", func(t *testing.T) {
		doc := `<Root xmlns="urn:a"><ContractCode>A</ContractCode><ContractCode/></Root>`

		_, texts, err := NewLocalXMLFileAdapter().Scan(strings.NewReader(doc), m.DefaultElement)
		require.ErrorIs(t, err, ErrMissingText)
		assert.Nil(t, texts)

		var parseErr *ParseError
		assert.False(t, errors.As(err, &parseErr))
	})

	t.Run("syntax error wins over missing text", func(t *testing.T) {
		doc := `<Root xmlns="urn:a"><ContractCode/><broken></Root>`

		_, _, err := NewLocalXMLFileAdapter().Scan(strings.NewReader(doc), m.DefaultElement)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("unknown charset is not a parse error", func(t *testing.T) {
		doc := `<?xml version="1.0" encoding="x-no-such-charset"?><Root/>`

		_, _, err := NewLocalXMLFileAdapter().Scan(strings.NewReader(doc), m.DefaultElement)
		require.Error(t, err)

		var parseErr *ParseError
		assert.False(t, errors.As(err, &parseErr))
	})
}
