package docx

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

var wordNamespaces = map[string]bool{
	"http://schemas.openxmlformats.org/wordprocessingml/2006/main": true,
	"http://purl.oclc.org/ooxml/wordprocessingml/main":             true,
}

const mergeContinue = "continue"

func isWord(name xml.Name, local string) bool {
	return name.Local == local && wordNamespaces[name.Space]
}

// Content controls and custom XML wrap block and row content without
// changing its meaning, so the decoder walks straight through them.
func isContainer(name xml.Name) bool {
	if !wordNamespaces[name.Space] {
		return false
	}
	switch name.Local {
	case "sdt", "sdtContent", "customXml":
		return true
	}
	return false
}

func attr(el xml.StartElement, local string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// token is xml.Decoder.Token with io.EOF turned into an error: every caller
// is inside an element that has not been closed yet.
func token(d *xml.Decoder) (xml.Token, error) {
	tok, err := d.Token()
	if err == io.EOF {
		return nil, ErrTruncatedXML
	}
	return tok, err
}

func decodeTables(r io.Reader) ([]Table, error) {
	d := xml.NewDecoder(r)
	var tables []Table

	for {
		tok, err := d.Token()
		if err == io.EOF {
			return tables, nil
		}
		if err != nil {
			return nil, err
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch {
		case isWord(start.Name, "document"), isWord(start.Name, "body"), isContainer(start.Name):
			continue
		case isWord(start.Name, "tbl"):
			table, err := decodeTable(d)
			if err != nil {
				return nil, err
			}
			tables = append(tables, table)
		default:
			if err := d.Skip(); err != nil {
				return nil, err
			}
		}
	}
}

func decodeTable(d *xml.Decoder) (Table, error) {
	var table Table
	// text of the last cell seen in each grid column, for vertical merges
	var columns []string

	for {
		tok, err := token(d)
		if err != nil {
			return table, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch {
			case isContainer(el.Name):
			case isWord(el.Name, "tr"):
				row, err := decodeRow(d, &columns)
				if err != nil {
					return table, err
				}
				table.Rows = append(table.Rows, row)
			default:
				if err := d.Skip(); err != nil {
					return table, err
				}
			}
		case xml.EndElement:
			if isWord(el.Name, "tbl") {
				return table, nil
			}
		}
	}
}

type cell struct {
	text   string
	span   int
	vMerge string
}

// decodeRow returns one string per grid column: a cell spanning several
// columns repeats its text, and a vertical merge continuation repeats the
// text of the cell above it.
func decodeRow(d *xml.Decoder, columns *[]string) ([]string, error) {
	var cells []string
	col := 0

	for {
		tok, err := token(d)
		if err != nil {
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch {
			case isContainer(el.Name):
			case isWord(el.Name, "tc"):
				c, err := decodeCell(d)
				if err != nil {
					return nil, err
				}

				for len(*columns) < col+c.span {
					*columns = append(*columns, "")
				}
				text := c.text
				if c.vMerge == mergeContinue {
					text = (*columns)[col]
				}
				for i := 0; i < c.span; i++ {
					(*columns)[col+i] = text
					cells = append(cells, text)
				}
				col += c.span
			default:
				if err := d.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			if isWord(el.Name, "tr") {
				return cells, nil
			}
		}
	}
}

func decodeCell(d *xml.Decoder) (cell, error) {
	c := cell{span: 1}
	var paragraphs []string

	for {
		tok, err := token(d)
		if err != nil {
			return c, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch {
			case isContainer(el.Name):
			case isWord(el.Name, "tcPr"):
				if err := decodeCellProperties(d, &c); err != nil {
					return c, err
				}
			case isWord(el.Name, "p"):
				text, err := paragraphText(d)
				if err != nil {
					return c, err
				}
				paragraphs = append(paragraphs, text)
			default:
				// nested tables included
				if err := d.Skip(); err != nil {
					return c, err
				}
			}
		case xml.EndElement:
			if isWord(el.Name, "tc") {
				c.text = strings.Join(paragraphs, "\n")
				return c, nil
			}
		}
	}
}

func decodeCellProperties(d *xml.Decoder, c *cell) error {
	for {
		tok, err := token(d)
		if err != nil {
			return err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch {
			case isWord(el.Name, "gridSpan"):
				if v, ok := attr(el, "val"); ok {
					if n, err := strconv.Atoi(v); err == nil && n > 1 {
						c.span = n
					}
				}
			case isWord(el.Name, "vMerge"):
				c.vMerge = mergeContinue
				if v, ok := attr(el, "val"); ok && v != "" {
					c.vMerge = v
				}
			}
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if isWord(el.Name, "tcPr") {
				return nil
			}
		}
	}
}

// paragraphText collects the run text of a paragraph. Runs nested in
// hyperlinks, insertions, smart tags and fields count; deleted text,
// drawings, text boxes and properties do not.
func paragraphText(d *xml.Decoder) (string, error) {
	var b strings.Builder
	depth := 0

	for {
		tok, err := token(d)
		if err != nil {
			return "", err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			if !wordNamespaces[el.Name.Space] {
				if err := d.Skip(); err != nil {
					return "", err
				}
				continue
			}

			switch el.Name.Local {
			case "t":
				var text string
				if err := d.DecodeElement(&text, &el); err != nil {
					return "", err
				}
				b.WriteString(text)
				continue
			case "tab", "ptab":
				b.WriteByte('\t')
			case "br", "cr":
				b.WriteByte('\n')
			case "noBreakHyphen":
				b.WriteByte('-')
			case "pPr", "rPr", "del", "delText", "instrText", "drawing", "pict", "object":
			default:
				depth++
				continue
			}
			if err := d.Skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			if depth == 0 {
				return b.String(), nil
			}
			depth--
		}
	}
}
