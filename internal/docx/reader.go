// Package docx reads the tables of a Word (.docx) document.
//
// Only the parts needed to recover the plain text of body-level tables are
// decoded: the package relationships, to find the main document part, and
// the w:tbl elements of the document body.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

const (
	packageRelsPart     = "_rels/.rels"
	defaultDocumentPart = "word/document.xml"
	officeDocumentType  = "/officeDocument"
)

var (
	ErrNoTable      = errors.New("document contains no table")
	ErrNoMainPart   = errors.New("package has no main document part")
	ErrTruncatedXML = errors.New("document xml ended inside a table")
)

// Table is the text content of a table, row by row.
type Table struct {
	Rows [][]string
}

func (t Table) RowCount() int {
	return len(t.Rows)
}

type Document struct {
	Tables []Table
}

// FirstTable returns the first body-level table of the document.
func (d *Document) FirstTable() (Table, error) {
	if len(d.Tables) == 0 {
		return Table{}, ErrNoTable
	}
	return d.Tables[0], nil
}

func Open(path string) (*Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", path, err)
	}
	defer zr.Close()

	return read(&zr.Reader)
}

func Read(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	return read(zr)
}

func read(zr *zip.Reader) (*Document, error) {
	partName := mainPartName(zr)
	part := findPart(zr, partName)
	if part == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoMainPart, partName)
	}

	rc, err := part.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", partName, err)
	}
	defer rc.Close()

	tables, err := decodeTables(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", partName, err)
	}

	return &Document{Tables: tables}, nil
}

type relationships struct {
	Relationships []struct {
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// mainPartName follows the officeDocument relationship of the package and
// falls back to the conventional location when the relationships part is
// missing or unreadable.
func mainPartName(zr *zip.Reader) string {
	relsPart := findPart(zr, packageRelsPart)
	if relsPart == nil {
		return defaultDocumentPart
	}

	rc, err := relsPart.Open()
	if err != nil {
		return defaultDocumentPart
	}
	defer rc.Close()

	var rels relationships
	if err := xml.NewDecoder(rc).Decode(&rels); err != nil {
		return defaultDocumentPart
	}

	for _, rel := range rels.Relationships {
		if strings.HasSuffix(rel.Type, officeDocumentType) && rel.Target != "" {
			return path.Clean(strings.TrimPrefix(rel.Target, "/"))
		}
	}
	return defaultDocumentPart
}

func findPart(zr *zip.Reader, name string) *zip.File {
	var folded *zip.File
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
		if folded == nil && strings.EqualFold(f.Name, name) {
			folded = f
		}
	}
	return folded
}
