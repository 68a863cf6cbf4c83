// Package export writes document tables as CSV.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kpauljoseph/vocabankify/pkg/utils"
)

var quoteEscaper = strings.NewReplacer(`"`, `""`)

// WriteCSV writes one line per row. Every field is quoted and embedded
// quotes are doubled; newlines inside a field are written as they are.
func WriteCSV(w io.Writer, rows [][]string) error {
	bw := bufio.NewWriter(w)
	for i, row := range rows {
		for j, field := range row {
			if j > 0 {
				bw.WriteByte(',')
			}
			bw.WriteByte('"')
			quoteEscaper.WriteString(bw, field)
			bw.WriteByte('"')
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	return bw.Flush()
}

func SaveCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DefaultOutputPath puts the CSV next to the document, with the same name.
func DefaultOutputPath(docPath string) string {
	return filepath.Join(filepath.Dir(docPath), utils.TrimExtension(docPath)+".csv")
}
