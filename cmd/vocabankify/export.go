package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/vocabankify/internal/export"
	"github.com/kpauljoseph/vocabankify/internal/scanner"
	"github.com/kpauljoseph/vocabankify/internal/vocab"
	"github.com/kpauljoseph/vocabankify/pkg/logger"
)

const defaultExportInput = "vocab.docx"

func newExportCmd(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export [file.docx]",
		Short: "Write the first table of a Word document to CSV",
		Long: `Export copies every row of the first table, header included, to a CSV file
with all fields quoted. The document defaults to vocab.docx and the output to
output.csv. With --dir every document gets a CSV file next to it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := a.newLogger(cmd.OutOrStdout(), false)
			if err != nil {
				return err
			}
			defer closeLog()

			if dir != "" {
				if len(args) == 1 {
					return errors.New("a file and --dir cannot be used together")
				}
				return exportDirectory(cmd, dir, log)
			}

			input := defaultExportInput
			if len(args) == 1 {
				input = args[0]
			}
			return exportDocument(input, a.cfg.Export.Output, log)
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", "", "CSV file to write (default output.csv)")
	flags.StringVar(&dir, "dir", "", "export every .docx file under this directory")
	a.bind("export.output", flags.Lookup("output"))

	return cmd
}

func exportDocument(input, output string, log *logger.Logger) error {
	rows, err := vocab.LoadRows(input)
	if err != nil {
		return err
	}
	if err := export.SaveCSV(output, rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}
	log.Info("Exported %d rows from %s to %s", len(rows), input, output)
	return nil
}

func exportDirectory(cmd *cobra.Command, dir string, log *logger.Logger) error {
	documents, err := scanner.New(log).FindDocuments(cmd.Context(), dir)
	if err != nil {
		return err
	}

	var failed int
	for _, doc := range documents {
		output := export.DefaultOutputPath(doc.AbsolutePath)
		if err := exportDocument(doc.AbsolutePath, output, log); err != nil {
			log.Error("Error exporting %s: %v", doc.RelativePath, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("failed to export %d out of %d documents", failed, len(documents))
	}
	return nil
}
