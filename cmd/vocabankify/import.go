package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/vocabankify/internal/anki"
	"github.com/kpauljoseph/vocabankify/internal/importer"
	"github.com/kpauljoseph/vocabankify/internal/ui"
)

type importOptions struct {
	dir       string
	startDir  string
	assumeYes bool
	noTUI     bool
}

func newImportCmd(a *app) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import [file.docx]",
		Short: "Add the flashcards of a Word document to an Anki deck",
		Long: `Import reads the first table of a Word document and adds one note per row
to an Anki deck. Without arguments the document and the deck are chosen in
terminal dialogs. Anki must be running with AnkiConnect installed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			return a.runImport(cmd, file, opts)
		},
	}

	flags := cmd.Flags()
	flags.String("deck", "", "deck to add the flashcards to (skips the deck prompt)")
	flags.String("root-deck", "", "parent deck for names derived from file paths")
	flags.String("anki-url", "", "AnkiConnect address (default "+anki.DefaultAnkiConnectURL+")")
	flags.StringVar(&opts.dir, "dir", "", "import every .docx file under this directory")
	flags.StringVar(&opts.startDir, "start-dir", "", "directory the file dialog opens in (default: current directory)")
	flags.BoolVarP(&opts.assumeYes, "yes", "y", false, "skip the instructions dialog")
	flags.BoolVar(&opts.noTUI, "no-tui", false, "run without terminal dialogs")
	a.bind("deck.name", flags.Lookup("deck"))
	a.bind("deck.root", flags.Lookup("root-deck"))
	a.bind("anki.url", flags.Lookup("anki-url"))

	return cmd
}

func (a *app) runImport(cmd *cobra.Command, file string, opts *importOptions) error {
	if file != "" && opts.dir != "" {
		return errors.New("a file and --dir cannot be used together")
	}

	out := cmd.OutOrStdout()
	log, closeLog, err := a.newLogger(out, !opts.noTUI)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// The terminal UI swallows ctrl+c, so it cancels through here instead.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var prompter importer.Prompter
	if opts.noTUI {
		prompter = ui.NewHeadless(log, opts.assumeYes)
	} else {
		sessionOpts := []ui.SessionOption{ui.WithInterrupt(cancel)}
		if opts.startDir != "" {
			sessionOpts = append(sessionOpts, ui.WithStartDir(opts.startDir))
		}
		prompter = ui.NewSession(cmd.InOrStdin(), out, sessionOpts...)
	}

	service := anki.NewServiceFromConfig(a.cfg.Anki, log)
	imp := importer.New(service, prompter, log)

	var report *anki.ProcessingReport
	if opts.dir != "" {
		report, err = imp.RunBatch(ctx, opts.dir, a.cfg.Deck.Root)
	} else {
		report, err = imp.Run(ctx, importer.Request{
			FilePath:  file,
			DeckName:  a.cfg.Deck.Name,
			RootDeck:  a.cfg.Deck.Root,
			AssumeYes: opts.assumeYes,
		})
	}

	switch {
	case errors.Is(err, importer.ErrCancelled):
		fmt.Fprintln(out, err.Error())
		return nil
	case errors.Is(err, context.Canceled):
		log.Warn("Import interrupted")
		if report != nil {
			report.Print(log)
		}
		return errors.New("import interrupted")
	case err != nil:
		log.Error("%v", err)
		return err
	}

	if !opts.noTUI {
		fmt.Fprintln(out, report.Summary())
	}
	return nil
}
