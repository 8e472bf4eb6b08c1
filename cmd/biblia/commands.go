package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"biblia/internal/adapters/prefs"
	"biblia/internal/adapters/provider/bibleapi"
	"biblia/internal/adapters/tui"
	"biblia/internal/core/browser"
	"biblia/internal/core/catalog"
	"biblia/internal/core/version"
	"biblia/internal/platform/config"
	"biblia/internal/platform/logger"
)

// app carries what subcommands share. Zero values are filled in by setup
type app struct {
	configPath string
	cfg        config.Conf
	loaded     bool

	// runTUI is swapped in tests
	runTUI func(ctx context.Context, b *browser.Browser, opt tui.Options) error
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "biblia",
		Short:         "Consulta de passagens bíblicas em português",
		Version:       version.Info().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Name())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML or JSON config file (default $BIBLIA_CONFIG)")

	root.AddCommand(a.lookupCmd(), a.catalogCmd(), a.browseCmd())
	return root
}

// setup loads config and routes logs. The browser owns the terminal so its
// logs go to a file next to the prefs database unless LOG_FILE says otherwise
func (a *app) setup(command string) error {
	if !a.loaded {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg, a.loaded = cfg, true
	}
	lo := logger.FromEnv()
	lo.Service = "biblia"
	lo.Component = command
	if command == "browse" && lo.File == "" {
		if p := prefs.DefaultPath(a.cfg); p != "" && p != ":memory:" {
			lo.File = filepath.Join(filepath.Dir(p), "biblia.log")
		} else {
			lo.File = "-"
		}
	}
	logger.Init(lo)
	return nil
}

func (a *app) client(translation string) (*bibleapi.Client, error) {
	o := bibleapi.FromConfig(a.cfg)
	if translation != "" {
		o.Translation = translation
	}
	return bibleapi.New(o)
}

func (a *app) lookupCmd() *cobra.Command {
	var translation string
	var asJSON bool
	c := &cobra.Command{
		Use:   "lookup <referência>",
		Short: "Busca o texto de uma referência, ex: biblia lookup João 3:16",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl, err := a.client(translation)
			if err != nil {
				return err
			}
			res, err := cl.Fetch(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			text := res.Text
			if strings.TrimSpace(text) == "" {
				text = browser.MsgNoContent
			}
			_, err = fmt.Fprintf(out, "%s (%s)\n\n%s\n", res.SourceRef, res.Translation, text)
			return err
		},
	}
	c.Flags().StringVar(&translation, "translation", "", "provider translation id (default $BIBLE_TRANSLATION)")
	c.Flags().BoolVar(&asJSON, "json", false, "print the raw result as JSON")
	return c
}

func (a *app) catalogCmd() *cobra.Command {
	var filter string
	c := &cobra.Command{
		Use:   "catalog",
		Short: "Lista os livros por seção",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, noMatch := catalog.Default().Search(filter)
			out := cmd.OutOrStdout()
			if noMatch {
				fmt.Fprintf(out, "Nenhum livro encontrado para %q, mostrando todos\n\n", filter)
			}
			for _, g := range view.Groups() {
				fmt.Fprintln(out, g.Name)
				for _, b := range g.Books {
					fmt.Fprintf(out, "  %-22s %3d  %s\n", b.DisplayName, b.ChapterCount, b.ID)
				}
			}
			return nil
		},
	}
	c.Flags().StringVarP(&filter, "filter", "f", "", "show only books whose name contains this text")
	return c
}

func (a *app) browseCmd() *cobra.Command {
	var book string
	var noRestore bool
	c := &cobra.Command{
		Use:   "browse",
		Short: "Navegador de capítulos no terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := logger.Named("browse")

			cl, err := a.client("")
			if err != nil {
				return err
			}

			// fall back to memory so a broken prefs file never blocks reading
			var kv browser.KV = prefs.NewMemory()
			if path := prefs.DefaultPath(a.cfg); path != "" {
				db, closeDB, err := prefs.Open(ctx, path, *log)
				if err != nil {
					log.Warn().Err(err).Str("path", path).Msg("prefs unavailable, selection will not persist")
				} else {
					kv = db
					defer func() { _ = closeDB(context.Background()) }()
				}
			}

			b := browser.New(catalog.Default(), cl, browser.NewKVSelectionStore(kv), browser.WithLogger(*log))
			run := a.runTUI
			if run == nil {
				run = func(ctx context.Context, b *browser.Browser, opt tui.Options) error {
					return tui.Run(ctx, b, opt)
				}
			}
			return run(ctx, b, tui.Options{Book: book, Restore: !noRestore})
		},
	}
	c.Flags().StringVar(&book, "book", "", "open with this book expanded, by catalog id (ex: \"1 John\")")
	c.Flags().BoolVar(&noRestore, "no-restore", false, "do not reopen the last chapter")
	return c
}
