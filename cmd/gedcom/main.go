package main

import (
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gedcomkit/gedcom-go/gedcom"
)

// Exit codes: 0 success, 1 fatal parse error, 2 cancellation, 3 I/O
// failure.
const (
	exitOK        = 0
	exitFatal     = 1
	exitCancelled = 2
	exitIO        = 3
)

var (
	flagNotifyRate       int
	flagStrictLineBreaks bool
	flagStrictCustomTags bool
	flagProgress         bool
)

func main() {
	os.Exit(run())
}

func run() int {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}

	code := exitOK

	rootCmd := &cobra.Command{
		Use:   "gedcom",
		Short: "Read GEDCOM 5.5/5.5.1 genealogy files",
	}
	rootCmd.PersistentFlags().IntVar(&flagNotifyRate, "notify-rate", envInt("GEDCOM_NOTIFY_RATE", gedcom.DefaultReadNotificationRate), "lines between progress events")
	rootCmd.PersistentFlags().BoolVar(&flagStrictLineBreaks, "strict-line-breaks", envBool("GEDCOM_STRICT_LINE_BREAKS"), "warn on non-standard line terminators")
	rootCmd.PersistentFlags().BoolVar(&flagStrictCustomTags, "strict-custom-tags", envBool("GEDCOM_STRICT_CUSTOM_TAGS"), "warn on underscore-prefixed tags")
	rootCmd.PersistentFlags().BoolVar(&flagProgress, "progress", false, "log read progress")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and report record counts and diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code = runParse(args[0], nil)
			return nil
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "export <file>",
		Short: "Parse a file and write its graph as JSON-LD to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code = runParse(args[0], func(g *gedcom.Gedcom) error {
				return gedcom.ExportJSONLD(g, os.Stdout)
			})
			return nil
		},
	})

	if err := rootCmd.Execute(); err != nil {
		return exitFatal
	}
	return code
}

func runParse(path string, after func(*gedcom.Gedcom) error) int {
	opts := []gedcom.Option{gedcom.OptReadNotificationRate(flagNotifyRate)}
	if flagStrictLineBreaks {
		opts = append(opts, gedcom.OptStrictLineBreaks())
	}
	if flagStrictCustomTags {
		opts = append(opts, gedcom.OptStrictCustomTags())
	}
	if flagProgress {
		opts = append(opts, gedcom.OptFileObserver(func(e gedcom.FileProgressEvent) {
			log.Info().Int("lines", e.Lines).Bool("complete", e.Complete).Msg("reading")
		}))
	}
	p := gedcom.NewParser(opts...)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		if _, ok := <-sigCh; ok {
			p.Cancel()
		}
	}()

	g, err := p.ParseFile(path)
	if err != nil {
		switch gedcom.Code(err) {
		case gedcom.ErrCodeCancelled:
			log.Error().Str("file", path).Msg("parse cancelled")
			return exitCancelled
		case gedcom.ErrCodeIOError:
			log.Error().Err(err).Str("file", path).Msg("cannot read file")
			return exitIO
		default:
			log.Error().Err(err).Str("file", path).Msg("parse failed")
			return exitFatal
		}
	}

	for _, d := range p.Errors {
		log.Error().Msg(d.String())
	}
	for _, d := range p.Warnings {
		log.Warn().Msg(d.String())
	}
	log.Info().
		Str("file", path).
		Int("individuals", len(g.Individuals)).
		Int("families", len(g.Families)).
		Int("sources", len(g.Sources)).
		Int("multimedia", len(g.Multimedia)).
		Int("notes", len(g.Notes)).
		Int("repositories", len(g.Repositories)).
		Int("submitters", len(g.Submitters)).
		Int("errors", len(p.Errors)).
		Int("warnings", len(p.Warnings)).
		Msg("parsed")

	if after != nil {
		if err := after(g); err != nil {
			log.Error().Err(err).Msg("export failed")
			return exitFatal
		}
	}
	return exitOK
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
