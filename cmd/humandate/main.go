package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/goliatone/go-humandate"
	"github.com/spf13/cobra"
)

type options struct {
	locale      string
	localeFiles []string
	templates   []string
	bundled     bool
	utc         bool
	verbose     bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "humandate: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "humandate",
		Short:         "Format and parse dates with PHP date() style templates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.locale, "locale", "l", "", "locale to activate")
	flags.StringSliceVar(&opts.localeFiles, "locale-file", nil, "JSON, YAML or TOML locale file (repeatable)")
	flags.StringSliceVarP(&opts.templates, "template", "t", nil, "extra parse template (repeatable)")
	flags.BoolVar(&opts.bundled, "bundled", true, "register the bundled CLDR locales")
	flags.BoolVar(&opts.utc, "utc", false, "work in UTC instead of the local time zone")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every parse attempt to stderr")

	root.AddCommand(
		newFormatCommand(opts),
		newParseCommand(opts),
		newGridCommand(opts),
		newDistanceCommand(opts),
		newHolidayCommand(opts),
		newTemplatesCommand(opts),
		newLocalesCommand(opts),
	)
	return root
}

func (o *options) engine() (*humandate.Engine, error) {
	opts := []humandate.Option{
		humandate.WithActiveLocale(o.locale),
		humandate.WithTemplates(o.templates...),
	}
	if o.bundled {
		opts = append(opts, humandate.WithBundledLocales())
	}
	if len(o.localeFiles) > 0 {
		opts = append(opts, humandate.WithLocaleFiles(o.localeFiles...))
	}
	if o.utc {
		opts = append(opts, humandate.WithLocation(time.UTC))
	}
	if o.verbose {
		opts = append(opts, humandate.WithParseHooks(logHook(newLogger())))
	}
	return humandate.New(opts...)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func logHook(logger *slog.Logger) humandate.ParseHook {
	return humandate.ParseHookFuncs{
		After: func(ctx *humandate.ParseHookContext) {
			attrs := []any{
				slog.String("input", ctx.Input),
				slog.String("kind", ctx.Kind.String()),
				slog.String("stage", string(ctx.Stage)),
			}
			if ctx.Template != "" {
				attrs = append(attrs, slog.String("template", ctx.Template), slog.String("rewrite", ctx.Rewrite))
			}
			if ctx.Error != nil {
				logger.Debug("parse failed", append(attrs, slog.Any("error", ctx.Error))...)
				return
			}
			logger.Debug("parsed", append(attrs, slog.Time("result", ctx.Result))...)
		},
	}
}

// dateArg maps an optional positional argument to a DateLike, Absent when missing.
func dateArg(args []string, i int) humandate.DateLike {
	if i >= len(args) {
		return humandate.Absent
	}
	return humandate.FromString(args[i])
}
