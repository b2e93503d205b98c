package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/s0up4200/wordnik/config"
	"github.com/s0up4200/wordnik/filter"
	"github.com/s0up4200/wordnik/output"
	"github.com/s0up4200/wordnik/wordnik"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *wordnik.Client

	// closeLog releases the rotating log file, if any
	closeLog = func() error { return nil }

	// Global flags
	outputFormat string
	jqExpr       string
	whereExpr    string
	rawParams    []string
	limit        int
	debug        bool
)

// skipInit marks commands that run without configuration
const skipInit = "skip-init"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wordnik",
	Short: "Look up words, examples and word lists on Wordnik",
	Long: `wordnik is a command line client for the Wordnik dictionary API.

It looks up definitions, examples, pronunciations and related words, searches
the word graph and manages the word lists of a Wordnik account. Results are
printed as a table, JSON or YAML and can be narrowed with --where (an expr
predicate over array elements) and --jq.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: shutdownApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.StringVarP(&outputFormat, "output", "o", "", "output format: table, json or yaml (default from config)")
	flags.StringVar(&jqExpr, "jq", "", "jq expression applied to the result")
	flags.StringVar(&whereExpr, "where", "", "expr predicate keeping matching array elements")
	flags.StringArrayVarP(&rawParams, "param", "P", nil, "extra query parameter as key=value (repeatable)")
	flags.IntVar(&limit, "limit", 0, "maximum number of results")
	flags.BoolVar(&debug, "debug", false, "log requests and responses")
}

// initializeApp loads configuration and creates the Wordnik client
func initializeApp(cmd *cobra.Command, args []string) error {
	if _, ok := cmd.Annotations[skipInit]; ok {
		return nil
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	if debug {
		cfg.Logging.Level = "debug"
		cfg.Wordnik.Debug = true
	}

	logger, closeLog = setupLogger(cfg.Logging)

	opts := []wordnik.Option{
		wordnik.WithBaseURL(cfg.Wordnik.BaseURL),
		wordnik.WithTimeout(cfg.Wordnik.Timeout),
		wordnik.WithUserAgent(cfg.Wordnik.UserAgent),
		wordnik.WithDebugLogging(cfg.Wordnik.Debug),
		wordnik.WithSessionToken(cfg.Wordnik.AuthToken),
	}

	client, err = wordnik.New(cfg.Wordnik.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Wordnik client: %w", err)
	}

	logger.Debug().Str("base_url", client.BaseURL()).Msg("Wordnik client ready")
	return nil
}

func shutdownApp(cmd *cobra.Command, args []string) error {
	return closeLog()
}

// setupLogger configures the zerolog logger. The returned func closes the log
// file when file output is enabled.
func setupLogger(cfg config.LoggingConfig) (zerolog.Logger, func() error) {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	var out io.Writer = os.Stderr
	cleanup := func() error { return nil }
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())

	if cfg.File != "" {
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  true,
		}
		out = lj
		cleanup = lj.Close
		color = false
	}

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger(), cleanup
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger(), cleanup
}

// buildParams merges --param pairs and --limit into Params
func buildParams() (wordnik.Params, error) {
	var params wordnik.Params
	for _, pair := range rawParams {
		key, value, err := wordnik.ParseParam(pair)
		if err != nil {
			return nil, err
		}
		if existing, ok := params[key]; ok {
			// Repeated keys become a list, e.g. -P sourceDictionaries=ahd-5 -P sourceDictionaries=century
			switch v := existing.(type) {
			case []string:
				params[key] = append(v, value)
			case string:
				params[key] = []string{v, value}
			}
			continue
		}
		params = params.Set(key, value)
	}
	if limit > 0 {
		params = params.Set("limit", limit)
	}
	return params, nil
}

// printResult applies --jq then --where and renders the result. Table output
// uses the command's summarizer when it has one.
func printResult(cmd *cobra.Command, result wordnik.JSON) error {
	var err error
	if jqExpr != "" {
		result, err = output.Query(result, jqExpr)
		if err != nil {
			return err
		}
	}

	if whereExpr != "" {
		f, err := filter.Compile(whereExpr)
		if err != nil {
			return fmt.Errorf("invalid --where expression: %w", err)
		}
		result, err = filter.Apply(f, result)
		if err != nil {
			return err
		}
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	// --jq reshapes the result, so only untouched results get the typed view
	if summarize, ok := summaries[cmd]; ok && format == output.FormatTable && jqExpr == "" && result != nil {
		return summarize(cmd.OutOrStdout(), result)
	}

	return output.Render(cmd.OutOrStdout(), result, format)
}

// runWithParams wraps an API call taking Params into a cobra RunE
func runWithParams(call func(ctx context.Context, args []string, params wordnik.Params) (wordnik.JSON, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		params, err := buildParams()
		if err != nil {
			return err
		}

		result, err := call(cmd.Context(), args, params)
		if err != nil {
			return err
		}

		return printResult(cmd, result)
	}
}
