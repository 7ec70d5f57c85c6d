package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ariel-frischer/contentcheck/internal/collection"
	clierrors "github.com/ariel-frischer/contentcheck/internal/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var validateCmd = &cobra.Command{
	Use:   "validate <collection> <file|->",
	Short: "Validate a front-matter record against a collection schema",
	Long: `Validate one front-matter record against a collection schema.

The record is a YAML or JSON mapping read from a file, or from stdin when the
path is "-". Fields not declared by the collection are ignored.

Validates:
  - Required fields present
  - Field kinds (string, boolean, string list)
  - Dates coerce to a canonical UTC timestamp
  - URLs are absolute

Output:
  - The canonical record on success
  - Numbered errors with hints on failure

Exit Codes:
  0 - Success (record is valid)
  1 - Validation failed (record has errors)
  3 - Invalid arguments (unknown collection, missing file, bad config)`,
	Example: `  contentcheck validate blog src/content/blog/hello.yaml
  contentcheck validate projects meta.json --fail-fast
  echo 'publishDate: 2024-01-01' | contentcheck validate posts -`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, debug := persistentFlags(cmd)
		var failFast *bool
		if cmd.Flags().Changed("fail-fast") {
			v, _ := cmd.Flags().GetBool("fail-fast")
			failFast = &v
		}
		return runValidateCommand(validateArgs{
			collection: args[0],
			path:       args[1],
			configPath: configPath,
			debug:      debug,
			failFast:   failFast,
		}, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Bool("fail-fast", false, "Stop at the first error (overrides config)")
}

// validateArgs holds the parsed inputs of the validate command.
type validateArgs struct {
	collection string
	path       string
	configPath string
	debug      bool
	failFast   *bool // nil keeps the configured value
}

// runValidateCommand executes the validate command.
func runValidateCommand(args validateArgs, stdin io.Reader, out, errOut io.Writer) error {
	env, err := setupRuntime(args.configPath, args.debug, errOut)
	if err != nil {
		return err
	}

	schema, err := collection.GetSchema(args.collection)
	if err != nil {
		reportCollectionError(err, errOut)
		return NewExitError(ExitInvalidArguments)
	}

	raw, err := readRecord(args.path, stdin)
	if err != nil {
		clierrors.FprintError(errOut, clierrors.UnreadableRecord(args.path, err))
		return NewExitError(ExitInvalidArguments)
	}

	opts := env.cfg.ValidatorOptions()
	if args.failFast != nil {
		opts.FailFast = *args.failFast
	}

	rec, err := collection.NewValidator(opts).ValidateSchema(schema, raw)
	if err != nil {
		env.logger.Debug().Err(err).Str("collection", schema.Name).Str("path", args.path).Msg("record rejected")
		return formatValidationError(err, args.path, errOut)
	}

	env.logger.Debug().Str("collection", schema.Name).Str("path", args.path).Int("fields", len(rec)).Msg("record validated")
	if err := printRecord(rec, args.path, out); err != nil {
		clierrors.FprintError(errOut, clierrors.Wrap(err, clierrors.Runtime))
		return NewExitError(ExitValidationFailed)
	}
	return nil
}

// readRecord decodes one YAML or JSON mapping from path, or from stdin for "-".
func readRecord(path string, stdin io.Reader) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		info, statErr := os.Stat(path)
		if statErr != nil {
			if os.IsNotExist(statErr) {
				return nil, fmt.Errorf("file not found: %s", path)
			}
			return nil, fmt.Errorf("checking %s: %w", path, statErr)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("path is a directory, not a file: %s", path)
		}
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("record is empty: %s", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("record is empty: %s", path)
	}
	return raw, nil
}

// printRecord writes the canonical record as YAML.
func printRecord(rec collection.Record, path string, out io.Writer) error {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(out, "%s %s is valid\n\n", green("✓"), path)

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(map[string]any(rec)); err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	return enc.Close()
}

// formatValidationError displays a validation failure.
func formatValidationError(err error, path string, errOut io.Writer) error {
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	var recErr *collection.RecordError
	if !errors.As(err, &recErr) {
		fmt.Fprintf(errOut, "%s %s: %v\n", red("✗"), path, err)
		return NewExitError(ExitValidationFailed)
	}

	fmt.Fprintf(errOut, "%s %s has %d error(s)\n\n", red("✗"), path, len(recErr.Errors))
	recErr.WriteDetails(errOut, yellow)
	return NewExitError(ExitValidationFailed)
}
