package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ariel-frischer/contentcheck/internal/collection"
	clierrors "github.com/ariel-frischer/contentcheck/internal/errors"
	"github.com/spf13/cobra"
)

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "List content collections",
	Long:  "List every registered content collection with its field counts.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, debug := persistentFlags(cmd)
		return runCollectionsCommand(configPath, debug, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema <collection>",
	Short: "Print the front-matter schema of a collection",
	Long: `Print the front-matter schema of a collection.

Each field is listed with its kind and whether it is required.

Exit Codes:
  0 - Success
  3 - Unknown collection or invalid config`,
	Example: `  contentcheck schema blog
  contentcheck schema projects`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, debug := persistentFlags(cmd)
		return runSchemaCommand(args[0], configPath, debug, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
	ValidArgs: collection.Names(),
}

func init() {
	rootCmd.AddCommand(collectionsCmd)
	rootCmd.AddCommand(schemaCmd)
}

// runCollectionsCommand lists the registered collections.
func runCollectionsCommand(configPath string, debug bool, out, errOut io.Writer) error {
	env, err := setupRuntime(configPath, debug, errOut)
	if err != nil {
		return err
	}
	env.logger.Debug().Strs("collections", collection.Names()).Msg("listing collections")
	printCollections(out)
	return nil
}

// printCollections prints one line per registered collection.
func printCollections(out io.Writer) {
	for _, s := range collection.Schemas() {
		fmt.Fprintf(out, "%-10s %d fields (%d required)  %s\n",
			s.Name, len(s.Fields), len(s.RequiredFields()), s.Description)
	}
}

// runSchemaCommand prints the schema of the named collection.
func runSchemaCommand(name, configPath string, debug bool, out, errOut io.Writer) error {
	env, err := setupRuntime(configPath, debug, errOut)
	if err != nil {
		return err
	}

	schema, err := collection.GetSchema(name)
	if err != nil {
		env.logger.Debug().Str("collection", name).Msg("unknown collection")
		reportCollectionError(err, errOut)
		return NewExitError(ExitInvalidArguments)
	}
	printSchema(schema, out)
	return nil
}

// printSchema prints the schema for a collection.
func printSchema(schema *collection.Schema, out io.Writer) {
	fmt.Fprintf(out, "Schema for %s collection (%s)\n", schema.Name, schema.Type)
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", 40))
	fmt.Fprintf(out, "%s\n\n", schema.Description)

	fmt.Fprintf(out, "Fields:\n")
	fmt.Fprintf(out, "%s\n", strings.Repeat("-", 40))

	for _, field := range schema.Fields {
		required := ""
		if field.Required {
			required = " (required)"
		}
		fmt.Fprintf(out, "%s: %s%s\n", field.Name, field.Kind, required)
		if field.Description != "" {
			fmt.Fprintf(out, "  # %s\n", field.Description)
		}
	}
}

// reportCollectionError prints a collection lookup error with the valid names.
func reportCollectionError(err error, errOut io.Writer) {
	var notFound *collection.CollectionNotFoundError
	if errors.As(err, &notFound) {
		clierrors.FprintError(errOut, clierrors.UnknownCollection(notFound.Name, collection.Names(), err))
		return
	}
	clierrors.FprintError(errOut, clierrors.Wrap(err, clierrors.Argument))
}
