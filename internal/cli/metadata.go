package cli

import (
	"context"
	"encoding/json"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nodemeta/pkg/errors"
	"github.com/matzehuels/nodemeta/pkg/npmmeta"
)

// metadataOpts holds the command-line flags for the metadata command.
type metadataOpts struct {
	root    string // project root directory
	path    string // manifest path override, relative to root
	rawJSON bool   // emit machine-readable JSON instead of styled output
}

// newMetadataCmd creates the metadata command. It runs the package.json
// metadata hook the way a host build backend would: options come from
// [tool.hatch.metadata.hooks.nodejs] in pyproject.toml, the hook updates a
// fresh metadata mapping, and the result is printed.
func newMetadataCmd() *cobra.Command {
	var opts metadataOpts

	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Resolve package.json metadata into core metadata fields",
		Long: `Resolve package.json metadata into the core metadata fields a Python build
backend consumes.

Hook options are read from [tool.hatch.metadata.hooks.nodejs] in the
project's pyproject.toml when present; --path overrides the configured
manifest location.

Examples:
  nodemeta metadata                      # project in the current directory
  nodemeta metadata --root ./my-project  # explicit project root
  nodemeta metadata --json               # machine-readable output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMetadata(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.root, "root", "r", ".", "project root directory")
	cmd.Flags().StringVar(&opts.path, "path", "", "manifest path relative to the root (overrides pyproject.toml)")
	cmd.Flags().BoolVar(&opts.rawJSON, "json", false, "emit JSON instead of styled output")
	return cmd
}

func runMetadata(ctx context.Context, w io.Writer, opts metadataOpts) error {
	logger := loggerFromContext(ctx)

	config, err := metadataHookConfig(opts.root)
	if err != nil {
		return err
	}
	if opts.path != "" {
		if err := errors.ValidateManifestPath(opts.path); err != nil {
			return err
		}
		config["path"] = opts.path
	}

	source := npmmeta.New(opts.root, config)
	path, err := source.Path()
	if err != nil {
		return err
	}
	logger.Debugf("reading manifest %s", filepath.Join(opts.root, path))

	metadata := make(map[string]any)
	if err := source.Update(metadata); err != nil {
		return err
	}
	logger.Debugf("resolved %d metadata fields", len(metadata))

	if opts.rawJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(metadata)
	}
	renderMetadata(w, metadata)
	return nil
}
