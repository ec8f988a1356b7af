package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nodemeta/pkg/buildinfo"
)

// Execute runs the nodemeta CLI and returns an error if any command fails.
//
// The root command wires up the metadata and version subcommands and
// configures logging based on the --verbose flag. The logger is attached
// to the context and accessible to all commands via loggerFromContext.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:     "nodemeta",
		Short:   "Translate package.json metadata for Python packaging pipelines",
		Long:    "nodemeta reads a Node.js package.json manifest and translates its metadata\n(author, maintainers, keywords, description, license, URLs) and its version\ninto the schema a Python build backend expects.",
		Version: buildinfo.Version,
		Args:    cobra.NoArgs,

		SilenceUsage: true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			logger.Debugf("build info: %s", buildinfo.String())
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMetadataCmd())
	root.AddCommand(newVersionCmd())

	return root.ExecuteContext(ctx)
}
