package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nodemeta/pkg/errors"
	"github.com/matzehuels/nodemeta/pkg/nodever"
)

// versionOpts holds the flags shared by the version subcommands.
type versionOpts struct {
	root string // project root directory
	path string // manifest path override, relative to root
}

// source builds the version source the way a host build backend would,
// reading options from [tool.hatch.version] in pyproject.toml.
func (o *versionOpts) source() (*nodever.Source, error) {
	config, err := versionSourceConfig(o.root)
	if err != nil {
		return nil, err
	}
	if o.path != "" {
		if err := errors.ValidateManifestPath(o.path); err != nil {
			return nil, err
		}
		config["path"] = o.path
	}
	return nodever.New(o.root, config), nil
}

// newVersionCmd groups the version subcommands.
func newVersionCmd() *cobra.Command {
	var opts versionOpts

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Read or write the project version via package.json",
		Long: `Read or write the project version via package.json.

"get" prints the manifest's version field translated to PEP 440 form.
"set" translates a PEP 440 version back to npm form and rewrites the
manifest with it.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.root, "root", "r", ".", "project root directory")
	cmd.PersistentFlags().StringVar(&opts.path, "path", "", "manifest path relative to the root (overrides pyproject.toml)")

	cmd.AddCommand(newVersionGetCmd(&opts))
	cmd.AddCommand(newVersionSetCmd(&opts))
	return cmd
}

func newVersionGetCmd(opts *versionOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the manifest version in PEP 440 form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := opts.source()
			if err != nil {
				return err
			}
			version, err := source.GetVersion()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), version)
			return nil
		},
	}
}

func newVersionSetCmd(opts *versionOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "set <version>",
		Short: "Write a PEP 440 version back to the manifest in npm form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := opts.source()
			if err != nil {
				return err
			}
			if err := source.SetVersion(args[0]); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Infof("version set to %s", args[0])
			return nil
		},
	}
}
