package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common"
	"github.com/gaze-network/auction-network/common/errs"
	"github.com/gaze-network/auction-network/core/constants"
	"github.com/gaze-network/auction-network/modules/auction"
	"github.com/spf13/cobra"
)

var versions = map[string]string{
	"":        constants.Version,
	common.ModuleAuction.String(): auction.Version,
}

type versionCmdOptions struct {
	Modules string
}

func NewVersionCommand() *cobra.Command {
	opts := &versionCmdOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show auction-network version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return versionHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Modules, "module", "", `Show version of a specific module. E.g. "auction"`)

	return cmd
}

func versionHandler(opts *versionCmdOptions, cmd *cobra.Command, _ []string) error {
	version, ok := versions[opts.Modules]
	if !ok {
		return errors.Wrapf(errs.Unsupported, "Invalid module name %q", opts.Modules)
	}
	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}
