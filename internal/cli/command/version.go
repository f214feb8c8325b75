package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/bpls-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Print build information",
		Flags:  []cli.Flag{outputFlag()},
		Action: versionAction,
	}
}

func versionAction(c *cli.Context) error {
	if !c.IsSet("output") {
		fmt.Fprintln(c.App.Writer, buildinfo.String())
		return nil
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	return render(c, cfg, buildinfo.Get())
}
