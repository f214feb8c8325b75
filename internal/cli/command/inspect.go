package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/bpls-go/internal/storage/files"
	"github.com/yndnr/bpls-go/internal/storage/snapshot"
)

// InspectCommand returns the inspect command.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Decode a file written by SAVE CODE TO and check its consistency",
		ArgsUsage: "SNAPSHOT",
		Flags:     []cli.Flag{outputFlag()},
		Action:    inspectAction,
	}
}

func inspectAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("inspect: expected one SNAPSHOT argument", 2)
	}
	cfg, _, err := setup(c)
	if err != nil {
		return err
	}

	path := c.Args().First()
	text, err := files.NewLocal(cfg.Workdir).ReadText(path)
	if err != nil {
		return err
	}
	codec := snapshot.ForPath(path)
	s, err := codec.Decode([]byte(text))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	report := snapshotReport{
		Path:       path,
		Format:     codec.Name(),
		Consistent: true,
		Snapshot:   s,
	}
	if err := s.Tables().Verify(); err != nil {
		report.Consistent = false
		report.Problem = err.Error()
	}

	if err := render(c, cfg, report); err != nil {
		return err
	}
	if !report.Consistent {
		return cli.Exit(fmt.Sprintf("%s: inconsistent snapshot: %s", path, report.Problem), 1)
	}
	return nil
}
