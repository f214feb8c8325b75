package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/bpls-go/internal/cli/config"
	"github.com/yndnr/bpls-go/internal/storage/workspace"
	"github.com/yndnr/bpls-go/internal/telemetry/logger"
)

// WorkspaceCommand returns the workspace subcommand group.
func WorkspaceCommand() *cli.Command {
	return &cli.Command{
		Name:    "workspace",
		Aliases: []string{"ws"},
		Usage:   "Manage workspaces saved by the REPL",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List saved workspaces",
				Flags:  []cli.Flag{outputFlag()},
				Action: workspaceList,
			},
			{
				Name:      "show",
				Usage:     "Show the content of a workspace",
				ArgsUsage: "NAME",
				Flags:     []cli.Flag{outputFlag()},
				Action:    workspaceShow,
			},
			{
				Name:      "delete",
				Usage:     "Delete a workspace",
				ArgsUsage: "NAME",
				Action:    workspaceDelete,
			},
		},
	}
}

// withStore opens the configured workspace store for the duration of fn.
func withStore(c *cli.Context, fn func(cfg *config.CLIConfig, store *workspace.Store) error) (err error) {
	cfg, log, err := setup(c)
	if err != nil {
		return err
	}
	store, err := workspace.Open(workspace.Options{Dir: cfg.Workspace.Dir}, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(cfg, store)
}

func workspaceList(c *cli.Context) error {
	return withStore(c, func(cfg *config.CLIConfig, store *workspace.Store) error {
		records, err := store.List(c.Context)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			if cfg.Output == "table" {
				fmt.Fprintln(c.App.Writer, "No workspaces saved.")
				return nil
			}
			records = []*workspace.Record{}
		}
		return render(c, cfg, recordList(records))
	})
}

func workspaceShow(c *cli.Context) error {
	name, err := nameArg(c)
	if err != nil {
		return err
	}
	return withStore(c, func(cfg *config.CLIConfig, store *workspace.Store) error {
		rec, err := store.Get(c.Context, name)
		if err != nil {
			return err
		}
		return render(c, cfg, recordView(*rec))
	})
}

func workspaceDelete(c *cli.Context) error {
	name, err := nameArg(c)
	if err != nil {
		return err
	}
	return withStore(c, func(_ *config.CLIConfig, store *workspace.Store) error {
		if err := store.Delete(c.Context, name); err != nil {
			return err
		}
		logger.Info("workspace deleted", "name", name)
		fmt.Fprintf(c.App.Writer, "Workspace '%s' deleted.\n", name)
		return nil
	})
}

func nameArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 || c.Args().First() == "" {
		return "", cli.Exit(fmt.Sprintf("%s: expected one NAME argument", c.Command.Name), 2)
	}
	return c.Args().First(), nil
}
