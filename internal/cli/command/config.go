package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/bpls-go/internal/cli/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration (defaults, file, environment, flags)",
				Flags:  []cli.Flag{outputFlag()},
				Action: configShow,
			},
			{
				Name:      "validate",
				Usage:     "Validate a configuration file",
				ArgsUsage: "[FILE]",
				Action:    configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	// The table form of a config struct is its YAML document.
	return render(c, cfg, cfg)
}

func configValidate(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		path = c.String("config")
	}

	label := path
	if label == "" {
		label = config.DefaultConfigPath()
	}

	if _, err := config.Load(path, nil); err != nil {
		return cli.Exit(fmt.Sprintf("%s: %v", label, err), 1)
	}
	fmt.Fprintf(c.App.Writer, "Configuration %s is valid.\n", label)
	return nil
}
