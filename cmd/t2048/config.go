package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	flagConfigBoard string
	flagConfigForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a new game would use, after the config file,
the --difficulty preset and the board's own size and goal are applied.

Config files are searched in this order:
  --config <path>
  ~/.arcade/configs/t2048.yaml
  ./configs/t2048.yaml
  built-in defaults

Examples:
  t2048 config
  t2048 config --board 2048-mini --difficulty hard
  t2048 config init`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration to a file",
	Long: `Write the default configuration as YAML, to ~/.arcade/configs/t2048.yaml
unless a path is given. Existing files are kept unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfigInit,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigBoard, "board", defaultBoard, "Board whose configuration to print")
	configInitCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	v, ok := t2048.VariantByID(flagConfigBoard)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", flagConfigBoard)
		os.Exit(1)
	}

	cfg, source := t2048.ResolveConfig(v)
	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# board: %s, source: %s\n", v.ID, source)
	os.Stdout.Write(data)
}

func runConfigInit(_ *cobra.Command, args []string) {
	path := config.UserConfigFile()
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: no home directory, pass a path")
		os.Exit(1)
	}

	if !flagConfigForce {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s exists, use --force to overwrite\n", path)
			os.Exit(1)
		} else if !errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := config.WriteT2048(path, config.DefaultT2048Config()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
