package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// ErrInvalidConfig reports a configuration value outside its domain or an
// unknown key in the config file.
var ErrInvalidConfig = errors.New("cli: invalid config")

// Config is the effective maze generation configuration.
type Config struct {
	Rows  int   `toml:"rows"`
	Cols  int   `toml:"cols"`
	Seed  int64 `toml:"seed"`  // 0 seeds from the clock
	Solve bool  `toml:"solve"` // highlight the top-left to bottom-right route
	Color bool  `toml:"color"` // colour the route glyphs
}

// DefaultConfig returns a 10×10 unsolved maze with a clock seed.
func DefaultConfig() Config {
	return Config{Rows: 10, Cols: 10, Color: true}
}

// Validate checks the grid dimensions.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Cols < 1 {
		return fmt.Errorf("%w: rows=%d cols=%d, both must be ≥ 1", ErrInvalidConfig, c.Rows, c.Cols)
	}
	return nil
}

// LoadConfig reads a TOML file over DefaultConfig: keys absent from the file
// keep their default. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// WriteTOML encodes c to w.
func (c Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// configFlags binds the shared maze flags of a command.
type configFlags struct {
	path  string
	rows  int
	cols  int
	seed  int64
	solve bool
	color bool
}

func (f *configFlags) register(cmd *cobra.Command) {
	def := DefaultConfig()
	fs := cmd.Flags()
	fs.StringVar(&f.path, "config", "", "TOML config file")
	fs.IntVarP(&f.rows, "rows", "r", def.Rows, "number of rows")
	fs.IntVarP(&f.cols, "cols", "c", def.Cols, "number of columns")
	fs.Int64VarP(&f.seed, "seed", "s", def.Seed, "random seed (0 = from clock)")
	fs.BoolVar(&f.solve, "solve", def.Solve, "highlight the route from the top-left to the bottom-right room")
	fs.BoolVar(&f.color, "color", def.Color, "colour the highlighted route")
}

// resolve layers defaults, the config file and explicitly set flags.
func (f *configFlags) resolve(cmd *cobra.Command) (Config, error) {
	cfg := DefaultConfig()
	if f.path != "" {
		loaded, err := LoadConfig(f.path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	fs := cmd.Flags()
	if fs.Changed("rows") {
		cfg.Rows = f.rows
	}
	if fs.Changed("cols") {
		cfg.Cols = f.cols
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("solve") {
		cfg.Solve = f.solve
	}
	if fs.Changed("color") {
		cfg.Color = f.color
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newConfigCmd() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return cfg.WriteTOML(cmd.OutOrStdout())
		},
	}
	flags.register(cmd)

	return cmd
}
