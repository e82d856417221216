package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazegraph/maze"
)

func newGenerateCmd() *cobra.Command {
	var (
		flags  configFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Carve a perfect maze and draw it",
		Long: `Carve a rows×cols perfect maze and draw it as ASCII.

With --solve the route from the top-left to the bottom-right room is marked.
The same --seed always produces the same maze.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if output == "" {
				return runGenerate(cmd, cfg, cmd.OutOrStdout())
			}
			return generateToFile(cmd, cfg, output)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the drawing to a file instead of stdout")

	return cmd
}

// generateToFile runs generate with the drawing written to path.
func generateToFile(cmd *cobra.Command, cfg Config, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return runGenerate(cmd, cfg, f)
}

// runGenerate carves a maze per cfg and writes its drawing to w.
func runGenerate(cmd *cobra.Command, cfg Config, w io.Writer) error {
	ctx := cmd.Context()
	logger := log.FromContext(ctx)
	timer := beginStage(logger)

	m, err := maze.NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return err
	}
	logger.Debug("grid built", "id", m.ID, "rooms", len(m.Rooms), "walls", len(m.Walls))

	var opts []maze.CarverOption
	if cfg.Seed != 0 {
		opts = append(opts, maze.WithSeed(cfg.Seed))
	}
	removed, err := maze.NewKruskalCarver(opts...).WallsToRemove(m)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Debug("walls carved", "removed", len(removed), "standing", len(m.Walls)-len(removed))

	ropts := maze.DefaultRenderOptions()
	ropts.RouteGlyph = routeGlyph
	ropts.Style = routeStyle(w, cfg.Color)
	if cfg.Solve {
		from, to := m.Rooms[0], m.Rooms[len(m.Rooms)-1]
		route, err := maze.Solve(m, removed, from, to)
		if err != nil {
			return err
		}
		ropts.Route = maze.RouteRooms(from, route)
		logger.Debug("maze solved", "from", from, "to", to, "length", len(route))
	}

	if _, err := io.WriteString(w, maze.Render(m, removed, ropts)); err != nil {
		return fmt.Errorf("write drawing: %w", err)
	}
	timer.end("maze carved", "rows", cfg.Rows, "cols", cfg.Cols, "id", StyleDim.Render(m.ID.String()))

	return nil
}
