package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	apiv1alpha1 "github.com/KirkDiggler/hexpath/internal/api/v1alpha1"
)

var (
	gridFile    string
	sourceFlag  string
	targetFlag  string
	requestType string
	render      bool
)

var findPathCmd = &cobra.Command{
	Use:   "find-path",
	Short: "Find the shortest path across a grid file",
	Long: `Send a grid to the server and print the shortest path, target first.

The grid file holds one row per line using b (empty), o (obstacle),
s (start) and e (end). Blank lines and lines starting with # are skipped.

  find-path --grid-file maze.txt --source 0,0 --target 2,2 --render`,
	Args: cobra.NoArgs,
	RunE: findPath,
}

func init() {
	findPathCmd.Flags().StringVar(&gridFile, "grid-file", "", "Path to the grid file (- for stdin)")
	findPathCmd.Flags().StringVar(&sourceFlag, "source", "0,0", "Source cell as row,col")
	findPathCmd.Flags().StringVar(&targetFlag, "target", "", "Target cell as row,col")
	findPathCmd.Flags().StringVar(&requestType, "type", "dijkstra", "Search algorithm")
	findPathCmd.Flags().BoolVar(&render, "render", false, "Draw the grid with the path highlighted")
	_ = findPathCmd.MarkFlagRequired("grid-file")
	_ = findPathCmd.MarkFlagRequired("target")
}

func findPath(cmd *cobra.Command, _ []string) error {
	rows, err := loadGrid(gridFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	source, err := parseOffset(sourceFlag)
	if err != nil {
		return fmt.Errorf("invalid --source: %w", err)
	}
	target, err := parseOffset(targetFlag)
	if err != nil {
		return fmt.Errorf("invalid --target: %w", err)
	}

	client, cleanup, err := createPathfinderClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.FindPath(ctx, &apiv1alpha1.FindPathRequest{
		RequestType: requestType,
		Source:      source,
		Target:      target,
		Grid:        cellRows(rows),
	})
	if err != nil {
		return fmt.Errorf("failed to find path: %w", err)
	}

	out := cmd.OutOrStdout()
	printPath(out, resp.Path)
	if render {
		_, _ = fmt.Fprintln(out, renderGrid(rows, resp.Path))
	}
	return nil
}

func loadGrid(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return readGrid(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return readGrid(f)
}

// readGrid reads one grid row per line. Whitespace inside a row is ignored
// so rows may be written as "s b b".
func readGrid(r io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rows = append(rows, strings.Join(strings.Fields(line), ""))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("grid is empty")
	}
	return rows, nil
}

func cellRows(rows []string) [][]string {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = strings.Split(row, "")
	}
	return cells
}

// parseOffset parses "row,col"; negative values are allowed
func parseOffset(value string) (*apiv1alpha1.Offset, error) {
	rowText, colText, ok := strings.Cut(value, ",")
	if !ok {
		return nil, fmt.Errorf("expected row,col but got %q", value)
	}
	row, err := strconv.ParseInt(strings.TrimSpace(rowText), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("bad row %q: %w", rowText, err)
	}
	col, err := strconv.ParseInt(strings.TrimSpace(colText), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("bad col %q: %w", colText, err)
	}
	return &apiv1alpha1.Offset{Row: int32(row), Col: int32(col)}, nil
}
