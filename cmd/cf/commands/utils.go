package commands

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func intArg(args []string, i int, name string) (int, error) {
	value, err := strconv.Atoi(args[i])
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", name, args[i])
	}
	return value, nil
}

func orDefault[T any](v *T, fallback string) string {
	if v == nil {
		return fallback
	}
	return fmt.Sprint(*v)
}

func formatTime(seconds int64) string {
	return time.Unix(seconds, 0).Format("2006-01-02 15:04")
}

func addCommands(parent *cobra.Command, children ...*cobra.Command) {
	for _, child := range children {
		parent.AddCommand(child)
	}
}
