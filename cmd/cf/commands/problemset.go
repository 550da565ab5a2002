package commands

import (
	"fmt"

	"codeforces-client/lib/codeforces/api"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var problemsetCmd = &cobra.Command{
	Use:   "problemset",
	Short: "Commands for the problemset.* methods.",
}

var (
	problemsTags  []string
	problemsName  string
	problemsLimit int
)

var problemsetProblemsCmd = &cobra.Command{
	Use:   "problems [--tags a,b] [--problemset <name>] [--limit <n>]",
	Short: "Prints the problems of the problemset.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		problemset, err := client.ProblemsetProblems(cmd.Context(), api.ProblemsetProblemsParams{
			Tags:           problemsTags,
			ProblemsetName: problemsName,
		})
		if err != nil {
			return err
		}

		solved := make(map[string]int, len(problemset.ProblemStatistics))
		for _, s := range problemset.ProblemStatistics {
			solved[orDefault(s.ContestId, "")+s.Index] = s.SolvedCount
		}
		problems := problemset.Problems
		if problemsLimit > 0 && len(problems) > problemsLimit {
			problems = problems[:problemsLimit]
		}
		printProblems(problems, solved)
		return nil
	},
}

var (
	recentCount int
	recentName  string
)

var problemsetRecentCmd = &cobra.Command{
	Use:   "recent [--count <n>] [--problemset <name>]",
	Short: "Prints the latest submissions to the problemset.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		submissions, err := client.ProblemsetRecentStatus(cmd.Context(), api.ProblemsetRecentStatusParams{
			Count:          recentCount,
			ProblemsetName: recentName,
		})
		if err != nil {
			return err
		}
		printSubmissions(submissions)
		return nil
	},
}

var searchLimit int

var problemsetSearchCmd = &cobra.Command{
	Use:   "search <query> [--limit <n>]",
	Short: "Finds problems by name.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		matches, err := scrape.SearchProblems(cmd.Context(), args[0], searchLimit)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Score", "Problem", "Rating"})
		for _, m := range matches {
			t.AppendRow(table.Row{fmt.Sprintf("%.3f", m.Score), problemName(m.Problem), orDefault(m.Problem.Rating, "-")})
		}
		t.Render()
		return nil
	},
}

func init() {
	problemsetProblemsCmd.Flags().StringSliceVar(&problemsTags, "tags", nil, "Only problems with all of these tags.")
	problemsetProblemsCmd.Flags().StringVar(&problemsName, "problemset", "", "An additional archive, like acmsguru.")
	problemsetProblemsCmd.Flags().IntVar(&problemsLimit, "limit", 50, "Number of problems to print, 0 prints all.")

	problemsetRecentCmd.Flags().IntVar(&recentCount, "count", 20, "Number of submissions, at most 1000.")
	problemsetRecentCmd.Flags().StringVar(&recentName, "problemset", "", "An additional archive, like acmsguru.")

	problemsetSearchCmd.Flags().IntVar(&searchLimit, "limit", 10, "Number of matches.")

	addCommands(problemsetCmd, problemsetProblemsCmd, problemsetRecentCmd, problemsetSearchCmd)
	rootCmd.AddCommand(problemsetCmd)
}
