package commands

import (
	"fmt"
	"strings"

	"codeforces-client/lib/codeforces/api"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var contestCmd = &cobra.Command{
	Use:   "contest",
	Short: "Commands for the contest.* methods.",
}

var (
	contestListGym   bool
	contestListPhase string
)

var contestListCmd = &cobra.Command{
	Use:   "list [--gym] [--phase <phase>]",
	Short: "Prints contests, newest first.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		contests, err := client.ContestList(cmd.Context(), contestListGym)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Id", "Name", "Type", "Phase", "Start", "Length"})
		for _, c := range contests {
			if contestListPhase != "" && !strings.EqualFold(c.Phase, contestListPhase) {
				continue
			}
			start := "-"
			if c.StartTimeSeconds != nil {
				start = formatTime(*c.StartTimeSeconds)
			}
			t.AppendRow(table.Row{
				c.Id,
				c.Name,
				c.Type,
				c.Phase,
				start,
				fmt.Sprintf("%dm", c.DurationSeconds/60),
			})
		}
		t.Render()
		return nil
	},
}

var (
	standingsFrom       int
	standingsCount      int
	standingsRoom       int
	standingsHandles    []string
	standingsUnofficial bool
	standingsManager    bool
)

var contestStandingsCmd = &cobra.Command{
	Use:   "standings <contest-id> [--from <n>] [--count <n>] [--handles a,b] [--room <n>] [--unofficial]",
	Short: "Prints the standings of a contest.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contestId, err := intArg(args, 0, "contest-id")
		if err != nil {
			return err
		}
		standings, err := client.ContestStandings(cmd.Context(), api.ContestStandingsParams{
			ContestId:      contestId,
			From:           standingsFrom,
			Count:          standingsCount,
			Handles:        standingsHandles,
			Room:           standingsRoom,
			ShowUnofficial: standingsUnofficial,
			AsManager:      standingsManager,
		})
		if err != nil {
			return err
		}

		fmt.Println(standings.Contest.Name)

		header := table.Row{"Rank", "Who", "Points", "Penalty", "Hacks"}
		for _, p := range standings.Problems {
			header = append(header, p.Index)
		}
		t := newTable()
		t.AppendHeader(header)
		for _, row := range standings.Rows {
			line := table.Row{
				row.Rank,
				strings.Join(row.Party.Handles(), ", "),
				row.Points,
				row.Penalty,
				fmt.Sprintf("+%d:-%d", row.SuccessfulHackCount, row.UnsuccessfulHackCount),
			}
			for _, result := range row.ProblemResults {
				switch {
				case result.Points > 0:
					line = append(line, result.Points)
				case result.RejectedAttemptCount > 0:
					line = append(line, fmt.Sprintf("-%d", result.RejectedAttemptCount))
				default:
					line = append(line, "")
				}
			}
			t.AppendRow(line)
		}
		t.Render()
		return nil
	},
}

var (
	contestStatusHandle  string
	contestStatusFrom    int
	contestStatusCount   int
	contestStatusManager bool
)

var contestStatusCmd = &cobra.Command{
	Use:   "status <contest-id> [--handle <handle>] [--from <n>] [--count <n>]",
	Short: "Prints the submissions of a contest.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contestId, err := intArg(args, 0, "contest-id")
		if err != nil {
			return err
		}
		submissions, err := client.ContestStatus(cmd.Context(), api.ContestStatusParams{
			ContestId: contestId,
			Handle:    contestStatusHandle,
			From:      contestStatusFrom,
			Count:     contestStatusCount,
			AsManager: contestStatusManager,
		})
		if err != nil {
			return err
		}
		printSubmissions(submissions)
		return nil
	},
}

var contestHacksManager bool

var contestHacksCmd = &cobra.Command{
	Use:   "hacks <contest-id> [--manager]",
	Short: "Prints the hacks of a contest.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contestId, err := intArg(args, 0, "contest-id")
		if err != nil {
			return err
		}
		hacks, err := client.ContestHacks(cmd.Context(), contestId, contestHacksManager)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Id", "When", "Hacker", "Defender", "Problem", "Verdict"})
		for _, h := range hacks {
			t.AppendRow(table.Row{
				h.Id,
				formatTime(h.CreationTimeSeconds),
				strings.Join(h.Hacker.Handles(), ", "),
				strings.Join(h.Defender.Handles(), ", "),
				problemName(h.Problem),
				orDefault(h.Verdict, "TESTING"),
			})
		}
		t.Render()
		return nil
	},
}

var contestRatingsCmd = &cobra.Command{
	Use:   "ratings <contest-id>",
	Short: "Prints the rating changes after a contest.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contestId, err := intArg(args, 0, "contest-id")
		if err != nil {
			return err
		}
		changes, err := client.ContestRatingChanges(cmd.Context(), contestId)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Rank", "Handle", "Old", "New", "Delta"})
		for _, c := range changes {
			t.AppendRow(table.Row{c.Rank, c.Handle, c.OldRating, c.NewRating, fmt.Sprintf("%+d", c.Delta())})
		}
		t.Render()
		return nil
	},
}

func init() {
	contestListCmd.Flags().BoolVar(&contestListGym, "gym", false, "List gym contests instead.")
	contestListCmd.Flags().StringVar(&contestListPhase, "phase", "", "Only contests in this phase, like BEFORE or FINISHED.")

	standings := contestStandingsCmd.Flags()
	standings.IntVar(&standingsFrom, "from", 1, "1-based index of the first row.")
	standings.IntVar(&standingsCount, "count", 20, "Number of rows.")
	standings.IntVar(&standingsRoom, "room", 0, "Only rows of this room.")
	standings.StringSliceVar(&standingsHandles, "handles", nil, "Only rows of these handles.")
	standings.BoolVar(&standingsUnofficial, "unofficial", false, "Include unofficial participants.")
	standings.BoolVar(&standingsManager, "manager", false, "Request as a contest manager.")

	contestStatusCmd.Flags().StringVar(&contestStatusHandle, "handle", "", "Only submissions of this user.")
	contestStatusCmd.Flags().IntVar(&contestStatusFrom, "from", 1, "1-based index of the first submission.")
	contestStatusCmd.Flags().IntVar(&contestStatusCount, "count", 20, "Number of submissions.")
	contestStatusCmd.Flags().BoolVar(&contestStatusManager, "manager", false, "Request as a contest manager.")

	contestHacksCmd.Flags().BoolVar(&contestHacksManager, "manager", false, "Request as a contest manager.")

	addCommands(contestCmd, contestListCmd, contestStandingsCmd, contestStatusCmd, contestHacksCmd, contestRatingsCmd)
	rootCmd.AddCommand(contestCmd)
}
