package commands

import (
	"fmt"
	"strings"

	"codeforces-client/lib/codeforces/api"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Commands for the user.* methods.",
}

var userInfoCmd = &cobra.Command{
	Use:   "info <handle>...",
	Short: "Prints the profiles of users.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := client.UserInfo(cmd.Context(), args)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Handle", "Rank", "Rating", "Max rating", "Country", "Organization", "Registered"})
		for _, u := range users {
			t.AppendRow(table.Row{
				u.Handle,
				orDefault(u.Rank, "unrated"),
				orDefault(u.Rating, "-"),
				orDefault(u.MaxRating, "-"),
				orDefault(u.Country, ""),
				orDefault(u.Organization, ""),
				formatTime(u.RegistrationTimeSeconds),
			})
		}
		t.Render()
		return nil
	},
}

var userRatingCmd = &cobra.Command{
	Use:   "rating <handle>",
	Short: "Prints the rating history of a user.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		changes, err := client.UserRating(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Contest", "Rank", "Old", "New", "Delta", "Updated"})
		for _, c := range changes {
			t.AppendRow(table.Row{
				c.ContestName,
				c.Rank,
				c.OldRating,
				c.NewRating,
				fmt.Sprintf("%+d", c.Delta()),
				formatTime(c.RatingUpdateTimeSeconds),
			})
		}
		t.Render()
		return nil
	},
}

var (
	userStatusFrom  int
	userStatusCount int
)

var userStatusCmd = &cobra.Command{
	Use:   "status <handle> [--from <n>] [--count <n>]",
	Short: "Prints the submissions of a user.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		submissions, err := client.UserStatus(cmd.Context(), api.UserStatusParams{
			Handle: args[0],
			From:   userStatusFrom,
			Count:  userStatusCount,
		})
		if err != nil {
			return err
		}
		printSubmissions(submissions)
		return nil
	},
}

var userBlogCmd = &cobra.Command{
	Use:   "blog <handle>",
	Short: "Prints the blog entries of a user.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := client.UserBlogEntries(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printBlogEntries(entries)
		return nil
	},
}

var userFriendsOnline bool

var userFriendsCmd = &cobra.Command{
	Use:   "friends [--online]",
	Short: "Prints the friends of the authorized user.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		friends, err := client.UserFriends(cmd.Context(), userFriendsOnline)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(friends, "\n"))
		return nil
	},
}

var (
	ratedActiveOnly     bool
	ratedIncludeRetired bool
	ratedContestId      int
	ratedLimit          int
)

var userRatedCmd = &cobra.Command{
	Use:   "rated [--active] [--retired] [--contest <id>] [--limit <n>]",
	Short: "Prints rated users by rating.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		users, err := client.UserRatedList(cmd.Context(), api.UserRatedListParams{
			ActiveOnly:     ratedActiveOnly,
			IncludeRetired: ratedIncludeRetired,
			ContestId:      ratedContestId,
		})
		if err != nil {
			return err
		}
		if ratedLimit > 0 && len(users) > ratedLimit {
			users = users[:ratedLimit]
		}

		t := newTable()
		t.AppendHeader(table.Row{"#", "Handle", "Rating", "Country"})
		for i, u := range users {
			t.AppendRow(table.Row{i + 1, u.Handle, orDefault(u.Rating, "-"), orDefault(u.Country, "")})
		}
		t.Render()
		return nil
	},
}

func init() {
	userStatusCmd.Flags().IntVar(&userStatusFrom, "from", 0, "1-based index of the first submission.")
	userStatusCmd.Flags().IntVar(&userStatusCount, "count", 10, "Number of submissions.")
	userFriendsCmd.Flags().BoolVar(&userFriendsOnline, "online", false, "Only friends that are online.")
	userRatedCmd.Flags().BoolVar(&ratedActiveOnly, "active", true, "Only users active during the last month.")
	userRatedCmd.Flags().BoolVar(&ratedIncludeRetired, "retired", false, "Include retired users.")
	userRatedCmd.Flags().IntVar(&ratedContestId, "contest", 0, "Only participants of this contest.")
	userRatedCmd.Flags().IntVar(&ratedLimit, "limit", 50, "Number of users to print, 0 prints all.")

	addCommands(userCmd, userInfoCmd, userRatingCmd, userStatusCmd, userBlogCmd, userFriendsCmd, userRatedCmd)
	rootCmd.AddCommand(userCmd)
}
