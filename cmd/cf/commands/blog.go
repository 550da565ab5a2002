package commands

import (
	"fmt"

	"codeforces-client/lib/codeforces/model"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var blogCmd = &cobra.Command{
	Use:   "blog",
	Short: "Commands for the blogEntry.* methods.",
}

var blogViewCmd = &cobra.Command{
	Use:   "view <blog-entry-id>",
	Short: "Prints a blog entry.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := intArg(args, 0, "blog-entry-id")
		if err != nil {
			return err
		}
		entry, err := client.BlogEntryView(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Printf("%s\nby %s, %s, rating %d\n\n", entry.Title, entry.AuthorHandle, formatTime(entry.CreationTimeSeconds), entry.Rating)
		fmt.Println(orDefault(entry.Content, ""))
		return nil
	},
}

var blogCommentsCmd = &cobra.Command{
	Use:   "comments <blog-entry-id>",
	Short: "Prints the comments under a blog entry.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := intArg(args, 0, "blog-entry-id")
		if err != nil {
			return err
		}
		comments, err := client.BlogEntryComments(cmd.Context(), id)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"Id", "When", "Author", "Rating", "Reply to"})
		for _, c := range comments {
			t.AppendRow(table.Row{c.Id, formatTime(c.CreationTimeSeconds), c.CommentatorHandle, c.Rating, orDefault(c.ParentCommentId, "")})
		}
		t.Render()
		return nil
	},
}

var actionsCount int

var actionsCmd = &cobra.Command{
	Use:   "actions [--count <n>]",
	Short: "Prints the latest blog actions.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		actions, err := client.RecentActions(cmd.Context(), actionsCount)
		if err != nil {
			return err
		}

		t := newTable()
		t.AppendHeader(table.Row{"When", "Kind", "Who", "Entry"})
		for _, a := range actions {
			var who, entry string
			switch a.Kind() {
			case model.WithComment:
				who = a.Comment.CommentatorHandle
			case model.WithBlogEntry:
				who = a.BlogEntry.AuthorHandle
			}
			if a.BlogEntry != nil {
				entry = a.BlogEntry.Title
			}
			t.AppendRow(table.Row{formatTime(a.TimeSeconds), a.Kind(), who, entry})
		}
		t.Render()
		return nil
	},
}

func init() {
	actionsCmd.Flags().IntVar(&actionsCount, "count", 30, "Number of actions, at most 100.")

	addCommands(blogCmd, blogViewCmd, blogCommentsCmd)
	rootCmd.AddCommand(blogCmd, actionsCmd)
}
