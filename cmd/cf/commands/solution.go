package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var solutionCmd = &cobra.Command{
	Use:   "solution <contest-id> <submission-id>",
	Short: "Prints the source code of a submission.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		contestId, err := intArg(args, 0, "contest-id")
		if err != nil {
			return err
		}
		submissionId, err := intArg(args, 1, "submission-id")
		if err != nil {
			return err
		}
		source, err := scrape.GetSolution(cmd.Context(), contestId, submissionId)
		if err != nil {
			return err
		}
		fmt.Print(source)
		return nil
	},
}

var tagsRating bool

var tagsCmd = &cobra.Command{
	Use:   "tags <contest-id> <index> [--rating]",
	Short: "Prints the tags of a problem.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		contestId, err := intArg(args, 0, "contest-id")
		if err != nil {
			return err
		}
		tags, err := scrape.GetTags(cmd.Context(), contestId, args[1], tagsRating)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(tags, "\n"))
		return nil
	},
}

func init() {
	tagsCmd.Flags().BoolVar(&tagsRating, "rating", false, "Include the difficulty as a *<rating> tag.")
	rootCmd.AddCommand(solutionCmd, tagsCmd)
}
