package commands

import (
	"fmt"
	"strings"

	"codeforces-client/lib/codeforces/model"

	"github.com/jedib0t/go-pretty/v6/table"
)

func problemName(p model.Problem) string {
	prefix := orDefault(p.ContestId, orDefault(p.ProblemsetName, ""))
	return fmt.Sprintf("%s%s %s", prefix, p.Index, p.Name)
}

func printSubmissions(submissions []model.Submission) {
	t := newTable()
	t.AppendHeader(table.Row{"Id", "When", "Author", "Problem", "Language", "Verdict", "Time", "Memory"})
	for _, s := range submissions {
		t.AppendRow(table.Row{
			s.Id,
			formatTime(s.CreationTimeSeconds),
			strings.Join(s.Author.Handles(), ", "),
			problemName(s.Problem),
			s.ProgrammingLanguage,
			orDefault(s.Verdict, "TESTING"),
			fmt.Sprintf("%d ms", s.TimeConsumedMillis),
			fmt.Sprintf("%d KB", s.MemoryConsumedBytes/1024),
		})
	}
	t.Render()
}

func printBlogEntries(entries []model.BlogEntry) {
	t := newTable()
	t.AppendHeader(table.Row{"Id", "Created", "Author", "Title", "Rating"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Id, formatTime(e.CreationTimeSeconds), e.AuthorHandle, e.Title, e.Rating})
	}
	t.Render()
}

func printProblems(problems []model.Problem, solved map[string]int) {
	t := newTable()
	t.AppendHeader(table.Row{"Problem", "Rating", "Solved", "Tags"})
	for _, p := range problems {
		key := orDefault(p.ContestId, "") + p.Index
		t.AppendRow(table.Row{problemName(p), orDefault(p.Rating, "-"), solved[key], strings.Join(p.Tags, ", ")})
	}
	t.Render()
}
