package model

type BlogEntry struct {
	Id                      int
	OriginalLocale          string
	CreationTimeSeconds     int64
	AuthorHandle            string
	Title                   string
	Content                 *string // only present in blogEntry.view
	Locale                  string
	ModificationTimeSeconds int64
	AllowViewHistory        bool
	Tags                    []string
	Rating                  int
}

func BlogEntryFromMap(raw map[string]any) (*BlogEntry, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("BlogEntry", raw)
	b := &BlogEntry{
		Id:                      req(f, "id", kInt),
		OriginalLocale:          req(f, "originalLocale", kString),
		CreationTimeSeconds:     req(f, "creationTimeSeconds", kInt64),
		AuthorHandle:            req(f, "authorHandle", kString),
		Title:                   req(f, "title", kString),
		Content:                 opt(f, "content", kString),
		Locale:                  req(f, "locale", kString),
		ModificationTimeSeconds: req(f, "modificationTimeSeconds", kInt64),
		AllowViewHistory:        req(f, "allowViewHistory", kBool),
		Tags:                    req(f, "tags", kStrings),
		Rating:                  req(f, "rating", kInt),
	}
	if f.err != nil {
		return nil, f.err
	}
	return b, nil
}

func (b BlogEntry) ToMap() map[string]any {
	m := map[string]any{
		"id":                        b.Id,
		"original_locale":           b.OriginalLocale,
		"creation_time_seconds":     b.CreationTimeSeconds,
		"author_handle":             b.AuthorHandle,
		"title":                     b.Title,
		"locale":                    b.Locale,
		"modification_time_seconds": b.ModificationTimeSeconds,
		"allow_view_history":        b.AllowViewHistory,
		"tags":                      append([]string{}, b.Tags...),
		"rating":                    b.Rating,
	}
	setOpt(m, "content", b.Content)
	return m
}

type Comment struct {
	Id                  int
	CreationTimeSeconds int64
	CommentatorHandle   string
	Locale              string
	Text                string
	ParentCommentId     *int
	Rating              int
}

func CommentFromMap(raw map[string]any) (*Comment, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("Comment", raw)
	c := &Comment{
		Id:                  req(f, "id", kInt),
		CreationTimeSeconds: req(f, "creationTimeSeconds", kInt64),
		CommentatorHandle:   req(f, "commentatorHandle", kString),
		Locale:              req(f, "locale", kString),
		Text:                req(f, "text", kString),
		ParentCommentId:     opt(f, "parentCommentId", kInt),
		Rating:              req(f, "rating", kInt),
	}
	if f.err != nil {
		return nil, f.err
	}
	return c, nil
}

func (c Comment) ToMap() map[string]any {
	m := map[string]any{
		"id":                    c.Id,
		"creation_time_seconds": c.CreationTimeSeconds,
		"commentator_handle":    c.CommentatorHandle,
		"locale":                c.Locale,
		"text":                  c.Text,
		"rating":                c.Rating,
	}
	setOpt(m, "parent_comment_id", c.ParentCommentId)
	return m
}

type RecentActionKind int

const (
	TimestampOnly RecentActionKind = iota
	WithBlogEntry
	WithComment
)

func (k RecentActionKind) String() string {
	switch k {
	case WithBlogEntry:
		return "blog entry"
	case WithComment:
		return "comment"
	}
	return "timestamp"
}

// RecentAction is a timestamped action on a blog. Comment actions also carry the
// entry the comment was left under.
type RecentAction struct {
	TimeSeconds int64
	BlogEntry   *BlogEntry
	Comment     *Comment
}

func (a RecentAction) Kind() RecentActionKind {
	switch {
	case a.Comment != nil:
		return WithComment
	case a.BlogEntry != nil:
		return WithBlogEntry
	}
	return TimestampOnly
}

func RecentActionFromMap(raw map[string]any) (*RecentAction, error) {
	if raw == nil {
		return nil, nil
	}
	f := newFields("RecentAction", raw)
	a := &RecentAction{
		TimeSeconds: req(f, "timeSeconds", kInt64),
		BlogEntry:   optObject(f, "blogEntry", BlogEntryFromMap),
		Comment:     optObject(f, "comment", CommentFromMap),
	}
	if f.err != nil {
		return nil, f.err
	}
	return a, nil
}

func (a RecentAction) ToMap() map[string]any {
	m := map[string]any{
		"time_seconds": a.TimeSeconds,
	}
	if a.BlogEntry != nil {
		m["blog_entry"] = a.BlogEntry.ToMap()
	}
	if a.Comment != nil {
		m["comment"] = a.Comment.ToMap()
	}
	return m
}
