package kbingest

// ContentType classifies an item for the output artifact.
type ContentType string

// Content types recognized by the output contract.
const (
	ContentTypeBlog    ContentType = "blog"
	ContentTypePodcast ContentType = "podcast_transcript"
	ContentTypeBook    ContentType = "book"
	ContentTypeOther   ContentType = "other"
)

// Item is the externally visible record for one ingested document.
// The JSON field names are the system's wire contract and must not change.
type Item struct {
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	ContentType ContentType `json:"content_type"`
	SourceURL   string      `json:"source_url"`
	Author      string      `json:"author"`
	UserID      string      `json:"user_id"`
}

// Validate returns an error if the item contains invalid fields.
// A missing title never happens in practice (the orchestrator derives one
// from the URL), but a missing source is always a bug.
func (i *Item) Validate() error {
	if i.Title == "" {
		return Errorf(EINVALID, "item title required")
	}
	if i.SourceURL == "" {
		return Errorf(EINVALID, "item source URL required")
	}
	return nil
}

// Collection is the final artifact: all items ingested in one run.
// Insertion order is extraction completion order, not discovery order.
type Collection struct {
	TeamID string `json:"team_id"`
	Items  []Item `json:"items"`
}
