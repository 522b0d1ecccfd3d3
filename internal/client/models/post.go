package models

// PostComment is a comment attached to a feed post.
type PostComment struct {
	ID          FlexID `json:"id"`
	Author      string `json:"author"`
	AuthorImage string `json:"authorImage,omitempty"`
	Text        string `json:"text"`
	Timestamp   int64  `json:"timestamp"`
}

// Post is one document of the shared feed collection. VaultMediaID links the
// post to its vault mirror; it is empty for posts without one.
//
// Comments holds the comment count shown in feed summaries. It is recomputed
// from len(CommentsList) on every comment mutation rather than incremented.
type Post struct {
	ID           string        `json:"id"`
	VaultMediaID FlexID        `json:"vaultMediaId,omitempty"`
	AuthorID     string        `json:"authorId,omitempty"`
	Author       string        `json:"author"`
	AuthorImage  string        `json:"authorImage,omitempty"`
	Relationship string        `json:"relationship,omitempty"`
	Content      string        `json:"content,omitempty"`
	Image        string        `json:"image,omitempty"`
	Video        string        `json:"video,omitempty"`
	Timestamp    string        `json:"timestamp"` // RFC 3339, sortable
	DisplayTime  string        `json:"displayTime,omitempty"`
	Likes        int64         `json:"likes"`
	IsLiked      bool          `json:"isLiked"`
	Comments     int64         `json:"comments"`
	CommentsList []PostComment `json:"commentsList"`
}
