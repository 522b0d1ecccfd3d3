// Package models holds the server-side feed records.
package models

// Comment is one comment on a feed post. The JSON tags match the stored
// jsonb payload, which uses the same field names as the clients.
type Comment struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	AuthorImage string `json:"authorImage"`
	Text        string `json:"text"`
	Timestamp   int64  `json:"timestamp"`
}

// Post is one feed post as stored by the server.
type Post struct {
	ID           string
	VaultMediaID string
	AuthorID     string
	Author       string
	AuthorImage  string
	Relationship string
	Content      string
	Image        string
	Video        string
	Timestamp    string // RFC3339; lexical order equals chronological order
	DisplayTime  string
	Likes        int64
	IsLiked      bool
	Comments     int64
	CommentsList []Comment
}

// PostPatch is a partial update. Nil pointers leave the field alone;
// HasCommentsList marks an intentional (possibly empty) list replacement.
type PostPatch struct {
	Likes           *int64
	IsLiked         *bool
	Comments        *int64
	HasCommentsList bool
	CommentsList    []Comment
	Content         *string
}

// Apply copies the set fields onto p.
func (pp PostPatch) Apply(p *Post) {
	if pp.Likes != nil {
		p.Likes = *pp.Likes
	}
	if pp.IsLiked != nil {
		p.IsLiked = *pp.IsLiked
	}
	if pp.Comments != nil {
		p.Comments = *pp.Comments
	}
	if pp.HasCommentsList {
		p.CommentsList = pp.CommentsList
	}
	if pp.Content != nil {
		p.Content = *pp.Content
	}
}
