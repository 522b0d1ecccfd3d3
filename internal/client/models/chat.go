package models

// Conversation statuses. Pending conversations never advance to accepted
// through local sends; only the counterpart could accept.
const (
	ConversationAccepted = "accepted"
	ConversationPending  = "pending"
)

// Message is one chat message. Sender is "me" for locally sent messages.
type Message struct {
	ID        FlexID `json:"id"`
	Text      string `json:"text"`
	Sender    string `json:"sender"`
	Timestamp string `json:"timestamp"`
}

// Conversation is the message history with one counterpart.
type Conversation struct {
	Messages []Message `json:"messages"`
	Status   string    `json:"status"`
	Unread   int       `json:"unread"`
}

// ChatData is the record persisted under the chatData key, keyed by
// counterpart name.
type ChatData struct {
	Conversations map[string]Conversation `json:"conversations"`
}
