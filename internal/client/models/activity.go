package models

// Activity is one entry of the capped recent-activity log.
type Activity struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Actor     string `json:"actor"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
	Icon      string `json:"icon,omitempty"`
}
