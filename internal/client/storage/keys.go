package storage

// Keys of the persisted records. Values predate this implementation and must
// not change, or old local data becomes unreachable.
const (
	KeyUserProfile      = "userProfile"
	KeyMediaVault       = "mediaVault"
	KeyFeedPosts        = "feedPosts"
	KeyChatData         = "chatData"
	KeyRecentActivities = "recentActivities"
	KeySession          = "isAuthenticated"
)
