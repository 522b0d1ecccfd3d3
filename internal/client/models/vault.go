package models

// The protected default folder. It always exists and cannot be deleted.
const (
	GeneralFolderID   FlexID = "1"
	GeneralFolderName        = "General Memories"
)

// Media kinds stored in the vault.
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// AvatarSentinel marks a comment avatar that should resolve to the current
// profile photo at render time instead of a fixed payload reference.
const AvatarSentinel = "user-avatar"

// MediaComment is a comment attached to a vault media item.
type MediaComment struct {
	ID     FlexID `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Avatar string `json:"avatar,omitempty"`
}

// MediaItem is one photo or video in the vault. When the item mirrors a
// feed post, its ID doubles as the post's vaultMediaId.
type MediaItem struct {
	ID       FlexID         `json:"id"`
	Type     string         `json:"type"`
	Src      string         `json:"src"`
	Likes    int64          `json:"likes"`
	Liked    bool           `json:"likeState"`
	Comments []MediaComment `json:"comments"`
	TaggedBy string         `json:"taggedBy,omitempty"`
}

// Folder groups media items.
type Folder struct {
	ID    FlexID      `json:"id"`
	Name  string      `json:"name"`
	Media []MediaItem `json:"media"`
}

// Vault is the record persisted under the mediaVault key.
type Vault struct {
	Folders []Folder    `json:"folders"`
	Tagged  []MediaItem `json:"tagged"`
}

// FindMedia returns the item with the given id, searching every folder and
// then the tagged collection, or nil when the vault does not hold it. The
// pointer aliases the vault's own storage, so edits through it survive a
// subsequent save of the vault.
func (v *Vault) FindMedia(id FlexID) *MediaItem {
	for fi := range v.Folders {
		for mi := range v.Folders[fi].Media {
			if v.Folders[fi].Media[mi].ID.Matches(id) {
				return &v.Folders[fi].Media[mi]
			}
		}
	}
	for i := range v.Tagged {
		if v.Tagged[i].ID.Matches(id) {
			return &v.Tagged[i]
		}
	}
	return nil
}

// RemoveMedia deletes the item with the given id from its folder or from the
// tagged collection and reports whether anything was removed.
func (v *Vault) RemoveMedia(id FlexID) bool {
	for fi := range v.Folders {
		for mi := range v.Folders[fi].Media {
			if v.Folders[fi].Media[mi].ID.Matches(id) {
				v.Folders[fi].Media = append(v.Folders[fi].Media[:mi], v.Folders[fi].Media[mi+1:]...)
				return true
			}
		}
	}
	for i := range v.Tagged {
		if v.Tagged[i].ID.Matches(id) {
			v.Tagged = append(v.Tagged[:i], v.Tagged[i+1:]...)
			return true
		}
	}
	return false
}
