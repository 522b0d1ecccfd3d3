package models

// Relation labels used for the two seeded immediate-family entries.
// Profile edits locate the father/mother rows by these values.
const (
	RelationFather = "Pita Ji (Father)"
	RelationMother = "Mata Ji (Mother)"
)

// FamilyMember is one entry of the immediate-family directory.
type FamilyMember struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Img      string `json:"img,omitempty"`
	DOB      string `json:"dob,omitempty"` // YYYY-MM-DD
}

// Lineage holds one side (paternal or maternal) of the heritage record.
// Empty strings mean the slot is unknown.
type Lineage struct {
	Grandfather      string `json:"grandfather,omitempty"`
	Grandmother      string `json:"grandmother,omitempty"`
	GreatGrandfather string `json:"greatGrandfather,omitempty"`
	GreatGrandmother string `json:"greatGrandmother,omitempty"`
}

// Heritage is the fixed four-generation ancestry record.
type Heritage struct {
	Father   string  `json:"father,omitempty"`
	Mother   string  `json:"mother,omitempty"`
	Paternal Lineage `json:"paternal"`
	Maternal Lineage `json:"maternal"`
}

// UserProfile is the record persisted under the userProfile key.
type UserProfile struct {
	UID             string         `json:"uid,omitempty"`
	DisplayName     string         `json:"displayName"`
	Email           string         `json:"email,omitempty"`
	DOB             string         `json:"dob,omitempty"`
	Work            string         `json:"work,omitempty"`
	Location        string         `json:"location"`
	Bio             string         `json:"bio"`
	Role            string         `json:"role"`
	PhotoURL        string         `json:"photoURL,omitempty"`
	CoverPhoto      string         `json:"coverPhoto,omitempty"`
	Heritage        Heritage       `json:"heritage"`
	ImmediateFamily []FamilyMember `json:"immediateFamily"`
	LastUpdated     int64          `json:"lastUpdated,omitempty"`
}
