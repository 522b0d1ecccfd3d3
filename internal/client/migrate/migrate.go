// Package migrate upgrades persisted records to the current schema. Every
// migrator is pure, idempotent, and reports whether it changed anything so
// callers persist at most once per load.
package migrate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Kisalay21/familytree/internal/client/models"
)

// BirthdateFn produces a YYYY-MM-DD date for family members persisted
// without one. It is pluggable so tests can pin the value.
type BirthdateFn func() string

// DefaultBirthdate picks a plausible adult birthdate: age 20–60, month 1–12,
// day 1–28 (always valid regardless of month).
func DefaultBirthdate() string {
	age := rand.Intn(40) + 20
	month := rand.Intn(12) + 1
	day := rand.Intn(28) + 1
	year := time.Now().Year() - age
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Default field values for profiles persisted by earlier releases.
const (
	defaultDisplayName = "Guest User"
	defaultBio         = "Welcome to your profile."
	defaultRole        = "Member"
)

// Profile fills missing profile fields and backfills family-member
// birthdates. An existing dob is never touched.
func Profile(p *models.UserProfile, gen BirthdateFn) bool {
	if gen == nil {
		gen = DefaultBirthdate
	}

	changed := false

	if p.DisplayName == "" {
		p.DisplayName = defaultDisplayName
		changed = true
	}
	if p.Bio == "" {
		p.Bio = defaultBio
		changed = true
	}
	if p.Role == "" {
		p.Role = defaultRole
		changed = true
	}

	for i := range p.ImmediateFamily {
		if p.ImmediateFamily[i].DOB == "" {
			p.ImmediateFamily[i].DOB = gen()
			changed = true
		}
	}

	return changed
}

// Media normalizes one media item: a missing comment list becomes an empty
// one and a missing kind defaults to image.
func Media(m *models.MediaItem) bool {
	changed := false

	if m.Comments == nil {
		m.Comments = []models.MediaComment{}
		changed = true
	}
	if m.Type == "" {
		m.Type = models.MediaTypeImage
		changed = true
	}

	return changed
}

// Vault guarantees the protected folder exists and migrates every media
// item it holds.
func Vault(v *models.Vault) bool {
	changed := false

	if !hasGeneralFolder(v) {
		v.Folders = append([]models.Folder{{
			ID:    models.GeneralFolderID,
			Name:  models.GeneralFolderName,
			Media: []models.MediaItem{},
		}}, v.Folders...)
		changed = true
	}

	for fi := range v.Folders {
		for mi := range v.Folders[fi].Media {
			if Media(&v.Folders[fi].Media[mi]) {
				changed = true
			}
		}
	}
	for i := range v.Tagged {
		if Media(&v.Tagged[i]) {
			changed = true
		}
	}

	return changed
}

func hasGeneralFolder(v *models.Vault) bool {
	for _, f := range v.Folders {
		if f.Name == models.GeneralFolderName {
			return true
		}
	}
	return false
}
