// Package profile owns the userProfile record and the session flag.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Kisalay21/familytree/internal/client/migrate"
	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/client/storage"
	"github.com/Kisalay21/familytree/internal/common"
	"github.com/Kisalay21/familytree/internal/logging"
	"github.com/google/uuid"
)

// Store loads, migrates and persists the user profile.
type Store struct {
	adapter storage.Adapter
	logger  logging.Logger
	gen     migrate.BirthdateFn
}

// New creates a profile store. gen may be nil to use the default birthdate
// generator.
func New(adapter storage.Adapter, logger logging.Logger, gen migrate.BirthdateFn) *Store {
	return &Store{adapter: adapter, logger: logger.With("store", "profile"), gen: gen}
}

// Get returns the migrated profile. A missing or corrupt record yields the
// documented defaults. When migration changed the record it is persisted
// once, best-effort: a quota failure keeps the migrated in-memory copy.
func (s *Store) Get(ctx context.Context) (*models.UserProfile, error) {
	p := &models.UserProfile{}
	if err := s.adapter.Load(ctx, storage.KeyUserProfile, p); err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	if migrate.Profile(p, s.gen) {
		if err := s.adapter.Save(ctx, storage.KeyUserProfile, p); err != nil {
			if !errors.Is(err, common.ErrQuotaExceeded) {
				return nil, fmt.Errorf("persisting migrated profile: %w", err)
			}
			s.logger.Warn(ctx, "could not persist migrated profile", "error", err.Error())
		}
	}

	return p, nil
}

// Save stamps LastUpdated and persists the profile.
func (s *Store) Save(ctx context.Context, p *models.UserProfile) error {
	p.LastUpdated = time.Now().UnixMilli()
	if err := s.adapter.Save(ctx, storage.KeyUserProfile, p); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// SignupForm carries the heritage slots collected at signup. Empty strings
// mean the slot is unknown.
type SignupForm struct {
	Name     string
	Email    string
	DOB      string
	Work     string
	Location string

	Father string
	Mother string
	PatGF  string
	PatGM  string
	MatGF  string
	MatGM  string
	PatGGF string
	PatGGM string
	MatGGF string
	MatGGM string
}

// Signup creates the profile from the heritage form, seeds the father and
// mother immediate-family entries, marks the session authenticated and
// persists everything.
func (s *Store) Signup(ctx context.Context, form SignupForm) (*models.UserProfile, error) {
	p := &models.UserProfile{
		UID:         uuid.NewString(),
		DisplayName: form.Name,
		Email:       form.Email,
		DOB:         form.DOB,
		Work:        form.Work,
		Location:    form.Location,
		Heritage: models.Heritage{
			Father: form.Father,
			Mother: form.Mother,
			Paternal: models.Lineage{
				Grandfather:      form.PatGF,
				Grandmother:      form.PatGM,
				GreatGrandfather: form.PatGGF,
				GreatGrandmother: form.PatGGM,
			},
			Maternal: models.Lineage{
				Grandfather:      form.MatGF,
				Grandmother:      form.MatGM,
				GreatGrandfather: form.MatGGF,
				GreatGrandmother: form.MatGGM,
			},
		},
		ImmediateFamily: []models.FamilyMember{},
	}

	if form.Father != "" {
		p.ImmediateFamily = append(p.ImmediateFamily, models.FamilyMember{
			Name: form.Father, Relation: models.RelationFather,
		})
	}
	if form.Mother != "" {
		p.ImmediateFamily = append(p.ImmediateFamily, models.FamilyMember{
			Name: form.Mother, Relation: models.RelationMother,
		})
	}

	migrate.Profile(p, s.gen)

	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}
	if err := s.SetAuthenticated(ctx, true); err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateParents changes the father/mother names and keeps the heritage
// record and the seeded immediate-family entries in step.
func (s *Store) UpdateParents(ctx context.Context, father, mother string) (*models.UserProfile, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	p.Heritage.Father = father
	p.Heritage.Mother = mother
	setFamilyEntry(p, models.RelationFather, father)
	setFamilyEntry(p, models.RelationMother, mother)

	if err := s.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func setFamilyEntry(p *models.UserProfile, relation, name string) {
	if name == "" {
		return
	}
	for i := range p.ImmediateFamily {
		if p.ImmediateFamily[i].Relation == relation {
			p.ImmediateFamily[i].Name = name
			return
		}
	}
	p.ImmediateFamily = append(p.ImmediateFamily, models.FamilyMember{Name: name, Relation: relation})
}

// SetAuthenticated persists or clears the session flag.
func (s *Store) SetAuthenticated(ctx context.Context, v bool) error {
	if !v {
		return s.adapter.Delete(ctx, storage.KeySession)
	}
	return s.adapter.Save(ctx, storage.KeySession, "true")
}

// IsAuthenticated reports whether the session flag is set.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	var flag string
	if err := s.adapter.Load(ctx, storage.KeySession, &flag); err != nil {
		return false
	}
	return flag == "true"
}
