package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/Kisalay21/familytree/internal/client/models"
	"github.com/Kisalay21/familytree/internal/client/storage"
	"github.com/Kisalay21/familytree/internal/client/stores/profile"
)

// Signup walks through the heritage form and creates the local profile.
func (a *App) Signup(ctx context.Context) error {

	form := profile.SignupForm{}
	out := os.Stdout

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Your name:", &form.Name},
		{"Email:", &form.Email},
		{"Date of birth (YYYY-MM-DD, optional):", &form.DOB},
		{"Work (optional):", &form.Work},
		{"Location (optional):", &form.Location},
		{models.RelationFather + ":", &form.Father},
		{models.RelationMother + ":", &form.Mother},
		{"Paternal grandfather (optional):", &form.PatGF},
		{"Paternal grandmother (optional):", &form.PatGM},
		{"Maternal grandfather (optional):", &form.MatGF},
		{"Maternal grandmother (optional):", &form.MatGM},
		{"Paternal great-grandfather (optional):", &form.PatGGF},
		{"Paternal great-grandmother (optional):", &form.PatGGM},
		{"Maternal great-grandfather (optional):", &form.MatGGF},
		{"Maternal great-grandmother (optional):", &form.MatGGM},
	}

	for _, p := range prompts {
		v, err := GetSimpleText(a.reader, p.label, out)
		if err != nil {
			return err
		}
		*p.dst = v
	}

	if form.Name == "" {
		fmt.Println("A name is required.")
		return nil
	}

	// Profiles are device-local; the password is part of the form but is
	// not persisted anywhere.
	pw, err := GetPassword(out)
	if err != nil {
		return err
	}
	for i := range pw {
		pw[i] = 0
	}

	p, err := a.profiles.Signup(ctx, form)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Welcome, %s!\n", p.DisplayName)
	return nil
}

// Login reopens a stored profile; there is nothing to authenticate against,
// the profile lives on this device.
func (a *App) Login(ctx context.Context) error {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if p.UID == "" {
		fmt.Println("No profile on this device yet; use 'signup' first.")
		return nil
	}

	if err := a.profiles.SetAuthenticated(ctx, true); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Welcome back, %s!\n", p.DisplayName)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.profiles.SetAuthenticated(ctx, false); err != nil {
		fmt.Println(err.Error())
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// Reset wipes every locally persisted record.
func (a *App) Reset(ctx context.Context) error {
	confirm, err := GetSimpleText(a.reader, "This erases all local data. Type 'yes' to continue:", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Println("Cancelled.")
		return nil
	}

	err = a.adapter.Clear(ctx,
		storage.KeyUserProfile,
		storage.KeyMediaVault,
		storage.KeyFeedPosts,
		storage.KeyChatData,
		storage.KeyRecentActivities,
		storage.KeySession,
	)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("All local data erased.")
	return nil
}
