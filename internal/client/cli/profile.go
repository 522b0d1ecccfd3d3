package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Kisalay21/familytree/internal/client/stores/profile"
)

func (a *App) ShowProfile(ctx context.Context) error {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("%s (%s)\n", p.DisplayName, p.Role)
	if p.Bio != "" {
		fmt.Println(p.Bio)
	}
	fmt.Printf("Born: %s\n", p.DOB)
	if p.Work != "" {
		fmt.Printf("Work: %s\n", p.Work)
	}
	if p.Location != "" {
		fmt.Printf("Location: %s\n", p.Location)
	}

	if len(p.ImmediateFamily) > 0 {
		fmt.Println("Family:")
		for _, m := range p.ImmediateFamily {
			line := fmt.Sprintf("  %s — %s", m.Name, m.Relation)
			if m.DOB != "" {
				line += fmt.Sprintf(" (born %s)", m.DOB)
			}
			fmt.Println(line)
		}
	}
	return nil
}

// EditProfile updates the basic fields; empty input keeps the current value.
// Changing the parents also updates the heritage record and the seeded
// family entries.
func (a *App) EditProfile(ctx context.Context) error {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	out := os.Stdout
	fields := []struct {
		label string
		dst   *string
	}{
		{"Name", &p.DisplayName},
		{"Bio", &p.Bio},
		{"Work", &p.Work},
		{"Location", &p.Location},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, fmt.Sprintf("%s [%s]:", f.label, *f.dst), out)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = v
		}
	}

	if err := a.profiles.Save(ctx, p); err != nil {
		fmt.Println(err.Error())
		return err
	}

	father, err := GetSimpleText(a.reader, fmt.Sprintf("Father [%s]:", p.Heritage.Father), out)
	if err != nil {
		return err
	}
	mother, err := GetSimpleText(a.reader, fmt.Sprintf("Mother [%s]:", p.Heritage.Mother), out)
	if err != nil {
		return err
	}
	if father != "" || mother != "" {
		if father == "" {
			father = p.Heritage.Father
		}
		if mother == "" {
			mother = p.Heritage.Mother
		}
		if _, err := a.profiles.UpdateParents(ctx, father, mother); err != nil {
			fmt.Println(err.Error())
			return err
		}
	}

	fmt.Println("Profile updated.")
	return nil
}

// Birthday shows the next family birthday coming up.
func (a *App) Birthday(ctx context.Context) error {
	p, err := a.profiles.Get(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	b, ok := profile.UpcomingBirthday(p, time.Now())
	if !ok {
		fmt.Println("No family birthdays on record.")
		return nil
	}

	if b.DaysUntil == 0 {
		fmt.Printf("%s turns %d today!\n", b.Member.Name, b.Turning)
	} else {
		fmt.Printf("%s turns %d in %d day(s), on %s.\n",
			b.Member.Name, b.Turning, b.DaysUntil, b.Date.Format("Jan 2"))
	}
	return nil
}
