package profile

import (
	"time"

	"github.com/Kisalay21/familytree/internal/client/models"
)

// Birthday describes the next upcoming family birthday.
type Birthday struct {
	Member    models.FamilyMember
	Date      time.Time
	DaysUntil int
	Turning   int
}

// UpcomingBirthday scans the immediate family for the next birthday on or
// after now. Members without a parseable dob are skipped. It reports false
// when nothing qualifies.
func UpcomingBirthday(p *models.UserProfile, now time.Time) (Birthday, bool) {
	best := Birthday{}
	found := false

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for _, m := range p.ImmediateFamily {
		dob, err := time.Parse("2006-01-02", m.DOB)
		if err != nil {
			continue
		}

		next := time.Date(today.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
		if next.Before(today) {
			next = time.Date(today.Year()+1, dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
		}

		days := int(next.Sub(today).Hours() / 24)
		if !found || next.Before(best.Date) {
			best = Birthday{
				Member:    m,
				Date:      next,
				DaysUntil: days,
				Turning:   next.Year() - dob.Year(),
			}
			found = true
		}
	}

	return best, found
}
