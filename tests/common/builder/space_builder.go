//go:build unit || e2e

package builder

import (
	"parkspace/internal/domain/space"

	"github.com/google/uuid"
)

type SpaceBuilder struct {
	HostID       uuid.UUID
	Title        string
	Description  string
	Address      string
	Lat          float64
	Lng          float64
	AutoApproval bool
	Active       bool
}

func NewSpaceBuilder() *SpaceBuilder {
	return &SpaceBuilder{
		HostID:      uuid.New(),
		Title:       "Station-side parking",
		Description: "Covered lot two minutes from the station",
		Address:     "12-3 Example-dong, Example City",
		Lat:         37.5665,
		Lng:         126.978,
		Active:      true,
	}
}

func (s *SpaceBuilder) With(mutate func(*SpaceBuilder)) *SpaceBuilder {
	mutate(s)
	return s
}

func (s *SpaceBuilder) BuildDomain() (*space.Space, error) {
	coords, err := space.NewCoordinates(s.Lat, s.Lng)
	if err != nil {
		return nil, err
	}
	sp, err := space.NewSpace(s.HostID, s.Title, s.Description, s.Address, coords, s.AutoApproval)
	if err != nil {
		return nil, err
	}
	if !s.Active {
		sp.Deactivate()
	}
	return sp, nil
}

// MustRule builds an availability rule from literal parts, panicking on
// invalid input. Intended for test fixtures only.
func MustRule(spaceID uuid.UUID, day int, start, end string) space.AvailabilityRule {
	w, err := space.NewWeekday(day)
	if err != nil {
		panic(err)
	}
	st, err := space.ParseTimeOfDay(start)
	if err != nil {
		panic(err)
	}
	en, err := space.ParseTimeOfDay(end)
	if err != nil {
		panic(err)
	}
	rule, err := space.NewAvailabilityRule(spaceID, w, st, en)
	if err != nil {
		panic(err)
	}
	return rule
}
