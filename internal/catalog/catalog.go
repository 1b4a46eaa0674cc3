// Package catalog provides the activity catalog the registry is seeded with.
//
// The built-in catalog mirrors the Mergington High School offerings. An
// operator can replace it with a YAML file (config catalog_file) shaped as:
//
//	activities:
//	  Chess Club:
//	    description: ...
//	    schedule: ...
//	    max_participants: 12
//	    participants: [a@mergington.edu]
package catalog

import (
	"context"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/domain/model"
)

// entry is the YAML shape of a single activity.
type entry struct {
	Description     string   `koanf:"description"`
	Schedule        string   `koanf:"schedule"`
	MaxParticipants int      `koanf:"max_participants"`
	Participants    []string `koanf:"participants"`
}

// BuiltIn returns the default activity catalog with its seeded rosters.
func BuiltIn() []model.Activity {
	return []model.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Roster:          model.NewRoster("michael@mergington.edu", "daniel@mergington.edu"),
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Roster:          model.NewRoster("emma@mergington.edu", "sophia@mergington.edu"),
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Roster:          model.NewRoster("john@mergington.edu", "olivia@mergington.edu"),
		},
		{
			Name:            "Basketball Team",
			Description:     "Practice and compete in basketball tournaments",
			Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Roster:          model.NewRoster("liam@mergington.edu", "noah@mergington.edu"),
		},
		{
			Name:            "Tennis Club",
			Description:     "Learn tennis techniques and play friendly matches",
			Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 10,
			Roster:          model.NewRoster("ava@mergington.edu"),
		},
		{
			Name:            "Drama Club",
			Description:     "Act, direct, and produce the school plays",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 25,
			Roster:          model.NewRoster("mia@mergington.edu", "lucas@mergington.edu"),
		},
		{
			Name:            "Robotics Club",
			Description:     "Design and build robots for regional competitions",
			Schedule:        "Thursdays, 3:30 PM - 5:30 PM",
			MaxParticipants: 16,
			Roster:          model.NewRoster("ethan@mergington.edu"),
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing, and sculpture",
			Schedule:        "Fridays, 2:00 PM - 3:30 PM",
			MaxParticipants: 18,
			Roster:          model.NewRoster("amelia@mergington.edu"),
		},
		{
			Name:            "Debate Team",
			Description:     "Develop argumentation skills and compete in debates",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:00 PM",
			MaxParticipants: 14,
			Roster:          model.NewRoster("harper@mergington.edu", "jack@mergington.edu"),
		},
	}
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(ctx context.Context, path string) ([]model.Activity, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalog, err)
	}

	var raw struct {
		Activities map[string]entry `koanf:"activities"`
	}
	if err := k.UnmarshalWithConf("", &raw, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalog, err)
	}
	if len(raw.Activities) == 0 {
		return nil, fmt.Errorf("%w: no activities defined", ErrInvalidCatalog)
	}

	out := make([]model.Activity, 0, len(raw.Activities))
	for name, e := range raw.Activities {
		if name == "" {
			return nil, fmt.Errorf("%w: activity with empty name", ErrInvalidCatalog)
		}
		if e.Description == "" || e.Schedule == "" {
			return nil, fmt.Errorf("%w: activity %q missing description or schedule", ErrInvalidCatalog, name)
		}
		out = append(out, model.Activity{
			Name:            name,
			Description:     e.Description,
			Schedule:        e.Schedule,
			MaxParticipants: e.MaxParticipants,
			Roster:          model.NewRoster(e.Participants...),
		})
	}
	return out, nil
}
