// Package types contains common types used across the application
package types

// ActivityView is the read shape of a single activity as exposed by the API.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}
