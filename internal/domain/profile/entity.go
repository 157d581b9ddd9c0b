package profile

import "time"

type Profile struct {
	ID           int64
	UserID       string
	Name         *string
	Email        *string
	PasswordHash *string
	Courses      []string
	Interests    []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName falls back to the raw user id when no name is on file.
func (p Profile) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return p.UserID
}
