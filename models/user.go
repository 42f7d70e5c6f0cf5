package models

// User is one account record. The users file is append-only: profile edits
// append a new snapshot and the latest line for an id is authoritative.
type User struct {
	ID           string   `json:"id"`
	CreatedAt    string   `json:"createdAt"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"passwordHash"`
	Birthdate    string   `json:"birthdate,omitempty"`
	Gender       string   `json:"gender,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
	Region       string   `json:"region,omitempty"`
	Street       string   `json:"street,omitempty"`
	Sports       []string `json:"sports,omitempty"`
	AvatarURL    string   `json:"avatarUrl,omitempty"`
}

// UsersFile is the record file holding user snapshots.
const UsersFile = "users.jsonl"

// PublicProfile is the subset of a user safe to show to other users.
type PublicProfile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Username  string   `json:"username"`
	AvatarURL string   `json:"avatarUrl,omitempty"`
	Region    string   `json:"region,omitempty"`
	Sports    []string `json:"sports,omitempty"`
}

// Public projects the user onto its public profile.
func (u User) Public() PublicProfile {
	return PublicProfile{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		Region:    u.Region,
		Sports:    u.Sports,
	}
}
