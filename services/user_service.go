package services

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"sportbuddy_server/models"
)

// UserService owns account records: signup, login, profile edits and
// lookups. The users file is append-only; the latest snapshot for an id
// wins, so both lookups scan from the last line backwards.
type UserService struct {
	Store *RecordStore
}

var usernameRe = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)

var reservedUsernames = map[string]struct{}{
	"app": {}, "admin": {}, "api": {}, "login": {}, "cadastro": {},
	"logout": {}, "u": {}, "me": {}, "profile": {}, "settings": {},
	"terms": {}, "privacy": {}, "search": {}, "explore": {}, "new": {},
	"edit": {}, "dashboard": {}, "static": {}, "assets": {}, "_next": {},
}

var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeUsername folds a display name into the accepted username
// alphabet: diacritics stripped, lowercased, runs of anything outside
// [a-z0-9_] collapsed to a single underscore, edges trimmed.
func NormalizeUsername(s string) string {
	folded, _, err := transform.String(stripDiacritics, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	lastUnderscore := false
	for _, r := range folded {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}

// ValidUsername reports whether a normalized username matches the
// accepted pattern. At least one letter is required.
func ValidUsername(u string) bool {
	return usernameRe.MatchString(u) && strings.IndexFunc(u, unicode.IsLower) >= 0
}

// IsReservedUsername reports whether u collides with a routing or
// product keyword.
func IsReservedUsername(u string) bool {
	_, ok := reservedUsernames[u]
	return ok
}

// FindByID returns the latest snapshot for id, or nil when absent.
func (us *UserService) FindByID(id string) (*models.User, error) {
	users, err := ReadAll[models.User](us.Store, models.UsersFile)
	if err != nil {
		return nil, err
	}
	for i := len(users) - 1; i >= 0; i-- {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindByUsername returns the latest snapshot for a username,
// case-insensitively, or nil when absent.
func (us *UserService) FindByUsername(username string) (*models.User, error) {
	users, err := ReadAll[models.User](us.Store, models.UsersFile)
	if err != nil {
		return nil, err
	}
	for i := len(users) - 1; i >= 0; i-- {
		if strings.EqualFold(users[i].Username, username) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// FindByEmail returns the latest snapshot for an email address,
// case-insensitively, or nil when absent.
func (us *UserService) FindByEmail(email string) (*models.User, error) {
	users, err := ReadAll[models.User](us.Store, models.UsersFile)
	if err != nil {
		return nil, err
	}
	for i := len(users) - 1; i >= 0; i-- {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

// SignupRequest is the payload accepted by Signup.
type SignupRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	Username   string   `json:"username"`
	Birthdate  string   `json:"birthdate"`
	Gender     string   `json:"gender"`
	PostalCode string   `json:"postalCode"`
	Region     string   `json:"region"`
	Street     string   `json:"street"`
	Sports     []string `json:"sports"`
}

func (r SignupRequest) validate() error {
	var bad []string
	if len(strings.TrimSpace(r.Name)) < 2 {
		bad = append(bad, "name")
	}
	if !strings.Contains(r.Email, "@") {
		bad = append(bad, "email")
	}
	if len(r.Password) < 8 {
		bad = append(bad, "password")
	}
	if strings.TrimSpace(r.Birthdate) == "" {
		bad = append(bad, "birthdate")
	}
	if !models.IsGender(r.Gender) {
		bad = append(bad, "gender")
	}
	if len(strings.TrimSpace(r.PostalCode)) < 8 {
		bad = append(bad, "postalCode")
	}
	if len(strings.TrimSpace(r.Region)) < 2 {
		bad = append(bad, "region")
	}
	if strings.TrimSpace(r.Street) == "" {
		bad = append(bad, "street")
	}
	if len(r.Sports) == 0 {
		bad = append(bad, "sports")
	}
	for _, s := range r.Sports {
		if !models.IsSport(s) {
			bad = append(bad, "sports")
			break
		}
	}
	if len(bad) > 0 {
		return &FieldErrors{Fields: bad}
	}
	return nil
}

// Signup validates the request, normalizes the username and appends a new
// account record. Reserved and taken usernames are conflicts.
func (us *UserService) Signup(req SignupRequest) (*models.User, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	username := NormalizeUsername(req.Username)
	if !ValidUsername(username) {
		return nil, fmt.Errorf("%w: invalid username", ErrValidation)
	}
	if IsReservedUsername(username) {
		return nil, fmt.Errorf("%w: username is reserved", ErrConflict)
	}
	existing, err := us.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username already taken", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.NewString(),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Username:     username,
		PasswordHash: string(hash),
		Birthdate:    req.Birthdate,
		Gender:       req.Gender,
		PostalCode:   req.PostalCode,
		Region:       req.Region,
		Street:       req.Street,
		Sports:       req.Sports,
	}
	if err := AppendOne(us.Store, models.UsersFile, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login checks email and password and returns the account on success.
func (us *UserService) Login(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrValidation)
	}
	user, err := us.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: unknown user", ErrUnauthenticated)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, fmt.Errorf("%w: wrong password", ErrUnauthenticated)
	}
	return user, nil
}

// ProfileUpdate carries the mutable profile fields. Nil pointers leave
// the current value unchanged.
type ProfileUpdate struct {
	Name       *string   `json:"name"`
	Birthdate  *string   `json:"birthdate"`
	Gender     *string   `json:"gender"`
	PostalCode *string   `json:"postalCode"`
	Region     *string   `json:"region"`
	Street     *string   `json:"street"`
	Sports     *[]string `json:"sports"`
	AvatarURL  *string   `json:"avatarUrl"`
}

// UpdateProfile appends a new snapshot of the user with the given fields
// replaced. The id, username, email and password hash are immutable here.
func (us *UserService) UpdateProfile(id string, upd ProfileUpdate) (*models.User, error) {
	user, err := us.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: unknown user", ErrNotFound)
	}

	if upd.Name != nil {
		if len(strings.TrimSpace(*upd.Name)) < 2 {
			return nil, fmt.Errorf("%w: name too short", ErrValidation)
		}
		user.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Birthdate != nil {
		user.Birthdate = *upd.Birthdate
	}
	if upd.Gender != nil {
		if !models.IsGender(*upd.Gender) {
			return nil, fmt.Errorf("%w: unknown gender", ErrValidation)
		}
		user.Gender = *upd.Gender
	}
	if upd.PostalCode != nil {
		user.PostalCode = *upd.PostalCode
	}
	if upd.Region != nil {
		user.Region = *upd.Region
	}
	if upd.Street != nil {
		user.Street = *upd.Street
	}
	if upd.Sports != nil {
		for _, s := range *upd.Sports {
			if !models.IsSport(s) {
				return nil, fmt.Errorf("%w: unknown sport %q", ErrValidation, s)
			}
		}
		user.Sports = *upd.Sports
	}
	if upd.AvatarURL != nil {
		user.AvatarURL = *upd.AvatarURL
	}

	if err := AppendOne(us.Store, models.UsersFile, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUsername normalizes raw and reports availability with a reason of
// "ok", "invalid", "reserved" or "taken".
func (us *UserService) CheckUsername(raw string) (bool, string, error) {
	u := NormalizeUsername(raw)
	if !ValidUsername(u) {
		return false, "invalid", nil
	}
	if IsReservedUsername(u) {
		return false, "reserved", nil
	}
	existing, err := us.FindByUsername(u)
	if err != nil {
		return false, "", err
	}
	if existing != nil {
		return false, "taken", nil
	}
	return true, "ok", nil
}
