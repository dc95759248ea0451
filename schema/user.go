package schema

// UserRole distinguishes newcomers looking for help from locals offering it.
type UserRole string

const (
	ROLE_NEW_MUENCHER UserRole = "NEW_MUENCHER"
	ROLE_OLD_MUENCHER UserRole = "OLD_MUENCHER"
)

func (r UserRole) Valid() bool {
	return r == ROLE_NEW_MUENCHER || r == ROLE_OLD_MUENCHER
}

type Gender string

const (
	GENDER_MALE       Gender = "MALE"
	GENDER_FEMALE     Gender = "FEMALE"
	GENDER_NON_BINARY Gender = "NON_BINARY"
)

func (g Gender) Valid() bool {
	return g == GENDER_MALE || g == GENDER_FEMALE || g == GENDER_NON_BINARY
}

// GreenTitle is the gamified badge derived from a user's sustainability
// score. It is denormalized into the users table and recomputed by the
// store inside every score update.
type GreenTitle string

const (
	TITLE_BEGINNER            GreenTitle = "BEGINNER"
	TITLE_ECO_CONSCIOUS       GreenTitle = "ECO_CONSCIOUS"
	TITLE_GREEN_WARRIOR       GreenTitle = "GREEN_WARRIOR"
	TITLE_SUSTAINABILITY_HERO GreenTitle = "SUSTAINABILITY_HERO"
	TITLE_PLANET_CHAMPION     GreenTitle = "PLANET_CHAMPION"
)

// CalculateGreenTitle maps a sustainability score onto its badge.
func CalculateGreenTitle(score int) GreenTitle {
	switch {
	case score >= 1000:
		return TITLE_PLANET_CHAMPION
	case score >= 500:
		return TITLE_SUSTAINABILITY_HERO
	case score >= 250:
		return TITLE_GREEN_WARRIOR
	case score >= 100:
		return TITLE_ECO_CONSCIOUS
	default:
		return TITLE_BEGINNER
	}
}

// User is a member of the community. The username is the sole identifier;
// there are no passwords or sessions.
type User struct {
	Username    string   `json:"username"`
	DisplayName string   `json:"displayName,omitempty"`
	Role        UserRole `json:"role"`
	Age         *int     `json:"age,omitempty"`
	Gender      Gender   `json:"gender,omitempty"`
	HasPets     bool     `json:"hasPets"`
	PetTypes    []string `json:"petTypes"`

	SustainabilityScore int        `json:"sustainabilityScore"`
	GreenTitle          GreenTitle `json:"greenTitle"`
	GoodwillPoints      int        `json:"goodwillPoints"`

	Bio       string `json:"bio,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// CalculateGreenTitle returns the badge the user's current score earns.
func (u User) CalculateGreenTitle() GreenTitle {
	return CalculateGreenTitle(u.SustainabilityScore)
}

// IsElderly reports whether the user is 65 or older.
func (u User) IsElderly() bool {
	return u.Age != nil && *u.Age >= 65
}

// CreateUserRequest is the payload of POST /users.
type CreateUserRequest struct {
	Username    string   `json:"username"`
	DisplayName string   `json:"displayName"`
	Role        UserRole `json:"role"`
	Age         *int     `json:"age"`
	Gender      Gender   `json:"gender"`
	HasPets     bool     `json:"hasPets"`
	PetTypes    []string `json:"petTypes"`
	Bio         string   `json:"bio"`
}

type CreateUserResponse struct {
	User    User   `json:"user"`
	Message string `json:"message"`
}

type UserListResponse struct {
	Users []User `json:"users"`
	Count int    `json:"count"`
}
