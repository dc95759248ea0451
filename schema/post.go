package schema

// PostTag categorizes a post for filtering and volunteer matching.
type PostTag string

const (
	TAG_PET_SITTING     PostTag = "PET_SITTING"
	TAG_TUTORING        PostTag = "TUTORING"
	TAG_ELDERLY_COMPANY PostTag = "ELDERLY_COMPANY"
	TAG_MOWING          PostTag = "MOWING"
	TAG_MOVING_HELP     PostTag = "MOVING_HELP"
	TAG_EVENT           PostTag = "EVENT"
	TAG_VOLUNTEERING    PostTag = "VOLUNTEERING"
	TAG_OTHER           PostTag = "OTHER"
)

// Valid reports whether t is one of the known tags.
func (t PostTag) Valid() bool {
	switch t {
	case TAG_PET_SITTING, TAG_TUTORING, TAG_ELDERLY_COMPANY, TAG_MOWING,
		TAG_MOVING_HELP, TAG_EVENT, TAG_VOLUNTEERING, TAG_OTHER:
		return true
	}
	return false
}

// PostStatus is the lifecycle state of a post.
type PostStatus string

const (
	POST_OPEN        PostStatus = "OPEN"
	POST_IN_PROGRESS PostStatus = "IN_PROGRESS"
	POST_COMPLETED   PostStatus = "COMPLETED"
	POST_CANCELLED   PostStatus = "CANCELLED"
)

func (s PostStatus) Valid() bool {
	switch s {
	case POST_OPEN, POST_IN_PROGRESS, POST_COMPLETED, POST_CANCELLED:
		return true
	}
	return false
}

// Location is a geographic point attached to a post.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Post is a help request on the volunteering board. The id, createdAt and
// status fields are assigned by the server on creation; createdAt and
// dueDate are ISO 8601 timestamps.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    Location   `json:"location"`
	Tag         PostTag    `json:"tag"`
	DueDate     string     `json:"dueDate"`
	FemaleOnly  bool       `json:"femaleOnly"`
	Images      []string   `json:"images"`
	AuthorID    string     `json:"authorId"`
	CreatedAt   string     `json:"createdAt"`
	Status      PostStatus `json:"status"`
}

// CreatePostRequest is the payload of POST /posts. The same shape, minus
// authorId, is accepted by PUT /posts/:id.
type CreatePostRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Tag         PostTag  `json:"tag"`
	DueDate     string   `json:"dueDate"`
	FemaleOnly  bool     `json:"femaleOnly"`
	Images      []string `json:"images"`
	AuthorID    string   `json:"authorId"`
}

type CreatePostResponse struct {
	Post    Post   `json:"post"`
	Message string `json:"message"`
}

type PostListResponse struct {
	Posts []Post `json:"posts"`
	Count int    `json:"count"`
}
