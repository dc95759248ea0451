package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/suite"

	"github.com/suscommunity/community-api/schema"
)

type SQLiteTestSuite struct {
	suite.Suite
	ormDB *gorm.DB
	store *SQLiteStore
}

func (s *SQLiteTestSuite) SetupTest() {
	db, err := gorm.Open("sqlite3", ":memory:")
	s.Require().NoError(err)
	// a pooled second connection would see a different in-memory database
	db.DB().SetMaxOpenConns(1)

	st, err := NewSQLiteStore(db)
	s.Require().NoError(err)

	s.ormDB = db
	s.store = st
}

func (s *SQLiteTestSuite) TearDownTest() {
	s.Require().NoError(s.ormDB.Close())
}

func (s *SQLiteTestSuite) createUser(username string) {
	s.Require().NoError(s.store.CreateUser(&schema.User{
		Username:   username,
		Role:       schema.ROLE_NEW_MUENCHER,
		PetTypes:   []string{},
		GreenTitle: schema.TITLE_BEGINNER,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}))
}

func testPost(id, author string, createdAt time.Time) *schema.Post {
	return &schema.Post{
		ID:          id,
		Title:       "Need help moving furniture",
		Description: "Heavy items, two hours tops",
		Location: schema.Location{
			Latitude:  48.1351,
			Longitude: 11.5820,
			Address:   "Marienplatz, Munich",
		},
		Tag:        schema.TAG_MOVING_HELP,
		DueDate:    "2025-12-25T14:00:00Z",
		FemaleOnly: false,
		Images:     []string{"https://example.com/1.jpg", "https://example.com/2.jpg"},
		AuthorID:   author,
		CreatedAt:  createdAt.UTC().Format(time.RFC3339),
		Status:     schema.POST_OPEN,
	}
}

func (s *SQLiteTestSuite) TestPostRoundTrip() {
	s.createUser("alice")

	post := testPost("post-1", "alice", time.Now())
	s.Require().NoError(s.store.InsertPost(post))

	got, err := s.store.GetPost("post-1")
	s.Require().NoError(err)
	s.Equal(post, got)
}

func (s *SQLiteTestSuite) TestGetPostNotFound() {
	_, err := s.store.GetPost("missing")
	s.Equal(ErrPostNotFound, err)
}

func (s *SQLiteTestSuite) TestGetAllPostsNewestFirst() {
	s.createUser("alice")

	base := time.Now().Add(-3 * time.Hour)
	for i := 0; i < 3; i++ {
		post := testPost(fmt.Sprintf("post-%d", i), "alice", base.Add(time.Duration(i)*time.Hour))
		s.Require().NoError(s.store.InsertPost(post))
	}

	posts, err := s.store.GetAllPosts()
	s.Require().NoError(err)
	s.Require().Len(posts, 3)
	s.Equal("post-2", posts[0].ID)
	s.Equal("post-1", posts[1].ID)
	s.Equal("post-0", posts[2].ID)
}

func (s *SQLiteTestSuite) TestFilters() {
	s.createUser("alice")

	tutoring := testPost("post-tutoring", "alice", time.Now())
	tutoring.Tag = schema.TAG_TUTORING
	s.Require().NoError(s.store.InsertPost(tutoring))

	moving := testPost("post-moving", "alice", time.Now())
	s.Require().NoError(s.store.InsertPost(moving))
	s.Require().NoError(s.store.UpdatePostStatus("post-moving", schema.POST_COMPLETED))

	byTag, err := s.store.GetPostsByTag(schema.TAG_TUTORING)
	s.Require().NoError(err)
	s.Require().Len(byTag, 1)
	s.Equal("post-tutoring", byTag[0].ID)

	byStatus, err := s.store.GetPostsByStatus(schema.POST_COMPLETED)
	s.Require().NoError(err)
	s.Require().Len(byStatus, 1)
	s.Equal("post-moving", byStatus[0].ID)
}

func (s *SQLiteTestSuite) TestUpdatePostKeepsImmutableColumns() {
	s.createUser("alice")

	post := testPost("post-1", "alice", time.Now())
	s.Require().NoError(s.store.InsertPost(post))

	updated := testPost("post-1", "someone-else", time.Now().Add(time.Hour))
	updated.Title = "Updated title"
	updated.Images = []string{"https://example.com/new.jpg"}
	s.Require().NoError(s.store.UpdatePost("post-1", updated))

	got, err := s.store.GetPost("post-1")
	s.Require().NoError(err)
	s.Equal("Updated title", got.Title)
	s.Equal([]string{"https://example.com/new.jpg"}, got.Images)
	s.Equal("alice", got.AuthorID, "author must not change on update")
	s.Equal(post.CreatedAt, got.CreatedAt, "createdAt must not change on update")
}

func (s *SQLiteTestSuite) TestUpdatePostNotFound() {
	err := s.store.UpdatePost("missing", testPost("missing", "alice", time.Now()))
	s.Equal(ErrPostNotFound, err)
}

func (s *SQLiteTestSuite) TestUpdateStatusIdempotent() {
	s.createUser("alice")
	s.Require().NoError(s.store.InsertPost(testPost("post-1", "alice", time.Now())))

	s.Require().NoError(s.store.UpdatePostStatus("post-1", schema.POST_COMPLETED))
	s.Require().NoError(s.store.UpdatePostStatus("post-1", schema.POST_COMPLETED))

	got, err := s.store.GetPost("post-1")
	s.Require().NoError(err)
	s.Equal(schema.POST_COMPLETED, got.Status)
}

func (s *SQLiteTestSuite) TestDeletePost() {
	s.createUser("alice")
	s.Require().NoError(s.store.InsertPost(testPost("post-1", "alice", time.Now())))

	s.Require().NoError(s.store.DeletePost("post-1"))

	_, err := s.store.GetPost("post-1")
	s.Equal(ErrPostNotFound, err)

	s.Equal(ErrPostNotFound, s.store.DeletePost("post-1"))
}

func (s *SQLiteTestSuite) TestCreateUserDuplicate() {
	s.createUser("alice")

	err := s.store.CreateUser(&schema.User{
		Username:   "alice",
		Role:       schema.ROLE_OLD_MUENCHER,
		GreenTitle: schema.TITLE_BEGINNER,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	})
	s.Equal(ErrUserTaken, err)
}

func (s *SQLiteTestSuite) TestUserExists() {
	exists, err := s.store.UserExists("alice")
	s.Require().NoError(err)
	s.False(exists)

	s.createUser("alice")

	exists, err = s.store.UserExists("alice")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *SQLiteTestSuite) TestUserRoundTrip() {
	age := 35
	user := &schema.User{
		Username:    "john_doe",
		DisplayName: "John Doe",
		Role:        schema.ROLE_NEW_MUENCHER,
		Age:         &age,
		Gender:      schema.GENDER_MALE,
		HasPets:     true,
		PetTypes:    []string{"dog", "cat"},
		GreenTitle:  schema.TITLE_BEGINNER,
		Bio:         "New to Munich",
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	s.Require().NoError(s.store.CreateUser(user))

	got, err := s.store.GetUser("john_doe")
	s.Require().NoError(err)
	s.Equal(user, got)
}

func (s *SQLiteTestSuite) TestGetAllUsersNewestFirst() {
	base := time.Now().Add(-2 * time.Hour)
	for i, username := range []string{"older", "newer"} {
		s.Require().NoError(s.store.CreateUser(&schema.User{
			Username:   username,
			Role:       schema.ROLE_NEW_MUENCHER,
			GreenTitle: schema.TITLE_BEGINNER,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour).UTC().Format(time.RFC3339),
		}))
	}

	users, err := s.store.GetAllUsers()
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("newer", users[0].Username)
	s.Equal("older", users[1].Username)
}

// after every increment the stored green title must match the title derived
// from the stored score
func (s *SQLiteTestSuite) TestSustainabilityScoreTitleInvariant() {
	s.createUser("alice")

	for _, delta := range []int{99, 1, 150, 250, 500, 1} {
		user, err := s.store.AddSustainabilityPoints("alice", delta)
		s.Require().NoError(err)
		s.Equal(schema.CalculateGreenTitle(user.SustainabilityScore), user.GreenTitle,
			"score %d", user.SustainabilityScore)
	}

	user, err := s.store.GetUser("alice")
	s.Require().NoError(err)
	s.Equal(1001, user.SustainabilityScore)
	s.Equal(schema.TITLE_PLANET_CHAMPION, user.GreenTitle)
}

func (s *SQLiteTestSuite) TestCrossesThresholdExactly() {
	s.createUser("alice")

	user, err := s.store.AddSustainabilityPoints("alice", 99)
	s.Require().NoError(err)
	s.Equal(schema.TITLE_BEGINNER, user.GreenTitle)

	user, err = s.store.AddSustainabilityPoints("alice", 1)
	s.Require().NoError(err)
	s.Equal(100, user.SustainabilityScore)
	s.Equal(schema.TITLE_ECO_CONSCIOUS, user.GreenTitle)
}

func (s *SQLiteTestSuite) TestAddGoodwillPoints() {
	s.createUser("alice")

	user, err := s.store.AddGoodwillPoints("alice", 7)
	s.Require().NoError(err)
	s.Equal(7, user.GoodwillPoints)
	s.Equal(0, user.SustainabilityScore, "goodwill must not touch the score")

	_, err = s.store.AddGoodwillPoints("ghost", 1)
	s.Equal(ErrUserNotFound, err)
}

func (s *SQLiteTestSuite) TestPointsUnknownUser() {
	_, err := s.store.AddSustainabilityPoints("ghost", 10)
	s.Equal(ErrUserNotFound, err)
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, new(SQLiteTestSuite))
}
