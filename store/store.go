package store

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/spf13/viper"

	"github.com/suscommunity/community-api/schema"
)

var (
	ErrUserTaken    = fmt.Errorf("the username has already been taken")
	ErrUserNotFound = fmt.Errorf("user not found")
	ErrPostNotFound = fmt.Errorf("post not found")
)

// CommunityStore is the main datastore of the volunteering board. It is
// implemented by both the embedded sqlite store and the postgres store;
// nothing outside this package knows which backend is running.
type CommunityStore interface {
	Ping() error

	// Post
	InsertPost(post *schema.Post) error
	GetAllPosts() ([]schema.Post, error)
	GetPostsByTag(tag schema.PostTag) ([]schema.Post, error)
	GetPostsByStatus(status schema.PostStatus) ([]schema.Post, error)
	GetPost(id string) (*schema.Post, error)
	UpdatePost(id string, post *schema.Post) error
	UpdatePostStatus(id string, status schema.PostStatus) error
	DeletePost(id string) error

	// User
	CreateUser(user *schema.User) error
	GetUser(username string) (*schema.User, error)
	GetAllUsers() ([]schema.User, error)
	UserExists(username string) (bool, error)
	AddSustainabilityPoints(username string, points int) (*schema.User, error)
	AddGoodwillPoints(username string, points int) (*schema.User, error)
}

// Open connects the backend selected by configuration: a database.url
// containing "postgres" selects the networked store, anything else falls
// back to an embedded sqlite file at database.path.
func Open() (CommunityStore, *gorm.DB, error) {
	databaseURL := viper.GetString("database.url")

	if strings.Contains(databaseURL, "postgres") {
		dsn := databaseURL
		if user := viper.GetString("database.user"); user != "" {
			if u, err := url.Parse(databaseURL); err == nil {
				u.User = url.UserPassword(user, viper.GetString("database.password"))
				dsn = u.String()
			}
		}
		db, err := gorm.Open("postgres", dsn)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresStore(db), db, nil
	}

	path := viper.GetString("database.path")
	if path == "" {
		path = "sus_community.db"
	}
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, nil, err
	}
	s, err := NewSQLiteStore(db)
	if err != nil {
		return nil, nil, err
	}
	return s, db, nil
}
