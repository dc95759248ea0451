package store

import (
	"strings"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/mattn/go-sqlite3"

	"github.com/suscommunity/community-api/schema"
)

// SQLiteStore is the embedded single-file backend used for development.
// Images and pet types are stored as comma-joined text columns and the
// location as two plain numeric columns.
type SQLiteStore struct {
	ormDB *gorm.DB
}

type postRecord struct {
	ID          string `gorm:"primary_key"`
	AuthorID    string `gorm:"not null"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Latitude    float64
	Longitude   float64
	Address     string
	Tag         string `gorm:"not null"`
	DueDate     string `gorm:"not null"`
	FemaleOnly  bool
	Images      string
	Status      string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (postRecord) TableName() string {
	return "posts"
}

type userRecord struct {
	Username            string `gorm:"primary_key"`
	DisplayName         string
	Role                string `gorm:"not null"`
	Bio                 string
	Age                 *int
	Gender              string
	HasPets             bool
	PetTypes            string
	SustainabilityScore int
	GreenTitle          string `gorm:"not null"`
	GoodwillPoints      int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (userRecord) TableName() string {
	return "users"
}

// NewSQLiteStore opens the embedded store and migrates its schema.
func NewSQLiteStore(ormDB *gorm.DB) (*SQLiteStore, error) {
	if err := ormDB.AutoMigrate(&postRecord{}, &userRecord{}).Error; err != nil {
		return nil, err
	}
	return &SQLiteStore{ormDB: ormDB}, nil
}

// Ping is to check the storage health status
func (s *SQLiteStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// InsertPost persists a fully-populated post. The caller has already
// assigned id, createdAt and status.
func (s *SQLiteStore) InsertPost(post *schema.Post) error {
	rec, err := newPostRecord(post)
	if err != nil {
		return err
	}
	return s.ormDB.Create(rec).Error
}

// GetAllPosts returns every post, newest first.
func (s *SQLiteStore) GetAllPosts() ([]schema.Post, error) {
	return s.queryPosts(s.ormDB)
}

// GetPostsByTag returns posts carrying the given tag, newest first.
func (s *SQLiteStore) GetPostsByTag(tag schema.PostTag) ([]schema.Post, error) {
	return s.queryPosts(s.ormDB.Where("tag = ?", string(tag)))
}

// GetPostsByStatus returns posts in the given status, newest first.
func (s *SQLiteStore) GetPostsByStatus(status schema.PostStatus) ([]schema.Post, error) {
	return s.queryPosts(s.ormDB.Where("status = ?", string(status)))
}

func (s *SQLiteStore) queryPosts(scope *gorm.DB) ([]schema.Post, error) {
	var recs []postRecord
	if err := scope.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}

	posts := make([]schema.Post, 0, len(recs))
	for _, rec := range recs {
		posts = append(posts, rec.toPost())
	}
	return posts, nil
}

func (s *SQLiteStore) GetPost(id string) (*schema.Post, error) {
	var rec postRecord
	if err := s.ormDB.Where("id = ?", id).First(&rec).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	post := rec.toPost()
	return &post, nil
}

// UpdatePost replaces every field of the post except id, createdAt and
// authorId.
func (s *SQLiteStore) UpdatePost(id string, post *schema.Post) error {
	result := s.ormDB.Model(postRecord{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":       post.Title,
			"description": post.Description,
			"latitude":    post.Location.Latitude,
			"longitude":   post.Location.Longitude,
			"address":     post.Location.Address,
			"tag":         string(post.Tag),
			"due_date":    post.DueDate,
			"female_only": post.FemaleOnly,
			"images":      strings.Join(post.Images, ","),
			"status":      string(post.Status),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// UpdatePostStatus touches only the status column. Setting the same status
// twice is not an error.
func (s *SQLiteStore) UpdatePostStatus(id string, status schema.PostStatus) error {
	result := s.ormDB.Model(postRecord{}).Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *SQLiteStore) DeletePost(id string) error {
	result := s.ormDB.Delete(postRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// CreateUser registers a user. The username is the primary key; a
// constraint violation is reported as ErrUserTaken.
func (s *SQLiteStore) CreateUser(user *schema.User) error {
	createdAt, err := parseTimestamp(user.CreatedAt)
	if err != nil {
		return err
	}

	rec := userRecord{
		Username:            user.Username,
		DisplayName:         user.DisplayName,
		Role:                string(user.Role),
		Bio:                 user.Bio,
		Age:                 user.Age,
		Gender:              string(user.Gender),
		HasPets:             user.HasPets,
		PetTypes:            strings.Join(user.PetTypes, ","),
		SustainabilityScore: user.SustainabilityScore,
		GreenTitle:          string(user.GreenTitle),
		GoodwillPoints:      user.GoodwillPoints,
		CreatedAt:           createdAt,
	}

	if err := s.ormDB.Create(&rec).Error; err != nil {
		if sqliteErr, ok := err.(sqlite3.Error); ok && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrUserTaken
		}
		return err
	}
	return nil
}

func (s *SQLiteStore) GetUser(username string) (*schema.User, error) {
	var rec userRecord
	if err := s.ormDB.Where("username = ?", username).First(&rec).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user := rec.toUser()
	return &user, nil
}

func (s *SQLiteStore) GetAllUsers() ([]schema.User, error) {
	var recs []userRecord
	if err := s.ormDB.Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, err
	}

	users := make([]schema.User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, rec.toUser())
	}
	return users, nil
}

func (s *SQLiteStore) UserExists(username string) (bool, error) {
	var count int
	if err := s.ormDB.Model(userRecord{}).Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddSustainabilityPoints increments the score and recomputes the green
// title from the post-increment value inside the same statement, so the
// two columns can never be observed out of sync.
func (s *SQLiteStore) AddSustainabilityPoints(username string, points int) (*schema.User, error) {
	res := s.ormDB.Exec(`
		UPDATE users
		SET sustainability_score = sustainability_score + ?,
		    green_title = CASE
		        WHEN sustainability_score + ? >= 1000 THEN 'PLANET_CHAMPION'
		        WHEN sustainability_score + ? >= 500 THEN 'SUSTAINABILITY_HERO'
		        WHEN sustainability_score + ? >= 250 THEN 'GREEN_WARRIOR'
		        WHEN sustainability_score + ? >= 100 THEN 'ECO_CONSCIOUS'
		        ELSE 'BEGINNER'
		    END,
		    updated_at = CURRENT_TIMESTAMP
		WHERE username = ?`,
		points, points, points, points, points, username)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return s.GetUser(username)
}

// AddGoodwillPoints increments the goodwill counter only.
func (s *SQLiteStore) AddGoodwillPoints(username string, points int) (*schema.User, error) {
	res := s.ormDB.Exec(`
		UPDATE users
		SET goodwill_points = goodwill_points + ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE username = ?`,
		points, username)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return s.GetUser(username)
}

func newPostRecord(post *schema.Post) (*postRecord, error) {
	createdAt, err := parseTimestamp(post.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &postRecord{
		ID:          post.ID,
		AuthorID:    post.AuthorID,
		Title:       post.Title,
		Description: post.Description,
		Latitude:    post.Location.Latitude,
		Longitude:   post.Location.Longitude,
		Address:     post.Location.Address,
		Tag:         string(post.Tag),
		DueDate:     post.DueDate,
		FemaleOnly:  post.FemaleOnly,
		Images:      strings.Join(post.Images, ","),
		Status:      string(post.Status),
		CreatedAt:   createdAt,
	}, nil
}

func (rec postRecord) toPost() schema.Post {
	return schema.Post{
		ID:          rec.ID,
		Title:       rec.Title,
		Description: rec.Description,
		Location: schema.Location{
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
			Address:   rec.Address,
		},
		Tag:        schema.PostTag(rec.Tag),
		DueDate:    rec.DueDate,
		FemaleOnly: rec.FemaleOnly,
		Images:     splitList(rec.Images),
		AuthorID:   rec.AuthorID,
		CreatedAt:  formatTimestamp(rec.CreatedAt),
		Status:     schema.PostStatus(rec.Status),
	}
}

func (rec userRecord) toUser() schema.User {
	return schema.User{
		Username:            rec.Username,
		DisplayName:         rec.DisplayName,
		Role:                schema.UserRole(rec.Role),
		Age:                 rec.Age,
		Gender:              schema.Gender(rec.Gender),
		HasPets:             rec.HasPets,
		PetTypes:            splitList(rec.PetTypes),
		SustainabilityScore: rec.SustainabilityScore,
		GreenTitle:          schema.GreenTitle(rec.GreenTitle),
		GoodwillPoints:      rec.GoodwillPoints,
		Bio:                 rec.Bio,
		CreatedAt:           formatTimestamp(rec.CreatedAt),
	}
}

func splitList(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}

func parseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
