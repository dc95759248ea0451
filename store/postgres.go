package store

import (
	"database/sql"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/suscommunity/community-api/schema"
)

// PostgresStore is the networked production backend. The post location is a
// PostGIS geography point (so radius queries can be added without a schema
// change) and images live in a post_images child table keyed by display
// order.
type PostgresStore struct {
	ormDB *gorm.DB
}

func NewPostgresStore(ormDB *gorm.DB) *PostgresStore {
	return &PostgresStore{ormDB: ormDB}
}

// Ping is to check the storage health status
func (s *PostgresStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// postColumns is the select list shared by every post query. PostGIS points
// are built from (longitude, latitude), so X is the longitude and Y the
// latitude when reading them back.
const postColumns = `
	p.id, p.author_id, p.title, p.description, p.tag,
	ST_X(p.location::geometry) AS longitude,
	ST_Y(p.location::geometry) AS latitude,
	p.address, p.due_date, p.female_only, p.status, p.created_at,
	COALESCE(array_agg(pi.image_url ORDER BY pi.display_order)
		FILTER (WHERE pi.image_url IS NOT NULL), '{}') AS images`

const postGroupBy = `
	GROUP BY p.id, p.author_id, p.title, p.description, p.tag, p.location,
		p.address, p.due_date, p.female_only, p.status, p.created_at`

// InsertPost writes the post row and its image rows in one transaction, so
// a failure between the two statements cannot leave a post with a partial
// image list.
func (s *PostgresStore) InsertPost(post *schema.Post) error {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Exec(`
		INSERT INTO posts (id, author_id, title, description, tag, location, address, due_date, female_only, status, created_at)
		VALUES (?::uuid, ?, ?, ?, ?, ST_SetSRID(ST_MakePoint(?, ?), 4326), ?, ?::timestamptz, ?, ?, ?::timestamptz)`,
		post.ID,
		post.AuthorID,
		post.Title,
		post.Description,
		string(post.Tag),
		post.Location.Longitude, // PostGIS point constructors take longitude first
		post.Location.Latitude,
		post.Location.Address,
		post.DueDate,
		post.FemaleOnly,
		string(post.Status),
		post.CreatedAt,
	).Error; err != nil {
		tx.Rollback()
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrUserNotFound
		}
		return err
	}

	if err := insertImages(tx, post.ID, post.Images); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

func insertImages(tx *gorm.DB, postID string, images []string) error {
	for i, imageURL := range images {
		if err := tx.Exec(`
			INSERT INTO post_images (post_id, image_url, display_order)
			VALUES (?::uuid, ?, ?)`,
			postID, imageURL, i,
		).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *PostgresStore) GetAllPosts() ([]schema.Post, error) {
	return s.queryPosts(`
		SELECT `+postColumns+`
		FROM posts p
		LEFT JOIN post_images pi ON p.id = pi.post_id
		`+postGroupBy+`
		ORDER BY p.created_at DESC`)
}

func (s *PostgresStore) GetPostsByTag(tag schema.PostTag) ([]schema.Post, error) {
	return s.queryPosts(`
		SELECT `+postColumns+`
		FROM posts p
		LEFT JOIN post_images pi ON p.id = pi.post_id
		WHERE p.tag = ?
		`+postGroupBy+`
		ORDER BY p.created_at DESC`, string(tag))
}

func (s *PostgresStore) GetPostsByStatus(status schema.PostStatus) ([]schema.Post, error) {
	return s.queryPosts(`
		SELECT `+postColumns+`
		FROM posts p
		LEFT JOIN post_images pi ON p.id = pi.post_id
		WHERE p.status = ?
		`+postGroupBy+`
		ORDER BY p.created_at DESC`, string(status))
}

func (s *PostgresStore) queryPosts(query string, args ...interface{}) ([]schema.Post, error) {
	rows, err := s.ormDB.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []schema.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (s *PostgresStore) GetPost(id string) (*schema.Post, error) {
	rows, err := s.ormDB.Raw(`
		SELECT `+postColumns+`
		FROM posts p
		LEFT JOIN post_images pi ON p.id = pi.post_id
		WHERE p.id = ?::uuid
		`+postGroupBy, id).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrPostNotFound
	}
	return scanPost(rows)
}

func scanPost(rows *sql.Rows) (*schema.Post, error) {
	var (
		post      schema.Post
		address   sql.NullString
		dueDate   time.Time
		createdAt time.Time
		images    pq.StringArray
	)

	if err := rows.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Description,
		&post.Tag,
		&post.Location.Longitude,
		&post.Location.Latitude,
		&address,
		&dueDate,
		&post.FemaleOnly,
		&post.Status,
		&createdAt,
		&images,
	); err != nil {
		return nil, err
	}

	post.Location.Address = address.String
	post.DueDate = formatTimestamp(dueDate)
	post.CreatedAt = formatTimestamp(createdAt)
	post.Images = []string(images)
	if post.Images == nil {
		post.Images = []string{}
	}
	return &post, nil
}

// UpdatePost replaces every field of the post except id, createdAt and
// authorId. The post row update and the image replacement run in one
// transaction.
func (s *PostgresStore) UpdatePost(id string, post *schema.Post) error {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	result := tx.Exec(`
		UPDATE posts
		SET title = ?,
		    description = ?,
		    tag = ?,
		    location = ST_SetSRID(ST_MakePoint(?, ?), 4326),
		    address = ?,
		    due_date = ?::timestamptz,
		    female_only = ?,
		    status = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?::uuid`,
		post.Title,
		post.Description,
		string(post.Tag),
		post.Location.Longitude,
		post.Location.Latitude,
		post.Location.Address,
		post.DueDate,
		post.FemaleOnly,
		string(post.Status),
		id,
	)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrPostNotFound
	}

	if err := tx.Exec(`DELETE FROM post_images WHERE post_id = ?::uuid`, id).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := insertImages(tx, id, post.Images); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// UpdatePostStatus touches only the status column. Setting the same status
// twice is not an error.
func (s *PostgresStore) UpdatePostStatus(id string, status schema.PostStatus) error {
	result := s.ormDB.Exec(`
		UPDATE posts
		SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?::uuid`,
		string(status), id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (s *PostgresStore) DeletePost(id string) error {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Exec(`DELETE FROM post_images WHERE post_id = ?::uuid`, id).Error; err != nil {
		tx.Rollback()
		return err
	}

	result := tx.Exec(`DELETE FROM posts WHERE id = ?::uuid`, id)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrPostNotFound
	}

	return tx.Commit().Error
}

// CreateUser registers a user. Uniqueness is enforced by the primary key;
// the constraint violation is reported as ErrUserTaken rather than relying
// on a racy pre-insert check.
func (s *PostgresStore) CreateUser(user *schema.User) error {
	err := s.ormDB.Exec(`
		INSERT INTO users (username, display_name, role, bio, age, gender, has_pets, pet_types,
			sustainability_score, green_title, goodwill_points, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?::timestamptz)`,
		user.Username,
		user.DisplayName,
		string(user.Role),
		user.Bio,
		user.Age,
		nullableString(string(user.Gender)),
		user.HasPets,
		pq.Array(user.PetTypes),
		user.SustainabilityScore,
		string(user.GreenTitle),
		user.GoodwillPoints,
		user.CreatedAt,
	).Error
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrUserTaken
		}
		return err
	}
	return nil
}

const userColumns = `
	username, display_name, role, bio, age, gender, has_pets, pet_types,
	sustainability_score, green_title, goodwill_points, created_at`

func (s *PostgresStore) GetUser(username string) (*schema.User, error) {
	rows, err := s.ormDB.Raw(`
		SELECT `+userColumns+`
		FROM users
		WHERE username = ?`, username).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrUserNotFound
	}
	return scanUser(rows)
}

func (s *PostgresStore) GetAllUsers() ([]schema.User, error) {
	rows, err := s.ormDB.Raw(`
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []schema.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (s *PostgresStore) UserExists(username string) (bool, error) {
	var count int
	row := s.ormDB.Raw(`SELECT COUNT(*) FROM users WHERE username = ?`, username).Row()
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func scanUser(rows *sql.Rows) (*schema.User, error) {
	var (
		user        schema.User
		displayName sql.NullString
		bio         sql.NullString
		age         sql.NullInt64
		gender      sql.NullString
		petTypes    pq.StringArray
		createdAt   time.Time
	)

	if err := rows.Scan(
		&user.Username,
		&displayName,
		&user.Role,
		&bio,
		&age,
		&gender,
		&user.HasPets,
		&petTypes,
		&user.SustainabilityScore,
		&user.GreenTitle,
		&user.GoodwillPoints,
		&createdAt,
	); err != nil {
		return nil, err
	}

	user.DisplayName = displayName.String
	user.Bio = bio.String
	if age.Valid {
		a := int(age.Int64)
		user.Age = &a
	}
	user.Gender = schema.Gender(gender.String)
	user.PetTypes = []string(petTypes)
	if user.PetTypes == nil {
		user.PetTypes = []string{}
	}
	user.CreatedAt = formatTimestamp(createdAt)
	return &user, nil
}

// AddSustainabilityPoints increments the score and recomputes the green
// title from the post-increment value inside the same statement, so the
// two columns can never be observed out of sync.
func (s *PostgresStore) AddSustainabilityPoints(username string, points int) (*schema.User, error) {
	result := s.ormDB.Exec(`
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
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return s.GetUser(username)
}

// AddGoodwillPoints increments the goodwill counter only.
func (s *PostgresStore) AddGoodwillPoints(username string, points int) (*schema.User, error) {
	result := s.ormDB.Exec(`
		UPDATE users
		SET goodwill_points = goodwill_points + ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE username = ?`,
		points, username)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return s.GetUser(username)
}

func nullableString(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
