package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/suscommunity/community-api/schema"
	"github.com/suscommunity/community-api/store"
)

// createPost is the API for publishing a new help request on the board
func (s *Server) createPost(c *gin.Context) {
	logger := log.WithField("api", "createPost")

	var req schema.CreatePostRequest
	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if msg := validateCreatePostRequest(&req); msg != "" {
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(1010, msg))
		return
	}

	exists, err := s.store.UserExists(req.AuthorID)
	if shouldInterupt(err, c) {
		return
	}
	if !exists {
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(1010,
			fmt.Sprintf("User '%s' not found. Please create a user first.", req.AuthorID)))
		return
	}

	post := schema.Post{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Tag:         req.Tag,
		DueDate:     req.DueDate,
		FemaleOnly:  req.FemaleOnly,
		Images:      req.Images,
		AuthorID:    req.AuthorID,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Status:      schema.POST_OPEN,
	}
	if post.Images == nil {
		post.Images = []string{}
	}

	if err := s.store.InsertPost(&post); err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusBadRequest, errorUserNotFound, err)
			return
		}
		logger.WithError(err).Error("insert post")
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	logger.WithFields(map[string]interface{}{
		"id":     post.ID,
		"tag":    post.Tag,
		"author": post.AuthorID,
	}).Info("created post")

	c.JSON(http.StatusCreated, schema.CreatePostResponse{
		Post:    post,
		Message: "Post created successfully",
	})
}

// listPosts is the API for browsing the board, optionally filtered by tag
// or status
func (s *Server) listPosts(c *gin.Context) {
	var (
		posts []schema.Post
		err   error
	)

	switch {
	case c.Query("tag") != "":
		tag := schema.PostTag(c.Query("tag"))
		if !tag.Valid() {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		posts, err = s.store.GetPostsByTag(tag)
	case c.Query("status") != "":
		status := schema.PostStatus(c.Query("status"))
		if !status.Valid() {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		posts, err = s.store.GetPostsByStatus(status)
	default:
		posts, err = s.store.GetAllPosts()
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, schema.PostListResponse{
		Posts: posts,
		Count: len(posts),
	})
}

// getPost is the API for reading a single post
func (s *Server) getPost(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(1010, "Post ID is required"))
		return
	}

	post, err := s.store.GetPost(id)
	if err != nil {
		if err == store.ErrPostNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPostNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// updatePost is the API for replacing a post. The id, createdAt, authorId
// and status fields of the stored post are kept.
func (s *Server) updatePost(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(1010, "Post ID is required"))
		return
	}

	existing, err := s.store.GetPost(id)
	if err != nil {
		if err == store.ErrPostNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPostNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	var req schema.CreatePostRequest
	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	// the author cannot change on update, so the body may omit it
	req.AuthorID = existing.AuthorID
	if msg := validateCreatePostRequest(&req); msg != "" {
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(1010, msg))
		return
	}

	updated := schema.Post{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Tag:         req.Tag,
		DueDate:     req.DueDate,
		FemaleOnly:  req.FemaleOnly,
		Images:      req.Images,
		AuthorID:    existing.AuthorID,
		CreatedAt:   existing.CreatedAt,
		Status:      existing.Status,
	}
	if updated.Images == nil {
		updated.Images = []string{}
	}

	if err := s.store.UpdatePost(id, &updated); err != nil {
		if err == store.ErrPostNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPostNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": updated})
}

// updatePostStatus is the API for moving a post through its lifecycle.
// The status is a free-form overwrite; no transition graph is enforced.
func (s *Server) updatePostStatus(c *gin.Context) {
	id := c.Param("id")

	var params struct {
		Status schema.PostStatus `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !params.Status.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(1010,
			fmt.Sprintf("Unknown status '%s'", params.Status)))
		return
	}

	if err := s.store.UpdatePostStatus(id, params.Status); err != nil {
		if err == store.ErrPostNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPostNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// deletePost is the API for removing a post and its attached images
func (s *Server) deletePost(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(1010, "Post ID is required"))
		return
	}

	if err := s.store.DeletePost(id); err != nil {
		if err == store.ErrPostNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorPostNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post deleted successfully",
		"id":      id,
	})
}

// validateCreatePostRequest checks a post payload field by field and
// returns the first failure, or an empty string when the payload is valid.
func validateCreatePostRequest(req *schema.CreatePostRequest) string {
	if strings.TrimSpace(req.AuthorID) == "" {
		return "AuthorID cannot be blank"
	}

	if strings.TrimSpace(req.Title) == "" {
		return "Title cannot be blank"
	}
	if len([]rune(req.Title)) > 200 {
		return "Title must be 200 characters or less"
	}

	if strings.TrimSpace(req.Description) == "" {
		return "Description cannot be blank"
	}
	if len([]rune(req.Description)) > 2000 {
		return "Description must be 2000 characters or less"
	}

	if req.Location.Latitude < -90 || req.Location.Latitude > 90 {
		return "Latitude must be between -90 and 90"
	}
	if req.Location.Longitude < -180 || req.Location.Longitude > 180 {
		return "Longitude must be between -180 and 180"
	}

	if strings.TrimSpace(req.DueDate) == "" {
		return "Due date cannot be blank"
	}
	if _, err := time.Parse(time.RFC3339, req.DueDate); err != nil {
		return "Due date must be in ISO 8601 format (e.g., 2025-12-25T14:00:00Z)"
	}

	if len(req.Images) > 10 {
		return "Maximum 10 images allowed per post"
	}
	for _, imageURL := range req.Images {
		if strings.TrimSpace(imageURL) == "" {
			return "Image URLs cannot be blank"
		}
		if !strings.HasPrefix(imageURL, "http://") && !strings.HasPrefix(imageURL, "https://") {
			return "Image URLs must start with http:// or https://"
		}
	}

	if !req.Tag.Valid() {
		return fmt.Sprintf("Unknown tag '%s'", req.Tag)
	}

	return ""
}
