package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/suscommunity/community-api/schema"
	"github.com/suscommunity/community-api/store"
)

// createUser is the API for registering a new community member. Usernames
// are bare identifiers; there is no password.
func (s *Server) createUser(c *gin.Context) {
	logger := log.WithField("api", "createUser")

	var req schema.CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if strings.TrimSpace(req.Username) == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(1010, "Username cannot be blank"))
		return
	}
	if len([]rune(req.Username)) > 100 {
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(1010, "Username must be 100 characters or less"))
		return
	}

	if req.Role == "" {
		req.Role = schema.ROLE_NEW_MUENCHER
	}
	if !req.Role.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(1010,
			fmt.Sprintf("Unknown role '%s'", req.Role)))
		return
	}
	if req.Gender != "" && !req.Gender.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(1010,
			fmt.Sprintf("Unknown gender '%s'", req.Gender)))
		return
	}
	if req.Age != nil && (*req.Age < 1 || *req.Age > 150) {
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(1010, "Age must be between 1 and 150"))
		return
	}

	exists, err := s.store.UserExists(req.Username)
	if shouldInterupt(err, c) {
		return
	}
	if exists {
		abortWithEncoding(c, http.StatusConflict, errorWithMessage(1100,
			fmt.Sprintf("Username '%s' already exists", req.Username)))
		return
	}

	user := schema.User{
		Username:            req.Username,
		DisplayName:         req.DisplayName,
		Role:                req.Role,
		Age:                 req.Age,
		Gender:              req.Gender,
		HasPets:             req.HasPets,
		PetTypes:            req.PetTypes,
		SustainabilityScore: 0,
		GreenTitle:          schema.TITLE_BEGINNER,
		GoodwillPoints:      0,
		Bio:                 req.Bio,
		CreatedAt:           time.Now().UTC().Format(time.RFC3339),
	}
	if user.PetTypes == nil {
		user.PetTypes = []string{}
	}

	if err := s.store.CreateUser(&user); err != nil {
		// the existence check above is racy; the store's uniqueness
		// constraint is authoritative
		if err == store.ErrUserTaken {
			abortWithEncoding(c, http.StatusConflict, errorWithMessage(1100,
				fmt.Sprintf("Username '%s' already exists", req.Username)))
			return
		}
		logger.WithError(err).Error("create user")
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	logger.WithFields(map[string]interface{}{
		"username": user.Username,
		"role":     user.Role,
	}).Info("created user")

	c.JSON(http.StatusCreated, schema.CreateUserResponse{
		User:    user,
		Message: "User created successfully",
	})
}

// listUsers is the API for listing every community member
func (s *Server) listUsers(c *gin.Context) {
	users, err := s.store.GetAllUsers()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, schema.UserListResponse{
		Users: users,
		Count: len(users),
	})
}

// getUser is the API for reading a single member profile
func (s *Server) getUser(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorWithMessage(1010, "Username parameter is required"))
		return
	}

	user, err := s.store.GetUser(username)
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorWithMessage(1101,
				fmt.Sprintf("User '%s' not found", username)))
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// addSustainabilityPoints is the API for crediting sustainable actions.
// The green title is recomputed by the store inside the same update.
func (s *Server) addSustainabilityPoints(c *gin.Context) {
	username := c.Param("username")

	var params struct {
		Points int `json:"points"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	user, err := s.store.AddSustainabilityPoints(username, params.Points)
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// addGoodwillPoints is the API for rewarding help rendered to others
func (s *Server) addGoodwillPoints(c *gin.Context) {
	username := c.Param("username")

	var params struct {
		Points int `json:"points"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	user, err := s.store.AddGoodwillPoints(username, params.Points)
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
