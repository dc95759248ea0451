package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/suscommunity/community-api/api/mocks"
	"github.com/suscommunity/community-api/schema"
	"github.com/suscommunity/community-api/store"
)

func testRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/posts", s.createPost)
	router.GET("/posts", s.listPosts)
	router.GET("/posts/:id", s.getPost)
	router.PUT("/posts/:id", s.updatePost)
	router.PATCH("/posts/:id/status", s.updatePostStatus)
	router.DELETE("/posts/:id", s.deletePost)
	return router
}

func TestCreatePost(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityStore(ctl)
	s := Server{store: m}

	m.EXPECT().UserExists("alice").Return(true, nil).Times(1)
	m.EXPECT().InsertPost(gomock.Any()).Return(nil).Times(1)

	body := `{
		"title": "Need help moving furniture",
		"description": "Heavy items, two hours tops",
		"location": {"latitude": 48.1351, "longitude": 11.582, "address": "Marienplatz"},
		"tag": "MOVING_HELP",
		"dueDate": "2025-12-25T14:00:00Z",
		"images": ["https://example.com/sofa.jpg"],
		"authorId": "alice"
	}`

	req := httptest.NewRequest("POST", "/posts", strings.NewReader(body))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var resp schema.CreatePostResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Post created successfully", resp.Message)
	assert.NotEmpty(t, resp.Post.ID, "server must assign an id")
	assert.NotEmpty(t, resp.Post.CreatedAt, "server must assign createdAt")
	assert.Equal(t, schema.POST_OPEN, resp.Post.Status)
	assert.Equal(t, "alice", resp.Post.AuthorID)
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityStore(ctl)
	s := Server{store: m}

	m.EXPECT().UserExists("ghost").Return(false, nil).Times(1)

	body := `{
		"title": "t",
		"description": "d",
		"location": {"latitude": 1, "longitude": 2},
		"tag": "OTHER",
		"dueDate": "2025-12-25T14:00:00Z",
		"authorId": "ghost"
	}`

	req := httptest.NewRequest("POST", "/posts", strings.NewReader(body))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "ghost")
}

func TestCreatePostTooManyImages(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityStore(ctl)
	s := Server{store: m}

	images := make([]string, 11)
	for i := range images {
		images[i] = "https://example.com/img.jpg"
	}
	payload, _ := json.Marshal(map[string]interface{}{
		"title":       "t",
		"description": "d",
		"location":    map[string]float64{"latitude": 1, "longitude": 2},
		"tag":         "OTHER",
		"dueDate":     "2025-12-25T14:00:00Z",
		"images":      images,
		"authorId":    "alice",
	})

	req := httptest.NewRequest("POST", "/posts", strings.NewReader(string(payload)))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Maximum 10 images allowed per post", resp.Message)
}

func TestListPosts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityStore(ctl)
	s := Server{store: m}

	posts := []schema.Post{
		{ID: "2", Title: "newer", Status: schema.POST_OPEN},
		{ID: "1", Title: "older", Status: schema.POST_OPEN},
	}
	m.EXPECT().GetAllPosts().Return(posts, nil).Times(1)

	req := httptest.NewRequest("GET", "/posts", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp schema.PostListResponse
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "2", resp.Posts[0].ID)
}

func TestListPostsByTag(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityStore(ctl)
	s := Server{store: m}

	m.EXPECT().GetPostsByTag(schema.TAG_TUTORING).Return([]schema.Post{}, nil).Times(1)

	req := httptest.NewRequest("GET", "/posts?tag=TUTORING", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestListPostsUnknownTag(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityStore(ctl)
	s := Server{store: m}

	req := httptest.NewRequest("GET", "/posts?tag=OfferHelp", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestGetPostNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityStore(ctl)
	s := Server{store: m}

	m.EXPECT().GetPost("missing").Return(nil, store.ErrPostNotFound).Times(1)

	req := httptest.NewRequest("GET", "/posts/missing", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestUpdatePostKeepsImmutableFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityStore(ctl)
	s := Server{store: m}

	existing := schema.Post{
		ID:        "p1",
		AuthorID:  "alice",
		CreatedAt: "2025-11-22T10:30:00Z",
		Status:    schema.POST_IN_PROGRESS,
	}
	m.EXPECT().GetPost("p1").Return(&existing, nil).Times(1)
	m.EXPECT().UpdatePost("p1", gomock.Any()).DoAndReturn(
		func(id string, post *schema.Post) error {
			assert.Equal(t, "alice", post.AuthorID)
			assert.Equal(t, "2025-11-22T10:30:00Z", post.CreatedAt)
			assert.Equal(t, schema.POST_IN_PROGRESS, post.Status)
			assert.Equal(t, "New title", post.Title)
			return nil
		}).Times(1)

	body := `{
		"title": "New title",
		"description": "New description",
		"location": {"latitude": 48.0, "longitude": 11.0},
		"tag": "EVENT",
		"dueDate": "2026-01-01T00:00:00Z"
	}`

	req := httptest.NewRequest("PUT", "/posts/p1", strings.NewReader(body))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdatePostStatus(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityStore(ctl)
	s := Server{store: m}

	m.EXPECT().UpdatePostStatus("p1", schema.POST_COMPLETED).Return(nil).Times(1)

	req := httptest.NewRequest("PATCH", "/posts/p1/status", strings.NewReader(`{"status":"COMPLETED"}`))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestUpdatePostStatusUnknownValue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityStore(ctl)
	s := Server{store: m}

	req := httptest.NewRequest("PATCH", "/posts/p1/status", strings.NewReader(`{"status":"DONE"}`))
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestDeletePost(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityStore(ctl)
	s := Server{store: m}

	m.EXPECT().DeletePost("p1").Return(nil).Times(1)

	req := httptest.NewRequest("DELETE", "/posts/p1", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]string
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Post deleted successfully", resp["message"])
	assert.Equal(t, "p1", resp["id"])
}

func TestDeletePostNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockCommunityStore(ctl)
	s := Server{store: m}

	m.EXPECT().DeletePost("missing").Return(store.ErrPostNotFound).Times(1)

	req := httptest.NewRequest("DELETE", "/posts/missing", nil)
	w := httptest.NewRecorder()
	testRouter(&s).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}
