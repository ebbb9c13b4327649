package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/internal/domain"
	internal_errors "github.com/inkwell-dev/inkwell/internal/errors"
)

func TestCreatePostHandler(t *testing.T) {
	h := &Handler{cfg: testConfig(t)}
	user := domain.User{Id: 1, Username: "alice"}

	route := "/api/posts"
	requestBody := []byte(`{"title": "First", "content": "Hello"}`)

	t.Run("successful request", func(t *testing.T) {
		h.posts = &MockPostService{
			MockCreate: func(data domain.PostCreationData) (domain.Post, error) {
				require.Equal(t, "First", data.Title)
				require.Equal(t, "Hello", data.Content)
				require.Equal(t, user.Id, data.Author.Id)
				return domain.Post{Id: 10, Title: data.Title, Content: data.Content, Author: data.Author}, nil
			},
		}

		router := mux.NewRouter()
		router.Handle(route, withUser(&user, h.CreatePost)).Methods("POST")

		req := createRequest(t, http.MethodPost, route, requestBody)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":10`)
	})

	t.Run("missing fields", func(t *testing.T) {
		router := mux.NewRouter()
		router.Handle(route, withUser(&user, h.CreatePost)).Methods("POST")

		req := createRequest(t, http.MethodPost, route, []byte(`{"title": "First"}`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("no user in context", func(t *testing.T) {
		router := mux.NewRouter()
		router.HandleFunc(route, h.CreatePost).Methods("POST")

		req := createRequest(t, http.MethodPost, route, requestBody)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetPostsHandler(t *testing.T) {
	h := &Handler{cfg: testConfig(t)}

	route := "/api/posts"

	t.Run("successful request", func(t *testing.T) {
		h.posts = &MockPostService{
			MockList: func() ([]domain.Post, error) {
				return []domain.Post{
					{Id: 2, Title: "Second"},
					{Id: 1, Title: "First"},
				}, nil
			},
		}

		router := mux.NewRouter()
		router.HandleFunc(route, h.GetPosts).Methods("GET")

		req := createRequest(t, http.MethodGet, route, nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"Second"`)
		assert.Contains(t, rr.Body.String(), `"First"`)
	})

	t.Run("empty list", func(t *testing.T) {
		h.posts = &MockPostService{
			MockList: func() ([]domain.Post, error) {
				return []domain.Post{}, nil
			},
		}

		router := mux.NewRouter()
		router.HandleFunc(route, h.GetPosts).Methods("GET")

		req := createRequest(t, http.MethodGet, route, nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestGetPostHandler(t *testing.T) {
	h := &Handler{cfg: testConfig(t)}

	routePattern := "/api/posts/{id}"

	t.Run("successful request", func(t *testing.T) {
		h.posts = &MockPostService{
			MockGet: func(id domain.PostId) (domain.Post, error) {
				require.Equal(t, domain.PostId(42), id)
				return domain.Post{Id: 42, Title: "Answer"}, nil
			},
		}

		router := mux.NewRouter()
		router.HandleFunc(routePattern, h.GetPost).Methods("GET")

		req := createRequest(t, http.MethodGet, "/api/posts/42", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"Answer"`)
	})

	t.Run("post not found", func(t *testing.T) {
		h.posts = &MockPostService{
			MockGet: func(id domain.PostId) (domain.Post, error) {
				return domain.Post{}, internal_errors.NotFound("Post not found")
			},
		}

		router := mux.NewRouter()
		router.HandleFunc(routePattern, h.GetPost).Methods("GET")

		req := createRequest(t, http.MethodGet, "/api/posts/999", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"message":"Post not found"}`, rr.Body.String())
	})

	t.Run("non-numeric id", func(t *testing.T) {
		router := mux.NewRouter()
		router.HandleFunc(routePattern, h.GetPost).Methods("GET")

		req := createRequest(t, http.MethodGet, "/api/posts/abc", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUpdatePostHandler(t *testing.T) {
	h := &Handler{cfg: testConfig(t)}
	user := domain.User{Id: 1, Username: "alice"}

	routePattern := "/api/posts/{id}"

	t.Run("partial update passes through empty fields", func(t *testing.T) {
		h.posts = &MockPostService{
			MockUpdate: func(id domain.PostId, actor domain.User, upd domain.PostUpdateData) (domain.Post, error) {
				require.Equal(t, domain.PostId(5), id)
				require.Equal(t, "New title", upd.Title)
				require.Empty(t, upd.Content)
				return domain.Post{Id: 5, Title: upd.Title, Content: "old content"}, nil
			},
		}

		router := mux.NewRouter()
		router.Handle(routePattern, withUser(&user, h.UpdatePost)).Methods("PUT")

		req := createRequest(t, http.MethodPut, "/api/posts/5", []byte(`{"title": "New title"}`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"New title"`)
	})

	t.Run("not the author", func(t *testing.T) {
		h.posts = &MockPostService{
			MockUpdate: func(id domain.PostId, actor domain.User, upd domain.PostUpdateData) (domain.Post, error) {
				return domain.Post{}, internal_errors.Forbidden("Not authorized to update this post")
			},
		}

		router := mux.NewRouter()
		router.Handle(routePattern, withUser(&user, h.UpdatePost)).Methods("PUT")

		req := createRequest(t, http.MethodPut, "/api/posts/5", []byte(`{"title": "New title"}`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.JSONEq(t, `{"message":"Not authorized to update this post"}`, rr.Body.String())
	})

	t.Run("invalid body", func(t *testing.T) {
		router := mux.NewRouter()
		router.Handle(routePattern, withUser(&user, h.UpdatePost)).Methods("PUT")

		req := createRequest(t, http.MethodPut, "/api/posts/5", []byte(`{broken`))
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeletePostHandler(t *testing.T) {
	h := &Handler{cfg: testConfig(t)}
	user := domain.User{Id: 1, Username: "alice"}

	routePattern := "/api/posts/{id}"

	t.Run("successful request", func(t *testing.T) {
		deleted := false
		h.posts = &MockPostService{
			MockDelete: func(id domain.PostId, actor domain.User) error {
				deleted = true
				require.Equal(t, domain.PostId(5), id)
				require.Equal(t, user.Id, actor.Id)
				return nil
			},
		}

		router := mux.NewRouter()
		router.Handle(routePattern, withUser(&user, h.DeletePost)).Methods("DELETE")

		req := createRequest(t, http.MethodDelete, "/api/posts/5", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, deleted)
		assert.JSONEq(t, `{"message":"Post and its comments deleted successfully"}`, rr.Body.String())
	})

	t.Run("not the author", func(t *testing.T) {
		h.posts = &MockPostService{
			MockDelete: func(id domain.PostId, actor domain.User) error {
				return internal_errors.Forbidden("Not authorized to delete this post")
			},
		}

		router := mux.NewRouter()
		router.Handle(routePattern, withUser(&user, h.DeletePost)).Methods("DELETE")

		req := createRequest(t, http.MethodDelete, "/api/posts/5", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
