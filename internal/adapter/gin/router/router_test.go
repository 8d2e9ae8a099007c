package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitchen-control-backend/internal/adapter/db/postgres"
	"kitchen-control-backend/internal/adapter/gin/handler"
	"kitchen-control-backend/internal/adapter/gin/middleware"
	"kitchen-control-backend/internal/usecase/user"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

// UserAPITestSuite drives the full HTTP stack against an in-memory SQLite store.
type UserAPITestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (s *UserAPITestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	s.Require().NoError(err)

	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(db.AutoMigrate(&postgres.UserSchema{}))

	log := zaptest.NewLogger(s.T())
	repo := postgres.NewUserRepoPG(db, log)
	uc := user.New(repo, log)

	s.db = db
	s.router = SetupRouter(
		handler.NewUserHandler(uc, log),
		handler.NewHealthHandler("kitchen-control-backend", repo, log),
		Options{Development: true},
		log,
	)
	gin.SetMode(gin.TestMode)
}

func (s *UserAPITestSuite) TearDownTest() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (s *UserAPITestSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (s *UserAPITestSuite) TestListUsers_AliceAndBob() {
	s.Require().NoError(s.db.Create(&postgres.UserSchema{ID: 1, Name: "Alice"}).Error)
	s.Require().NoError(s.db.Create(&postgres.UserSchema{ID: 2, Name: "Bob"}).Error)

	w := s.get("/api/users")

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[{"id":1,"name":"Alice"},{"id":2,"name":"Bob"}]`, w.Body.String())
	s.NotEmpty(w.Header().Get(middleware.RequestIDHeader))
}

func (s *UserAPITestSuite) TestListUsers_Empty() {
	w := s.get("/api/users")

	s.Equal(http.StatusOK, w.Code)
	s.Equal("[]", w.Body.String())
}

func (s *UserAPITestSuite) TestListUsers_Idempotent() {
	s.Require().NoError(s.db.Create(&postgres.UserSchema{Name: "Alice"}).Error)
	s.Require().NoError(s.db.Create(&postgres.UserSchema{Name: "Bob"}).Error)
	s.Require().NoError(s.db.Create(&postgres.UserSchema{Name: "Carol"}).Error)

	first := s.get("/api/users")
	second := s.get("/api/users")

	s.Equal(http.StatusOK, first.Code)
	s.Equal(first.Body.String(), second.Body.String())

	var users []handler.UserResponse
	s.Require().NoError(json.Unmarshal(first.Body.Bytes(), &users))
	s.Len(users, 3)
}

func (s *UserAPITestSuite) TestListUsers_StorageUnavailable() {
	s.Require().NoError(s.db.Create(&postgres.UserSchema{Name: "Alice"}).Error)
	sqlDB, err := s.db.DB()
	s.Require().NoError(err)
	s.Require().NoError(sqlDB.Close())

	w := s.get("/api/users")

	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.Contains(w.Body.String(), "storage_unavailable")
	s.NotContains(w.Body.String(), "Alice")

	ready := s.get("/ready")
	s.Equal(http.StatusServiceUnavailable, ready.Code)
}

func (s *UserAPITestSuite) TestWriteMethodsNotRouted() {
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, httptest.NewRequest(method, "/api/users", nil))
		s.Equal(http.StatusNotFound, w.Code, method)
	}
}

func (s *UserAPITestSuite) TestHealthAndReady() {
	s.Equal(http.StatusOK, s.get("/health").Code)
	s.Equal(http.StatusOK, s.get("/ready").Code)
}

func (s *UserAPITestSuite) TestOpenAPIDocument() {
	w := s.get(OpenAPIPath)

	s.Equal(http.StatusOK, w.Code)
	var doc map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &doc))
	paths, ok := doc["paths"].(map[string]any)
	s.Require().True(ok)
	s.Contains(paths, "/api/users")
}

func TestUserAPITestSuite(t *testing.T) {
	suite.Run(t, new(UserAPITestSuite))
}
