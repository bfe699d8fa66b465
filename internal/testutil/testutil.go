package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/lshigami/vehicle-inspection/database"
	"github.com/lshigami/vehicle-inspection/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// SetupTestDB opens a private in-memory sqlite database migrated with the service
// schema. A single connection is used, so code under test must do all work of a
// transaction through the transaction handle.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

// SetupRouter creates a gin router in test mode.
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	return r
}

// DoRequest executes an HTTP request against the test router. A nil body sends no payload.
func DoRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		switch b := body.(type) {
		case string:
			reqBody.WriteString(b)
		default:
			jsonBytes, _ := json.Marshal(body)
			reqBody.Write(jsonBytes)
		}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals the recorded body into out, failing the test on error.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("Failed to decode response %q: %v", w.Body.String(), err)
	}
}

// SeedQuestions inserts active questions with order indexes 1..n in the given order.
func SeedQuestions(t *testing.T, db *gorm.DB, texts ...string) []model.Question {
	t.Helper()
	questions := make([]model.Question, 0, len(texts))
	for i, text := range texts {
		q := model.Question{QuestionText: text, OrderIndex: i + 1, IsActive: true}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("Failed to seed question %q: %v", text, err)
		}
		questions = append(questions, q)
	}
	return questions
}

// SeedInspection stores an inspection with the given answers. Photos listed on an
// answer are stored with the IsNew flag they carry.
func SeedInspection(t *testing.T, db *gorm.DB, inspection *model.Inspection) *model.Inspection {
	t.Helper()
	if err := db.Create(inspection).Error; err != nil {
		t.Fatalf("Failed to seed inspection for car %s: %v", inspection.CarID, err)
	}
	return inspection
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }

// UintPtr returns a pointer to v.
func UintPtr(v uint) *uint { return &v }
