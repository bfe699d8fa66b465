package inspection

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/vehicle-inspection/internal/dto"
	"github.com/lshigami/vehicle-inspection/internal/metrics"
	"github.com/lshigami/vehicle-inspection/internal/model"
	"github.com/lshigami/vehicle-inspection/internal/repository"
	"github.com/lshigami/vehicle-inspection/internal/service"
	"github.com/lshigami/vehicle-inspection/internal/testutil"
)

func setupInspectionTest(t *testing.T) (*gin.Engine, []model.Question) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	questions := testutil.SeedQuestions(t, db, "Body damage?", "Windshield cracks?")

	svc := service.NewInspectionService(
		repository.NewQuestionRepository(db),
		repository.NewInspectionRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewPhotoRepository(db),
		metrics.New(),
		db,
	)
	router := testutil.SetupRouter()
	NewInspectionController(svc).RegisterRoutes(router.Group("/api/v1"))
	return router, questions
}

func TestInspectionAPI_SubmitThenFetchChecklist(t *testing.T) {
	router, questions := setupInspectionTest(t)

	body := map[string]interface{}{
		"carId": "CAR-12345",
		"answers": []map[string]interface{}{
			{"questionId": questions[0].ID, "answer": "YES", "description": "dent on left door", "photoUrls": []string{"u1", "u2"}},
			{"questionId": questions[1].ID, "answer": "NO"},
		},
	}
	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/inspections", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created dto.CreateInspectionResponseDTO
	testutil.DecodeJSON(t, w, &created)
	if created.CarID != "CAR-12345" || created.Status != "COMPLETED" || created.Message != "Inspection created successfully" {
		t.Errorf("Unexpected create response: %+v", created)
	}

	w = testutil.DoRequest(router, http.MethodGet, "/api/v1/inspections/CAR-12345/questions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var checklist map[string]interface{}
	testutil.DecodeJSON(t, w, &checklist)
	if checklist["hasPreviousInspection"] != true || checklist["status"] != "COMPLETED" {
		t.Errorf("Unexpected checklist header: %v", checklist)
	}
	if checklist["inspectionId"] != float64(created.InspectionID) {
		t.Errorf("Expected inspectionId %d, got %v", created.InspectionID, checklist["inspectionId"])
	}
	items := checklist["questions"].([]interface{})
	first := items[0].(map[string]interface{})
	prev := first["previousAnswer"].(map[string]interface{})
	if prev["answer"] != "YES" || prev["description"] != "dent on left door" {
		t.Errorf("Unexpected previousAnswer: %v", prev)
	}
	photos := prev["photos"].([]interface{})
	if len(photos) != 2 {
		t.Fatalf("Expected 2 photos, got %v", photos)
	}
	for _, p := range photos {
		if p.(map[string]interface{})["isNew"] != false {
			t.Errorf("Expected isNew=false on carried photo, got %v", p)
		}
	}
}

func TestInspectionAPI_FirstTimeCar(t *testing.T) {
	router, _ := setupInspectionTest(t)

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/inspections/NEW-CAR/questions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var resp dto.InspectionQuestionsResponseDTO
	testutil.DecodeJSON(t, w, &resp)
	if resp.HasPreviousInspection || len(resp.Questions) != 2 || resp.Questions[0].PreviousAnswer != nil {
		t.Errorf("Unexpected first-time checklist: %+v", resp)
	}
}

func TestInspectionAPI_ValidationErrors(t *testing.T) {
	router, questions := setupInspectionTest(t)

	tests := []struct {
		name    string
		body    interface{}
		wantMsg string
	}{
		{"empty car id", map[string]interface{}{"carId": "", "answers": []interface{}{}}, "Car ID cannot be null or empty"},
		{"no answers", map[string]interface{}{"carId": "CAR-1"}, "Answers cannot be null or empty"},
		{"yes without photos", map[string]interface{}{
			"carId":   "CAR-1",
			"answers": []map[string]interface{}{{"questionId": questions[0].ID, "answer": "YES", "description": "d"}},
		}, "At least one photo is required for YES answers"},
		{"bad answer", map[string]interface{}{
			"carId":   "CAR-1",
			"answers": []map[string]interface{}{{"questionId": questions[0].ID, "answer": "PERHAPS"}},
		}, "Answer must be YES or NO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testutil.DoRequest(router, http.MethodPost, "/api/v1/inspections", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
			}
			var errResp dto.ErrorResponse
			testutil.DecodeJSON(t, w, &errResp)
			if errResp.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", errResp.Message, tt.wantMsg)
			}
		})
	}

	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/inspections", "{not json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for malformed body, got %d", w.Code)
	}
}

func TestInspectionAPI_UnknownQuestion(t *testing.T) {
	router, _ := setupInspectionTest(t)

	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/inspections", map[string]interface{}{
		"carId":   "CAR-1",
		"answers": []map[string]interface{}{{"questionId": 4242, "answer": "NO"}},
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
	var errResp dto.ErrorResponse
	testutil.DecodeJSON(t, w, &errResp)
	if errResp.Message != "Question not found with id: 4242" {
		t.Errorf("Unexpected message %q", errResp.Message)
	}
}

func TestInspectionAPI_DebugEndpoints(t *testing.T) {
	router, questions := setupInspectionTest(t)

	w := testutil.DoRequest(router, http.MethodPost, "/api/v1/inspections", map[string]interface{}{
		"carId":   "CAR-77",
		"answers": []map[string]interface{}{{"questionId": questions[0].ID, "answer": "YES", "description": "d", "photoUrls": []string{"p.jpg"}}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.Code)
	}
	var created dto.CreateInspectionResponseDTO
	testutil.DecodeJSON(t, w, &created)

	w = testutil.DoRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/inspections/%d", created.InspectionID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var detail dto.InspectionDetailDTO
	testutil.DecodeJSON(t, w, &detail)
	if detail.CarID != "CAR-77" || detail.AnswerCount != 1 {
		t.Errorf("Unexpected detail: %+v", detail)
	}

	w = testutil.DoRequest(router, http.MethodGet, fmt.Sprintf("/api/v1/inspections/%d/summary", created.InspectionID), nil)
	var stats dto.InspectionStatsDTO
	testutil.DecodeJSON(t, w, &stats)
	if w.Code != http.StatusOK || stats.YesAnswers != 1 || stats.NewPhotos != 1 {
		t.Errorf("Unexpected summary %d: %+v", w.Code, stats)
	}

	w = testutil.DoRequest(router, http.MethodGet, "/api/v1/inspections/car/CAR-77", nil)
	var history dto.CarInspectionHistoryDTO
	testutil.DecodeJSON(t, w, &history)
	if w.Code != http.StatusOK || history.TotalInspections != 1 {
		t.Errorf("Unexpected history %d: %+v", w.Code, history)
	}

	if w := testutil.DoRequest(router, http.MethodGet, "/api/v1/inspections/999999", nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown inspection, got %d", w.Code)
	}
	if w := testutil.DoRequest(router, http.MethodGet, "/api/v1/inspections/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for non-numeric id, got %d", w.Code)
	}
}

func TestInspectionAPI_Health(t *testing.T) {
	router, _ := setupInspectionTest(t)

	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/inspections/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var health dto.HealthResponseDTO
	testutil.DecodeJSON(t, w, &health)
	if health.Status != "UP" || health.Service != "Inspection Service" || health.Timestamp.IsZero() {
		t.Errorf("Unexpected health response: %+v", health)
	}
}

func TestInspectionAPI_CarSegmentIsHistoryRoute(t *testing.T) {
	router, _ := setupInspectionTest(t)

	// The static "car" segment wins over the car id wildcard.
	w := testutil.DoRequest(router, http.MethodGet, "/api/v1/inspections/car/questions", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	var history dto.CarInspectionHistoryDTO
	testutil.DecodeJSON(t, w, &history)
	if history.CarID != "questions" {
		t.Errorf("Expected the history route for car %q, got %+v", "questions", history)
	}
}
