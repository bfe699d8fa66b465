package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lshigami/vehicle-inspection/internal/model"
	"github.com/lshigami/vehicle-inspection/internal/repository"
	"github.com/lshigami/vehicle-inspection/internal/testutil"
)

func TestQuestionRepository_FindAllActiveOrdered(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := repository.NewQuestionRepository(db)

	db.Create(&model.Question{QuestionText: "third", OrderIndex: 3, IsActive: true})
	db.Create(&model.Question{QuestionText: "first", OrderIndex: 1, IsActive: true})
	db.Create(&model.Question{QuestionText: "inactive", OrderIndex: 2, IsActive: false})

	questions, err := repo.FindAllActive(ctx)
	if err != nil {
		t.Fatalf("FindAllActive: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("Expected 2 active questions, got %d", len(questions))
	}
	if questions[0].QuestionText != "first" || questions[1].QuestionText != "third" {
		t.Errorf("Unexpected order: %q, %q", questions[0].QuestionText, questions[1].QuestionText)
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 3 || all[1].QuestionText != "inactive" {
		t.Errorf("Expected all 3 questions ordered by index, got %+v", all)
	}

	count, err := repo.CountActive(ctx)
	if err != nil || count != 2 {
		t.Errorf("CountActive = %d, %v; want 2", count, err)
	}
}

func TestQuestionRepository_FindByIDNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewQuestionRepository(db)

	_, err := repo.FindByID(context.Background(), 999)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestQuestionRepository_SearchAndMaxOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := repository.NewQuestionRepository(db)

	max, err := repo.MaxOrderIndex(ctx)
	if err != nil || max != 0 {
		t.Fatalf("MaxOrderIndex on empty catalog = %d, %v", max, err)
	}

	testutil.SeedQuestions(t, db, "Any Damage on the body?", "Tyres worn?", "Body panels aligned?")

	found, err := repo.FindActiveByTextContaining(ctx, "body")
	if err != nil {
		t.Fatalf("FindActiveByTextContaining: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("Expected 2 matches for 'body', got %d", len(found))
	}

	max, _ = repo.MaxOrderIndex(ctx)
	if max != 3 {
		t.Errorf("MaxOrderIndex = %d, want 3", max)
	}

	q, err := repo.FindByOrderIndex(ctx, 2)
	if err != nil || q.QuestionText != "Tyres worn?" {
		t.Errorf("FindByOrderIndex(2) = %+v, %v", q, err)
	}
}

func TestQuestionRepository_ShiftActiveOrderIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := repository.NewQuestionRepository(db)

	qs := testutil.SeedQuestions(t, db, "a", "b", "c", "d")

	// Move "d" in front: free index 4, shift 1..3 up by one.
	last := qs[3]
	last.OrderIndex = 0
	if err := repo.Update(ctx, &last); err != nil {
		t.Fatalf("park: %v", err)
	}
	if err := repo.ShiftActiveOrderIndexes(ctx, 1, 3, 1); err != nil {
		t.Fatalf("ShiftActiveOrderIndexes: %v", err)
	}
	last.OrderIndex = 1
	if err := repo.Update(ctx, &last); err != nil {
		t.Fatalf("place: %v", err)
	}

	all, _ := repo.FindAll(ctx)
	got := ""
	for _, q := range all {
		got += q.QuestionText
	}
	if got != "dabc" {
		t.Errorf("Order after shift = %q, want %q", got, "dabc")
	}
}

func TestQuestionRepository_DuplicateOrderIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewQuestionRepository(db)
	testutil.SeedQuestions(t, db, "a")

	err := repo.Create(context.Background(), &model.Question{QuestionText: "b", OrderIndex: 1, IsActive: true})
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}
}

func TestInspectionRepository_FindLatestByCarAndStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := repository.NewInspectionRepository(db)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	older := testutil.SeedInspection(t, db, &model.Inspection{CarID: "CAR-1", InspectionDate: base, Status: model.InspectionStatusCompleted, CreatedAt: base})
	newer := testutil.SeedInspection(t, db, &model.Inspection{CarID: "CAR-1", InspectionDate: base, Status: model.InspectionStatusCompleted, CreatedAt: base.Add(time.Hour)})
	tie := testutil.SeedInspection(t, db, &model.Inspection{CarID: "CAR-1", InspectionDate: base, Status: model.InspectionStatusCompleted, CreatedAt: base.Add(time.Hour)})
	testutil.SeedInspection(t, db, &model.Inspection{CarID: "CAR-2", InspectionDate: base, Status: model.InspectionStatusCompleted, CreatedAt: base.Add(2 * time.Hour)})

	latest, err := repo.FindLatestByCarAndStatus(ctx, "CAR-1", model.InspectionStatusCompleted)
	if err != nil {
		t.Fatalf("FindLatestByCarAndStatus: %v", err)
	}
	if latest.ID != tie.ID {
		t.Errorf("Expected tie broken by higher id %d, got %d (older=%d newer=%d)", tie.ID, latest.ID, older.ID, newer.ID)
	}

	_, err = repo.FindLatestByCarAndStatus(ctx, "CAR-1", model.InspectionStatusInProgress)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing draft, got %v", err)
	}

	history, err := repo.FindAllByCarID(ctx, "CAR-1")
	if err != nil {
		t.Fatalf("FindAllByCarID: %v", err)
	}
	if len(history) != 3 || history[0].ID != tie.ID || history[2].ID != older.ID {
		t.Errorf("Unexpected history order: %+v", history)
	}
}

func TestInspectionRepository_SingleDraftPerCar(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := repository.NewInspectionRepository(db)

	first := &model.Inspection{CarID: "CAR-1", InspectionDate: time.Now(), Status: model.InspectionStatusInProgress}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create first draft: %v", err)
	}
	second := &model.Inspection{CarID: "CAR-1", InspectionDate: time.Now(), Status: model.InspectionStatusInProgress}
	if err := repo.Create(ctx, second); !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate for a second draft, got %v", err)
	}

	first.MarkAsCompleted()
	if err := repo.Update(ctx, first); err != nil {
		t.Fatalf("Complete first draft: %v", err)
	}
	third := &model.Inspection{CarID: "CAR-1", InspectionDate: time.Now(), Status: model.InspectionStatusInProgress}
	if err := repo.Create(ctx, third); err != nil {
		t.Errorf("Expected a new draft after completion, got %v", err)
	}
}

func TestAnswerAndPhotoRepositories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	answers := repository.NewAnswerRepository(db)
	photos := repository.NewPhotoRepository(db)

	qs := testutil.SeedQuestions(t, db, "q1", "q2")
	inspection := testutil.SeedInspection(t, db, &model.Inspection{CarID: "CAR-1", InspectionDate: time.Now(), Status: model.InspectionStatusCompleted})

	yes := &model.Answer{InspectionID: inspection.ID, QuestionID: qs[0].ID, Answer: model.AnswerYes, Description: testutil.StringPtr("dent")}
	no := &model.Answer{InspectionID: inspection.ID, QuestionID: qs[1].ID, Answer: model.AnswerNo}
	if err := answers.Create(ctx, yes); err != nil {
		t.Fatalf("Create yes: %v", err)
	}
	if err := answers.Create(ctx, no); err != nil {
		t.Fatalf("Create no: %v", err)
	}
	dup := &model.Answer{InspectionID: inspection.ID, QuestionID: qs[0].ID, Answer: model.AnswerNo}
	if err := answers.Create(ctx, dup); !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate for second answer to the same question, got %v", err)
	}

	if err := photos.CreateBatch(ctx, nil); err != nil {
		t.Errorf("CreateBatch(nil) should be a no-op, got %v", err)
	}
	err := photos.CreateBatch(ctx, []model.Photo{
		{AnswerID: yes.ID, PhotoURL: "https://cdn/a.jpg", IsNew: true},
		{AnswerID: yes.ID, PhotoURL: "https://cdn/b.jpg", IsNew: false},
	})
	if err != nil {
		t.Fatalf("CreateBatch: %v", err)
	}

	loaded, err := answers.FindByInspectionIDWithPhotos(ctx, inspection.ID)
	if err != nil {
		t.Fatalf("FindByInspectionIDWithPhotos: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("Expected 2 answers, got %d", len(loaded))
	}
	if len(loaded[0].Photos) != 2 || loaded[0].Photos[0].PhotoURL != "https://cdn/a.jpg" {
		t.Errorf("Unexpected photos on YES answer: %+v", loaded[0].Photos)
	}
	if len(loaded[1].Photos) != 0 {
		t.Errorf("Expected no photos on NO answer, got %d", len(loaded[1].Photos))
	}

	found, err := answers.FindByInspectionAndQuestion(ctx, inspection.ID, qs[1].ID)
	if err != nil || found.ID != no.ID {
		t.Errorf("FindByInspectionAndQuestion = %+v, %v", found, err)
	}

	grouped, err := answers.CountByInspectionGroupedByAnswer(ctx, inspection.ID)
	if err != nil {
		t.Fatalf("CountByInspectionGroupedByAnswer: %v", err)
	}
	counts := map[model.AnswerType]int64{}
	for _, row := range grouped {
		counts[row.Answer] = row.Count
	}
	if counts[model.AnswerYes] != 1 || counts[model.AnswerNo] != 1 {
		t.Errorf("Unexpected grouped counts: %+v", grouped)
	}

	stats, err := photos.StatsByInspectionID(ctx, inspection.ID)
	if err != nil {
		t.Fatalf("StatsByInspectionID: %v", err)
	}
	if stats.Total != 2 || stats.NewCount != 1 || stats.PreviousCount != 1 {
		t.Errorf("Unexpected photo stats: %+v", stats)
	}
}

func TestInspectionRepository_CascadeDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	qs := testutil.SeedQuestions(t, db, "q1")
	inspection := testutil.SeedInspection(t, db, &model.Inspection{
		CarID:          "CAR-1",
		InspectionDate: time.Now(),
		Status:         model.InspectionStatusCompleted,
		Answers: []model.Answer{{
			QuestionID:  qs[0].ID,
			Answer:      model.AnswerYes,
			Description: testutil.StringPtr("scratch"),
			Photos:      []model.Photo{{PhotoURL: "https://cdn/x.png", IsNew: true}},
		}},
	})

	if err := db.Delete(&model.Inspection{}, inspection.ID).Error; err != nil {
		t.Fatalf("Delete inspection: %v", err)
	}
	var answers, photos int64
	db.Model(&model.Answer{}).Count(&answers)
	db.Model(&model.Photo{}).Count(&photos)
	if answers != 0 || photos != 0 {
		t.Errorf("Expected cascade delete, still have %d answers and %d photos", answers, photos)
	}
}
