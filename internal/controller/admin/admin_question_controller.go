package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/vehicle-inspection/internal/controller"
	"github.com/lshigami/vehicle-inspection/internal/dto"
	"github.com/lshigami/vehicle-inspection/internal/model"
	"github.com/lshigami/vehicle-inspection/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	questionService      service.QuestionService
	adminQuestionService service.AdminQuestionService
}

func NewAdminQuestionController(qs service.QuestionService, aqs service.AdminQuestionService) *AdminQuestionController {
	return &AdminQuestionController{questionService: qs, adminQuestionService: aqs}
}

func (c *AdminQuestionController) RegisterRoutes(group *gin.RouterGroup) {
	questions := group.Group("/questions")
	questions.GET("", c.ListQuestions)
	questions.POST("", c.CreateQuestion)
	questions.GET("/search", c.SearchQuestions)
	questions.GET("/count", c.CountActiveQuestions)
	questions.GET("/order/:orderIndex", c.GetQuestionByOrderIndex)
	questions.GET("/:id", c.GetQuestion)
	questions.PUT("/:id", c.UpdateQuestion)
	questions.DELETE("/:id", c.DeleteQuestion)
	questions.POST("/:id/toggle", c.ToggleQuestionStatus)
	questions.PUT("/:id/order", c.ReorderQuestion)
}

func toAdminDTO(question *model.Question) dto.QuestionAdminDTO {
	var out dto.QuestionAdminDTO
	copier.Copy(&out, question)
	return out
}

func toAdminDTOs(questions []model.Question) []dto.QuestionAdminDTO {
	out := make([]dto.QuestionAdminDTO, 0, len(questions))
	for i := range questions {
		out = append(out, toAdminDTO(&questions[i]))
	}
	return out
}

// ListQuestions godoc
// @Summary (Admin) List checklist questions
// @Description Lists every question in order. With active=true only the active checklist is returned.
// @Tags Admin - Questions
// @Produce json
// @Param active query bool false "Only active questions"
// @Success 200 {array} dto.QuestionAdminDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [get]
func (c *AdminQuestionController) ListQuestions(ctx *gin.Context) {
	var (
		questions []model.Question
		err       error
	)
	if onlyActive, _ := strconv.ParseBool(ctx.Query("active")); onlyActive {
		questions, err = c.questionService.ListActiveQuestions(ctx.Request.Context())
	} else {
		questions, err = c.questionService.ListAllQuestions(ctx.Request.Context())
	}
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAdminDTOs(questions))
}

// SearchQuestions godoc
// @Summary (Admin) Search active questions by text
// @Tags Admin - Questions
// @Produce json
// @Param q query string false "Text to search for"
// @Success 200 {array} dto.QuestionAdminDTO
// @Router /admin/questions/search [get]
func (c *AdminQuestionController) SearchQuestions(ctx *gin.Context) {
	questions, err := c.questionService.SearchQuestions(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAdminDTOs(questions))
}

// CountActiveQuestions godoc
// @Summary (Admin) Count active questions
// @Tags Admin - Questions
// @Produce json
// @Success 200 {object} dto.QuestionCountDTO
// @Router /admin/questions/count [get]
func (c *AdminQuestionController) CountActiveQuestions(ctx *gin.Context) {
	count, err := c.questionService.CountActiveQuestions(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.QuestionCountDTO{ActiveQuestions: count})
}

// GetQuestion godoc
// @Summary (Admin) Get a question
// @Tags Admin - Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionAdminDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [get]
func (c *AdminQuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Question ID")
	if !ok {
		return
	}
	question, err := c.questionService.GetQuestionByID(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAdminDTO(question))
}

// GetQuestionByOrderIndex godoc
// @Summary (Admin) Get the question at a checklist position
// @Tags Admin - Questions
// @Produce json
// @Param orderIndex path int true "Order index"
// @Success 200 {object} dto.QuestionAdminDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/order/{orderIndex} [get]
func (c *AdminQuestionController) GetQuestionByOrderIndex(ctx *gin.Context) {
	orderIndex, err := strconv.Atoi(ctx.Param("orderIndex"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid order index format"})
		return
	}
	question, err := c.questionService.GetQuestionByOrderIndex(ctx.Request.Context(), orderIndex)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAdminDTO(question))
}

// CreateQuestion godoc
// @Summary (Admin) Append a question to the checklist
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question body dto.QuestionCreateDTO true "Question text"
// @Success 201 {object} dto.QuestionAdminDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	question, err := c.adminQuestionService.CreateQuestion(ctx.Request.Context(), req.QuestionText)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toAdminDTO(question))
}

// UpdateQuestion godoc
// @Summary (Admin) Edit the text of a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "New question text"
// @Success 200 {object} dto.QuestionAdminDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [put]
func (c *AdminQuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Question ID")
	if !ok {
		return
	}
	var req dto.QuestionUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	question, err := c.adminQuestionService.UpdateQuestion(ctx.Request.Context(), id, req.QuestionText)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAdminDTO(question))
}

// ToggleQuestionStatus godoc
// @Summary (Admin) Activate or deactivate a question
// @Tags Admin - Questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionAdminDTO
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id}/toggle [post]
func (c *AdminQuestionController) ToggleQuestionStatus(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Question ID")
	if !ok {
		return
	}
	question, err := c.adminQuestionService.ToggleQuestionStatus(ctx.Request.Context(), id)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAdminDTO(question))
}

// ReorderQuestion godoc
// @Summary (Admin) Move a question to another checklist position
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param order body dto.QuestionReorderDTO true "Target order index"
// @Success 200 {object} dto.QuestionAdminDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 409 {object} dto.ErrorResponse "Order index taken by an inactive question"
// @Router /admin/questions/{id}/order [put]
func (c *AdminQuestionController) ReorderQuestion(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Question ID")
	if !ok {
		return
	}
	var req dto.QuestionReorderDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	question, err := c.adminQuestionService.ReorderQuestion(ctx.Request.Context(), id, req.OrderIndex)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toAdminDTO(question))
}

// DeleteQuestion godoc
// @Summary (Admin) Soft delete a question
// @Description Deactivates the question; answers given to it are kept.
// @Tags Admin - Questions
// @Param id path int true "Question ID"
// @Success 204 "Question deactivated"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [delete]
func (c *AdminQuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Question ID")
	if !ok {
		return
	}
	if err := c.adminQuestionService.DeleteQuestion(ctx.Request.Context(), id); err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
