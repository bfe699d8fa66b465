package inspection

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/vehicle-inspection/internal/controller"
	"github.com/lshigami/vehicle-inspection/internal/dto"
	"github.com/lshigami/vehicle-inspection/internal/service"
	"github.com/rs/zerolog/log"
)

const serviceName = "Inspection Service"

type InspectionController struct {
	inspectionService service.InspectionService
}

func NewInspectionController(inspectionService service.InspectionService) *InspectionController {
	return &InspectionController{inspectionService: inspectionService}
}

// RegisterRoutes mounts the inspection endpoints under group. Numeric inspection ids
// and car ids share the ":id" wildcard because gin allows one wildcard name per segment.
func (c *InspectionController) RegisterRoutes(group *gin.RouterGroup) {
	inspections := group.Group("/inspections")
	inspections.GET("/health", c.HealthCheck)
	inspections.POST("", c.CreateInspection)
	inspections.GET("/car/:carId", c.GetInspectionsByCarID)
	inspections.GET("/:id", c.GetInspectionByID)
	inspections.GET("/:id/questions", c.GetInspectionQuestions)
	inspections.GET("/:id/summary", c.GetInspectionStats)
}

// GetInspectionQuestions godoc
// @Summary Get inspection questions for a vehicle
// @Description Returns the active checklist in display order. When the car has a draft or a completed inspection, each answered question carries that answer as previousAnswer with all photos marked isNew=false.
// @Tags Inspections
// @Produce json
// @Param carId path string true "Car ID" example(CAR-12345)
// @Success 200 {object} dto.InspectionQuestionsResponseDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inspections/{carId}/questions [get]
func (c *InspectionController) GetInspectionQuestions(ctx *gin.Context) {
	carID := ctx.Param("id")
	log.Info().Str("carID", carID).Msg("GET inspection questions")

	resp, err := c.inspectionService.GetInspectionQuestions(ctx.Request.Context(), carID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateInspection godoc
// @Summary Create a new inspection
// @Description Submits a completed checklist for a car. A YES answer needs a description and 1-3 photo URLs. The car's IN_PROGRESS inspection is reused when present; the stored inspection ends up COMPLETED.
// @Tags Inspections
// @Accept json
// @Produce json
// @Param request body dto.CreateInspectionRequestDTO true "Inspection request data"
// @Success 201 {object} dto.CreateInspectionResponseDTO "Inspection created successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation failed"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent submission for the same car"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inspections [post]
func (c *InspectionController) CreateInspection(ctx *gin.Context) {
	var req dto.CreateInspectionRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateInspection: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	log.Info().Str("carID", req.CarID).Int("answerCount", len(req.Answers)).Msg("POST create inspection")

	resp, err := c.inspectionService.CreateInspection(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetInspectionByID godoc
// @Summary Get inspection by ID
// @Description Debug projection of a single inspection with its answer count.
// @Tags Inspections
// @Produce json
// @Param inspectionId path int true "Inspection ID"
// @Success 200 {object} dto.InspectionDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Inspection ID format"
// @Failure 404 {object} dto.ErrorResponse "Inspection not found"
// @Router /inspections/{inspectionId} [get]
func (c *InspectionController) GetInspectionByID(ctx *gin.Context) {
	inspectionID, ok := controller.ParseIDParam(ctx, "id", "Inspection ID")
	if !ok {
		return
	}
	resp, err := c.inspectionService.GetInspectionByID(ctx.Request.Context(), inspectionID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetInspectionStats godoc
// @Summary Get answer and photo statistics of an inspection
// @Tags Inspections
// @Produce json
// @Param inspectionId path int true "Inspection ID"
// @Success 200 {object} dto.InspectionStatsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Inspection ID format"
// @Failure 404 {object} dto.ErrorResponse "Inspection not found"
// @Router /inspections/{inspectionId}/summary [get]
func (c *InspectionController) GetInspectionStats(ctx *gin.Context) {
	inspectionID, ok := controller.ParseIDParam(ctx, "id", "Inspection ID")
	if !ok {
		return
	}
	resp, err := c.inspectionService.GetInspectionStats(ctx.Request.Context(), inspectionID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetInspectionsByCarID godoc
// @Summary Get inspection history for a vehicle
// @Tags Inspections
// @Produce json
// @Param carId path string true "Car ID" example(CAR-12345)
// @Success 200 {object} dto.CarInspectionHistoryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /inspections/car/{carId} [get]
func (c *InspectionController) GetInspectionsByCarID(ctx *gin.Context) {
	carID := ctx.Param("carId")
	resp, err := c.inspectionService.GetInspectionsByCarID(ctx.Request.Context(), carID)
	if err != nil {
		controller.RespondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// HealthCheck godoc
// @Summary Health check
// @Tags Inspections
// @Produce json
// @Success 200 {object} dto.HealthResponseDTO
// @Router /inspections/health [get]
func (c *InspectionController) HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthResponseDTO{
		Status:    "UP",
		Service:   serviceName,
		Timestamp: time.Now(),
	})
}
