package handlers

import (
	"net/http"

	"assuredgig/internal/services"
	"assuredgig/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  Client ID is taken from auth context.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      201 {object}  dto.JobResponse "Job created successfully"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not a client"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	clientID, ok := currentUser(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	// Set ClientID from context
	req.ClientID = clientID

	createdJob, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create job")
		return
	}
	c.JSON(http.StatusCreated, MapJobModelToJobResponse(createdJob))
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobResponse "Successfully retrieved job"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetJobByID(c *gin.Context) {
	jobID, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), &dto.GetJobByIDRequest{ID: jobID})
	if err != nil {
		respondError(c, err, "retrieve job")
		return
	}
	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Supports status, client, skill, text and budget filters plus pagination.
// @Tags         jobs
// @Produce      json
// @Param        status query string false "Filter by status" Enums(OPEN, IN_PROGRESS, CLOSED)
// @Param        client_id query string false "Filter by client" Format(uuid)
// @Param        skill query string false "Required skill"
// @Param        q query string false "Text search on title and description"
// @Param        min_budget query number false "Minimum budget"
// @Param        max_budget query number false "Maximum budget"
// @Param        limit query int false "Pagination limit" default(10)
// @Param        offset query int false "Pagination offset" default(0)
// @Success      200 {array}   dto.JobResponse
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	jobs, err := h.service.ListJobs(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "retrieve jobs")
		return
	}

	jobResponses := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		jobResponses = append(jobResponses, MapJobModelToJobResponse(&jobs[i]))
	}
	c.JSON(http.StatusOK, jobResponses)
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Details are editable only while the job is OPEN; status only accepts CLOSED.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        job body dto.UpdateJobRequest true "Fields to update"
// @Success      200 {object}  dto.JobResponse
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input or state"
// @Failure      403 {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Router       /jobs/{id} [patch]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if !bindJSON(c, h.validator, &req) {
		return
	}
	if !req.HasDetailChanges() && req.Status == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one field must be provided for update"})
		return
	}
	req.ID = jobID
	req.UserID = userID

	updatedJob, err := h.service.UpdateJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "update job")
		return
	}
	c.JSON(http.StatusOK, MapJobModelToJobResponse(updatedJob))
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Only the owner may delete, and only while the job is OPEN.
// @Tags         jobs
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object}  map[string]string "Job is not OPEN"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "id", "job")
	if !ok {
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), &dto.DeleteJobRequest{ID: jobID, UserID: userID}); err != nil {
		respondError(c, err, "delete job")
		return
	}
	c.Status(http.StatusNoContent)
}
