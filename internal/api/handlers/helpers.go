package handlers

import (
	"net/http"
	"reflect"
	"strings"

	"assuredgig/internal/api/middleware"
	"assuredgig/internal/models"
	"assuredgig/internal/services"
	"assuredgig/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// NewValidator returns a validator that reports fields by their JSON or form name.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	return v
}

// currentUser reads the authenticated user id, writing a 401 when it is missing.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.WithError(err).Error("Error getting user ID from context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses a UUID path parameter, writing a 400 naming the resource on failure.
func pathID(c *gin.Context, param, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + resource + " ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON binds and validates a JSON body.
func bindJSON(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return false
	}
	if err := v.Struct(req); err != nil {
		respondValidation(c, err)
		return false
	}
	return true
}

// bindQuery binds and validates query parameters.
func bindQuery(c *gin.Context, v *validator.Validate, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return false
	}
	if err := v.Struct(req); err != nil {
		respondValidation(c, err)
		return false
	}
	return true
}

// MapUserModelToUserResponse converts a models.User to a dto.UserResponse.
// Email is only included when includeEmail is set (the caller's own profile).
func MapUserModelToUserResponse(user *models.User, includeEmail bool) dto.UserResponse {
	resp := dto.UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Role:          user.Role,
		Bio:           user.Bio,
		Skills:        nonNilStrings(user.Skills),
		HourlyRate:    user.HourlyRate,
		PortfolioLink: user.PortfolioLink,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
	if includeEmail {
		resp.Email = user.Email
	}
	return resp
}

func MapAuthResultToResponse(res *services.AuthResult) dto.AuthResponse {
	user := MapUserModelToUserResponse(res.User, true)
	return dto.AuthResponse{
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresIn:    res.ExpiresIn,
		User:         &user,
	}
}

// MapJobModelToJobResponse converts a models.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:          job.ID,
		ClientID:    job.ClientID,
		Title:       job.Title,
		Description: job.Description,
		Budget:      job.Budget,
		Deadline:    job.Deadline,
		Skills:      nonNilStrings(job.Skills),
		Status:      job.Status,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}

func MapProposalModelToResponse(p *models.Proposal) dto.ProposalResponse {
	return dto.ProposalResponse{
		ID:           p.ID,
		JobID:        p.JobID,
		FreelancerID: p.FreelancerID,
		CoverLetter:  p.CoverLetter,
		BidAmount:    p.BidAmount,
		Status:       p.Status,
		Feedback:     p.Feedback,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// MapContractModelToResponse converts a contract; progress is optional.
func MapContractModelToResponse(contract *models.Contract, progress *models.Progress) dto.ContractResponse {
	resp := dto.ContractResponse{
		ID:           contract.ID,
		JobID:        contract.JobID,
		ProposalID:   contract.ProposalID,
		ClientID:     contract.ClientID,
		FreelancerID: contract.FreelancerID,
		Amount:       contract.Amount,
		Status:       contract.Status,
		CreatedAt:    contract.CreatedAt,
		UpdatedAt:    contract.UpdatedAt,
	}
	if progress != nil {
		p := MapProgressToResponse(contract.ID, progress)
		resp.Progress = &p
	}
	return resp
}

func MapMilestoneModelToResponse(m *models.Milestone) dto.MilestoneResponse {
	return dto.MilestoneResponse{
		ID:          m.ID,
		ContractID:  m.ContractID,
		Description: m.Description,
		Amount:      m.Amount,
		Status:      m.Status,
		CompletedAt: m.CompletedAt,
		CreatedAt:   m.CreatedAt,
	}
}

func MapProgressToResponse(contractID uuid.UUID, p *models.Progress) dto.ProgressResponse {
	resp := dto.ProgressResponse{
		ContractID: contractID,
		Milestones: make([]dto.MilestoneResponse, 0, len(p.Milestones)),
		Completed:  p.Completed,
		Total:      p.Total,
		Percentage: p.Percentage,
	}
	for i := range p.Milestones {
		resp.Milestones = append(resp.Milestones, MapMilestoneModelToResponse(&p.Milestones[i]))
	}
	return resp
}

func MapPaymentModelToResponse(p *models.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:               p.ID,
		ContractID:       p.ContractID,
		PayerID:          p.PayerID,
		Amount:           p.Amount,
		Currency:         p.Currency,
		Provider:         p.Provider,
		GatewayOrderID:   p.GatewayOrderID,
		GatewayPaymentID: p.GatewayPaymentID,
		Status:           p.Status,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func MapMessageModelToResponse(m *models.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:         m.ID,
		ContractID: m.ContractID,
		SenderID:   m.SenderID,
		Body:       m.Body,
		CreatedAt:  m.CreatedAt,
	}
}

func MapNotificationModelToResponse(n *models.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:          n.ID,
		Type:        n.Type,
		Title:       n.Title,
		Body:        n.Body,
		ReferenceID: n.ReferenceID,
		Read:        n.Read,
		ReadAt:      n.ReadAt,
		CreatedAt:   n.CreatedAt,
	}
}

func MapPortfolioModelToResponse(p *models.Portfolio) dto.PortfolioResponse {
	resp := dto.PortfolioResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Headline:  p.Headline,
		About:     p.About,
		Projects:  make([]dto.PortfolioProject, 0, len(p.Projects)),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for _, project := range p.Projects {
		resp.Projects = append(resp.Projects, dto.PortfolioProject(project))
	}
	return resp
}

func MapResumeModelToResponse(r *models.Resume) dto.ResumeResponse {
	resp := dto.ResumeResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		Summary:    r.Summary,
		Experience: make([]dto.ResumeExperience, 0, len(r.Experience)),
		Education:  make([]dto.ResumeEducation, 0, len(r.Education)),
		Skills:     nonNilStrings(r.Skills),
		UpdatedAt:  r.UpdatedAt,
	}
	for _, e := range r.Experience {
		resp.Experience = append(resp.Experience, dto.ResumeExperience(e))
	}
	for _, e := range r.Education {
		resp.Education = append(resp.Education, dto.ResumeEducation(e))
	}
	return resp
}

func MapGigModelToResponse(g *models.Gig) dto.GigResponse {
	return dto.GigResponse{
		ID:           g.ID,
		FreelancerID: g.FreelancerID,
		Title:        g.Title,
		Description:  g.Description,
		Price:        g.Price,
		DeliveryDays: g.DeliveryDays,
		Tags:         nonNilStrings(g.Tags),
		Active:       g.Active,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
