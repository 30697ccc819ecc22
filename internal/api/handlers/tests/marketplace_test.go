package routes_test

import (
	"net/http"
	"testing"

	"assuredgig/internal/models"
	"assuredgig/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobHandler(t *testing.T) {
	env := setupTestEnv(t)
	client := env.registerAccount(t, models.RoleClient)
	freelancer := env.registerAccount(t, models.RoleFreelancer)

	t.Run("Freelancer cannot post jobs", func(t *testing.T) {
		recorder := env.do(t, http.MethodPost, "/api/v1/jobs", freelancer.Token, dto.CreateJobRequest{
			Title: "Not allowed", Description: "Freelancers do not post jobs", Budget: 10,
		})
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	job := env.postJob(t, client)
	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Equal(t, client.ID, job.ClientID)

	t.Run("Get by ID", func(t *testing.T) {
		recorder := env.do(t, http.MethodGet, "/api/v1/jobs/"+job.ID.String(), freelancer.Token, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, job.ID, decode[dto.JobResponse](t, recorder).ID)

		recorder = env.do(t, http.MethodGet, "/api/v1/jobs/"+uuid.NewString(), freelancer.Token, nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		recorder = env.do(t, http.MethodGet, "/api/v1/jobs/123", freelancer.Token, nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error":"Invalid job ID format"}`, recorder.Body.String())
	})

	t.Run("List with budget filter", func(t *testing.T) {
		recorder := env.do(t, http.MethodGet, "/api/v1/jobs?min_budget=500", freelancer.Token, nil)
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
		jobs := decode[[]dto.JobResponse](t, recorder)
		require.Len(t, jobs, 1)

		recorder = env.do(t, http.MethodGet, "/api/v1/jobs?min_budget=5000", freelancer.Token, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, decode[[]dto.JobResponse](t, recorder))
	})

	t.Run("Update", func(t *testing.T) {
		recorder := env.do(t, http.MethodPatch, "/api/v1/jobs/"+job.ID.String(), client.Token, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		title := "Build a better landing page"
		recorder = env.do(t, http.MethodPatch, "/api/v1/jobs/"+job.ID.String(), freelancer.Token, dto.UpdateJobRequest{Title: &title})
		assert.Equal(t, http.StatusForbidden, recorder.Code)

		recorder = env.do(t, http.MethodPatch, "/api/v1/jobs/"+job.ID.String(), client.Token, dto.UpdateJobRequest{Title: &title})
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
		assert.Equal(t, title, decode[dto.JobResponse](t, recorder).Title)
	})

	t.Run("Delete", func(t *testing.T) {
		other := env.postJob(t, client)
		recorder := env.do(t, http.MethodDelete, "/api/v1/jobs/"+other.ID.String(), client.Token, nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)

		recorder = env.do(t, http.MethodGet, "/api/v1/jobs/"+other.ID.String(), client.Token, nil)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestProposalHandler_AcceptanceFlow(t *testing.T) {
	env := setupTestEnv(t)
	client := env.registerAccount(t, models.RoleClient)
	freelancer := env.registerAccount(t, models.RoleFreelancer)
	rival := env.registerAccount(t, models.RoleFreelancer)
	job := env.postJob(t, client)

	t.Run("Client cannot submit proposals", func(t *testing.T) {
		recorder := env.do(t, http.MethodPost, "/api/v1/proposals", client.Token, dto.CreateProposalRequest{
			JobID: job.ID, CoverLetter: "Clients are not allowed to bid on jobs.", BidAmount: 10,
		})
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	proposal := env.submitProposal(t, freelancer, job.ID)
	rivalProposal := env.submitProposal(t, rival, job.ID)

	t.Run("Client lists proposals on the job", func(t *testing.T) {
		recorder := env.do(t, http.MethodGet, "/api/v1/proposals?job_id="+job.ID.String(), client.Token, nil)
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
		assert.Len(t, decode[[]dto.ProposalResponse](t, recorder), 2)
	})

	t.Run("Freelancer cannot accept own proposal", func(t *testing.T) {
		status := models.ProposalStatusAccepted
		recorder := env.do(t, http.MethodPatch, "/api/v1/proposals/"+proposal.ID.String(), freelancer.Token, dto.UpdateProposalRequest{Status: &status})
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	status := models.ProposalStatusAccepted
	recorder := env.do(t, http.MethodPatch, "/api/v1/proposals/"+proposal.ID.String(), client.Token, dto.UpdateProposalRequest{Status: &status})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	decision := decode[dto.ProposalDecisionResponse](t, recorder)
	assert.Equal(t, models.ProposalStatusAccepted, decision.Proposal.Status)
	require.NotNil(t, decision.Contract)
	assert.Equal(t, models.ContractStatusPending, decision.Contract.Status)
	assert.Equal(t, 900.0, decision.Contract.Amount)
	assert.Equal(t, freelancer.ID, decision.Contract.FreelancerID)

	t.Run("Job is in progress and closed to new proposals", func(t *testing.T) {
		recorder := env.do(t, http.MethodGet, "/api/v1/jobs/"+job.ID.String(), client.Token, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, models.JobStatusInProgress, decode[dto.JobResponse](t, recorder).Status)

		late := env.registerAccount(t, models.RoleFreelancer)
		recorder = env.do(t, http.MethodPost, "/api/v1/proposals", late.Token, dto.CreateProposalRequest{
			JobID: job.ID, CoverLetter: "Arriving after the job was awarded.", BidAmount: 800,
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Second acceptance on the same job fails", func(t *testing.T) {
		recorder := env.do(t, http.MethodPost, "/api/v1/contracts", client.Token, dto.CreateContractRequest{ProposalID: rivalProposal.ID})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Rejection with feedback", func(t *testing.T) {
		job2 := env.postJob(t, client)
		p := env.submitProposal(t, rival, job2.ID)
		rejected := models.ProposalStatusRejected
		feedback := "Looking for more experience"
		recorder := env.do(t, http.MethodPatch, "/api/v1/proposals/"+p.ID.String(), client.Token, dto.UpdateProposalRequest{Status: &rejected, Feedback: &feedback})
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
		res := decode[dto.ProposalDecisionResponse](t, recorder)
		assert.Equal(t, models.ProposalStatusRejected, res.Proposal.Status)
		require.NotNil(t, res.Proposal.Feedback)
		assert.Equal(t, feedback, *res.Proposal.Feedback)
		assert.Nil(t, res.Contract)
	})

	t.Run("Edit and withdraw a pending proposal", func(t *testing.T) {
		job3 := env.postJob(t, client)
		p := env.submitProposal(t, rival, job3.ID)

		recorder := env.do(t, http.MethodPatch, "/api/v1/proposals/"+p.ID.String(), rival.Token, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		bid := 750.0
		recorder = env.do(t, http.MethodPatch, "/api/v1/proposals/"+p.ID.String(), rival.Token, dto.UpdateProposalRequest{BidAmount: &bid})
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
		assert.Equal(t, bid, decode[dto.ProposalDecisionResponse](t, recorder).Proposal.BidAmount)

		recorder = env.do(t, http.MethodDelete, "/api/v1/proposals/"+p.ID.String(), rival.Token, nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestContractHandler_Progress(t *testing.T) {
	env := setupTestEnv(t)
	contract, client, freelancer := env.openContract(t)
	base := "/api/v1/contracts/" + contract.ID.String()

	t.Run("Outsider is forbidden", func(t *testing.T) {
		outsider := env.registerAccount(t, models.RoleClient)
		recorder := env.do(t, http.MethodGet, base, outsider.Token, nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("Both parties list the contract", func(t *testing.T) {
		for _, who := range []account{client, freelancer} {
			recorder := env.do(t, http.MethodGet, "/api/v1/contracts", who.Token, nil)
			require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
			contracts := decode[[]dto.ContractResponse](t, recorder)
			require.Len(t, contracts, 1)
			assert.Equal(t, contract.ID, contracts[0].ID)
		}
	})

	recorder := env.do(t, http.MethodGet, base+"/progress", freelancer.Token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	empty := decode[dto.ProgressResponse](t, recorder)
	assert.Equal(t, 0, empty.Total)
	assert.Equal(t, 0.0, empty.Percentage)

	var milestoneIDs []uuid.UUID
	for _, desc := range []string{"Wireframes", "Final build"} {
		recorder := env.do(t, http.MethodPost, base+"/progress", client.Token, dto.AddMilestoneRequest{Description: desc, Amount: 450})
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
		progress := decode[dto.ProgressResponse](t, recorder)
		milestoneIDs = append(milestoneIDs, progress.Milestones[len(progress.Milestones)-1].ID)
	}

	recorder = env.do(t, http.MethodPatch, base+"/progress", freelancer.Token, dto.UpdateMilestoneStatusRequest{
		MilestoneID: milestoneIDs[0],
		Status:      models.MilestoneStatusCompleted,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
	progress := decode[dto.ProgressResponse](t, recorder)
	assert.Equal(t, 2, progress.Total)
	assert.Equal(t, 1, progress.Completed)
	assert.Equal(t, 50.0, progress.Percentage)

	t.Run("Contract detail embeds progress", func(t *testing.T) {
		recorder := env.do(t, http.MethodGet, base, client.Token, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		detail := decode[dto.ContractResponse](t, recorder)
		require.NotNil(t, detail.Progress)
		assert.Equal(t, 50.0, detail.Progress.Percentage)
	})

	t.Run("Invalid status transition", func(t *testing.T) {
		recorder := env.do(t, http.MethodPatch, base, client.Token, dto.UpdateContractStatusRequest{Status: models.ContractStatusActive})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Cancel", func(t *testing.T) {
		recorder := env.do(t, http.MethodPatch, base, freelancer.Token, dto.UpdateContractStatusRequest{Status: models.ContractStatusCancelled})
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
		assert.Equal(t, models.ContractStatusCancelled, decode[dto.ContractResponse](t, recorder).Status)
	})
}

func TestChatAndNotifications(t *testing.T) {
	env := setupTestEnv(t)
	contract, client, freelancer := env.openContract(t)
	chat := "/api/v1/contracts/" + contract.ID.String() + "/chat"

	recorder := env.do(t, http.MethodPost, chat, client.Token, dto.SendMessageRequest{Body: "  Kickoff call tomorrow?  "})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	msg := decode[dto.MessageResponse](t, recorder)
	assert.Equal(t, "Kickoff call tomorrow?", msg.Body)
	assert.Equal(t, client.ID, msg.SenderID)

	recorder = env.do(t, http.MethodPost, chat, freelancer.Token, dto.SendMessageRequest{Body: ""})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = env.do(t, http.MethodPost, chat, freelancer.Token, dto.SendMessageRequest{Body: "    "})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = env.do(t, http.MethodGet, chat, freelancer.Token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	messages := decode[[]dto.MessageResponse](t, recorder)
	require.Len(t, messages, 1)
	assert.Equal(t, msg.ID, messages[0].ID)

	t.Run("Outsider cannot read chat", func(t *testing.T) {
		outsider := env.registerAccount(t, models.RoleFreelancer)
		recorder := env.do(t, http.MethodGet, chat, outsider.Token, nil)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	recorder = env.do(t, http.MethodGet, "/api/v1/notifications", freelancer.Token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	notes := decode[[]dto.NotificationResponse](t, recorder)
	types := make(map[models.NotificationType]bool)
	for _, n := range notes {
		types[n.Type] = true
		assert.False(t, n.Read)
	}
	assert.True(t, types[models.NotificationProposalAccepted], "freelancer should hear about the acceptance")
	assert.True(t, types[models.NotificationMessage], "freelancer should hear about the message")

	recorder = env.do(t, http.MethodGet, "/api/v1/notifications", client.Token, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	clientNotes := decode[[]dto.NotificationResponse](t, recorder)
	require.NotEmpty(t, clientNotes)
	assert.Equal(t, models.NotificationProposalReceived, clientNotes[len(clientNotes)-1].Type)

	t.Run("Mark all read", func(t *testing.T) {
		recorder := env.do(t, http.MethodPatch, "/api/v1/notifications", freelancer.Token, dto.MarkNotificationsReadRequest{All: true})
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
		assert.Equal(t, int64(len(notes)), decode[dto.MarkReadResponse](t, recorder).Updated)

		recorder = env.do(t, http.MethodGet, "/api/v1/notifications?unread=true", freelancer.Token, nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, decode[[]dto.NotificationResponse](t, recorder))
	})

	t.Run("Mark read needs ids or all", func(t *testing.T) {
		recorder := env.do(t, http.MethodPatch, "/api/v1/notifications", freelancer.Token, map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Only admins broadcast", func(t *testing.T) {
		req := dto.CreateNotificationRequest{UserID: freelancer.ID, Title: "Maintenance", Body: "Down at midnight"}
		recorder := env.do(t, http.MethodPost, "/api/v1/notifications", client.Token, req)
		assert.Equal(t, http.StatusForbidden, recorder.Code)

		admin := env.createAdmin(t)
		recorder = env.do(t, http.MethodPost, "/api/v1/notifications", admin.Token, req)
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
		assert.Equal(t, models.NotificationSystem, decode[dto.NotificationResponse](t, recorder).Type)
	})

	t.Run("Websocket route requires upgrade", func(t *testing.T) {
		recorder := env.do(t, http.MethodGet, chat+"/ws", client.Token, nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
