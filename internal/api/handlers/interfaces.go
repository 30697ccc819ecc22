package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the auth and user routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	GetMe(c *gin.Context)
	UpdateMe(c *gin.Context)
	GetUserByID(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	CreateJob(c *gin.Context)
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

type ProposalHandlerInterface interface {
	SubmitProposal(c *gin.Context)
	ListProposals(c *gin.Context)
	GetProposal(c *gin.Context)
	UpdateProposal(c *gin.Context)
	WithdrawProposal(c *gin.Context)
}

// ContractHandlerInterface covers contracts and their progress sub-resource.
type ContractHandlerInterface interface {
	CreateContract(c *gin.Context)
	ListContracts(c *gin.Context)
	GetContract(c *gin.Context)
	UpdateContractStatus(c *gin.Context)
	GetProgress(c *gin.Context)
	AddMilestone(c *gin.Context)
	UpdateMilestone(c *gin.Context)
}

type ChatHandlerInterface interface {
	ListMessages(c *gin.Context)
	SendMessage(c *gin.Context)
	Connect(c *gin.Context)
}

type PaymentHandlerInterface interface {
	CreatePayment(c *gin.Context)
	ListPayments(c *gin.Context)
	RazorpayWebhook(c *gin.Context)
	StripeWebhook(c *gin.Context)
}

type NotificationHandlerInterface interface {
	ListNotifications(c *gin.Context)
	CreateNotification(c *gin.Context)
	MarkRead(c *gin.Context)
	Connect(c *gin.Context)
}

type ProfileHandlerInterface interface {
	GetPortfolio(c *gin.Context)
	CreatePortfolio(c *gin.Context)
	UpdatePortfolio(c *gin.Context)
	GetResume(c *gin.Context)
	SaveResume(c *gin.Context)
}

type GigHandlerInterface interface {
	CreateGig(c *gin.Context)
	ListGigs(c *gin.Context)
	GetGig(c *gin.Context)
	UpdateGig(c *gin.Context)
	DeleteGig(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var (
	_ UserHandlerInterface         = (*UserHandler)(nil)
	_ JobHandlerInterface          = (*JobHandler)(nil)
	_ ProposalHandlerInterface     = (*ProposalHandler)(nil)
	_ ContractHandlerInterface     = (*ContractHandler)(nil)
	_ ChatHandlerInterface         = (*ChatHandler)(nil)
	_ PaymentHandlerInterface      = (*PaymentHandler)(nil)
	_ NotificationHandlerInterface = (*NotificationHandler)(nil)
	_ ProfileHandlerInterface      = (*ProfileHandler)(nil)
	_ GigHandlerInterface          = (*GigHandler)(nil)
)
