package routes

import (
	"mechmarket/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs         = "/jobs"
	PathBids         = "/bids"
	PathChangeOrders = "/change-orders"
)

func addWorkflowRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	bidHandler *handlers.BidHandler,
	escrowHandler *handlers.EscrowHandler,
	changeOrderHandler *handlers.ChangeOrderHandler,
) {
	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateJob)
		jobs.GET("/:job_id", jobHandler.GetJob)
		jobs.GET("/:job_id/timeline", jobHandler.GetJobTimeline)
		jobs.PATCH("/:job_id/status", jobHandler.TransitionStatus)
		jobs.POST("/:job_id/notes", jobHandler.AppendNote)
		jobs.POST("/:job_id/photos", jobHandler.AppendPhoto)

		jobs.POST("/:job_id/bids", bidHandler.SubmitBid)
		jobs.GET("/:job_id/bids", bidHandler.ListBidsByJob)

		jobs.POST("/:job_id/change-orders", changeOrderHandler.ProposeChangeOrder)
		jobs.GET("/:job_id/change-orders", changeOrderHandler.ListChangeOrdersByJob)

		jobs.GET("/:job_id/escrow", escrowHandler.GetEscrowByJob)
		jobs.POST("/:job_id/escrow/release", escrowHandler.ReleaseEscrow)
		jobs.POST("/:job_id/escrow/refund", escrowHandler.RefundEscrow)
	}

	bids := rg.Group(PathBids)
	{
		bids.PATCH("/:bid_id/accept", bidHandler.AcceptBid)
		bids.PATCH("/:bid_id/reject", bidHandler.RejectBid)
	}

	changeOrders := rg.Group(PathChangeOrders)
	{
		changeOrders.PATCH("/:change_order_id/decision", changeOrderHandler.DecideChangeOrder)
		changeOrders.PATCH("/:change_order_id/cancel", changeOrderHandler.CancelChangeOrder)
		changeOrders.POST("/sweep-expired", changeOrderHandler.SweepExpiredChangeOrders)
	}
}
