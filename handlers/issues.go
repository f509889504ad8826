package handlers

import (
	"net/http"

	"laundry-api/config"
	"laundry-api/middleware"
	"laundry-api/models"
	"laundry-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListIssues returns reported issues for staff review. Supports ?status=.
func ListIssues(c *gin.Context) {
	query := config.DB.Preload("Order").Preload("Reporter")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	var issues []models.Issue
	query.Order("created_at desc").Find(&issues)
	respondOK(c, http.StatusOK, gin.H{"count": len(issues), "issues": issues}, "")
}

// AdvanceIssue moves an issue to its single legal next state. The lifecycle
// is strictly forward and one step at a time, so the target state is never
// taken from the request — it is derived from the table. Shared by the
// employee, manager and admin routes.
func AdvanceIssue(c *gin.Context) {
	actor := middleware.GetRole(c)
	issueID := c.Param("id")

	var issue models.Issue
	if err := config.DB.First(&issue, issueID).Error; err != nil {
		respondError(c, http.StatusNotFound, "Issue not found")
		return
	}

	nexts := statemachine.Issues.ValidTransitionsFrom(issue.Status)
	if len(nexts) == 0 {
		respondErrorData(c, http.StatusUnprocessableEntity, gin.H{
			"current_status": issue.Status,
		}, "Issue is already resolved")
		return
	}
	next := nexts[0]

	if err := statemachine.Issues.CanTransition(issue.Status, next, actor); err != nil {
		respondErrorData(c, http.StatusUnprocessableEntity, gin.H{
			"current_status":    issue.Status,
			"valid_next_states": nexts,
		}, err.Error())
		return
	}

	config.DB.Model(&issue).Update("status", next)
	config.DB.Preload("Order").Preload("Reporter").First(&issue, issue.ID)
	respondOK(c, http.StatusOK, gin.H{"issue": issue}, "Issue moved to "+string(next))
}
