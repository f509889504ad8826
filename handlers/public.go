package handlers

import (
	"net/http"

	"laundry-api/config"
	"laundry-api/models"
	"laundry-api/statemachine"

	"github.com/gin-gonic/gin"
)

// ListBranches returns the public branch directory. Inactive branches are
// hidden unless ?all=true.
func ListBranches(c *gin.Context) {
	query := config.DB.Order("branch_name asc")
	if c.Query("all") != "true" {
		query = query.Where("status = ?", models.BranchActive)
	}
	if city := c.Query("city"); city != "" {
		query = query.Where("city LIKE ?", "%"+city+"%")
	}

	var branches []models.Branch
	query.Find(&branches)
	respondOK(c, http.StatusOK, gin.H{"count": len(branches), "branches": branches}, "")
}

// GetLifecycles publishes every lifecycle's transition table, straight from
// the same definitions the handlers validate against.
func GetLifecycles(c *gin.Context) {
	orderTable := []gin.H{}
	for _, t := range statemachine.Orders.Table() {
		orderTable = append(orderTable, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	requestTable := []gin.H{}
	for _, t := range statemachine.Requests.Table() {
		requestTable = append(requestTable, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	leaveTable := []gin.H{}
	for _, t := range statemachine.Leaves.Table() {
		leaveTable = append(leaveTable, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	issueTable := []gin.H{}
	for _, t := range statemachine.Issues.Table() {
		issueTable = append(issueTable, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}

	respondOK(c, http.StatusOK, gin.H{
		"order": gin.H{
			"transitions":     orderTable,
			"terminal_states": []string{string(models.StatusFinished)},
			"note":            "payment flag (is_paid) is orthogonal and one-way",
		},
		"request": gin.H{
			"transitions": requestTable,
			"terminal_states": []string{
				string(models.RequestRejected),
				string(models.RequestFulfilled),
				string(models.RequestPartiallyFulfilled),
			},
		},
		"leave": gin.H{
			"transitions":     leaveTable,
			"terminal_states": []string{string(models.LeaveApproved), string(models.LeaveRejected)},
		},
		"issue": gin.H{
			"transitions":     issueTable,
			"terminal_states": []string{string(models.IssueResolved)},
		},
	}, "")
}
