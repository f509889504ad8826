package statemachine

import "laundry-api/models"

// Leaves is the leave request lifecycle. Managers and admins decide;
// both outcomes are terminal. Deletion by the owning employee is only
// allowed while pending and is handled in the leave handler, not here —
// it removes the record rather than moving it to a state.
var Leaves = newMachine("leave", []Transition[models.LeaveStatus]{
	{From: models.LeavePending, To: models.LeaveApproved, Actor: models.RoleManager},
	{From: models.LeavePending, To: models.LeaveRejected, Actor: models.RoleManager},
	{From: models.LeavePending, To: models.LeaveApproved, Actor: models.RoleAdmin},
	{From: models.LeavePending, To: models.LeaveRejected, Actor: models.RoleAdmin},
})
