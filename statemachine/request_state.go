package statemachine

import "laundry-api/models"

// Requests is the inventory draw request lifecycle. Managers decide pending
// requests; admins and suppliers fulfill approved ones. rejected, fulfilled
// and partially_fulfilled are terminal.
var Requests = newMachine("request", []Transition[models.RequestStatus]{
	{From: models.RequestPending, To: models.RequestApproved, Actor: models.RoleManager},
	{From: models.RequestPending, To: models.RequestRejected, Actor: models.RoleManager},
	{From: models.RequestApproved, To: models.RequestFulfilled, Actor: models.RoleAdmin},
	{From: models.RequestApproved, To: models.RequestFulfilled, Actor: models.RoleSupplier},
	{From: models.RequestApproved, To: models.RequestPartiallyFulfilled, Actor: models.RoleAdmin},
	{From: models.RequestApproved, To: models.RequestPartiallyFulfilled, Actor: models.RoleSupplier},
})
