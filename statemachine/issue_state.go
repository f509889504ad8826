package statemachine

import "laundry-api/models"

// Issues is the order-issue lifecycle. Strictly monotonic: every state has
// at most one legal next state, so skipping open → resolved or rolling back
// is never representable.
var Issues = newMachine("issue", []Transition[models.IssueStatus]{
	{From: models.IssueOpen, To: models.IssueInProgress, Actor: models.RoleEmployee},
	{From: models.IssueOpen, To: models.IssueInProgress, Actor: models.RoleManager},
	{From: models.IssueOpen, To: models.IssueInProgress, Actor: models.RoleAdmin},
	{From: models.IssueInProgress, To: models.IssueResolved, Actor: models.RoleEmployee},
	{From: models.IssueInProgress, To: models.IssueResolved, Actor: models.RoleManager},
	{From: models.IssueInProgress, To: models.IssueResolved, Actor: models.RoleAdmin},
})
