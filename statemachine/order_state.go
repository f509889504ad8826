package statemachine

import "laundry-api/models"

// Orders is the order-status lifecycle. Assignment and the move to
// processing happen together: a manager assigning an employee is the only
// way out of not_started, and the handler updates both fields in one
// statement. The payment flag is not part of this machine — it is an
// orthogonal one-way bool settable at any status.
var Orders = newMachine("order", []Transition[models.OrderStatus]{
	// Manager assigns an employee, which starts processing
	{From: models.StatusNotStarted, To: models.StatusProcessing, Actor: models.RoleManager},
	// The assigned employee marks the work done
	{From: models.StatusProcessing, To: models.StatusFinished, Actor: models.RoleEmployee},
})
