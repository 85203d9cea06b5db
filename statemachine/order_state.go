package statemachine

import "littlelemon-api/models"

// Actor identifies who is attempting a status update.
type Actor string

const (
	ActorManager      Actor = "manager"
	ActorDeliveryCrew Actor = "delivery_crew"
	ActorCustomer     Actor = "customer"
)

// Outcome tags every possible result of an update attempt so callers must
// handle each branch explicitly — there is no silent fallthrough.
type Outcome int

const (
	// OutcomeTransition means the order moves to Decision.NewStatus.
	OutcomeTransition Outcome = iota
	// OutcomeAlreadyOut rejects a manager update on an order that already
	// left the kitchen.
	OutcomeAlreadyOut
	// OutcomeNotAssigned rejects a crew member touching an order assigned
	// to someone else.
	OutcomeNotAssigned
	// OutcomeForbidden rejects callers with no update path at all.
	OutcomeForbidden
)

// Decision is the full verdict for one update attempt.
type Decision struct {
	Outcome   Outcome
	NewStatus models.OrderStatus
	// CanAssignCrew is true only for the manager's pending→out transition,
	// the single point where a delivery crew member may be attached.
	CanAssignCrew bool
	Message       string
}

// Decide applies the transition rules for an update attempt. assignedToCaller
// is only meaningful for delivery crew actors.
func Decide(actor Actor, current models.OrderStatus, assignedToCaller bool) Decision {
	switch actor {
	case ActorManager:
		if current == models.StatusPending {
			return Decision{
				Outcome:       OutcomeTransition,
				NewStatus:     models.StatusOutForDelivery,
				CanAssignCrew: true,
				Message:       "This order is on its way.",
			}
		}
		return Decision{
			Outcome: OutcomeAlreadyOut,
			Message: "This order is already out for delivery.",
		}

	case ActorDeliveryCrew:
		if !assignedToCaller {
			return Decision{
				Outcome: OutcomeNotAssigned,
				Message: "This order is not assigned to you.",
			}
		}
		if current == models.StatusPending {
			return Decision{
				Outcome:   OutcomeTransition,
				NewStatus: models.StatusOutForDelivery,
				Message:   "Order delivery confirmed.",
			}
		}
		// Crew toggles the same field back; there is no separate
		// delivered state.
		return Decision{
			Outcome:   OutcomeTransition,
			NewStatus: models.StatusPending,
			Message:   "Order status updated to out for delivery.",
		}

	default:
		return Decision{
			Outcome: OutcomeForbidden,
			Message: "You do not have permission to update this order.",
		}
	}
}

// Transition describes one row of the machine for documentation purposes.
type Transition struct {
	Actor string             `json:"actor"`
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Note  string             `json:"note"`
}

var transitions = []Transition{
	{Actor: string(ActorManager), From: models.StatusPending, To: models.StatusOutForDelivery, Note: "may assign a delivery crew member"},
	{Actor: string(ActorDeliveryCrew), From: models.StatusPending, To: models.StatusOutForDelivery, Note: "only on orders assigned to the caller"},
	{Actor: string(ActorDeliveryCrew), From: models.StatusOutForDelivery, To: models.StatusPending, Note: "toggle back; only on orders assigned to the caller"},
}

// All returns the transition table for the documentation endpoint.
func All() []Transition {
	return transitions
}
