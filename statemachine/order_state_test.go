package statemachine

import (
	"testing"

	"littlelemon-api/models"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		actor      Actor
		current    models.OrderStatus
		assigned   bool
		outcome    Outcome
		newStatus  models.OrderStatus
		assignable bool
	}{
		{
			name:       "manager moves pending order out",
			actor:      ActorManager,
			current:    models.StatusPending,
			outcome:    OutcomeTransition,
			newStatus:  models.StatusOutForDelivery,
			assignable: true,
		},
		{
			name:    "manager rejected once out for delivery",
			actor:   ActorManager,
			current: models.StatusOutForDelivery,
			outcome: OutcomeAlreadyOut,
		},
		{
			name:      "assigned crew confirms pending order",
			actor:     ActorDeliveryCrew,
			current:   models.StatusPending,
			assigned:  true,
			outcome:   OutcomeTransition,
			newStatus: models.StatusOutForDelivery,
		},
		{
			name:      "assigned crew toggles back",
			actor:     ActorDeliveryCrew,
			current:   models.StatusOutForDelivery,
			assigned:  true,
			outcome:   OutcomeTransition,
			newStatus: models.StatusPending,
		},
		{
			name:     "unassigned crew rejected",
			actor:    ActorDeliveryCrew,
			current:  models.StatusPending,
			assigned: false,
			outcome:  OutcomeNotAssigned,
		},
		{
			name:    "customer has no update path",
			actor:   ActorCustomer,
			current: models.StatusPending,
			outcome: OutcomeForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.actor, tt.current, tt.assigned)
			assert.Equal(t, tt.outcome, d.Outcome)
			assert.NotEmpty(t, d.Message)
			if tt.outcome == OutcomeTransition {
				assert.Equal(t, tt.newStatus, d.NewStatus)
			}
			assert.Equal(t, tt.assignable, d.CanAssignCrew)
		})
	}
}

func TestManagerAssignmentOnlyOnPending(t *testing.T) {
	d := Decide(ActorManager, models.StatusOutForDelivery, false)
	assert.False(t, d.CanAssignCrew)

	// crew transitions never allow assignment
	d = Decide(ActorDeliveryCrew, models.StatusPending, true)
	assert.False(t, d.CanAssignCrew)
}

func TestAllListsOnlyRealTransitions(t *testing.T) {
	for _, tr := range All() {
		assert.NotEqual(t, tr.From, tr.To)
		assert.NotEmpty(t, tr.Actor)
	}
}
