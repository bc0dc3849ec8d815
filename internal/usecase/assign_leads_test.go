package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leads-portal/internal/entity"
	"github.com/xavierca1/leads-portal/internal/usecase"
)

func teamUsers() map[string]entity.User {
	return map[string]entity.User{
		"admin": {Password: "admin", Role: entity.RoleAdmin, Active: true},
		"bob":   {Password: "x", Role: entity.RoleAgent, Active: true},
		"carol": {Password: "x", Role: entity.RoleAgent, Active: false},
	}
}

func TestAssignLeadsFillsOnlyEmptyAssignments(t *testing.T) {
	ctx := context.Background()
	table := &fakeLeadTable{table: []entity.Lead{
		{ID: "lead-1"},
		{ID: "lead-2", AssignedAgent: "alice"},
		{ID: "lead-3"},
	}}
	users := new(MockUserStore)
	users.On("Load").Return(teamUsers(), nil)

	uc := usecase.NewAssignLeadsUseCase(table, users, nil, nil)
	out, err := uc.Execute(ctx, usecase.AssignLeadsInput{
		LeadIDs: []string{"lead-1", "lead-2", "lead-3"},
		Agent:   "bob",
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, out.Assigned)
	assert.Equal(t, "bob", table.table[0].AssignedAgent)
	assert.Equal(t, "alice", table.table[1].AssignedAgent, "existing assignment must never be overwritten")
	assert.Equal(t, "bob", table.table[2].AssignedAgent)
}

func TestAssignLeadsNoUnassignedMatchesIsAReportedNoOp(t *testing.T) {
	ctx := context.Background()
	table := &fakeLeadTable{table: []entity.Lead{
		{ID: "lead-1", AssignedAgent: "alice"},
	}}
	users := new(MockUserStore)
	users.On("Load").Return(teamUsers(), nil)

	uc := usecase.NewAssignLeadsUseCase(table, users, nil, nil)
	out, err := uc.Execute(ctx, usecase.AssignLeadsInput{LeadIDs: []string{"lead-1"}, Agent: "bob"})

	assert.NoError(t, err)
	assert.Zero(t, out.Assigned)
	assert.NotEmpty(t, out.Message)
	assert.Equal(t, "alice", table.table[0].AssignedAgent)
}

func TestAssignLeadsRejectsInactiveOrUnknownAgents(t *testing.T) {
	ctx := context.Background()
	for _, agent := range []string{"carol", "nobody", "admin"} {
		table := &fakeLeadTable{table: []entity.Lead{{ID: "lead-1"}}}
		users := new(MockUserStore)
		users.On("Load").Return(teamUsers(), nil)

		uc := usecase.NewAssignLeadsUseCase(table, users, nil, nil)
		_, err := uc.Execute(ctx, usecase.AssignLeadsInput{LeadIDs: []string{"lead-1"}, Agent: agent})

		assert.True(t, usecase.IsDomainError(err), "agent %q must be rejected", agent)
		assert.Empty(t, table.table[0].AssignedAgent)
	}
}

func TestAssignLeadsValidatesSelection(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewAssignLeadsUseCase(&fakeLeadTable{}, new(MockUserStore), nil, nil)

	_, err := uc.Execute(ctx, usecase.AssignLeadsInput{Agent: "bob"})
	_, ok := usecase.AsValidationErrors(err)
	assert.True(t, ok)

	_, err = uc.Execute(ctx, usecase.AssignLeadsInput{LeadIDs: []string{"lead-1"}})
	_, ok = usecase.AsValidationErrors(err)
	assert.True(t, ok)
}

func TestAssignLeadsNotifiesTheAgent(t *testing.T) {
	ctx := context.Background()
	table := &fakeLeadTable{table: []entity.Lead{{ID: "lead-1"}, {ID: "lead-2"}}}
	users := new(MockUserStore)
	users.On("Load").Return(teamUsers(), nil)
	notifier := newFakeNotifier()

	uc := usecase.NewAssignLeadsUseCase(table, users, notifier, nil)
	_, err := uc.Execute(ctx, usecase.AssignLeadsInput{LeadIDs: []string{"lead-1", "lead-2"}, Agent: "bob"})
	assert.NoError(t, err)

	select {
	case notice := <-notifier.notices:
		assert.Equal(t, "bob", notice.Agent)
		assert.Equal(t, 2, notice.Count)
	case <-time.After(time.Second):
		t.Fatal("expected an assignment notification")
	}
}
