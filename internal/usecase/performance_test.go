package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leads-portal/internal/entity"
	"github.com/xavierca1/leads-portal/internal/usecase"
)

func TestAgentSummaryHalfDone(t *testing.T) {
	table := []entity.Lead{
		{AssignedAgent: "bob", CallStatus: entity.StatusCompleted},
		{AssignedAgent: "bob", CallStatus: entity.StatusPending},
		{AssignedAgent: "alice", CallStatus: entity.StatusPending},
	}

	out := usecase.AgentSummary(table, "bob", "", "")

	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 1, out.Completed)
	assert.Equal(t, 1, out.Remaining)
	assert.Equal(t, 50.0, out.Percent)
	assert.Equal(t, map[string]int{
		entity.StatusCompleted: 1,
		entity.StatusPending:   1,
	}, out.StatusCounts)
}

func TestAgentSummaryNoLeadsMeansZeroPercent(t *testing.T) {
	out := usecase.AgentSummary(nil, "bob", "", "")

	assert.Zero(t, out.Total)
	assert.Zero(t, out.Completed)
	assert.Zero(t, out.Remaining)
	assert.Zero(t, out.Percent, "never divide by zero")
}

func TestAgentSummaryDateRange(t *testing.T) {
	table := []entity.Lead{
		{AssignedAgent: "bob", CallStatus: entity.StatusCompleted, Date: "2026-07-01"},
		{AssignedAgent: "bob", CallStatus: entity.StatusPending, Date: "2026-08-15"},
		{AssignedAgent: "bob", CallStatus: entity.StatusPending, Date: "2026-09-01"},
	}

	out := usecase.AgentSummary(table, "bob", "2026-08-01", "2026-08-31")

	assert.Equal(t, 1, out.Total)
	assert.Equal(t, 0, out.Completed)
}

func TestTeamSummaryOrdersByPercentDescending(t *testing.T) {
	table := []entity.Lead{
		{AssignedAgent: "amy", CallStatus: entity.StatusCompleted},
		{AssignedAgent: "amy", CallStatus: entity.StatusPending},
		{AssignedAgent: "bob", CallStatus: entity.StatusCompleted},
		{AssignedAgent: "zed", CallStatus: entity.StatusPending},
	}
	users := map[string]entity.User{
		"amy":   {Role: entity.RoleAgent, Active: true},
		"bob":   {Role: entity.RoleAgent, Active: true},
		"zed":   {Role: entity.RoleAgent, Active: true},
		"carol": {Role: entity.RoleAgent, Active: false},
		"admin": {Role: entity.RoleAdmin, Active: true},
	}

	summaries := usecase.TeamSummary(table, users)

	assert.Len(t, summaries, 3, "only active agents appear")
	assert.Equal(t, "bob", summaries[0].Agent)
	assert.Equal(t, 100.0, summaries[0].Percent)
	assert.Equal(t, "amy", summaries[1].Agent)
	assert.Equal(t, "zed", summaries[2].Agent)
}

func TestTeamSummaryTiesKeepStableOrder(t *testing.T) {
	users := map[string]entity.User{
		"zed": {Role: entity.RoleAgent, Active: true},
		"amy": {Role: entity.RoleAgent, Active: true},
		"bob": {Role: entity.RoleAgent, Active: true},
	}

	// Everyone at zero percent: alphabetical order must survive.
	summaries := usecase.TeamSummary(nil, users)

	assert.Equal(t, "amy", summaries[0].Agent)
	assert.Equal(t, "bob", summaries[1].Agent)
	assert.Equal(t, "zed", summaries[2].Agent)
}

func TestPerformanceUseCaseAgentScenario(t *testing.T) {
	ctx := context.Background()
	table := &fakeLeadTable{table: []entity.Lead{
		{AssignedAgent: "bob", CallStatus: entity.StatusCompleted},
		{AssignedAgent: "bob", CallStatus: entity.StatusPending},
	}}
	uc := usecase.NewPerformanceUseCase(table, new(MockUserStore))

	out, err := uc.Agent(ctx, "bob", "", "")

	assert.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 1, out.Completed)
	assert.Equal(t, 1, out.Remaining)
	assert.Equal(t, 50.0, out.Percent)
}
