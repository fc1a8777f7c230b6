package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjdelacruz/stocksync/internal/api/handlers"
	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// mockJobsProvider is a test double for JobsProvider.
type mockJobsProvider struct {
	runs []domain.JobRun
	err  error

	gotJobName string
	gotLimit   int
}

func (m *mockJobsProvider) ListJobRuns(
	_ context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	m.gotJobName = jobName
	m.gotLimit = limit
	return m.runs, m.err
}

func sampleJobRun(jobName, status string) domain.JobRun {
	return domain.JobRun{
		ID:        "job-run-id-1",
		JobName:   jobName,
		StartedAt: time.Now().Truncate(time.Second),
		Status:    status,
	}
}

func TestListJobs_Success(t *testing.T) {
	t.Parallel()

	p := &mockJobsProvider{runs: []domain.JobRun{
		sampleJobRun("import", "completed"),
		sampleJobRun("import", "failed"),
	}}
	h := handlers.NewJobsHandler(p)

	_, api := humatest.New(t)
	handlers.RegisterJobRoutes(api, h)

	resp := api.Get("/api/v1/jobs?job_name=import&limit=5")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "import")
	assert.Equal(t, "import", p.gotJobName)
	assert.Equal(t, 5, p.gotLimit)
}

func TestListJobs_DefaultLimit(t *testing.T) {
	t.Parallel()

	p := &mockJobsProvider{}
	h := handlers.NewJobsHandler(p)

	_, api := humatest.New(t)
	handlers.RegisterJobRoutes(api, h)

	resp := api.Get("/api/v1/jobs")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "[]")
	assert.Equal(t, 20, p.gotLimit)
}

func TestListJobs_Error(t *testing.T) {
	t.Parallel()

	h := handlers.NewJobsHandler(&mockJobsProvider{err: errors.New("db error")})

	_, api := humatest.New(t)
	handlers.RegisterJobRoutes(api, h)

	resp := api.Get("/api/v1/jobs")
	require.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "listing job runs failed")
}
