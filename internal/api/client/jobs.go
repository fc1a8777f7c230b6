package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/kjdelacruz/stocksync/pkg/types"
)

// ListJobs returns job run history, optionally filtered by job name.
func (c *Client) ListJobs(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	q := url.Values{}
	if jobName != "" {
		q.Set("job_name", jobName)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/jobs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}
