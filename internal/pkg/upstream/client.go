package upstream

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/nitadee/roomreport/internal/domain"
)

// DefaultLimit approximates "all records" for a single bulk read; the summary
// and detail projections are computed client-side over this page.
const DefaultLimit = 1000

type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	httpClient.JSONMarshal = sonic.Marshal
	httpClient.JSONUnmarshal = sonic.Unmarshal

	return &Client{http: httpClient}
}

// RecordParams are the optional upstream query filters; zero values are omitted
// from the request.
type RecordParams struct {
	Limit         int
	Offset        int
	ProjectCode   string
	InstallStatus string
	Brand         string
}

func (p RecordParams) query() map[string]string {
	q := map[string]string{
		"offset": strconv.Itoa(p.Offset),
	}

	limit := p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	q["limit"] = strconv.Itoa(limit)

	if p.ProjectCode != "" {
		q["project_code"] = p.ProjectCode
	}
	if p.InstallStatus != "" {
		q["install_status"] = p.InstallStatus
	}
	if p.Brand != "" {
		q["brand"] = p.Brand
	}

	return q
}

type recordsResponse struct {
	Data []domain.InstallRecord `json:"data"`
}

func (c *Client) FetchRecords(ctx context.Context, params RecordParams) ([]domain.InstallRecord, error) {
	var response recordsResponse
	err := c.get(ctx, "/data", params.query(), &response)
	if err != nil {
		return nil, err
	}

	return response.Data, nil
}

func (c *Client) FetchStats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	err := c.get(ctx, "/stats", nil, &stats)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func (c *Client) FetchProjects(ctx context.Context) (*domain.ProjectList, error) {
	var projects domain.ProjectList
	err := c.get(ctx, "/projects", nil, &projects)
	if err != nil {
		return nil, err
	}

	return &projects, nil
}

func (c *Client) FetchStatusSummary(ctx context.Context) (*domain.StatusSummary, error) {
	var summary domain.StatusSummary
	err := c.get(ctx, "/status", nil, &summary)
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, out interface{}) error {
	req := c.http.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return &ConnectivityError{Err: err}
	}

	if !resp.IsSuccess() {
		return &APIError{
			Status:  resp.StatusCode(),
			Message: errorMessage(resp),
		}
	}

	if err := sonic.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

func errorMessage(resp *resty.Response) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := sonic.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return body.Error
	}

	return resp.Status()
}
