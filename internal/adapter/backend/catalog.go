package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bookline/gateway/internal/domain/entity"
)

type listBusinessesResponse struct {
	Businesses []entity.Business `json:"businesses"`
}

type getBusinessResponse struct {
	Business *entity.Business `json:"business"`
}

type listServicesResponse struct {
	Service []entity.Service `json:"service"`
}

type unavailableTimesResponse struct {
	Times []string `json:"times"`
}

func (c *Client) ListBusinesses(ctx context.Context, limit, offset int) ([]entity.Business, error) {
	var resp listBusinessesResponse
	path := fmt.Sprintf("/businesses?limit=%d&offset=%d", limit, offset)
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &resp, c.requestTimeout); err != nil {
		return nil, err
	}
	return resp.Businesses, nil
}

func (c *Client) GetBusiness(ctx context.Context, publicID string) (*entity.Business, error) {
	var resp getBusinessResponse
	path := "/business/" + url.PathEscape(publicID)
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &resp, c.requestTimeout); err != nil {
		return nil, err
	}
	if resp.Business == nil {
		return nil, &UpstreamError{StatusCode: http.StatusNotFound, Details: "business missing from response"}
	}
	return resp.Business, nil
}

func (c *Client) ListServices(ctx context.Context, publicID string) ([]entity.Service, error) {
	var resp listServicesResponse
	path := "/services/" + url.PathEscape(publicID)
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &resp, c.requestTimeout); err != nil {
		return nil, err
	}
	return resp.Service, nil
}

// UnavailableTimes lists booked-out times for a service on a given date.
func (c *Client) UnavailableTimes(ctx context.Context, serviceID, date string) ([]string, error) {
	var resp unavailableTimesResponse
	path := fmt.Sprintf("/public/services/%s/unavailable-times?date=%s",
		url.PathEscape(serviceID), url.QueryEscape(date))
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &resp, c.requestTimeout); err != nil {
		return nil, err
	}
	return resp.Times, nil
}
