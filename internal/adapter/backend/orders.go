package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bookline/gateway/internal/domain/entity"
)

// GetOrderStatus fetches the lightweight order-status record used to
// validate an order before charging it.
func (c *Client) GetOrderStatus(ctx context.Context, accessToken, orderID string) (*entity.Order, error) {
	var order entity.Order
	path := "/orders/" + url.PathEscape(orderID) + "/status"
	if err := c.doJSON(ctx, http.MethodGet, path, accessToken, nil, &order, c.requestTimeout); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder fetches the full order record.
func (c *Client) GetOrder(ctx context.Context, accessToken, orderID string) (*entity.Order, error) {
	var order entity.Order
	path := "/orders/" + url.PathEscape(orderID)
	if err := c.doJSON(ctx, http.MethodGet, path, accessToken, nil, &order, c.requestTimeout); err != nil {
		return nil, err
	}
	return &order, nil
}
