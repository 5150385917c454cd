// Package fetcher retrieves customers from remote customers directory.
// Every call is a single attempt: no retries, no caching.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	cerrors "github.com/umalmyha/customer-search/internal/errors"
	"github.com/umalmyha/customer-search/internal/model"
)

const customersPath = "/customers"

// CustomerFetcher retrieves customers from remote endpoint
type CustomerFetcher interface {
	FetchAll(context.Context) ([]model.Customer, error)
	FetchByID(context.Context, string) (*model.Customer, error)
}

type restyCustomerFetcher struct {
	client *resty.Client
}

// NewRestyCustomerFetcher builds fetcher against base url.
// Zero timeout leaves transport default in place.
func NewRestyCustomerFetcher(baseURL string, timeout time.Duration) CustomerFetcher {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &restyCustomerFetcher{client: client}
}

func (f *restyCustomerFetcher) FetchAll(ctx context.Context) ([]model.Customer, error) {
	const target = "customers"

	body, err := f.get(ctx, customersPath, target)
	if err != nil {
		return nil, err
	}

	customers := make([]model.Customer, 0)
	if err := json.Unmarshal(body, &customers); err != nil {
		logrus.WithError(err).Error("customers response body is malformed")
		return nil, cerrors.NewDecodeFailure(target, err)
	}

	logrus.WithField("count", len(customers)).Debug("customers fetched")
	return customers, nil
}

func (f *restyCustomerFetcher) FetchByID(ctx context.Context, id string) (*model.Customer, error) {
	const target = "customer"

	body, err := f.get(ctx, fmt.Sprintf("%s/%s", customersPath, url.PathEscape(id)), target)
	if err != nil {
		return nil, err
	}

	var c model.Customer
	if err := json.Unmarshal(body, &c); err != nil {
		logrus.WithError(err).WithField("id", id).Error("customer response body is malformed")
		return nil, cerrors.NewDecodeFailure(target, err)
	}
	return &c, nil
}

func (f *restyCustomerFetcher) get(ctx context.Context, path, target string) ([]byte, error) {
	res, err := f.client.R().SetContext(ctx).Get(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Error("customers directory is unreachable")
		return nil, cerrors.NewTransportFailure(target, err)
	}

	if res.IsError() || res.StatusCode() < 200 || res.StatusCode() > 299 {
		logrus.WithField("path", path).WithField("status", res.StatusCode()).Error("customers directory responded with error")
		return nil, cerrors.NewHTTPStatusFailure(target, res.StatusCode())
	}

	return res.Body(), nil
}
