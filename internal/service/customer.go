package service

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-search/internal/fetcher"
	"github.com/umalmyha/customer-search/internal/filter"
	"github.com/umalmyha/customer-search/internal/model"
)

// CustomerSearchService fetches customers from directory and narrows them by criteria
type CustomerSearchService interface {
	Search(context.Context, model.SearchCriteria) ([]model.Customer, error)
	FindByID(context.Context, string) (*model.Customer, error)
}

type customerSearchService struct {
	customerFetcher fetcher.CustomerFetcher
}

// NewCustomerSearchService builds new CustomerSearchService
func NewCustomerSearchService(customerFetcher fetcher.CustomerFetcher) CustomerSearchService {
	return &customerSearchService{customerFetcher: customerFetcher}
}

func (s *customerSearchService) Search(ctx context.Context, criteria model.SearchCriteria) ([]model.Customer, error) {
	customers, err := s.customerFetcher.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	for key, value := range criteria {
		if value != "" && !filter.IsKnownKey(key) {
			logrus.WithField("criterion", key).Debug("criterion is not bound to any customer attribute, ignoring")
		}
	}

	found := filter.Customers(customers, criteria)
	logrus.WithFields(logrus.Fields{"fetched": len(customers), "found": len(found)}).Debug("customers filtered")
	return found, nil
}

func (s *customerSearchService) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	return s.customerFetcher.FetchByID(ctx, id)
}
