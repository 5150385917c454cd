package service

import (
	"context"
	"fmt"

	cerrors "github.com/umalmyha/customer-search/internal/errors"
	"github.com/umalmyha/customer-search/internal/model"
	"github.com/umalmyha/customer-search/internal/repository"
)

// CustomerDirectoryService serves customers collection of directory
type CustomerDirectoryService interface {
	FindAll(context.Context) ([]*model.Customer, error)
	FindByID(context.Context, string) (*model.Customer, error)
}

type customerDirectoryService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerDirectoryService builds new CustomerDirectoryService
func NewCustomerDirectoryService(customerRepo repository.CustomerRepository) CustomerDirectoryService {
	return &customerDirectoryService{customerRepo: customerRepo}
}

func (s *customerDirectoryService) FindAll(ctx context.Context) ([]*model.Customer, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *customerDirectoryService) FindByID(ctx context.Context, id string) (*model.Customer, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, cerrors.NewEntryNotFoundErr(fmt.Sprintf("customer with id %s doesn't exist", id))
	}
	return c, nil
}
