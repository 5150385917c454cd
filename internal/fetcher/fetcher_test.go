package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"
	cerrors "github.com/umalmyha/customer-search/internal/errors"
)

const customersJSON = `[
	{
		"id": "1",
		"firstName": "John",
		"lastName": "Doe",
		"dateOfBirth": "1985-03-15",
		"maritalStatus": "Married",
		"secureId": "SEC-001",
		"addresses": [{"id": "a1", "type": "Home", "street": "1 Main St", "city": "Springfield", "state": "IL", "zipCode": "62701"}],
		"phones": [{"id": "p1", "type": "Mobile", "number": "555-0101", "isPrimary": true}],
		"emails": [{"id": "e1", "type": "Personal", "address": "john@doe.com", "isPrimary": true}]
	},
	{"id": "2", "firstName": "Jane", "lastName": "Doe", "dateOfBirth": "1990-07-22", "maritalStatus": "Single", "secureId": "SEC-002", "addresses": [], "phones": [], "emails": []}
]`

type fetcherTestSuite struct {
	suite.Suite
	ctx     context.Context
	server  *httptest.Server
	handler http.HandlerFunc
}

func (s *fetcherTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.handler(w, r)
	}))
}

func (s *fetcherTestSuite) TearDownSuite() {
	s.server.Close()
}

func (s *fetcherTestSuite) respond(status int, body string) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (s *fetcherTestSuite) TestFetchAllSuccessfully() {
	var path string
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(customersJSON))
	}

	f := NewRestyCustomerFetcher(s.server.URL, 0)
	customers, err := f.FetchAll(s.ctx)
	s.Require().NoError(err, "no error must be raised")
	s.Require().Equal("/customers", path, "customers collection must be requested")
	s.Require().Len(customers, 2, "both customers must be decoded")

	john := customers[0]
	s.Assert().Equal("John", john.FirstName)
	s.Assert().Equal("SEC-001", john.SecureID)
	s.Assert().Len(john.Addresses, 1)
	s.Assert().True(john.Phones[0].IsPrimary)
	s.Assert().Equal("john@doe.com", john.Emails[0].Address)
}

func (s *fetcherTestSuite) TestFetchAllHTTPStatusFailure() {
	s.respond(http.StatusInternalServerError, `{"message":"boom"}`)

	f := NewRestyCustomerFetcher(s.server.URL, 0)
	_, err := f.FetchAll(s.ctx)
	s.Require().Error(err, "non-2xx must fail")

	var ff *cerrors.FetchFailure
	s.Require().True(errors.As(err, &ff), "error must be fetch failure")
	s.Assert().Equal(cerrors.HTTPStatusFailure, ff.Kind)
	s.Assert().Equal(http.StatusInternalServerError, ff.Status)
	s.Assert().Contains(err.Error(), "500")
}

func (s *fetcherTestSuite) TestFetchAllDecodeFailure() {
	s.respond(http.StatusOK, `[{"id": "1", "firstName": `)

	f := NewRestyCustomerFetcher(s.server.URL, 0)
	_, err := f.FetchAll(s.ctx)

	var ff *cerrors.FetchFailure
	s.Require().True(errors.As(err, &ff), "error must be fetch failure")
	s.Assert().Equal(cerrors.DecodeFailure, ff.Kind)
}

func (s *fetcherTestSuite) TestFetchAllTransportFailure() {
	unreachable := httptest.NewServer(http.NotFoundHandler())
	url := unreachable.URL
	unreachable.Close()

	f := NewRestyCustomerFetcher(url, 0)
	_, err := f.FetchAll(s.ctx)

	var ff *cerrors.FetchFailure
	s.Require().True(errors.As(err, &ff), "error must be fetch failure")
	s.Assert().Equal(cerrors.TransportFailure, ff.Kind)
}

func (s *fetcherTestSuite) TestFetchByID() {
	var path string
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "2", "firstName": "Jane", "lastName": "Doe", "dateOfBirth": "1990-07-22"}`))
	}

	f := NewRestyCustomerFetcher(s.server.URL, 0)
	c, err := f.FetchByID(s.ctx, "2")
	s.Require().NoError(err, "no error must be raised")
	s.Require().Equal("/customers/2", path)
	s.Require().Equal("Jane", c.FirstName)
}

func (s *fetcherTestSuite) TestFetchByIDNotFound() {
	s.respond(http.StatusNotFound, `{}`)

	f := NewRestyCustomerFetcher(s.server.URL, 0)
	_, err := f.FetchByID(s.ctx, "404")

	var ff *cerrors.FetchFailure
	s.Require().True(errors.As(err, &ff), "error must be fetch failure")
	s.Assert().Equal(http.StatusNotFound, ff.Status)
}

// start fetcher test suite
func TestFetcherTestSuite(t *testing.T) {
	suite.Run(t, new(fetcherTestSuite))
}
