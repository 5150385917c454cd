package infra

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/customer-search/internal/config"
	"github.com/umalmyha/customer-search/internal/model"
	"github.com/umalmyha/customer-search/internal/repository"
)

const (
	seedFile       = "../../testdata/customers.json"
	testCookieName = "test-session"
	awaitTimeout   = 3 * time.Second
)

type routerTestSuite struct {
	suite.Suite
	directoryApp *echo.Echo
	directory    *httptest.Server
	searchApp    *echo.Echo
}

func (s *routerTestSuite) SetupSuite() {
	require := s.Require()

	customerRps, err := repository.NewFileCustomerRepository(seedFile)
	require.NoError(err, "failed to load seed file")

	s.directoryApp, err = DirectoryRouter(customerRps)
	require.NoError(err, "failed to build directory router")
	s.directory = httptest.NewServer(s.directoryApp)

	s.searchApp, err = SearchRouter(s.searchCfg(s.directory.URL), nil)
	require.NoError(err, "failed to build search router")
}

func (s *routerTestSuite) TearDownSuite() {
	s.directory.Close()
}

func (s *routerTestSuite) searchCfg(baseURL string) config.SearchCfg {
	return config.SearchCfg{
		CustomersAPICfg: config.CustomersAPICfg{BaseURL: baseURL, Timeout: time.Second},
		SessionCfg: config.SessionCfg{
			Store:      config.SessionStoreMemory,
			TimeToLive: time.Minute,
			CookieName: testCookieName,
		},
	}
}

func (s *routerTestSuite) TestDirectoryRoutes() {
	t := s.T()
	require := s.Require()

	t.Log("all customers are served")
	{
		rec := s.serve(s.directoryApp, http.MethodGet, "/customers", nil, nil)
		require.Equal(http.StatusOK, rec.Code)

		var customers []model.Customer
		require.NoError(json.Unmarshal(rec.Body.Bytes(), &customers))
		require.Len(customers, 4)
	}

	t.Log("missing customer is not found")
	{
		rec := s.serve(s.directoryApp, http.MethodGet, "/customers/99", nil, nil)
		require.Equal(http.StatusNotFound, rec.Code)
	}
}

func (s *routerTestSuite) TestCustomersAPIRoutes() {
	t := s.T()
	require := s.Require()

	tests := []struct {
		query string
		ids   []string
	}{
		{query: "lastName=doe", ids: []string{"1", "4"}},
		{query: "firstName=JOHN", ids: []string{"1"}},
		{query: "dateOfBirth=15-03-1985", ids: []string{"1", "4"}},
		{query: "dateOfBirth=1985-03-15&firstName=em", ids: []string{"4"}},
		{query: "lastName=nobody", ids: []string{}},
		{query: "", ids: []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Logf("search customers with %q", tt.query)
		rec := s.serve(s.searchApp, http.MethodGet, "/api/v1/customers/search?"+tt.query, nil, nil)
		require.Equal(http.StatusOK, rec.Code)

		var customers []model.Customer
		require.NoError(json.Unmarshal(rec.Body.Bytes(), &customers))

		ids := make([]string, 0, len(customers))
		for _, c := range customers {
			ids = append(ids, c.ID)
		}
		require.Equal(tt.ids, ids)
	}

	t.Log("customer is fetched by id")
	{
		rec := s.serve(s.searchApp, http.MethodGet, "/api/v1/customers/3", nil, nil)
		require.Equal(http.StatusOK, rec.Code)
		require.Contains(rec.Body.String(), `"id":"3"`)
	}

	t.Log("missing customer is not found")
	{
		rec := s.serve(s.searchApp, http.MethodGet, "/api/v1/customers/99", nil, nil)
		require.Equal(http.StatusNotFound, rec.Code)
	}
}

func (s *routerTestSuite) TestUnreachableDirectory() {
	require := s.Require()

	down := httptest.NewServer(http.NotFoundHandler())
	down.Close()

	app, err := SearchRouter(s.searchCfg(down.URL), nil)
	require.NoError(err, "failed to build search router")

	rec := s.serve(app, http.MethodGet, "/api/v1/customers/search?lastName=doe", nil, nil)
	require.Equal(http.StatusBadGateway, rec.Code)
}

func (s *routerTestSuite) TestSearchPageFlow() {
	t := s.T()
	require := s.Require()

	var cookie *http.Cookie

	t.Log("first visit issues session cookie and shows prompt")
	{
		rec := s.serve(s.searchApp, http.MethodGet, "/", nil, nil)
		require.Equal(http.StatusOK, rec.Code)
		require.Contains(rec.Body.String(), "Enter search criteria above to find customers")

		cookies := rec.Result().Cookies()
		require.Len(cookies, 1)
		cookie = cookies[0]
	}

	t.Log("submitted search redirects back to page")
	{
		rec := s.serve(s.searchApp, http.MethodPost, "/search", url.Values{"lastName": {"doe"}}, cookie)
		require.Equal(http.StatusSeeOther, rec.Code)
	}

	t.Log("page eventually shows results")
	{
		require.Eventually(func() bool {
			rec := s.serve(s.searchApp, http.MethodGet, "/", nil, cookie)
			return strings.Contains(rec.Body.String(), "Found 2 customers")
		}, awaitTimeout, 10*time.Millisecond, "results must be shown")
	}

	t.Log("another session doesn't see results")
	{
		rec := s.serve(s.searchApp, http.MethodGet, "/", nil, nil)
		require.NotContains(rec.Body.String(), "Found 2 customers")
	}

	t.Log("clear returns page to prompt")
	{
		rec := s.serve(s.searchApp, http.MethodPost, "/clear", url.Values{}, cookie)
		require.Equal(http.StatusSeeOther, rec.Code)

		rec = s.serve(s.searchApp, http.MethodGet, "/", nil, cookie)
		require.Contains(rec.Body.String(), "Enter search criteria above to find customers")
	}
}

func (s *routerTestSuite) TestSwagger() {
	rec := s.serve(s.searchApp, http.MethodGet, "/swagger/doc.json", nil, nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), "/api/v1/customers/search")
}

// start router test suite
func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(routerTestSuite))
}

func (s *routerTestSuite) serve(app *echo.Echo, method, target string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	var body string
	if form != nil {
		body = form.Encode()
	}

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}
