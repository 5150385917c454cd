package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	cerrors "github.com/umalmyha/customer-search/internal/errors"
	"github.com/umalmyha/customer-search/internal/middleware"
	"github.com/umalmyha/customer-search/internal/model"
	"github.com/umalmyha/customer-search/internal/render"
	"github.com/umalmyha/customer-search/internal/search"
	"github.com/umalmyha/customer-search/internal/service"
	"github.com/umalmyha/customer-search/internal/session"
)

const (
	pageTitle    = "Care247"
	pageSubtitle = "Customer Search Application"
	pagePath     = "/"
)

// SearchPageHandler serves search page of browser session
type SearchPageHandler struct {
	searchCfg model.SearchConfig
	registry  *search.Registry
	formStore session.Store
}

// NewSearchPageHandler builds new SearchPageHandler
func NewSearchPageHandler(searchCfg model.SearchConfig, registry *search.Registry, formStore session.Store) *SearchPageHandler {
	return &SearchPageHandler{
		searchCfg: searchCfg,
		registry:  registry,
		formStore: formStore,
	}
}

// Page renders search form and results of session
func (h *SearchPageHandler) Page(c echo.Context) error {
	sessionID := middleware.SessionID(c)

	form, err := h.formStore.Load(c.Request().Context(), sessionID)
	if err != nil {
		return err
	}

	st := h.registry.Orchestrator(sessionID).State()

	return c.Render(http.StatusOK, render.PageTemplate, &render.PageView{
		Title:    pageTitle,
		Subtitle: pageSubtitle,
		Form:     render.Form(h.searchCfg.Fields, form.Criteria, st.Phase == search.PhaseSearching),
		Results:  render.Results(st, h.searchCfg.ResultFields),
	})
}

// Search keeps submitted criteria, starts search and redirects back to page
func (h *SearchPageHandler) Search(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sessionID := middleware.SessionID(c)
	criteria := render.Criteria(h.searchCfg.Fields, params)

	if err := h.formStore.Save(c.Request().Context(), sessionID, session.FormState{Criteria: criteria}); err != nil {
		return err
	}

	// search outlives request, page polls until it completes
	h.registry.Orchestrator(sessionID).Start(context.Background(), criteria)

	return c.Redirect(http.StatusSeeOther, pagePath)
}

// Clear resets form and results of session and redirects back to page
func (h *SearchPageHandler) Clear(c echo.Context) error {
	sessionID := middleware.SessionID(c)

	if err := h.formStore.Delete(c.Request().Context(), sessionID); err != nil {
		return err
	}
	h.registry.Orchestrator(sessionID).Clear()

	return c.Redirect(http.StatusSeeOther, pagePath)
}

type identifier struct {
	ID string `json:"id" validate:"required,printascii,max=64"`
}

type searchQuery struct {
	FirstName   string `query:"firstName" validate:"max=100"`
	LastName    string `query:"lastName" validate:"max=100"`
	DateOfBirth string `query:"dateOfBirth" validate:"max=10"`
}

// CustomerHTTPHandler is http handler for customer search endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerSearchService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerSearchService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// Search searches customers
// @Summary     Search customers
// @Description Fetches customers from directory and returns the ones matching every non-blank criterion
// @Tags        customers
// @Produce     json
// @Param       firstName   query    string false "Case-insensitive substring of first name"
// @Param       lastName    query    string false "Case-insensitive substring of last name"
// @Param       dateOfBirth query    string false "Date of birth as YYYY-MM-DD or DD-MM-YYYY"
// @Success     200         {array}  model.Customer
// @Failure     400         {object} echo.HTTPError
// @Failure     502         {object} echo.HTTPError
// @Router      /api/v1/customers/search [get]
func (h *CustomerHTTPHandler) Search(c echo.Context) error {
	var q searchQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&q); err != nil {
		return err
	}

	criteria := make(model.SearchCriteria)
	for key := range c.QueryParams() {
		criteria[key] = c.QueryParam(key)
	}

	customers, err := h.customerSvc.Search(c.Request().Context(), criteria)
	if err != nil {
		return fetchError(err)
	}

	return c.JSON(http.StatusOK, customers)
}

// Get gets customer
// @Summary     Get single customer by id
// @Description Fetches customer with provided id from directory
// @Tags        customers
// @Produce     json
// @Param       id     path     string true "Customer id"
// @Success     200    {object} model.Customer
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     502    {object} echo.HTTPError
// @Router      /api/v1/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	customer, err := h.customerSvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return fetchError(err)
	}

	return c.JSON(http.StatusOK, customer)
}

// DirectoryHTTPHandler is http handler for customers directory endpoint
type DirectoryHTTPHandler struct {
	directorySvc service.CustomerDirectoryService
}

// NewDirectoryHTTPHandler builds new DirectoryHTTPHandler
func NewDirectoryHTTPHandler(directorySvc service.CustomerDirectoryService) *DirectoryHTTPHandler {
	return &DirectoryHTTPHandler{directorySvc: directorySvc}
}

// GetAll gets all customers
// @Summary     Get all customers
// @Description Returns all customers of directory
// @Tags        directory
// @Produce     json
// @Success     200    {array}  model.Customer
// @Failure     500    {object} echo.HTTPError
// @Router      /customers [get]
func (h *DirectoryHTTPHandler) GetAll(c echo.Context) error {
	customers, err := h.directorySvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get gets customer
// @Summary     Get single customer by id
// @Description Returns single customer of directory with provided id
// @Tags        directory
// @Produce     json
// @Param       id     path     string true "Customer id"
// @Success     200    {object} model.Customer
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /customers/{id} [get]
func (h *DirectoryHTTPHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if err := c.Validate(&identifier{ID: id}); err != nil {
		return err
	}

	customer, err := h.directorySvc.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

// fetchError turns directory failure into gateway error, directory 404 stays 404
func fetchError(err error) error {
	var ff *cerrors.FetchFailure
	if !errors.As(err, &ff) {
		return err
	}

	if ff.Kind == cerrors.HTTPStatusFailure && ff.Status == http.StatusNotFound {
		return echo.NewHTTPError(http.StatusNotFound, ff.Error())
	}
	return echo.NewHTTPError(http.StatusBadGateway, ff.Error())
}
