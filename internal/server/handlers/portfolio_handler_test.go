package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/SawSimonLinn/BizBoost/internal/domain/models"
	"github.com/SawSimonLinn/BizBoost/internal/repository/mongodb"
	"github.com/SawSimonLinn/BizBoost/internal/server/handlers"
	"github.com/SawSimonLinn/BizBoost/internal/server/router"
	"github.com/SawSimonLinn/BizBoost/internal/service/insights"
	"github.com/SawSimonLinn/BizBoost/internal/service/portfolio"
)

type memRepo struct {
	store map[string]models.PortfolioState
}

func (r *memRepo) LoadPortfolio(_ context.Context, userID string) (models.PortfolioState, error) {
	state, ok := r.store[userID]
	if !ok {
		return models.PortfolioState{}, mongodb.ErrPortfolioNotFound
	}
	return state, nil
}

func (r *memRepo) SavePortfolio(_ context.Context, state models.PortfolioState) error {
	r.store[state.UserID] = state
	return nil
}

func (r *memRepo) ListUserIDs(_ context.Context) ([]string, error) {
	return nil, nil
}

func newTestRouter() (*gin.Engine, *memRepo) {
	repo := &memRepo{store: map[string]models.PortfolioState{}}
	portfolioSvc := portfolio.NewService(repo, nil)
	insightsSvc := insights.NewService(portfolioSvc, nil, nil)

	portfolioHandler := handlers.NewPortfolioHandler(portfolioSvc, nil, nil)
	insightsHandler := handlers.NewInsightsHandler(insightsSvc, nil)
	return router.New(portfolioHandler, insightsHandler, nil), repo
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "owner-1")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestDashboardEndpoint(t *testing.T) {
	engine, _ := newTestRouter()

	rec := doJSON(t, engine, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dash models.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	require.NotEmpty(t, dash.ActivePeriodID)
	require.NotEmpty(t, dash.History)
	require.Positive(t, dash.Active.TotalSales)
	require.InDelta(t, dash.Active.TotalSales, dash.Active.FranchisorCut+dash.Active.OwnerCut, 1e-9)
}

func TestCreateAndEditPeriod(t *testing.T) {
	engine, _ := newTestRouter()

	rec := doJSON(t, engine, http.MethodPost, "/api/periods", `{"name":"Bonus Month","weeks":4}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var period models.Period
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &period))
	require.Len(t, period.WeeklySales, 4)

	rec = doJSON(t, engine, http.MethodPut, "/api/periods/"+period.ID+"/sales", `{"weeklySales":[1000,2000,3000,4000]}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Wrong number of weeks is a client error, not a silent resize.
	rec = doJSON(t, engine, http.MethodPut, "/api/periods/"+period.ID+"/sales", `{"weeklySales":[1000,2000]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, engine, http.MethodPut, "/api/periods/"+period.ID+"/inventory", `{"type":"percent","value":22}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, engine, http.MethodGet, "/api/dashboard?period="+period.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var dash models.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	require.Equal(t, period.ID, dash.ActivePeriodID)
	require.Equal(t, 10000.0, dash.Active.TotalSales)
	require.Equal(t, 2200.0, dash.Active.InventoryCostValue)
}

func TestUnknownPeriodReturnsNotFound(t *testing.T) {
	engine, _ := newTestRouter()

	rec := doJSON(t, engine, http.MethodPut, "/api/periods/nope/sales", `{"weeklySales":[1,2,3,4]}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaffEndpoints(t *testing.T) {
	engine, _ := newTestRouter()

	rec := doJSON(t, engine, http.MethodPost, "/api/staff", `{"employeeName":"Sam Lee","paymentType":"hourly","hours":100,"wageRate":15}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var record models.StaffCost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	require.NotNil(t, record.Hourly)

	rec = doJSON(t, engine, http.MethodPost, "/api/staff", `{"employeeName":"Bad","paymentType":"hourly","hours":-5,"wageRate":15}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/staff/"+record.ID, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, engine, http.MethodDelete, "/api/staff/"+record.ID, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeesEndpointRequiresBody(t *testing.T) {
	engine, _ := newTestRouter()

	rec := doJSON(t, engine, http.MethodPut, "/api/fees", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, engine, http.MethodPut, "/api/fees", `{"royaltyPercent":40}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestInsightsUnconfiguredReturns503(t *testing.T) {
	engine, _ := newTestRouter()

	rec := doJSON(t, engine, http.MethodPost, "/api/insights/cost-savings", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestExportUnconfiguredReturns503(t *testing.T) {
	engine, _ := newTestRouter()

	rec := doJSON(t, engine, http.MethodPost, "/api/annual-report/export", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthz(t *testing.T) {
	engine, _ := newTestRouter()

	rec := doJSON(t, engine, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
