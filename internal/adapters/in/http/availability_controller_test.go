package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/minhanhng/salon-availability/internal/config"
	"github.com/minhanhng/salon-availability/internal/core/domain"
	"github.com/minhanhng/salon-availability/internal/core/json_types"
)

type stubUseCase struct {
	entries     []domain.AvailabilityEntry
	verdict     domain.AvailabilityVerdict
	invalidated []string
}

func (s *stubUseCase) RankAvailability(ctx context.Context, date time.Time, now time.Time) ([]domain.AvailabilityEntry, error) {
	return s.entries, nil
}

func (s *stubUseCase) CheckSlot(ctx context.Context, employeeID uuid.UUID, date time.Time, slot json_types.TimeOfDay) (domain.AvailabilityVerdict, error) {
	return s.verdict, nil
}

func (s *stubUseCase) DayStatus(ctx context.Context, employeeID uuid.UUID, date time.Time) (domain.ScheduleStatus, error) {
	return domain.ScheduleStatus{Status: domain.DayStatusWorking}, nil
}

func (s *stubUseCase) WeekStatus(ctx context.Context, employeeID uuid.UUID, from time.Time) ([]domain.ScheduleStatus, error) {
	return make([]domain.ScheduleStatus, 7), nil
}

func (s *stubUseCase) InvalidateDayCache(ctx context.Context, dateKey string) error {
	s.invalidated = append(s.invalidated, dateKey)
	return nil
}

func (s *stubUseCase) InvalidateAllCache(ctx context.Context) error {
	s.invalidated = append(s.invalidated, "_all_")
	return nil
}

func (s *stubUseCase) InvalidateRosterCache(ctx context.Context) error {
	return nil
}

func routerUnderTest(useCase *stubUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Auth.BasicClients = []config.ConfigBasicClient{
		{Username: "front_desk", Password: "secret"},
	}

	router := gin.New()
	NewAvailabilityController(useCase, cfg).RegisterRoutes(router)
	return router
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.SetBasicAuth("front_desk", "secret")
	return req
}

func TestRankAvailabilityRequiresAuth(t *testing.T) {
	router := routerUnderTest(&stubUseCase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", rec.Code)
	}
}

func TestRankAvailabilityRejectsBadCredentials(t *testing.T) {
	router := routerUnderTest(&stubUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
	req.SetBasicAuth("front_desk", "wrong")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", rec.Code)
	}
}

func TestRankAvailabilityResponse(t *testing.T) {
	useCase := &stubUseCase{
		entries: []domain.AvailabilityEntry{
			{
				Employee:      domain.Employee{Name: "An"},
				Priority:      1,
				Status:        domain.AvailabilityStatusFree,
				NextAvailable: "Ngay bây giờ",
			},
		},
	}
	router := routerUnderTest(useCase)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/availability?date=2025-06-02&at=14:50"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var body struct {
		Date    string                     `json:"date"`
		Entries []domain.AvailabilityEntry `json:"entries"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Date != "2025-06-02" {
		t.Errorf("date=%q, want 2025-06-02", body.Date)
	}
	if len(body.Entries) != 1 || body.Entries[0].Status != domain.AvailabilityStatusFree {
		t.Errorf("entries=%+v", body.Entries)
	}
}

func TestRankAvailabilityRejectsBadDate(t *testing.T) {
	router := routerUnderTest(&stubUseCase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/v1/availability?date=02-06-2025"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
}

func TestCheckSlotResponse(t *testing.T) {
	useCase := &stubUseCase{
		verdict: domain.AvailabilityVerdict{
			Available: false,
			Reason:    "Không trong giờ làm việc (08:00-17:00)",
		},
	}
	router := routerUnderTest(useCase)

	employeeID := uuid.New()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet,
		"/api/v1/employees/"+employeeID.String()+"/availability?date=2025-06-02&time=18:00"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var verdict domain.AvailabilityVerdict
	if err := json.Unmarshal(rec.Body.Bytes(), &verdict); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if verdict.Available {
		t.Error("expected unavailable verdict")
	}
}

func TestCheckSlotRejectsBadEmployeeID(t *testing.T) {
	router := routerUnderTest(&stubUseCase{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodGet,
		"/api/v1/employees/not-a-uuid/availability?date=2025-06-02&time=10:00"))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
}

func TestInvalidateDay(t *testing.T) {
	useCase := &stubUseCase{}
	router := routerUnderTest(useCase)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, authedRequest(http.MethodPost, "/api/v1/cache/invalidate/2025-06-02"))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status=%d, want 204", rec.Code)
	}
	if len(useCase.invalidated) != 1 || useCase.invalidated[0] != "2025-06-02" {
		t.Errorf("invalidated=%v", useCase.invalidated)
	}
}
