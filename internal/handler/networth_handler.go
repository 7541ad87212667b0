package handler

import (
	"net/http"
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// NetWorthHandler handles net worth HTTP requests
type NetWorthHandler struct {
	netWorthService *service.NetWorthService
	now             func() time.Time
}

// NewNetWorthHandler creates a new NetWorthHandler
func NewNetWorthHandler(netWorthService *service.NetWorthService) *NetWorthHandler {
	return &NetWorthHandler{netWorthService: netWorthService, now: time.Now}
}

// NetWorthResponse represents the current net worth
type NetWorthResponse struct {
	Assets      string            `json:"assets"`
	Liabilities string            `json:"liabilities"`
	NetWorth    string            `json:"netWorth"`
	ByType      map[string]string `json:"byType"`
	Accounts    []AccountResponse `json:"accounts"`
}

// SnapshotResponse represents a recorded monthly net worth snapshot
type SnapshotResponse struct {
	Month       string            `json:"month"`
	Assets      string            `json:"assets"`
	Liabilities string            `json:"liabilities"`
	NetWorth    string            `json:"netWorth"`
	ByType      map[string]string `json:"byType"`
	RecordedAt  string            `json:"recordedAt"`
}

// GetCurrent handles GET /api/v1/net-worth
func (h *NetWorthHandler) GetCurrent(c echo.Context) error {
	summary, err := h.netWorthService.GetCurrent()
	if err != nil {
		return handleServiceError(c, err, "calculate net worth")
	}

	response := NetWorthResponse{
		Assets:      money(summary.Assets),
		Liabilities: money(summary.Liabilities),
		NetWorth:    money(summary.NetWorth),
		ByType:      make(map[string]string, len(summary.ByType)),
		Accounts:    make([]AccountResponse, len(summary.Accounts)),
	}
	for typ, total := range summary.ByType {
		response.ByType[string(typ)] = money(total)
	}
	for i, account := range summary.Accounts {
		response.Accounts[i] = toAccountResponse(account)
	}
	return c.JSON(http.StatusOK, response)
}

// GetHistory handles GET /api/v1/net-worth/history
func (h *NetWorthHandler) GetHistory(c echo.Context) error {
	history, err := h.netWorthService.GetHistory()
	if err != nil {
		return handleServiceError(c, err, "get net worth history")
	}

	response := make([]SnapshotResponse, len(history))
	for i, snapshot := range history {
		response[i] = toSnapshotResponse(snapshot)
	}
	return c.JSON(http.StatusOK, response)
}

// RecordSnapshot handles POST /api/v1/net-worth/snapshots
// Recording twice in a month replaces that month's snapshot.
func (h *NetWorthHandler) RecordSnapshot(c echo.Context) error {
	snapshot, err := h.netWorthService.RecordSnapshot(h.now())
	if err != nil {
		return handleServiceError(c, err, "record net worth snapshot")
	}

	log.Info().Str("month", snapshot.Month.Format("2006-01")).Float64("net_worth", snapshot.NetWorth).Msg("Net worth snapshot recorded")
	return c.JSON(http.StatusCreated, toSnapshotResponse(snapshot))
}

func toSnapshotResponse(s *domain.NetWorthSnapshot) SnapshotResponse {
	byType := make(map[string]string, len(s.ByType))
	for typ, total := range s.ByType {
		byType[string(typ)] = moneyFloat(total)
	}
	return SnapshotResponse{
		Month:       s.Month.Format("2006-01"),
		Assets:      moneyFloat(s.Assets),
		Liabilities: moneyFloat(s.Liabilities),
		NetWorth:    moneyFloat(s.NetWorth),
		ByType:      byType,
		RecordedAt:  s.RecordedAt.Format(time.RFC3339),
	}
}
