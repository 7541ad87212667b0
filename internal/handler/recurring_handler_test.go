package handler

import (
	"net/http"
	"testing"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/service"
	"github.com/dafibh/kasboek/kasboek-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRecurringHandler() (*RecurringHandler, *testutil.MockRecurringExpenseRepository, *testutil.MockIncomeSourceRepository) {
	accountRepo := testutil.NewMockAccountRepository()
	accountRepo.AddAccount(&domain.Account{ID: "checking", Name: "Checking", Type: domain.AccountTypeChecking})
	expenseRepo := testutil.NewMockRecurringExpenseRepository()
	sourceRepo := testutil.NewMockIncomeSourceRepository()
	h := NewRecurringHandler(
		service.NewRecurringExpenseService(expenseRepo, accountRepo),
		service.NewIncomeSourceService(sourceRepo, accountRepo),
	)
	return h, expenseRepo, sourceRepo
}

func TestCreateExpense_Defaults(t *testing.T) {
	h, _, _ := setupRecurringHandler()
	c, rec := newContext(http.MethodPost, "/api/v1/recurring-expenses", `{"name": "Netflix", "amount": -15.99, "category": "Streaming"}`)

	require.NoError(t, h.CreateExpense(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeBody[RecurringResponse](t, rec)
	assert.Equal(t, "15.99", resp.Amount, "stored as a magnitude")
	assert.Equal(t, "monthly", resp.Frequency)
	assert.True(t, resp.IsActive)
}

func TestCreateExpense_Validation(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		field  string
	}{
		{"missing name", `{"amount": 10}`, http.StatusBadRequest, "name"},
		{"zero amount", `{"name": "Gym", "amount": 0}`, http.StatusBadRequest, "amount"},
		{"bad frequency", `{"name": "Gym", "amount": 30, "frequency": "hourly"}`, http.StatusBadRequest, "frequency"},
		{"unknown account", `{"name": "Gym", "amount": 30, "accountId": "nope"}`, http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _ := setupRecurringHandler()
			c, rec := newContext(http.MethodPost, "/api/v1/recurring-expenses", tt.body)

			require.NoError(t, h.CreateExpense(c))
			assert.Equal(t, tt.status, rec.Code)
			if tt.field != "" {
				assert.Equal(t, tt.field, decodeBody[ProblemDetails](t, rec).Errors[0].Field)
			}
		})
	}
}

func TestUpdateExpense_Deactivate(t *testing.T) {
	h, expenseRepo, _ := setupRecurringHandler()
	expenseRepo.AddExpense(&domain.RecurringExpense{ID: "e1", Name: "Gym", Amount: 30, Frequency: domain.FrequencyMonthly, IsActive: true})

	c, rec := newContext(http.MethodPut, "/api/v1/recurring-expenses/e1", `{"name": "Gym", "amount": 30, "isActive": false}`, "id", "e1")
	require.NoError(t, h.UpdateExpense(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[RecurringResponse](t, rec).IsActive)
}

func TestIncomeSources_Lifecycle(t *testing.T) {
	h, _, sourceRepo := setupRecurringHandler()

	c, rec := newContext(http.MethodPost, "/api/v1/income-sources", `{"name": "Salaris", "amount": "3200", "frequency": "monthly", "accountId": "checking"}`)
	require.NoError(t, h.CreateSource(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[RecurringResponse](t, rec)
	assert.Equal(t, "3200.00", created.Amount)
	require.NotNil(t, created.AccountID)

	c, rec = newContext(http.MethodGet, "/api/v1/income-sources", "")
	require.NoError(t, h.GetSources(c))
	assert.Len(t, decodeBody[[]RecurringResponse](t, rec), 1)

	c, rec = newContext(http.MethodDelete, "/api/v1/income-sources/"+created.ID, "", "id", created.ID)
	require.NoError(t, h.DeleteSource(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, sourceRepo.Sources)

	c, rec = newContext(http.MethodDelete, "/api/v1/income-sources/"+created.ID, "", "id", created.ID)
	require.NoError(t, h.DeleteSource(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
