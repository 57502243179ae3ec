package validate_placement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	platformClient "github.com/m04kA/SMC-SalePlannerService/internal/integrations/platformservice"
	"github.com/m04kA/SMC-SalePlannerService/internal/planner"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
	"github.com/m04kA/SMC-SalePlannerService/pkg/ptr"
)

type stubSaleRepo struct {
	sales []*domain.Sale
}

func (s *stubSaleRepo) GetByProductWithFilter(_ context.Context, _ domain.ProductSalesFilter) ([]*domain.Sale, error) {
	return s.sales, nil
}

type stubPlatformClient struct {
	rule *domain.PlatformRule
	err  error
}

func (s *stubPlatformClient) GetPlatformRule(_ context.Context, _ int64) (*domain.PlatformRule, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rule, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(t *testing.T, value string) dateonly.Date {
	t.Helper()
	d, err := dateonly.Parse(value)
	require.NoError(t, err)
	return d
}

func laneSale(t *testing.T, id int64, start, end string, kind domain.SaleKind) *domain.Sale {
	t.Helper()
	return &domain.Sale{
		ID:         id,
		ProductID:  1,
		PlatformID: 1,
		StartDate:  date(t, start),
		EndDate:    date(t, end),
		Kind:       kind,
	}
}

func ozonRule(cooldownDays int) *domain.PlatformRule {
	return &domain.PlatformRule{
		PlatformID:   1,
		Name:         "Ozon",
		CooldownDays: cooldownDays,
		MaxSaleDays:  14,
	}
}

func placementRequest(t *testing.T, start, end string) *Request {
	t.Helper()
	return &Request{
		ProductID:  1,
		PlatformID: 1,
		StartDate:  date(t, start),
		EndDate:    date(t, end),
		Kind:       domain.KindCustom,
	}
}

func TestExecute_ValidPlacement(t *testing.T) {
	repo := &stubSaleRepo{
		sales: []*domain.Sale{laneSale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)},
	}
	uc := NewUseCase(repo, &stubPlatformClient{rule: ozonRule(30)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), placementRequest(t, "2024-02-10", "2024-02-19"))
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Conflict)
	assert.Zero(t, resp.ConflictingSaleID)
	assert.Empty(t, resp.Reason)
}

func TestExecute_CooldownConflictIsNotAnError(t *testing.T) {
	repo := &stubSaleRepo{
		sales: []*domain.Sale{laneSale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)},
	}
	uc := NewUseCase(repo, &stubPlatformClient{rule: ozonRule(30)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), placementRequest(t, "2024-01-11", "2024-01-15"))
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	assert.Equal(t, string(planner.ConflictCooldown), resp.Conflict)
	assert.Equal(t, int64(1), resp.ConflictingSaleID)
	assert.NotEmpty(t, resp.Reason)
}

func TestExecute_DirectOverlapConflict(t *testing.T) {
	repo := &stubSaleRepo{
		sales: []*domain.Sale{laneSale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)},
	}
	uc := NewUseCase(repo, &stubPlatformClient{rule: ozonRule(30)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), placementRequest(t, "2024-01-05", "2024-01-12"))
	require.NoError(t, err)

	assert.False(t, resp.Valid)
	assert.Equal(t, string(planner.ConflictOverlap), resp.Conflict)
	assert.Equal(t, int64(1), resp.ConflictingSaleID)
}

func TestExecute_ExcludeSaleID(t *testing.T) {
	repo := &stubSaleRepo{
		sales: []*domain.Sale{laneSale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)},
	}
	uc := NewUseCase(repo, &stubPlatformClient{rule: ozonRule(30)}, nopLogger{})

	// Перемещаемая распродажа не конфликтует со своей прежней позицией
	req := placementRequest(t, "2024-01-05", "2024-01-12")
	req.ExcludeSaleID = ptr.Ptr(int64(1))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Valid)
}

func TestExecute_PlatformNotFound(t *testing.T) {
	uc := NewUseCase(&stubSaleRepo{}, &stubPlatformClient{err: platformClient.ErrPlatformNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), placementRequest(t, "2024-01-01", "2024-01-10"))
	assert.ErrorIs(t, err, ErrPlatformNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&stubSaleRepo{}, &stubPlatformClient{rule: ozonRule(30)}, nopLogger{})

	_, err := uc.Execute(context.Background(), placementRequest(t, "2024-01-10", "2024-01-01"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_DurationWarningOnValidPlacement(t *testing.T) {
	uc := NewUseCase(&stubSaleRepo{}, &stubPlatformClient{rule: ozonRule(30)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), placementRequest(t, "2024-01-01", "2024-01-20"))
	require.NoError(t, err)

	assert.True(t, resp.Valid)
	require.NotNil(t, resp.Warning)
	assert.Contains(t, *resp.Warning, "превышает")
}
