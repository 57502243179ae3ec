package move_sale

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalePlannerService/internal/domain"
	saleStorage "github.com/m04kA/SMC-SalePlannerService/internal/infra/storage/sale"
	"github.com/m04kA/SMC-SalePlannerService/pkg/dateonly"
	"github.com/m04kA/SMC-SalePlannerService/pkg/ptr"
)

type appliedUpdate struct {
	saleID int64
	start  dateonly.Date
	end    dateonly.Date
}

type stubSaleRepo struct {
	lane    []*domain.Sale
	updates []appliedUpdate
}

func (s *stubSaleRepo) GetByID(_ context.Context, id int64) (*domain.Sale, error) {
	for _, sale := range s.lane {
		if sale.ID == id {
			return sale, nil
		}
	}
	return nil, saleStorage.ErrSaleNotFound
}

func (s *stubSaleRepo) GetByProductWithFilter(_ context.Context, _ domain.ProductSalesFilter) ([]*domain.Sale, error) {
	return s.lane, nil
}

func (s *stubSaleRepo) UpdateDates(_ context.Context, id int64, start, end dateonly.Date) error {
	s.updates = append(s.updates, appliedUpdate{saleID: id, start: start, end: end})
	return nil
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

type stubTxManager struct{}

func (s *stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newUseCase(repo *stubSaleRepo, client *stubPlatformClient) *UseCase {
	return NewUseCase(repo, client, &stubTxManager{}, nopLogger{})
}

func moveRequest(t *testing.T, saleID int64, newStart, newEnd string) *Request {
	t.Helper()
	return &Request{
		SaleID:       saleID,
		NewStart:     date(t, newStart),
		NewEnd:       date(t, newEnd),
		HorizonStart: ptr.Ptr(date(t, "2024-01-01")),
	}
}

func TestExecute_MoveWithoutConflicts(t *testing.T) {
	repo := &stubSaleRepo{
		lane: []*domain.Sale{laneSale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)},
	}
	uc := newUseCase(repo, &stubPlatformClient{rule: ozonRule(30)})

	resp, err := uc.Execute(context.Background(), moveRequest(t, 1, "2024-03-01", "2024-03-10"))
	require.NoError(t, err)

	assert.True(t, resp.Applied)
	assert.Empty(t, resp.Shifts)
	assert.Equal(t, "2024-01-01", resp.OldStart.String())
	assert.Equal(t, "2024-03-01", resp.NewStart.String())

	require.Len(t, repo.updates, 1)
	assert.Equal(t, int64(1), repo.updates[0].saleID)
	assert.Equal(t, "2024-03-01", repo.updates[0].start.String())
}

func TestExecute_CascadeShiftsNeighbor(t *testing.T) {
	repo := &stubSaleRepo{
		lane: []*domain.Sale{
			laneSale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom),
			laneSale(t, 2, "2024-02-10", "2024-02-15", domain.KindCustom),
		},
	}
	uc := newUseCase(repo, &stubPlatformClient{rule: ozonRule(30)})

	// Cooldown перемещенной действует по 2024-02-28, сосед уезжает за него
	resp, err := uc.Execute(context.Background(), moveRequest(t, 1, "2024-01-20", "2024-01-29"))
	require.NoError(t, err)

	assert.True(t, resp.Applied)
	require.Len(t, resp.Shifts, 1)
	assert.Equal(t, int64(2), resp.Shifts[0].SaleID)
	assert.Equal(t, "2024-02-10", resp.Shifts[0].OldStart.String())
	assert.Equal(t, "2024-02-29", resp.Shifts[0].NewStart.String())
	assert.Equal(t, "2024-03-05", resp.Shifts[0].NewEnd.String())

	require.Len(t, repo.updates, 2)
	assert.Equal(t, int64(1), repo.updates[0].saleID)
	assert.Equal(t, int64(2), repo.updates[1].saleID)
}

func TestExecute_DryRunDoesNotPersist(t *testing.T) {
	repo := &stubSaleRepo{
		lane: []*domain.Sale{
			laneSale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom),
			laneSale(t, 2, "2024-02-10", "2024-02-15", domain.KindCustom),
		},
	}
	uc := newUseCase(repo, &stubPlatformClient{rule: ozonRule(30)})

	req := moveRequest(t, 1, "2024-01-20", "2024-01-29")
	req.DryRun = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.False(t, resp.Applied)
	require.Len(t, resp.Shifts, 1)
	assert.Empty(t, repo.updates)
}

func TestExecute_SaleNotFound(t *testing.T) {
	uc := newUseCase(&stubSaleRepo{}, &stubPlatformClient{rule: ozonRule(30)})

	_, err := uc.Execute(context.Background(), moveRequest(t, 42, "2024-03-01", "2024-03-10"))
	assert.ErrorIs(t, err, ErrSaleNotFound)
}

func TestExecute_DirectOverlapRejected(t *testing.T) {
	repo := &stubSaleRepo{
		lane: []*domain.Sale{
			laneSale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom),
			laneSale(t, 2, "2024-01-25", "2024-01-28", domain.KindCustom),
		},
	}
	uc := newUseCase(repo, &stubPlatformClient{rule: ozonRule(30)})

	_, err := uc.Execute(context.Background(), moveRequest(t, 1, "2024-01-20", "2024-01-29"))
	assert.ErrorIs(t, err, ErrDirectOverlap)
	assert.Empty(t, repo.updates)
}

func TestExecute_CascadeInfeasible(t *testing.T) {
	repo := &stubSaleRepo{
		lane: []*domain.Sale{
			laneSale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom),
			laneSale(t, 2, "2024-03-01", "2024-03-05", domain.KindCustom),
		},
	}
	uc := newUseCase(repo, &stubPlatformClient{rule: ozonRule(30)})

	// Сосед слева должен уехать раньше горизонта планирования
	_, err := uc.Execute(context.Background(), moveRequest(t, 2, "2024-01-15", "2024-01-19"))
	assert.ErrorIs(t, err, ErrCascadeInfeasible)
	assert.Empty(t, repo.updates)
}

func TestExecute_EndBeforeStart(t *testing.T) {
	uc := newUseCase(&stubSaleRepo{}, &stubPlatformClient{rule: ozonRule(30)})

	_, err := uc.Execute(context.Background(), moveRequest(t, 1, "2024-03-10", "2024-03-01"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_MovedSaleDurationWarning(t *testing.T) {
	repo := &stubSaleRepo{
		lane: []*domain.Sale{laneSale(t, 1, "2024-01-01", "2024-01-10", domain.KindCustom)},
	}
	uc := newUseCase(repo, &stubPlatformClient{rule: ozonRule(30)})

	resp, err := uc.Execute(context.Background(), moveRequest(t, 1, "2024-03-01", "2024-03-20"))
	require.NoError(t, err)
	require.NotNil(t, resp.Warning)
	assert.Contains(t, *resp.Warning, "превышает")
}
