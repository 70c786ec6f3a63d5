package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	domain "github.com/BruksfildServices01/consultorio/internal/domain/report"
	"github.com/BruksfildServices01/consultorio/internal/domain/transaction"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeClients struct {
	rows []models.Client
	err  error
}

func (f *fakeClients) ListActive(context.Context, uuid.UUID) ([]models.Client, error) {
	return f.rows, f.err
}
func (f *fakeClients) Get(context.Context, uuid.UUID, uuid.UUID) (*models.Client, error) {
	return nil, errors.New("not used")
}
func (f *fakeClients) Create(context.Context, *models.Client) error { return nil }
func (f *fakeClients) Replace(context.Context, *models.Client) error { return nil }
func (f *fakeClients) Deactivate(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type fakeSessions struct {
	rows []models.Session
	err  error
}

func (f *fakeSessions) List(context.Context, uuid.UUID) ([]models.Session, error) {
	return f.rows, f.err
}
func (f *fakeSessions) Get(context.Context, uuid.UUID, uuid.UUID) (*models.Session, error) {
	return nil, errors.New("not used")
}
func (f *fakeSessions) Create(context.Context, *models.Session) error { return nil }
func (f *fakeSessions) Replace(context.Context, *models.Session) error { return nil }
func (f *fakeSessions) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

type fakeTransactions struct {
	rows       []models.Transaction
	err        error
	lastFilter transaction.Filter
}

func (f *fakeTransactions) List(_ context.Context, _ uuid.UUID, filter transaction.Filter) ([]models.Transaction, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	if filter.Tipo == "" {
		return f.rows, nil
	}
	var out []models.Transaction
	for _, t := range f.rows {
		if t.Tipo == string(filter.Tipo) {
			out = append(out, t)
		}
	}
	return out, nil
}
func (f *fakeTransactions) Get(context.Context, uuid.UUID, uuid.UUID) (*models.Transaction, error) {
	return nil, errors.New("not used")
}
func (f *fakeTransactions) Create(context.Context, *models.Transaction) error { return nil }
func (f *fakeTransactions) CreateMany(context.Context, []models.Transaction) error { return nil }
func (f *fakeTransactions) Replace(context.Context, *models.Transaction) error { return nil }
func (f *fakeTransactions) Delete(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func tx(tipo, categoria string, valor int64, date string) models.Transaction {
	d, _ := time.Parse("2006-01-02", date)
	return models.Transaction{Tipo: tipo, Categoria: categoria, Valor: decimal.NewFromInt(valor), DataTransacao: d}
}

// ======================================================
// DASHBOARD
// ======================================================

func TestLoadDashboard(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	txs := &fakeTransactions{rows: []models.Transaction{
		tx("Receita", "Sessão", 200, "2024-03-02"),
		tx("Despesa", "Aluguel", 900, "2024-03-05"),
	}}

	uc := NewLoadDashboard(Repositories{
		Clients: &fakeClients{rows: []models.Client{{Nome: "Ana", Ativo: true}}},
		Sessions: &fakeSessions{rows: []models.Session{
			{DataSessao: time.Date(2024, 3, 10, 15, 0, 0, 0, loc)},
		}},
		Transactions: txs,
	}, loc, zap.NewNop())
	uc.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }

	got, err := uc.Execute(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, transaction.TypeReceita, txs.lastFilter.Tipo)
	assert.Equal(t, 1, got.TotalClientes)
	assert.Equal(t, 1, got.SessoesHoje)
	assert.Equal(t, "200", got.ReceitaMes.String())
	assert.Equal(t, domain.GrowthPlaceholder, got.Crescimento)
}

func TestLoadDashboard_FailedFetchIsEmpty(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	uc := NewLoadDashboard(Repositories{
		Clients:      &fakeClients{err: errors.New("connection refused")},
		Sessions:     &fakeSessions{rows: []models.Session{{DataSessao: time.Now()}}},
		Transactions: &fakeTransactions{},
	}, time.UTC, zap.New(core))

	got, err := uc.Execute(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 0, got.TotalClientes)
	assert.Equal(t, 1, got.SessoesHoje)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "clients", logs.All()[0].ContextMap()["collection"])
}

func TestLoadDashboard_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewLoadDashboard(Repositories{
		Clients:      &fakeClients{err: context.Canceled},
		Sessions:     &fakeSessions{err: context.Canceled},
		Transactions: &fakeTransactions{err: context.Canceled},
	}, time.UTC, zap.NewNop())

	_, err := uc.Execute(ctx, uuid.New())
	assert.ErrorIs(t, err, context.Canceled)
}

// ======================================================
// RELATÓRIOS / FINANCEIRO
// ======================================================

func TestLoadReports(t *testing.T) {
	txs := &fakeTransactions{rows: []models.Transaction{
		tx("Receita", "Sessão", 100, "2024-01-10"),
		tx("Receita", "Sessão", 150, "2024-06-10"),
		tx("Receita", "Workshop", 200, "2023-06-01"),
		tx("Despesa", "Aluguel", 800, "2024-06-05"),
	}}

	uc := NewLoadReports(Repositories{
		Clients:      &fakeClients{rows: []models.Client{{Ativo: true}, {Ativo: true}}},
		Sessions:     &fakeSessions{rows: make([]models.Session, 3)},
		Transactions: txs,
	}, zap.NewNop())

	got, err := uc.Execute(context.Background(), uuid.New(), domain.PeriodAno)
	require.NoError(t, err)

	assert.True(t, txs.lastFilter.Chronological)
	assert.Equal(t, domain.PeriodAno, got.Periodo)
	assert.Equal(t, 2, got.TotalClientes)
	assert.Equal(t, 3, got.TotalSessoes)
	assert.Equal(t, "450", got.ReceitaTotal.String())
	assert.True(t, got.TicketMedio.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "350", got.ReceitaPorMes[5].Receita.String())

	require.Len(t, got.Categorias, 2)
	assert.Equal(t, "Sessão", got.Categorias[0].Name)
	assert.Equal(t, "Workshop", got.Categorias[1].Name)
}

func TestLoadFinancial(t *testing.T) {
	uc := NewLoadFinancial(&fakeTransactions{rows: []models.Transaction{
		tx("Despesa", "Aluguel", 50, "2024-03-01"),
		tx("Receita", "Sessão", 120, "2024-03-02"),
	}})

	got, err := uc.Execute(context.Background(), uuid.New(), transaction.TypeDespesa)
	require.NoError(t, err)

	assert.Equal(t, "120", got.Resumo.Receitas.String())
	assert.Equal(t, "50", got.Resumo.Despesas.String())
	assert.Equal(t, "70", got.Resumo.Saldo.String())
	require.Len(t, got.Transacoes, 1)
	assert.Equal(t, "Despesa", got.Transacoes[0].Tipo)
}

func TestLoadFinancial_StoreError(t *testing.T) {
	uc := NewLoadFinancial(&fakeTransactions{err: errors.New("boom")})

	_, err := uc.Execute(context.Background(), uuid.New(), "")
	assert.Error(t, err)
}
