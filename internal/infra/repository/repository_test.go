package repository

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
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consultorio/internal/config"
	"github.com/BruksfildServices01/consultorio/internal/db"
	"github.com/BruksfildServices01/consultorio/internal/domain/profile"
	"github.com/BruksfildServices01/consultorio/internal/domain/report"
	"github.com/BruksfildServices01/consultorio/internal/domain/transaction"
	"github.com/BruksfildServices01/consultorio/internal/httperr"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.NewDB(&config.Config{DBDriver: "sqlite", DBUrl: ":memory:"}, zap.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func newClient(userID uuid.UUID, nome string) *models.Client {
	return &models.Client{
		UserID:      userID,
		Nome:        nome,
		TipoSessao:  "Individual",
		ValorSessao: decimal.NewFromInt(200),
	}
}

// ======================================================
// CLIENTES
// ======================================================

func TestClientRepository_ListActiveScopedAndOrdered(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewClientGormRepository(gdb)
	ctx := context.Background()

	owner := uuid.New()
	other := uuid.New()

	require.NoError(t, repo.Create(ctx, newClient(owner, "Bruno")))
	require.NoError(t, repo.Create(ctx, newClient(owner, "Ana")))
	require.NoError(t, repo.Create(ctx, newClient(other, "Carla")))

	got, err := repo.ListActive(ctx, owner)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Ana", got[0].Nome)
	assert.Equal(t, "Bruno", got[1].Nome)
	assert.True(t, got[0].Ativo)
	assert.Equal(t, "Ativo", got[0].StatusPagamento)
}

func TestClientRepository_DeactivateKeepsHistory(t *testing.T) {
	gdb := newTestDB(t)
	clients := NewClientGormRepository(gdb)
	sessions := NewSessionGormRepository(gdb)
	txs := NewTransactionGormRepository(gdb)
	ctx := context.Background()

	owner := uuid.New()
	c := newClient(owner, "Ana")
	require.NoError(t, clients.Create(ctx, c))

	require.NoError(t, sessions.Create(ctx, &models.Session{
		UserID:     owner,
		ClienteID:  c.ID,
		DataSessao: time.Date(2024, 5, 5, 14, 0, 0, 0, time.UTC),
		Valor:      decimal.NewFromInt(200),
	}))
	require.NoError(t, txs.Create(ctx, &models.Transaction{
		UserID:        owner,
		Tipo:          "Receita",
		Categoria:     "Sessão",
		Descricao:     "Sessão Ana",
		Valor:         decimal.NewFromInt(200),
		DataTransacao: date("2024-05-05"),
	}))

	before, err := clients.ListActive(ctx, owner)
	require.NoError(t, err)

	require.NoError(t, clients.Deactivate(ctx, owner, c.ID))

	after, err := clients.ListActive(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)

	// o cliente inativo continua resolvível
	stored, err := clients.Get(ctx, owner, c.ID)
	require.NoError(t, err)
	assert.False(t, stored.Ativo)

	ss, err := sessions.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, ss, 1)
	require.NotNil(t, ss[0].Cliente)
	assert.Equal(t, "Ana", ss[0].Cliente.Nome)

	all, err := txs.List(ctx, owner, transaction.Filter{})
	require.NoError(t, err)

	summary := report.Reports(after, ss, all, report.PeriodMes)
	assert.Equal(t, 0, summary.TotalClientes)
	assert.Equal(t, 1, summary.TotalSessoes)
	assert.Equal(t, "200", summary.ReceitaTotal.String())
}

func TestClientRepository_OtherOwnerIsNotFound(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewClientGormRepository(gdb)
	ctx := context.Background()

	owner := uuid.New()
	c := newClient(owner, "Ana")
	require.NoError(t, repo.Create(ctx, c))

	intruder := uuid.New()

	err := repo.Deactivate(ctx, intruder, c.ID)
	assert.True(t, httperr.IsNotFound(err))

	c.UserID = intruder
	c.Nome = "Outro"
	err = repo.Replace(ctx, c)
	assert.True(t, httperr.IsNotFound(err))

	_, err = repo.Get(ctx, intruder, c.ID)
	assert.True(t, httperr.IsNotFound(err))
}

func TestClientRepository_Replace(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewClientGormRepository(gdb)
	ctx := context.Background()

	owner := uuid.New()
	c := newClient(owner, "Ana")
	require.NoError(t, repo.Create(ctx, c))

	c.Nome = "Ana Paula"
	c.TipoSessao = "Casal"
	c.ValorSessao = decimal.RequireFromString("250.50")
	c.Email = models.StringPtr("ana@example.com")
	require.NoError(t, repo.Replace(ctx, c))

	got, err := repo.Get(ctx, owner, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula", got.Nome)
	assert.Equal(t, "Casal", got.TipoSessao)
	assert.True(t, got.ValorSessao.Equal(decimal.RequireFromString("250.50")))
	require.NotNil(t, got.Email)
	assert.Equal(t, "ana@example.com", *got.Email)
}

// ======================================================
// SESSÕES
// ======================================================

func TestSessionRepository_ListNewestFirst(t *testing.T) {
	gdb := newTestDB(t)
	clients := NewClientGormRepository(gdb)
	repo := NewSessionGormRepository(gdb)
	ctx := context.Background()

	owner := uuid.New()
	c := newClient(owner, "Ana")
	require.NoError(t, clients.Create(ctx, c))

	older := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &models.Session{UserID: owner, ClienteID: c.ID, DataSessao: older}))
	require.NoError(t, repo.Create(ctx, &models.Session{UserID: owner, ClienteID: c.ID, DataSessao: newer}))
	require.NoError(t, repo.Create(ctx, &models.Session{UserID: uuid.New(), ClienteID: c.ID, DataSessao: newer}))

	got, err := repo.List(ctx, owner)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.True(t, got[0].DataSessao.Equal(newer))
	assert.True(t, got[1].DataSessao.Equal(older))
	assert.Equal(t, 50, got[0].DuracaoMinutos)
	assert.Equal(t, "Agendada", got[0].Status)
	assert.Equal(t, "Pendente", got[0].PagamentoStatus)
}

func TestSessionRepository_MissingClientIsTolerated(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewSessionGormRepository(gdb)
	ctx := context.Background()

	owner := uuid.New()
	require.NoError(t, repo.Create(ctx, &models.Session{
		UserID:     owner,
		ClienteID:  uuid.New(),
		DataSessao: time.Now().UTC(),
	}))

	got, err := repo.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].Cliente)
}

func TestSessionRepository_ReplaceAndDelete(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewSessionGormRepository(gdb)
	ctx := context.Background()

	owner := uuid.New()
	s := &models.Session{UserID: owner, ClienteID: uuid.New(), DataSessao: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, s))

	s.Status = "Realizada"
	s.PagamentoStatus = "Pago"
	s.Valor = decimal.NewFromInt(180)
	require.NoError(t, repo.Replace(ctx, s))

	got, err := repo.Get(ctx, owner, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Realizada", got.Status)
	assert.Equal(t, "Pago", got.PagamentoStatus)
	assert.Equal(t, "180", got.Valor.String())

	assert.True(t, httperr.IsNotFound(repo.Delete(ctx, uuid.New(), s.ID)))
	require.NoError(t, repo.Delete(ctx, owner, s.ID))

	_, err = repo.Get(ctx, owner, s.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

// ======================================================
// TRANSAÇÕES
// ======================================================

func TestTransactionRepository_ListFiltersAndOrders(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTransactionGormRepository(gdb)
	ctx := context.Background()

	owner := uuid.New()
	require.NoError(t, repo.CreateMany(ctx, []models.Transaction{
		{UserID: owner, Tipo: "Receita", Categoria: "Sessão", Descricao: "a", Valor: decimal.NewFromInt(100), DataTransacao: date("2024-01-10")},
		{UserID: owner, Tipo: "Despesa", Categoria: "Aluguel", Descricao: "b", Valor: decimal.NewFromInt(50), DataTransacao: date("2024-03-01")},
		{UserID: owner, Tipo: "Receita", Categoria: "Workshop", Descricao: "c", Valor: decimal.NewFromInt(300), DataTransacao: date("2024-02-15")},
	}))

	all, err := repo.List(ctx, owner, transaction.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "b", all[0].Descricao)
	assert.Equal(t, "c", all[1].Descricao)
	assert.Equal(t, "a", all[2].Descricao)

	incomes, err := repo.List(ctx, owner, transaction.Filter{Tipo: transaction.TypeReceita})
	require.NoError(t, err)
	require.Len(t, incomes, 2)
	for _, tx := range incomes {
		assert.Equal(t, "Receita", tx.Tipo)
	}

	assert.Equal(t, time.March, all[0].DataTransacao.Month())
	assert.Equal(t, 1, all[0].DataTransacao.Day())

	sum := report.Financial(all)
	assert.Equal(t, "400", sum.Receitas.String())
	assert.Equal(t, "50", sum.Despesas.String())
	assert.Equal(t, "350", sum.Saldo.String())
}

func TestTransactionRepository_ReplaceAndDelete(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewTransactionGormRepository(gdb)
	ctx := context.Background()

	owner := uuid.New()
	tx := &models.Transaction{
		UserID: owner, Tipo: "Despesa", Categoria: "Materiais", Descricao: "papel",
		Valor: decimal.NewFromInt(30), DataTransacao: date("2024-04-02"),
	}
	require.NoError(t, repo.Create(ctx, tx))

	tx.Valor = decimal.RequireFromString("35.90")
	tx.Descricao = "papel e canetas"
	require.NoError(t, repo.Replace(ctx, tx))

	got, err := repo.Get(ctx, owner, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "papel e canetas", got.Descricao)
	assert.True(t, got.Valor.Equal(decimal.RequireFromString("35.90")))

	require.NoError(t, repo.Delete(ctx, owner, tx.ID))
	assert.True(t, httperr.IsNotFound(repo.Delete(ctx, owner, tx.ID)))
}

func TestTransactionRepository_CreateManyEmpty(t *testing.T) {
	repo := NewTransactionGormRepository(newTestDB(t))
	assert.NoError(t, repo.CreateMany(context.Background(), nil))
}

// ======================================================
// PERFIL / USUÁRIO
// ======================================================

func TestUserRepository_CreateWithProfile(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserGormRepository(gdb)
	profiles := NewProfileGormRepository(gdb)
	ctx := context.Background()

	u := &models.User{Email: "ana@example.com", PasswordHash: "x", Nome: "Ana"}
	p := &models.Profile{Nome: "Ana", Email: "ana@example.com"}
	require.NoError(t, users.CreateWithProfile(ctx, u, p))

	got, err := profiles.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Nome)
	assert.False(t, got.DarkMode)
	assert.True(t, got.NotificacoesEmail)

	dup := &models.User{Email: "ana@example.com", PasswordHash: "y"}
	err = users.CreateWithProfile(ctx, dup, &models.Profile{Nome: "Outra", Email: "ana@example.com"})
	assert.True(t, httperr.IsUniqueViolation(err))

	var count int64
	require.NoError(t, gdb.Model(&models.Profile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestProfileRepository_Patch(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserGormRepository(gdb)
	repo := NewProfileGormRepository(gdb)
	ctx := context.Background()

	u := &models.User{Email: "ana@example.com", PasswordHash: "x"}
	require.NoError(t, users.CreateWithProfile(ctx, u, &models.Profile{Nome: "Ana", Email: u.Email}))

	crp := "06/12345"
	dark := true
	got, err := repo.Patch(ctx, u.ID, profile.Patch{CRP: &crp, DarkMode: &dark})
	require.NoError(t, err)

	assert.Equal(t, "Ana", got.Nome)
	require.NotNil(t, got.CRP)
	assert.Equal(t, crp, *got.CRP)
	assert.True(t, got.DarkMode)

	empty := ""
	got, err = repo.Patch(ctx, u.ID, profile.Patch{CRP: &empty})
	require.NoError(t, err)
	assert.Nil(t, got.CRP)

	_, err = repo.Patch(ctx, uuid.New(), profile.Patch{DarkMode: &dark})
	assert.True(t, httperr.IsNotFound(err))
}

func TestUserRepository_ConfirmAndPassword(t *testing.T) {
	gdb := newTestDB(t)
	users := NewUserGormRepository(gdb)
	ctx := context.Background()

	token := "abc123"
	u := &models.User{Email: "bia@example.com", PasswordHash: "x", ConfirmationToken: &token}
	require.NoError(t, users.CreateWithProfile(ctx, u, &models.Profile{Nome: "Bia", Email: u.Email}))

	found, err := users.FindByConfirmationToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	require.NoError(t, users.MarkConfirmed(ctx, u.ID, time.Now()))
	_, err = users.FindByConfirmationToken(ctx, token)
	assert.True(t, httperr.IsNotFound(err))

	require.NoError(t, users.UpdatePasswordHash(ctx, u.ID, "novo"))
	byEmail, err := users.FindByEmail(ctx, "bia@example.com")
	require.NoError(t, err)
	assert.Equal(t, "novo", byEmail.PasswordHash)
	assert.NotNil(t, byEmail.ConfirmedAt)
}

// ======================================================
// METAS
// ======================================================

func TestGoalRepository(t *testing.T) {
	gdb := newTestDB(t)
	repo := NewGoalGormRepository(gdb)
	ctx := context.Background()

	owner := uuid.New()
	mes := 3
	alvo := 40
	g := &models.Goal{UserID: owner, Ano: 2024, Mes: &mes, TipoMeta: "sessoes", SessoesAlvo: &alvo}
	require.NoError(t, repo.Create(ctx, g))
	require.NoError(t, repo.Create(ctx, &models.Goal{
		UserID: owner, Ano: 2025, TipoMeta: "receita",
		ValorAlvo: decimal.NewNullDecimal(decimal.NewFromInt(60000)),
	}))

	got, err := repo.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2025, got[0].Ano)
	assert.True(t, got[0].ValorAlvo.Valid)
	assert.False(t, got[1].ValorAlvo.Valid)

	assert.True(t, httperr.IsNotFound(repo.Delete(ctx, uuid.New(), g.ID)))
	require.NoError(t, repo.Delete(ctx, owner, g.ID))

	got, err = repo.List(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
