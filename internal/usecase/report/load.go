// Package report carrega as linhas do terapeuta em paralelo e aplica os
// agregadores de internal/domain/report.
package report

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BruksfildServices01/consultorio/internal/domain/client"
	"github.com/BruksfildServices01/consultorio/internal/domain/session"
	"github.com/BruksfildServices01/consultorio/internal/domain/transaction"
	"github.com/BruksfildServices01/consultorio/internal/models"
)

type Repositories struct {
	Clients      client.Repository
	Sessions     session.Repository
	Transactions transaction.Repository
}

type rows struct {
	clients      []models.Client
	sessions     []models.Session
	transactions []models.Transaction
}

// loadAll busca as três coleções ao mesmo tempo. Uma busca que falha vira
// coleção vazia (com aviso no log); só o cancelamento do contexto aborta.
func loadAll(
	ctx context.Context,
	log *zap.Logger,
	repos Repositories,
	userID uuid.UUID,
	filter transaction.Filter,
) (rows, error) {

	var out rows
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := repos.Clients.ListActive(gctx, userID)
		out.clients = tolerate(ctx, log, "clients", userID, res, err)
		return ctx.Err()
	})

	g.Go(func() error {
		res, err := repos.Sessions.List(gctx, userID)
		out.sessions = tolerate(ctx, log, "sessions", userID, res, err)
		return ctx.Err()
	})

	g.Go(func() error {
		res, err := repos.Transactions.List(gctx, userID, filter)
		out.transactions = tolerate(ctx, log, "transactions", userID, res, err)
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return rows{}, err
	}
	return out, nil
}

func tolerate[T any](
	ctx context.Context,
	log *zap.Logger,
	what string,
	userID uuid.UUID,
	res []T,
	err error,
) []T {

	if err == nil {
		return res
	}
	if ctx.Err() == nil {
		log.Warn("report fetch failed, using empty collection",
			zap.String("collection", what),
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
	return nil
}
