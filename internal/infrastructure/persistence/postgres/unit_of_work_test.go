package postgres

import (
	"context"
	"testing"
)

func TestUnitOfWork_ExplicitTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commit torna a escrita visível fora da transação", func(t *testing.T) {
		repo, db := setupRepo(t)
		uow := NewUnitOfWork(db)

		txCtx, err := uow.Begin(ctx)
		if err != nil {
			t.Fatalf("falha ao abrir transação: %v", err)
		}

		user := newUser("juang", "juan@example.com")
		if err := repo.Create(txCtx, user, "secreta123"); err != nil {
			t.Fatalf("falha ao criar dentro da transação: %v", err)
		}
		if err := uow.Commit(txCtx); err != nil {
			t.Fatalf("falha ao confirmar: %v", err)
		}

		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("falha ao buscar: %v", err)
		}
		if found == nil {
			t.Error("escrita confirmada deveria ser visível fora da transação")
		}
	})

	t.Run("rollback descarta a escrita", func(t *testing.T) {
		repo, db := setupRepo(t)
		uow := NewUnitOfWork(db)

		txCtx, err := uow.Begin(ctx)
		if err != nil {
			t.Fatalf("falha ao abrir transação: %v", err)
		}

		user := newUser("juang", "juan@example.com")
		if err := repo.Create(txCtx, user, "secreta123"); err != nil {
			t.Fatalf("falha ao criar dentro da transação: %v", err)
		}
		if err := uow.Rollback(txCtx); err != nil {
			t.Fatalf("falha ao reverter: %v", err)
		}

		found, err := repo.FindByEmail(ctx, "juan@example.com")
		if err != nil {
			t.Fatalf("falha ao buscar: %v", err)
		}
		if found != nil {
			t.Error("escrita revertida não pode ser visível")
		}
	})

	t.Run("commit sem transação no contexto é no-op", func(t *testing.T) {
		_, db := setupRepo(t)
		uow := NewUnitOfWork(db)

		if err := uow.Commit(ctx); err != nil {
			t.Errorf("esperava no-op, obteve erro: %v", err)
		}
		if err := uow.Rollback(ctx); err != nil {
			t.Errorf("esperava no-op, obteve erro: %v", err)
		}
	})
}
