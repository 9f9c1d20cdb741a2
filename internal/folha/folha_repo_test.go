package folha_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/loskinha8/gestao-colab/internal/folha"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (folha.Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)

	return folha.NewRepository(gormDB), mock, db
}

func TestFolhaRepository_BulkInsertJoinsTransaction(t *testing.T) {
	repo, mock, db := setupRepoTest(t)
	defer db.Close()

	mock.ExpectBegin()
	tx, err := db.Begin()
	assert.NoError(t, err)

	// The whole batch is one INSERT on the caller's transaction; rows hitting
	// the unique index are skipped and only inserted ids come back.
	mock.ExpectQuery(`INSERT INTO "folha_pagamento" .+ ON CONFLICT \("colaborador_id","mes_referencia"\) DO NOTHING`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectCommit()

	mes := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	entradas := []folha.Entrada{
		{ColaboradorID: 1, ColaboradorNome: "Ana", MesReferencia: mes, SalarioBaseCents: 150000},
		{ColaboradorID: 2, ColaboradorNome: "Bia", MesReferencia: mes, SalarioBaseCents: 180000},
	}

	inserted, err := repo.WithTx(tx).BulkInsertSkipDuplicates(context.Background(), entradas)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), inserted)

	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFolhaRepository_BulkInsertEmptyBatch(t *testing.T) {
	repo, mock, db := setupRepoTest(t)
	defer db.Close()

	inserted, err := repo.BulkInsertSkipDuplicates(context.Background(), nil)
	assert.NoError(t, err)
	assert.Zero(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
