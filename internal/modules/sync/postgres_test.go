package sync_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbenomar/macstore-backend/internal/modules/catalog"
	"github.com/hbenomar/macstore-backend/internal/modules/site"
	"github.com/hbenomar/macstore-backend/internal/store"
	syncmod "github.com/hbenomar/macstore-backend/internal/modules/sync"
)

func sampleSnapshot() *store.Snapshot {
	snap := store.Empty()
	snap.Products = []catalog.Product{{
		ID: "p1", Name: "iPhone 15 Pro Max", Category: catalog.CategoryIPhone,
		Specs: []string{"Titane"}, Price: 15990, Stock: 45,
	}}
	snap.HeroContent = site.HeroContent{Title: "iPhone 15 Pro", CTAText: "Acheter"}
	snap.LastUpdated = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return snap
}

func TestPushUpsertsSnapshotDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	snap := sampleSnapshot()
	doc, err := json.Marshal(snap)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO app_snapshots").
		WithArgs("storefront", doc).
		WillReturnResult(sqlmock.NewResult(0, 1))

	g := syncmod.NewPostgresGateway(db)
	require.NoError(t, g.Push(context.Background(), snap))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchRoundTripsSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	snap := sampleSnapshot()
	doc, err := json.Marshal(snap)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT doc FROM app_snapshots").
		WithArgs("storefront").
		WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow(doc))

	g := syncmod.NewPostgresGateway(db)
	fetched, err := g.Fetch(context.Background())
	require.NoError(t, err)

	// push(fetch()) is a no-op: the document survives the round trip intact.
	assert.Equal(t, snap, fetched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchEmptyStore(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT doc FROM app_snapshots").
		WithArgs("storefront").
		WillReturnError(sql.ErrNoRows)

	g := syncmod.NewPostgresGateway(db)
	_, err = g.Fetch(context.Background())
	assert.ErrorIs(t, err, syncmod.ErrNoSnapshot)
}

func TestEnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS app_snapshots").
		WillReturnResult(sqlmock.NewResult(0, 0))

	g := syncmod.NewPostgresGateway(db)
	require.NoError(t, g.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
