package repositories_test

import (
	"context"
	"testing"

	"hospital-management/internal/database/dbtest"
	"hospital-management/internal/domain/entities"
	"hospital-management/internal/domain/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillRepository_FindByPatientIDNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewBillRepository(dbtest.Open(t))

	require.NoError(t, repo.Create(ctx, &entities.Bill{BillID: "b1", PatientID: "p1", Date: "2026-09-01", Amount: 10, Status: entities.BillStatusPending}))
	require.NoError(t, repo.Create(ctx, &entities.Bill{BillID: "b2", PatientID: "p1", Date: "2026-10-18", Amount: 150.5, Status: entities.BillStatusPending}))
	require.NoError(t, repo.Create(ctx, &entities.Bill{BillID: "b3", PatientID: "p2", Date: "2026-10-18", Amount: 1}))

	bills, err := repo.FindByPatientID(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, bills, 2)
	assert.Equal(t, "b2", bills[0].BillID)
	assert.InDelta(t, 150.5, bills[0].Amount, 1e-9)
	assert.Equal(t, "b1", bills[1].BillID)
}
