package repositories_test

import (
	"context"
	"testing"

	"hospital-management/internal/database/dbtest"
	"hospital-management/internal/domain/dtos"
	"hospital-management/internal/domain/entities"
	"hospital-management/internal/domain/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorRepository_CreateListSearch(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewDoctorRepository(dbtest.Open(t))

	require.NoError(t, repo.Create(ctx, &entities.Doctor{DoctorID: "d1", Name: "Dr. Bob", Specialization: "Cardiology"}))
	require.NoError(t, repo.Create(ctx, &entities.Doctor{DoctorID: "d2", Name: "Dr. Ana", Specialization: "Pediatrics"}))

	doctors, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 2)
	assert.Equal(t, "Cardiology", doctors[0].Specialization)

	found, err := repo.Search(ctx, dtos.SearchByName, "bob")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "d1", found[0].DoctorID)

	found, err = repo.Search(ctx, dtos.SearchByID, "d")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}
