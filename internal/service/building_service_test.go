package service

import (
	"testing"

	"classroom-fund-registry/internal/apperrors"
	"classroom-fund-registry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBuildingRequiresName(t *testing.T) {
	env := newTestEnv(t)

	err := env.buildings.CreateBuilding(&models.Building{Name: "   "})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdateBuildingNotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.buildings.UpdateBuilding(&models.Building{ID: 999, Name: "Corpus X"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBuildingsListedAlphabetically(t *testing.T) {
	env := newTestEnv(t)
	createBuilding(t, env, "Corpus B")
	createBuilding(t, env, "Corpus A")

	buildings, err := env.buildings.GetAllBuildings()
	require.NoError(t, err)
	require.Len(t, buildings, 2)
	assert.Equal(t, "Corpus A", buildings[0].Name)
	assert.Equal(t, "Corpus B", buildings[1].Name)
}
