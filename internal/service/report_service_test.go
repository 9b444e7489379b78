package service

import (
	"testing"

	"classroom-fund-registry/internal/apperrors"
	"classroom-fund-registry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingStructureNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.reports.BuildingStructure(54321)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBuildingStructureEmptyIsNotAnError(t *testing.T) {
	env := newTestEnv(t)
	building := createBuilding(t, env, "Corpus A")

	resolved, sections, err := env.reports.BuildingStructure(building.ID)
	require.NoError(t, err)
	assert.Equal(t, building.Name, resolved.Name)
	assert.Empty(t, sections)
}

func TestBuildingStructureAssemblesFacultySections(t *testing.T) {
	env := newTestEnv(t)
	building := createBuilding(t, env, "Corpus A")

	faculty := models.Department{Name: "Mathematics", Type: models.DepartmentTypeFaculty}
	require.NoError(t, env.departments.CreateDepartment(&faculty))
	chair := models.Department{
		Name: "Algebra", Type: models.DepartmentTypeDepartment, ParentID: uintPtr(faculty.ID),
	}
	require.NoError(t, env.departments.CreateDepartment(&chair))
	idle := models.Department{
		Name: "Geometry", Type: models.DepartmentTypeDepartment, ParentID: uintPtr(faculty.ID),
	}
	require.NoError(t, env.departments.CreateDepartment(&idle))

	room := validRoom(building.ID)
	room.DepartmentID = uintPtr(chair.ID)
	require.NoError(t, env.rooms.CreateRoom(room))

	_, sections, err := env.reports.BuildingStructure(building.ID)
	require.NoError(t, err)
	require.Len(t, sections, 1)

	section := sections[0]
	assert.Equal(t, "Mathematics", section.Faculty.Name)
	require.Len(t, section.Structure, 3)
	assert.Equal(t, "Mathematics", section.Structure[0].Name)
	assert.Equal(t, "Algebra", section.Structure[1].Name)
	assert.Equal(t, 1, section.Structure[1].RoomCount)
	// The idle chair still appears, with a zero count
	assert.Equal(t, "Geometry", section.Structure[2].Name)
	assert.Equal(t, 0, section.Structure[2].RoomCount)
}
