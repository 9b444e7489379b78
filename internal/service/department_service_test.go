package service

import (
	"testing"

	"classroom-fund-registry/internal/apperrors"
	"classroom-fund-registry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDepartmentValidation(t *testing.T) {
	env := newTestEnv(t)

	err := env.departments.CreateDepartment(&models.Department{Name: "  ", Type: models.DepartmentTypeFaculty})
	assert.True(t, apperrors.IsValidation(err), "blank name must be rejected")

	err = env.departments.CreateDepartment(&models.Department{Name: "Ministry", Type: "ministry"})
	assert.True(t, apperrors.IsValidation(err), "unknown type must be rejected")

	err = env.departments.CreateDepartment(&models.Department{
		Name: "Orphan", Type: models.DepartmentTypeDepartment, ParentID: uintPtr(777),
	})
	assert.True(t, apperrors.IsValidation(err), "missing parent must be rejected")
}

func TestUpdateDepartmentCannotBeOwnParent(t *testing.T) {
	env := newTestEnv(t)

	dept := models.Department{Name: "Physics", Type: models.DepartmentTypeFaculty}
	require.NoError(t, env.departments.CreateDepartment(&dept))

	dept.ParentID = uintPtr(dept.ID)
	err := env.departments.UpdateDepartment(&dept)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateDepartmentWithParent(t *testing.T) {
	env := newTestEnv(t)

	faculty := models.Department{Name: "Physics", Type: models.DepartmentTypeFaculty}
	require.NoError(t, env.departments.CreateDepartment(&faculty))

	child := models.Department{
		Name: "Optics", Type: models.DepartmentTypeDepartment, ParentID: uintPtr(faculty.ID),
	}
	require.NoError(t, env.departments.CreateDepartment(&child))

	loaded, err := env.departments.GetDepartmentByID(child.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.ParentID)
	assert.Equal(t, faculty.ID, *loaded.ParentID)
}

func TestDeleteDepartmentIdempotent(t *testing.T) {
	env := newTestEnv(t)
	assert.NoError(t, env.departments.DeleteDepartment(31337))
}

func TestDeleteDepartmentDetachesRoomsAndPromotesChildren(t *testing.T) {
	env := newTestEnv(t)
	building := createBuilding(t, env, "Corpus A")

	faculty := models.Department{Name: "Physics", Type: models.DepartmentTypeFaculty}
	require.NoError(t, env.departments.CreateDepartment(&faculty))
	child := models.Department{
		Name: "Optics", Type: models.DepartmentTypeDepartment, ParentID: uintPtr(faculty.ID),
	}
	require.NoError(t, env.departments.CreateDepartment(&child))

	room := validRoom(building.ID)
	room.DepartmentID = uintPtr(faculty.ID)
	require.NoError(t, env.rooms.CreateRoom(room))

	require.NoError(t, env.departments.DeleteDepartment(faculty.ID))

	loadedRoom, err := env.rooms.GetRoomByID(room.ID)
	require.NoError(t, err)
	assert.Nil(t, loadedRoom.DepartmentID)

	loadedChild, err := env.departments.GetDepartmentByID(child.ID)
	require.NoError(t, err)
	assert.Nil(t, loadedChild.ParentID)
}
