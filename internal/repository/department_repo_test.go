package repository

import (
	"testing"

	"classroom-fund-registry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reportFixture builds two buildings and a department forest covering
// the qualification edge cases:
//
//	Mathematics (faculty)      rooms in A only via child Algebra and
//	├── Algebra                grandchild Topology
//	│   └── Topology
//	└── Geometry               no rooms anywhere
//	Physics (faculty)          one direct room in A
//	Chemistry (faculty)        rooms in A only via grandchild Organic
//	└── Chem Dept
//	    └── Organic
//	History (faculty)          rooms in B only
type reportFixture struct {
	buildingA, buildingB        models.Building
	mathematics, physics        models.Department
	chemistry, history          models.Department
	algebra, geometry, topology models.Department
}

func buildReportFixture(t *testing.T) (*DepartmentRepository, reportFixture) {
	t.Helper()
	db := newTestDB(t)
	repo := NewDepartmentRepo(db)

	fx := reportFixture{
		buildingA: models.Building{Name: "Corpus A"},
		buildingB: models.Building{Name: "Corpus B"},
	}
	mustCreate(t, db, &fx.buildingA)
	mustCreate(t, db, &fx.buildingB)

	fx.mathematics = models.Department{Name: "Mathematics", Type: models.DepartmentTypeFaculty}
	fx.physics = models.Department{Name: "Physics", Type: models.DepartmentTypeFaculty}
	fx.chemistry = models.Department{Name: "Chemistry", Type: models.DepartmentTypeFaculty}
	fx.history = models.Department{Name: "History", Type: models.DepartmentTypeFaculty}
	mustCreate(t, db, &fx.mathematics)
	mustCreate(t, db, &fx.physics)
	mustCreate(t, db, &fx.chemistry)
	mustCreate(t, db, &fx.history)

	fx.algebra = models.Department{Name: "Algebra", Type: models.DepartmentTypeDepartment, ParentID: uintPtr(fx.mathematics.ID)}
	fx.geometry = models.Department{Name: "Geometry", Type: models.DepartmentTypeDepartment, ParentID: uintPtr(fx.mathematics.ID)}
	mustCreate(t, db, &fx.algebra)
	mustCreate(t, db, &fx.geometry)
	fx.topology = models.Department{Name: "Topology", Type: models.DepartmentTypeDepartment, ParentID: uintPtr(fx.algebra.ID)}
	mustCreate(t, db, &fx.topology)

	chemDept := models.Department{Name: "Chem Dept", Type: models.DepartmentTypeDepartment, ParentID: uintPtr(fx.chemistry.ID)}
	mustCreate(t, db, &chemDept)
	organic := models.Department{Name: "Organic", Type: models.DepartmentTypeDepartment, ParentID: uintPtr(chemDept.ID)}
	mustCreate(t, db, &organic)

	// Rooms in building A: one for Algebra (child of Mathematics), one
	// for Topology (grandchild), one directly for Physics, one for
	// Organic (grandchild of Chemistry, too deep to qualify it).
	for _, r := range []models.Room{
		{BuildingID: fx.buildingA.ID, RoomNumber: "A-1", Width: 1, Length: 1, CeilingHeight: 1, RoomType: models.RoomTypeLecture, DepartmentID: uintPtr(fx.algebra.ID)},
		{BuildingID: fx.buildingA.ID, RoomNumber: "A-2", Width: 1, Length: 1, CeilingHeight: 1, RoomType: models.RoomTypeLecture, DepartmentID: uintPtr(fx.topology.ID)},
		{BuildingID: fx.buildingA.ID, RoomNumber: "A-3", Width: 1, Length: 1, CeilingHeight: 1, RoomType: models.RoomTypeOffice, DepartmentID: uintPtr(fx.physics.ID)},
		{BuildingID: fx.buildingA.ID, RoomNumber: "A-4", Width: 1, Length: 1, CeilingHeight: 1, RoomType: models.RoomTypeLaboratory, DepartmentID: uintPtr(organic.ID)},
		{BuildingID: fx.buildingB.ID, RoomNumber: "B-1", Width: 1, Length: 1, CeilingHeight: 1, RoomType: models.RoomTypeLecture, DepartmentID: uintPtr(fx.history.ID)},
	} {
		room := r
		mustCreate(t, db, &room)
	}

	return repo, fx
}

func TestFacultyQualificationDirectOrOneChildLevel(t *testing.T) {
	repo, fx := buildReportFixture(t)

	faculties, err := repo.GetFacultiesWithRoomsInBuilding(fx.buildingA.ID)
	require.NoError(t, err)

	names := make([]string, 0, len(faculties))
	for _, f := range faculties {
		names = append(names, f.Name)
	}

	// Mathematics qualifies via its child Algebra, Physics directly.
	// Chemistry's only room belongs to a grandchild: too deep to
	// qualify. History's rooms are in another building.
	assert.Equal(t, []string{"Mathematics", "Physics"}, names)
}

func TestFacultyRoomCountIsDirectAndBuildingScoped(t *testing.T) {
	repo, fx := buildReportFixture(t)

	faculties, err := repo.GetFacultiesWithRoomsInBuilding(fx.buildingA.ID)
	require.NoError(t, err)
	require.Len(t, faculties, 2)

	// Mathematics holds no room directly, Physics holds one
	assert.Equal(t, 0, faculties[0].RoomCount)
	assert.Equal(t, 1, faculties[1].RoomCount)
}

func TestNoQualifyingFacultiesYieldsEmptyList(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepartmentRepo(db)

	building := models.Building{Name: "Corpus Empty"}
	mustCreate(t, db, &building)

	faculties, err := repo.GetFacultiesWithRoomsInBuilding(building.ID)
	require.NoError(t, err)
	assert.Empty(t, faculties)
}

func TestDepartmentTreeExpandsFullSubtree(t *testing.T) {
	repo, fx := buildReportFixture(t)

	nodes, err := repo.GetDepartmentTree(fx.mathematics.ID, fx.buildingA.ID)
	require.NoError(t, err)
	require.Len(t, nodes, 4)

	// Ordered by level, then name. Geometry appears with zero rooms:
	// inclusion criteria apply only at the faculty level.
	assert.Equal(t, "Mathematics", nodes[0].Name)
	assert.Equal(t, 0, nodes[0].Level)
	assert.Equal(t, "Algebra", nodes[1].Name)
	assert.Equal(t, 1, nodes[1].Level)
	assert.Equal(t, "Geometry", nodes[2].Name)
	assert.Equal(t, 1, nodes[2].Level)
	assert.Equal(t, 0, nodes[2].RoomCount)
	assert.Equal(t, "Topology", nodes[3].Name)
	assert.Equal(t, 2, nodes[3].Level)

	assert.Equal(t, 1, nodes[1].RoomCount) // Algebra's direct room
	assert.Equal(t, 1, nodes[3].RoomCount) // Topology's direct room
	assert.Equal(t, 0, nodes[0].RoomCount) // faculty holds none directly
}

func TestDepartmentTreeCountsScopedToBuilding(t *testing.T) {
	repo, fx := buildReportFixture(t)

	nodes, err := repo.GetDepartmentTree(fx.mathematics.ID, fx.buildingB.ID)
	require.NoError(t, err)
	require.Len(t, nodes, 4)
	for _, node := range nodes {
		assert.Zero(t, node.RoomCount, "no Mathematics room is in building B")
	}
}

func TestDepartmentTreeCycleGuard(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepartmentRepo(db)

	building := models.Building{Name: "Corpus A"}
	mustCreate(t, db, &building)

	first := models.Department{Name: "First", Type: models.DepartmentTypeFaculty}
	mustCreate(t, db, &first)
	second := models.Department{Name: "Second", Type: models.DepartmentTypeDepartment, ParentID: uintPtr(first.ID)}
	mustCreate(t, db, &second)

	// Force a parent cycle behind the validator's back
	require.NoError(t, db.Model(&models.Department{}).
		Where("id = ?", first.ID).
		Update("parent_id", second.ID).Error)

	nodes, err := repo.GetDepartmentTree(first.ID, building.ID)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(nodes), maxTreeDepth+1)
	assert.NotEmpty(t, nodes)
}

func TestGetAllDepartmentsOrderedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepartmentRepo(db)

	for _, name := range []string{"Zoology", "Anatomy", "Botany"} {
		mustCreate(t, db, &models.Department{Name: name, Type: models.DepartmentTypeDepartment})
	}

	departments, err := repo.GetAllDepartments()
	require.NoError(t, err)
	require.Len(t, departments, 3)
	assert.Equal(t, "Anatomy", departments[0].Name)
	assert.Equal(t, "Botany", departments[1].Name)
	assert.Equal(t, "Zoology", departments[2].Name)
}
