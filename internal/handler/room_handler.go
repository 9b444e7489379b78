package handler

import (
	"classroom-fund-registry/internal/models"
	"classroom-fund-registry/internal/service"
	"classroom-fund-registry/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService       *service.RoomService
	buildingService   *service.BuildingService
	departmentService *service.DepartmentService
}

func NewRoomHandler(
	roomService *service.RoomService,
	buildingService *service.BuildingService,
	departmentService *service.DepartmentService,
) *RoomHandler {
	return &RoomHandler{
		roomService:       roomService,
		buildingService:   buildingService,
		departmentService: departmentService,
	}
}

// roomForm carries the raw form fields. Dimensions bind as numbers and
// must be positive; a non-numeric value is a binding failure. The
// department selection stays a string so an empty choice can normalize
// to "no department".
type roomForm struct {
	BuildingID          uint    `form:"building_id" binding:"required"`
	RoomNumber          string  `form:"room_number" binding:"required"`
	LocationDescription string  `form:"location_description"`
	Width               float64 `form:"width" binding:"required,gt=0"`
	Length              float64 `form:"length" binding:"required,gt=0"`
	CeilingHeight       float64 `form:"ceiling_height" binding:"required,gt=0"`
	Purpose             string  `form:"purpose"`
	RoomType            string  `form:"room_type" binding:"required"`
	DepartmentID        string  `form:"department_id"`
}

func (f *roomForm) toModel() (*models.Room, error) {
	departmentID, err := parseOptionalID(f.DepartmentID)
	if err != nil {
		return nil, err
	}
	return &models.Room{
		BuildingID:          f.BuildingID,
		RoomNumber:          f.RoomNumber,
		LocationDescription: f.LocationDescription,
		Width:               f.Width,
		Length:              f.Length,
		CeilingHeight:       f.CeilingHeight,
		Purpose:             f.Purpose,
		RoomType:            f.RoomType,
		DepartmentID:        departmentID,
	}, nil
}

// ListRooms renders the public room listing with derived area and volume
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomService.GetAllRoomsWithDetails()
	if err != nil {
		redirectError(c, err, "Room", "/")
		return
	}

	utils.RenderPage(c, "rooms.html", gin.H{"rooms": rooms})
}

// ManageRooms renders the room management page
func (h *RoomHandler) ManageRooms(c *gin.Context) {
	rooms, err := h.roomService.GetAllRoomsWithDetails()
	if err != nil {
		redirectError(c, err, "Room", "/")
		return
	}
	buildings, err := h.buildingService.GetAllBuildings()
	if err != nil {
		redirectError(c, err, "Building", "/")
		return
	}
	departments, err := h.departmentService.GetAllDepartments()
	if err != nil {
		redirectError(c, err, "Department", "/")
		return
	}

	utils.RenderPage(c, "rooms_management.html", gin.H{
		"rooms":       rooms,
		"buildings":   buildings,
		"departments": departments,
	})
}

// AddRoomForm renders the creation form with building, department and
// room type choices
func (h *RoomHandler) AddRoomForm(c *gin.Context) {
	buildings, err := h.buildingService.GetAllBuildings()
	if err != nil {
		redirectError(c, err, "Building", "/rooms/manage")
		return
	}
	departments, err := h.departmentService.GetAllDepartments()
	if err != nil {
		redirectError(c, err, "Department", "/rooms/manage")
		return
	}

	utils.RenderPage(c, "add_room.html", gin.H{
		"buildings":   buildings,
		"departments": departments,
		"roomTypes":   models.RoomTypes(),
	})
}

// AddRoom creates a room from form input
func (h *RoomHandler) AddRoom(c *gin.Context) {
	var form roomForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RedirectWithError(c, "/room/add", "Invalid input: dimensions must be positive numbers and all required fields filled")
		return
	}

	room, err := form.toModel()
	if err != nil {
		utils.RedirectWithError(c, "/room/add", "Invalid department selection")
		return
	}

	if err := h.roomService.CreateRoom(room); err != nil {
		redirectError(c, err, "Room", "/room/add")
		return
	}

	utils.RedirectWithSuccess(c, "/rooms/manage", "Room added successfully")
}

// EditRoomForm renders the edit form
func (h *RoomHandler) EditRoomForm(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RedirectWithError(c, "/rooms/manage", "Invalid room ID")
		return
	}

	room, err := h.roomService.GetRoomByID(id)
	if err != nil {
		redirectError(c, err, "Room", "/rooms/manage")
		return
	}
	buildings, err := h.buildingService.GetAllBuildings()
	if err != nil {
		redirectError(c, err, "Building", "/rooms/manage")
		return
	}
	departments, err := h.departmentService.GetAllDepartments()
	if err != nil {
		redirectError(c, err, "Department", "/rooms/manage")
		return
	}

	utils.RenderPage(c, "edit_room.html", gin.H{
		"room":        room,
		"buildings":   buildings,
		"departments": departments,
		"roomTypes":   models.RoomTypes(),
	})
}

// EditRoom updates a room from form input
func (h *RoomHandler) EditRoom(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RedirectWithError(c, "/rooms/manage", "Invalid room ID")
		return
	}

	var form roomForm
	if err := c.ShouldBind(&form); err != nil {
		utils.RedirectWithError(c, "/rooms/manage", "Invalid input: dimensions must be positive numbers and all required fields filled")
		return
	}

	room, err := form.toModel()
	if err != nil {
		utils.RedirectWithError(c, "/rooms/manage", "Invalid department selection")
		return
	}
	room.ID = id

	if err := h.roomService.UpdateRoom(room); err != nil {
		redirectError(c, err, "Room", "/rooms/manage")
		return
	}

	utils.RedirectWithSuccess(c, "/rooms/manage", "Room updated successfully")
}

// DeleteRoom removes a room
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		utils.RedirectWithError(c, "/rooms/manage", "Invalid room ID")
		return
	}

	if err := h.roomService.DeleteRoom(id); err != nil {
		redirectError(c, err, "Room", "/rooms/manage")
		return
	}

	utils.RedirectWithSuccess(c, "/rooms/manage", "Room deleted successfully")
}
