package models

// DepartmentNode is one row of a faculty's expanded subtree: a department
// annotated with its depth below the faculty and the number of rooms it
// holds directly in the target building.
type DepartmentNode struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ParentID  *uint  `json:"parent_id"`
	Type      string `json:"type"`
	Level     int    `json:"level"`
	RoomCount int    `json:"room_count"`
}

// FacultySection pairs a qualifying faculty with its full descendant
// tree for the building structure report. The faculty qualifies on
// limited evidence (a room owned directly or by an immediate child), but
// once included its entire subtree is shown, zero-room nodes included.
type FacultySection struct {
	Faculty   DepartmentNode   `json:"faculty"`
	Structure []DepartmentNode `json:"structure"`
}
