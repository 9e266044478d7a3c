package catalog

import (
	"fmt"

	"github.com/agathon991/class-schedule-creator/internal/models"
)

// ActualRooms is the physical room inventory on site. Art and music run
// in general classrooms; there is no dedicated theater space.
func ActualRooms() map[models.RoomType]int {
	return map[models.RoomType]int{
		models.RoomGeneral:     10,
		models.RoomChemLab:     1,
		models.RoomBioLab:      1,
		models.RoomComputerLab: 1,
		models.RoomRoboticsLab: 1,
		models.RoomGym:         1,
	}
}

// ActualClassrooms expands the inventory into concrete rooms with
// deterministic IDs, capped at the given capacity (the gym holds double).
func ActualClassrooms(capacity int) []models.Classroom {
	var rooms []models.Classroom
	for _, roomType := range models.AllRoomTypes {
		count := ActualRooms()[roomType]
		for i := 1; i <= count; i++ {
			cap := capacity
			if roomType == models.RoomGym {
				cap = capacity * 2
			}
			rooms = append(rooms, models.Classroom{
				ID:       fmt.Sprintf("%s_%d", roomType, i),
				Name:     roomDisplayName(roomType, i),
				RoomType: roomType,
				Capacity: cap,
			})
		}
	}
	return rooms
}

func roomDisplayName(roomType models.RoomType, n int) string {
	switch roomType {
	case models.RoomGeneral:
		return fmt.Sprintf("Room %d", 100+n)
	case models.RoomChemLab:
		return "Chemistry Lab"
	case models.RoomBioLab:
		return "Biology/Science Lab"
	case models.RoomComputerLab:
		return "Computer Lab"
	case models.RoomRoboticsLab:
		return "Robotics Lab"
	case models.RoomGym:
		return "Gymnasium"
	case models.RoomArt:
		return fmt.Sprintf("Art Room %d", n)
	case models.RoomMusic:
		return fmt.Sprintf("Music Room %d", n)
	default:
		return fmt.Sprintf("%s %d", roomType, n)
	}
}
