package models

// SubjectArea maps to the UC/CSU A-G requirement letters plus the
// state and school specific categories.
type SubjectArea string

const (
	SubjectHistory       SubjectArea = "HISTORY_SOCIAL_SCIENCE"
	SubjectEnglish       SubjectArea = "ENGLISH"
	SubjectMath          SubjectArea = "MATHEMATICS"
	SubjectLabScience    SubjectArea = "LABORATORY_SCIENCE"
	SubjectWorldLanguage SubjectArea = "LANGUAGE_OTHER"
	SubjectArts          SubjectArea = "VISUAL_PERFORMING_ARTS"
	SubjectCollegePrep   SubjectArea = "COLLEGE_PREP_ELECTIVE"
	SubjectPE            SubjectArea = "PHYSICAL_EDUCATION"
	SubjectReligious     SubjectArea = "RELIGIOUS_STUDIES"
	SubjectElective      SubjectArea = "ELECTIVE"
)

// AGLetter returns the A-G requirement letter for the subject, or its
// short tag for non A-G categories.
func (s SubjectArea) AGLetter() string {
	switch s {
	case SubjectHistory:
		return "A"
	case SubjectEnglish:
		return "B"
	case SubjectMath:
		return "C"
	case SubjectLabScience:
		return "D"
	case SubjectWorldLanguage:
		return "E"
	case SubjectArts:
		return "F"
	case SubjectCollegePrep:
		return "G"
	case SubjectPE:
		return "PE"
	case SubjectReligious:
		return "RS"
	default:
		return "ELEC"
	}
}

// AllSubjectAreas lists every subject area in report order.
var AllSubjectAreas = []SubjectArea{
	SubjectHistory,
	SubjectEnglish,
	SubjectMath,
	SubjectLabScience,
	SubjectWorldLanguage,
	SubjectArts,
	SubjectCollegePrep,
	SubjectPE,
	SubjectReligious,
	SubjectElective,
}

// RoomType classifies physical classrooms.
type RoomType string

const (
	RoomGeneral     RoomType = "GENERAL"
	RoomChemLab     RoomType = "CHEMISTRY_LAB"
	RoomBioLab      RoomType = "BIOLOGY_LAB"
	RoomComputerLab RoomType = "COMPUTER_LAB"
	RoomRoboticsLab RoomType = "ROBOTICS_LAB"
	RoomArt         RoomType = "ART_ROOM"
	RoomGym         RoomType = "GYM"
	RoomMusic       RoomType = "MUSIC_ROOM"
)

// AllRoomTypes lists every room type in report order.
var AllRoomTypes = []RoomType{
	RoomGeneral,
	RoomChemLab,
	RoomBioLab,
	RoomComputerLab,
	RoomRoboticsLab,
	RoomArt,
	RoomGym,
	RoomMusic,
}

// Valid reports whether the room type is one of the defined variants.
func (r RoomType) Valid() bool {
	for _, known := range AllRoomTypes {
		if r == known {
			return true
		}
	}
	return false
}

// GraduationPath identifies one of the offered graduation tracks.
type GraduationPath string

const (
	PathMinimum     GraduationPath = "MINIMUM"
	PathPreMed      GraduationPath = "PRE_MED"
	PathEngineering GraduationPath = "ENGINEERING"
)

// AllGraduationPaths lists the offered tracks.
var AllGraduationPaths = []GraduationPath{PathMinimum, PathPreMed, PathEngineering}

// Valid reports whether the path is a known track.
func (p GraduationPath) Valid() bool {
	switch p {
	case PathMinimum, PathPreMed, PathEngineering:
		return true
	}
	return false
}

// Label returns the display name used in reports.
func (p GraduationPath) Label() string {
	switch p {
	case PathMinimum:
		return "Minimum Requirements"
	case PathPreMed:
		return "Pre-Medical Track"
	case PathEngineering:
		return "Engineering Track"
	default:
		return string(p)
	}
}

// CourseLevel distinguishes regular, honors and AP offerings.
type CourseLevel string

const (
	LevelRegular CourseLevel = "REGULAR"
	LevelHonors  CourseLevel = "HONORS"
	LevelAP      CourseLevel = "AP"
)
