package catalog

import "github.com/agathon991/class-schedule-creator/internal/models"

// builtinCourses returns the full course catalog. Year-long courses carry
// Semesters: 2 and 10 credits; single-semester offerings 1 and 5.
func builtinCourses() []models.Course {
	return []models.Course{
		// A) History / Social Science
		{Code: "WHIST", Name: "World History", SubjectArea: models.SubjectHistory, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, GradeLevels: []int{10, 11}},
		{Code: "WHIST-AP", Name: "AP World History", SubjectArea: models.SubjectHistory, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, GradeLevels: []int{10}},
		{Code: "USHIST", Name: "US History", SubjectArea: models.SubjectHistory, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, GradeLevels: []int{11, 12}},
		{Code: "USHIST-AP", Name: "AP US History", SubjectArea: models.SubjectHistory, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, GradeLevels: []int{11}},
		{Code: "GOVT", Name: "US Government", SubjectArea: models.SubjectHistory, Level: models.LevelRegular, Credits: 5, Semesters: 1, RoomType: models.RoomGeneral, GradeLevels: []int{12}},
		{Code: "GOVT-AP", Name: "AP US Government", SubjectArea: models.SubjectHistory, Level: models.LevelAP, Credits: 5, Semesters: 1, RoomType: models.RoomGeneral, GradeLevels: []int{12}},
		{Code: "ECON", Name: "Economics", SubjectArea: models.SubjectHistory, Level: models.LevelRegular, Credits: 5, Semesters: 1, RoomType: models.RoomGeneral, GradeLevels: []int{12}},

		// B) English
		{Code: "ENG9", Name: "English 9", SubjectArea: models.SubjectEnglish, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, GradeLevels: []int{9}},
		{Code: "ENG10", Name: "English 10", SubjectArea: models.SubjectEnglish, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ENG9"}, GradeLevels: []int{10}},
		{Code: "ENG11", Name: "English 11", SubjectArea: models.SubjectEnglish, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ENG10"}, GradeLevels: []int{11}},
		{Code: "ENG11-AP", Name: "AP English Language", SubjectArea: models.SubjectEnglish, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ENG10"}, GradeLevels: []int{11}},
		{Code: "ENG12", Name: "English 12", SubjectArea: models.SubjectEnglish, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ENG11"}, GradeLevels: []int{12}},
		{Code: "ENG12-AP", Name: "AP English Literature", SubjectArea: models.SubjectEnglish, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ENG11"}, GradeLevels: []int{12}},

		// C) Mathematics
		{Code: "ALG1", Name: "Algebra 1", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, GradeLevels: []int{9}},
		{Code: "GEOM", Name: "Geometry", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ALG1"}, GradeLevels: []int{9, 10}},
		{Code: "ALG2", Name: "Algebra 2", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"GEOM"}, GradeLevels: []int{10, 11}},
		{Code: "PRECALC", Name: "Pre-Calculus", SubjectArea: models.SubjectMath, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ALG2"}, GradeLevels: []int{11, 12}},
		{Code: "CALC-AP-AB", Name: "AP Calculus AB", SubjectArea: models.SubjectMath, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"PRECALC"}, GradeLevels: []int{11, 12}},
		{Code: "CALC-AP-BC", Name: "AP Calculus BC", SubjectArea: models.SubjectMath, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"CALC-AP-AB"}, GradeLevels: []int{12}},
		{Code: "STATS-AP", Name: "AP Statistics", SubjectArea: models.SubjectMath, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ALG2"}, GradeLevels: []int{11, 12}},

		// D) Laboratory Science
		{Code: "BIO", Name: "Biology", SubjectArea: models.SubjectLabScience, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomBioLab, GradeLevels: []int{9, 10}},
		{Code: "BIO-AP", Name: "AP Biology", SubjectArea: models.SubjectLabScience, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomBioLab, Prerequisites: []string{"BIO", "CHEM"}, GradeLevels: []int{11, 12}},
		{Code: "CHEM", Name: "Chemistry", SubjectArea: models.SubjectLabScience, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomChemLab, Prerequisites: []string{"ALG1"}, GradeLevels: []int{10, 11}},
		{Code: "CHEM-AP", Name: "AP Chemistry", SubjectArea: models.SubjectLabScience, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomChemLab, Prerequisites: []string{"CHEM", "ALG2"}, GradeLevels: []int{11, 12}},
		{Code: "PHYS", Name: "Physics", SubjectArea: models.SubjectLabScience, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomBioLab, Prerequisites: []string{"ALG2"}, GradeLevels: []int{11, 12}},
		{Code: "PHYS-AP-1", Name: "AP Physics 1", SubjectArea: models.SubjectLabScience, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomBioLab, Prerequisites: []string{"GEOM"}, GradeLevels: []int{11, 12}},
		{Code: "PHYS-AP-C", Name: "AP Physics C", SubjectArea: models.SubjectLabScience, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomBioLab, Prerequisites: []string{"PHYS", "CALC-AP-AB"}, GradeLevels: []int{12}},
		{Code: "ENVSCI-AP", Name: "AP Environmental Science", SubjectArea: models.SubjectLabScience, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomBioLab, Prerequisites: []string{"BIO"}, GradeLevels: []int{11, 12}},

		// E) World Languages (Arabic)
		{Code: "ARAB1", Name: "Arabic 1", SubjectArea: models.SubjectWorldLanguage, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, GradeLevels: []int{9, 10, 11, 12}},
		{Code: "ARAB2", Name: "Arabic 2", SubjectArea: models.SubjectWorldLanguage, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ARAB1"}, GradeLevels: []int{9, 10, 11, 12}},
		{Code: "ARAB3", Name: "Arabic 3", SubjectArea: models.SubjectWorldLanguage, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ARAB2"}, GradeLevels: []int{10, 11, 12}},
		{Code: "ARAB4", Name: "Arabic 4", SubjectArea: models.SubjectWorldLanguage, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ARAB3"}, GradeLevels: []int{11, 12}},

		// F) Visual / Performing Arts (no dedicated art or music room on
		// site, these run in general classrooms)
		{Code: "ART1", Name: "Art 1", SubjectArea: models.SubjectArts, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, GradeLevels: []int{9, 10, 11, 12}},
		{Code: "ART2", Name: "Art 2", SubjectArea: models.SubjectArts, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ART1"}, GradeLevels: []int{10, 11, 12}},
		{Code: "MUSIC1", Name: "Music", SubjectArea: models.SubjectArts, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, GradeLevels: []int{9, 10, 11, 12}},

		// G) College-Prep Electives (CS / Robotics / Psychology)
		{Code: "CSP-AP", Name: "AP Computer Science Principles", SubjectArea: models.SubjectCollegePrep, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomComputerLab, GradeLevels: []int{9, 10, 11, 12}},
		{Code: "CSA-AP", Name: "AP Computer Science A", SubjectArea: models.SubjectCollegePrep, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomComputerLab, Prerequisites: []string{"CSP-AP"}, GradeLevels: []int{10, 11, 12}},
		{Code: "ROBOTICS", Name: "Robotics", SubjectArea: models.SubjectCollegePrep, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomRoboticsLab, GradeLevels: []int{10, 11, 12}},
		{Code: "ROBOTICS-ADV", Name: "Advanced Robotics", SubjectArea: models.SubjectCollegePrep, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomRoboticsLab, Prerequisites: []string{"ROBOTICS"}, GradeLevels: []int{11, 12}},
		{Code: "PSYCH-AP", Name: "AP Psychology", SubjectArea: models.SubjectCollegePrep, Level: models.LevelAP, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, GradeLevels: []int{11, 12}},

		// State PE requirement
		{Code: "PE9", Name: "Physical Education 9", SubjectArea: models.SubjectPE, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGym, GradeLevels: []int{9}},
		{Code: "PE10", Name: "Physical Education 10", SubjectArea: models.SubjectPE, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGym, Prerequisites: []string{"PE9"}, GradeLevels: []int{10}},

		// Religious Studies. REL1-4 are the year-long combined courses the
		// path plans require (Islamic Studies semester 1, Quran semester 2);
		// the standalone variants stay available as electives.
		{Code: "REL1", Name: "Religious Studies 1", SubjectArea: models.SubjectReligious, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, GradeLevels: []int{9}, Description: "Islamic Studies (sem 1) and Quran (sem 2)"},
		{Code: "REL2", Name: "Religious Studies 2", SubjectArea: models.SubjectReligious, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"REL1"}, GradeLevels: []int{10}, Description: "Islamic Studies (sem 1) and Quran (sem 2)"},
		{Code: "REL3", Name: "Religious Studies 3", SubjectArea: models.SubjectReligious, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"REL2"}, GradeLevels: []int{11}, Description: "Islamic Studies (sem 1) and Quran (sem 2)"},
		{Code: "REL4", Name: "Religious Studies 4", SubjectArea: models.SubjectReligious, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"REL3"}, GradeLevels: []int{12}, Description: "Islamic Studies (sem 1) and Quran (sem 2)"},
		{Code: "ISLAM1", Name: "Islamic Studies 1", SubjectArea: models.SubjectReligious, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, GradeLevels: []int{9}},
		{Code: "ISLAM2", Name: "Islamic Studies 2", SubjectArea: models.SubjectReligious, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ISLAM1"}, GradeLevels: []int{10}},
		{Code: "ISLAM3", Name: "Islamic Studies 3", SubjectArea: models.SubjectReligious, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ISLAM2"}, GradeLevels: []int{11}},
		{Code: "ISLAM4", Name: "Islamic Studies 4", SubjectArea: models.SubjectReligious, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"ISLAM3"}, GradeLevels: []int{12}},
		{Code: "QURAN1", Name: "Quran Studies 1", SubjectArea: models.SubjectReligious, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, GradeLevels: []int{9}},
		{Code: "QURAN2", Name: "Quran Studies 2", SubjectArea: models.SubjectReligious, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"QURAN1"}, GradeLevels: []int{10}},
		{Code: "QURAN3", Name: "Quran Studies 3", SubjectArea: models.SubjectReligious, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"QURAN2"}, GradeLevels: []int{11}},
		{Code: "QURAN4", Name: "Quran Studies 4", SubjectArea: models.SubjectReligious, Level: models.LevelRegular, Credits: 10, Semesters: 2, RoomType: models.RoomGeneral, Prerequisites: []string{"QURAN3"}, GradeLevels: []int{12}},
	}
}
