package catalog

import "github.com/agathon991/class-schedule-creator/internal/models"

// builtinPaths returns the three offered graduation tracks. Single
// semester courses (GOVT, ECON) appear in only one semester list.
func builtinPaths() []models.PathPlan {
	return []models.PathPlan{
		{
			Path: models.PathMinimum,
			Description: "Minimum graduation requirements meeting UC/CSU A-G eligibility. " +
				"No AP courses. Recommended for students seeking a balanced workload.",
			YearPlans: []models.YearPlan{
				{Year: 1,
					Semester1: []string{"ENG9", "ALG1", "BIO", "ARAB1", "PE9", "REL1"},
					Semester2: []string{"ENG9", "ALG1", "BIO", "ARAB1", "PE9", "REL1"}},
				{Year: 2,
					Semester1: []string{"ENG10", "GEOM", "CHEM", "ARAB2", "PE10", "REL2"},
					Semester2: []string{"ENG10", "GEOM", "CHEM", "ARAB2", "PE10", "REL2"}},
				{Year: 3,
					Semester1: []string{"ENG11", "ALG2", "WHIST", "ART1", "ARAB3", "REL3"},
					Semester2: []string{"ENG11", "ALG2", "WHIST", "ART1", "ARAB3", "REL3"}},
				{Year: 4,
					Semester1: []string{"ENG12", "PRECALC", "USHIST", "GOVT", "ARAB4", "REL4"},
					Semester2: []string{"ENG12", "PRECALC", "USHIST", "ECON", "ARAB4", "REL4"}},
			},
		},
		{
			Path: models.PathPreMed,
			Description: "Pre-Medical Track optimized for medical school preparation. " +
				"Includes AP Biology, AP Chemistry, AP Calculus, and AP Psychology.",
			YearPlans: []models.YearPlan{
				{Year: 1,
					Semester1: []string{"ENG9", "ALG1", "BIO", "ARAB1", "PE9", "REL1"},
					Semester2: []string{"ENG9", "ALG1", "BIO", "ARAB1", "PE9", "REL1"}},
				{Year: 2,
					Semester1: []string{"ENG10", "GEOM", "CHEM", "WHIST", "ARAB2", "REL2"},
					Semester2: []string{"ENG10", "GEOM", "CHEM", "WHIST", "PE10", "REL2"}},
				{Year: 3,
					Semester1: []string{"ENG11-AP", "ALG2", "BIO-AP", "USHIST", "ART1", "REL3"},
					Semester2: []string{"ENG11-AP", "ALG2", "BIO-AP", "USHIST", "ART1", "REL3"}},
				{Year: 4,
					Semester1: []string{"ENG12-AP", "CALC-AP-AB", "CHEM-AP", "PSYCH-AP", "GOVT", "REL4"},
					Semester2: []string{"ENG12-AP", "CALC-AP-AB", "CHEM-AP", "PSYCH-AP", "ECON", "REL4"}},
			},
		},
		{
			Path: models.PathEngineering,
			Description: "Engineering Track for Computer Science, Computer Engineering, " +
				"and Chemical Engineering pathways. Includes AP CS Principles, AP CS A, " +
				"AP Physics 1, AP Chemistry, AP Calculus, and Robotics.",
			YearPlans: []models.YearPlan{
				{Year: 1,
					Semester1: []string{"ENG9", "ALG1", "BIO", "CSP-AP", "PE9", "REL1"},
					Semester2: []string{"ENG9", "ALG1", "BIO", "CSP-AP", "PE9", "REL1"}},
				{Year: 2,
					Semester1: []string{"ENG10", "GEOM", "CHEM", "CSA-AP", "ARAB1", "REL2"},
					Semester2: []string{"ENG10", "GEOM", "CHEM", "CSA-AP", "PE10", "REL2"}},
				{Year: 3,
					Semester1: []string{"ENG11", "ALG2", "PHYS-AP-1", "ROBOTICS", "ARAB2", "REL3"},
					Semester2: []string{"ENG11", "ALG2", "PHYS-AP-1", "ROBOTICS", "WHIST", "REL3"}},
				{Year: 4,
					Semester1: []string{"ENG12", "CALC-AP-AB", "CHEM-AP", "ROBOTICS-ADV", "GOVT", "REL4"},
					Semester2: []string{"ENG12", "CALC-AP-AB", "CHEM-AP", "USHIST", "ECON", "REL4"}},
			},
		},
	}
}
