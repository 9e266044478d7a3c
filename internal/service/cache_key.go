package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/agathon991/class-schedule-creator/internal/dto"
	"github.com/agathon991/class-schedule-creator/internal/models"
)

// scenarioCacheKey derives a stable key from the catalog fingerprint
// and the scenario. Map order is normalised so equal scenarios always
// hash the same; the fingerprint keeps plans computed against a
// different catalog from colliding.
func scenarioCacheKey(catalogFingerprint string, scenario dto.EnrollmentScenario) string {
	paths := make([]string, 0, len(scenario.Enrollment))
	for path := range scenario.Enrollment {
		paths = append(paths, string(path))
	}
	sort.Strings(paths)

	h := sha256.New()
	fmt.Fprintf(h, "v1|catalog=%s|size=%d|periods=%d", catalogFingerprint, scenario.MaxClassSize, scenario.PeriodsPerDay)
	for _, path := range paths {
		fmt.Fprintf(h, "|%s=%d", path, scenario.Enrollment[models.GraduationPath(path)])
	}
	return "resource-plan:" + hex.EncodeToString(h.Sum(nil))
}
