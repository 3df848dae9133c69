package domain

import "time"

// Stats is a point-in-time summary over all stored certificates.
type Stats struct {
	TotalCertificates int `json:"totalCertificates"`
	ThisMonth         int `json:"thisMonth"`
	ActiveCourses     int `json:"activeCourses"`
	Students          int `json:"students"`
}

// Summarize scans certs and counts them against the calendar month of now.
// Student and course distinctness is exact string equality.
func Summarize(certs []Certificate, now time.Time) Stats {
	courses := make(map[string]struct{})
	students := make(map[string]struct{})
	year, month, _ := now.Date()

	stats := Stats{TotalCertificates: len(certs)}
	for _, c := range certs {
		courses[c.CourseName] = struct{}{}
		students[c.StudentName] = struct{}{}
		created := c.CreatedAt.In(now.Location())
		if created.Year() == year && created.Month() == month {
			stats.ThisMonth++
		}
	}
	stats.ActiveCourses = len(courses)
	stats.Students = len(students)
	return stats
}
