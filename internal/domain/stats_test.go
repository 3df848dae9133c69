package domain

import (
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	now := time.Date(2025, time.March, 20, 12, 0, 0, 0, time.UTC)
	certs := []Certificate{
		{StudentName: "Ana", CourseName: "react-fundamentals", CreatedAt: now},
		{StudentName: "Ana", CourseName: "tailwind-css", CreatedAt: now.Add(-24 * time.Hour)},
		{StudentName: "ana", CourseName: "tailwind-css", CreatedAt: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{StudentName: "Luis", CourseName: "react-fundamentals", CreatedAt: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)},
		{StudentName: "Luis", CourseName: "nodejs-backend", CreatedAt: time.Date(2025, time.February, 28, 23, 59, 0, 0, time.UTC)},
	}

	got := Summarize(certs, now)
	want := Stats{TotalCertificates: 5, ThisMonth: 3, ActiveCourses: 3, Students: 3}
	if got != want {
		t.Fatalf("Summarize() = %+v, want %+v", got, want)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil, time.Now()); got != (Stats{}) {
		t.Fatalf("Summarize(nil) = %+v, want zero", got)
	}
}
