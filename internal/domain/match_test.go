package domain

import "testing"

func strPtr(s string) *string { return &s }

func TestFold(t *testing.T) {
	tests := map[string]string{
		"María López": "maria lopez",
		"JOSÉ":        "jose",
		"Ñandú":       "nandu",
		"CERT-2025":   "cert-2025",
		"":            "",
	}
	for in, want := range tests {
		if got := Fold(in); got != want {
			t.Fatalf("Fold(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFilterMatch(t *testing.T) {
	maria := Certificate{StudentName: "María López", CourseName: "react-fundamentals", CertificateID: "CERT-2025-000123"}
	carlos := Certificate{StudentName: "Carlos", CourseName: "tailwind-css", CertificateID: "CERT-2025-000456", DiscordHandle: strPtr("carlitos")}

	tests := []struct {
		name   string
		query  string
		course string
		cert   Certificate
		want   bool
	}{
		{name: "accent and case insensitive student", query: "maria", cert: maria, want: true},
		{name: "non matching student", query: "maria", cert: carlos, want: false},
		{name: "course name substring", query: "REACT", cert: maria, want: true},
		{name: "certificate id substring", query: "000456", cert: carlos, want: true},
		{name: "discord handle", query: "litos", cert: carlos, want: true},
		{name: "absent discord never matches", query: "litos", cert: maria, want: false},
		{name: "empty query matches", query: "", cert: carlos, want: true},
		{name: "course filter exact", course: "react-fundamentals", cert: maria, want: true},
		{name: "course filter is exact not folded", course: "React-Fundamentals", cert: maria, want: false},
		{name: "query and course both required", query: "carlos", course: "react-fundamentals", cert: carlos, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewFilter(tc.query, tc.course).Match(tc.cert); got != tc.want {
				t.Fatalf("Match() = %v, want %v", got, tc.want)
			}
		})
	}
}
