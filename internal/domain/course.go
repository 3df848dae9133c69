package domain

// CourseLevel is the difficulty tier shown next to a course.
type CourseLevel string

const (
	CourseLevelBasic        CourseLevel = "Básico"
	CourseLevelIntermediate CourseLevel = "Intermedio"
	CourseLevelAdvanced     CourseLevel = "Avanzado"
	CourseLevelExpert       CourseLevel = "Experto"
)

// Course is an entry of the catalog offered to the certificate form.
type Course struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Level       CourseLevel `json:"level"`
	Description string      `json:"description"`
}

var courses = []Course{
	{ID: "maquetado-web-nivel-1", Name: "Maquetado Web Nivel 1", Level: CourseLevelBasic, Description: "Fundamentos de HTML y CSS para crear páginas web profesionales."},
	{ID: "tailwind-css", Name: "Tailwind CSS", Level: CourseLevelIntermediate, Description: "Framework de CSS utility-first para desarrollo rápido y eficiente."},
	{ID: "react-fundamentals", Name: "React Fundamentals", Level: CourseLevelAdvanced, Description: "Desarrollo de aplicaciones web modernas con React y JavaScript."},
	{ID: "javascript-es6", Name: "JavaScript ES6+", Level: CourseLevelIntermediate, Description: "Programación moderna con las últimas características de JavaScript."},
	{ID: "nodejs-backend", Name: "Node.js Backend", Level: CourseLevelAdvanced, Description: "Desarrollo de APIs y servidores con Node.js y Express."},
	{ID: "full-stack-development", Name: "Full Stack Development", Level: CourseLevelExpert, Description: "Desarrollo completo de aplicaciones web frontend y backend."},
}

var commissions = []string{"2024-A", "2024-B", "2024-C", "2025-A", "2025-B", "2025-C"}

// Courses returns a copy of the course catalog.
func Courses() []Course {
	return append([]Course(nil), courses...)
}

// Commissions returns a copy of the known commission codes.
func Commissions() []string {
	return append([]string(nil), commissions...)
}

// CourseByID looks up a catalog entry.
func CourseByID(id string) (Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}
