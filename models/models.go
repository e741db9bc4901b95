package models

// User roles as reported by the exam service
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// SessionUser is the user record kept in the session alongside the
// bearer token. It mirrors the `user` object returned by the login
// endpoint and is not authoritative; the exam service owns the record.
type SessionUser struct {
	ID                  string `json:"_id"`
	Email               string `json:"email"`
	Role                string `json:"role"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	ForcePasswordChange bool   `json:"forcePasswordChange"`
	TeacherID           string `json:"teacherId,omitempty"`
	StudentID           string `json:"studentId,omitempty"`
	IsActive            bool   `json:"isActive"`
}

// College is a transient copy of a college record. Colleges are soft
// deleted: IsActive flips to false, the record never disappears.
type College struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// Department belongs to exactly one college.
type Department struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Code     string   `json:"code"`
	College  *College `json:"college,omitempty"`
	IsActive bool     `json:"isActive"`
}

// Teacher is the subset of a user record shown in teacher selectors.
type Teacher struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Course struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Code        string      `json:"code"`
	College     *College    `json:"college,omitempty"`
	Department  *Department `json:"department,omitempty"`
	Teacher     *Teacher    `json:"teacher,omitempty"`
	Year        int         `json:"year"`
	Credits     int         `json:"credits"`
	Description string      `json:"description"`
	IsActive    bool        `json:"isActive"`
}

// Question always carries exactly four options; CorrectAnswer indexes
// into them. Question order within an exam is meaningful.
type Question struct {
	QuestionText  string    `json:"questionText"`
	Options       [4]string `json:"options"`
	CorrectAnswer int       `json:"correctAnswer"`
	Marks         int       `json:"marks"`
}

type Exam struct {
	ID           string     `json:"_id"`
	Course       *Course    `json:"course,omitempty"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Duration     int        `json:"duration"` // minutes
	Deadline     string     `json:"deadline"`
	Instructions string     `json:"instructions"`
	Questions    []Question `json:"questions,omitempty"`
	TotalMarks   int        `json:"totalMarks"`
	IsActive     bool       `json:"isActive"`
}

// ResultStudent is the populated student reference on a result row.
type ResultStudent struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	StudentID string `json:"studentId"`
}

// Result is read-only from this client's perspective.
type Result struct {
	ID          string         `json:"_id"`
	Student     *ResultStudent `json:"student,omitempty"`
	Exam        *Exam          `json:"exam,omitempty"`
	Score       float64        `json:"score"`
	TotalMarks  float64        `json:"totalMarks"`
	Percentage  float64        `json:"percentage"`
	SubmittedAt string         `json:"submittedAt"`
}

// ExamStatistics are computed server-side and rendered as-is.
type ExamStatistics struct {
	TotalStudents  int     `json:"totalStudents"`
	AverageScore   float64 `json:"averageScore"`
	PassedStudents int     `json:"passedStudents"`
	PassRate       float64 `json:"passRate"`
}

type UserRecord struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

// UserPage is one page of the admin user listing.
type UserPage struct {
	Users       []UserRecord `json:"users"`
	Total       int          `json:"total"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
}

// BatchSummary reports row-level outcomes of a batch registration.
type BatchSummary struct {
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Total      int `json:"total"`
}

// BatchOutcome is rendered verbatim; row errors are server strings.
type BatchOutcome struct {
	Summary BatchSummary `json:"summary"`
	Errors  []string     `json:"errors"`
}

type AdminStats struct {
	TotalStudents int `json:"totalStudents"`
	TotalTeachers int `json:"totalTeachers"`
	TotalColleges int `json:"totalColleges"`
	TotalCourses  int `json:"totalCourses"`
	TotalExams    int `json:"totalExams"`
}

type TeacherStats struct {
	TotalCourses int `json:"totalCourses"`
	TotalExams   int `json:"totalExams"`
	ActiveExams  int `json:"activeExams"`
	TotalResults int `json:"totalResults"`
}

type StudentStats struct {
	TotalCourses      int     `json:"totalCourses"`
	AvailableExams    int     `json:"availableExams"`
	TotalExamsTaken   int     `json:"totalExamsTaken"`
	AveragePercentage float64 `json:"averagePercentage"`
}

// CourseStudent is a row of the per-course student roster.
type CourseStudent struct {
	ID        string `json:"_id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	StudentID string `json:"studentId"`
	Year      int    `json:"year"`
	IsActive  bool   `json:"isActive"`
}
