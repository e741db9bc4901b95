package models

// Form payloads submitted by the management views. Validation is
// presence-only (plus code uppercasing); format rules beyond that are
// the exam service's job.

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordForm struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type CollegeForm struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Description string `json:"description"`
}

type DepartmentForm struct {
	Name    string `json:"name" validate:"required"`
	Code    string `json:"code" validate:"required"`
	College string `json:"college" validate:"required"`
}

type CourseForm struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	College     string `json:"college" validate:"required"`
	Department  string `json:"department" validate:"required"`
	Year        int    `json:"year" validate:"required,min=1,max=4"`
	Teacher     string `json:"teacher" validate:"required"`
	Credits     int    `json:"credits" validate:"min=1"`
	Description string `json:"description"`
}

type StudentRegistrationForm struct {
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	College    string `json:"college" validate:"required"`
	Department string `json:"department" validate:"required"`
	Year       int    `json:"year" validate:"required,min=1,max=4"`
}

type TeacherRegistrationForm struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

// BatchRegistrationForm carries the selector fields of the multipart
// batch upload; the spreadsheet file itself travels separately.
type BatchRegistrationForm struct {
	College    string `form:"college" validate:"required"`
	Department string `form:"department" validate:"required"`
	Year       string `form:"year" validate:"required"`
}

// UserStatusForm toggles a user's active flag.
type UserStatusForm struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// UserFilter narrows the admin user listing. Zero values mean "all"
// and the service applies its own defaults for paging.
type UserFilter struct {
	Role   string
	Search string
	Page   int
	Limit  int
}
