package constants

import "fmt"

const (
	RoleUser    = "user"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
	RoleOwner   = "owner"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess = "❌ Hanya teacher, admin, atau owner yang boleh mengakses fitur %s."
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin atau owner yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	// generate/preview jadwal
	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
		RoleOwner,
	}

	// master data (semester, ruang, slot, libur)
	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}
)
