package constants

import "fmt"

const (
	RoleAdmin = "Admin"
	RoleGuru  = "Guru"
	RoleSiswa = "Siswa"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyTeachersCanAccess = "❌ Hanya guru atau admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorGuru(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleGuru,
		RoleSiswa,
	}

	GuruAndAbove = []string{
		RoleGuru,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
