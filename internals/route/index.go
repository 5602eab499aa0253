// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicYearRoute "siakadku_backend/internals/features/school/academics/academic_years/route"
	scheduleRoute "siakadku_backend/internals/features/school/academics/schedules/route"
	semesterRoute "siakadku_backend/internals/features/school/academics/semesters/route"
	teachingRoute "siakadku_backend/internals/features/school/academics/teachings/route"
	assessmentRoute "siakadku_backend/internals/features/school/assessments/assessments/route"
	scoreRoute "siakadku_backend/internals/features/school/assessments/scores/route"
	weightRoute "siakadku_backend/internals/features/school/assessments/weights/route"
	attendanceRoute "siakadku_backend/internals/features/school/attendance/route"
	extracurricularRoute "siakadku_backend/internals/features/school/extracurriculars/route"
	classRoute "siakadku_backend/internals/features/school/masters/classes/route"
	employeeRoute "siakadku_backend/internals/features/school/masters/employees/route"
	enrollmentRoute "siakadku_backend/internals/features/school/masters/enrollments/route"
	studentRoute "siakadku_backend/internals/features/school/masters/students/route"
	subjectRoute "siakadku_backend/internals/features/school/masters/subjects/route"
	reportCardRoute "siakadku_backend/internals/features/school/report_cards/route"
	authRoute "siakadku_backend/internals/features/users/auth/route"
	"siakadku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh endpoint aplikasi.
// - /api/auth : login/logout/register
// - /api/a    : surface admin & guru, dibentengi AuthMiddleware;
//               pembagian peran diatur per grup fitur.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)

	api := app.Group("/api/a", auth.AuthMiddleware())

	// master data
	studentRoute.StudentAdminRoutes(api, db)
	employeeRoute.EmployeeAdminRoutes(api, db)
	subjectRoute.SubjectAdminRoutes(api, db)
	classRoute.ClassAdminRoutes(api, db)
	enrollmentRoute.EnrollmentAdminRoutes(api, db)

	// periode akademik & penjadwalan
	academicYearRoute.AcademicYearAdminRoutes(api, db)
	semesterRoute.SemesterAdminRoutes(api, db)
	teachingRoute.TeachingAdminRoutes(api, db)
	scheduleRoute.ScheduleAdminRoutes(api, db)

	// penilaian & rapor
	weightRoute.WeightConfigAdminRoutes(api, db)
	assessmentRoute.AssessmentAdminRoutes(api, db)
	scoreRoute.ScoreAdminRoutes(api, db)
	reportCardRoute.ReportCardAdminRoutes(api, db)

	// pendukung rapor
	attendanceRoute.AttendanceAdminRoutes(api, db)
	extracurricularRoute.ExtracurricularAdminRoutes(api, db)
}
