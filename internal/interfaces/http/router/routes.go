package router

import (
	"github.com/gin-gonic/gin"
	"github.com/schoolms/backend/internal/interfaces/http/handler"
)

// Handlers bundles every handler the server exposes
type Handlers struct {
	System             *handler.SystemHandler
	Welcome            *handler.WelcomeHandler
	Keyword            *handler.KeywordHandler
	BackgroundImage    *handler.BackgroundImageHandler
	LibraryCard        *handler.LibraryCardHandler
	PayrollTemplate    *handler.PayrollTemplateHandler
	SalaryItem         *handler.SalaryItemHandler
	PayslipItem        *handler.PayslipItemHandler
	PostalRecord       *handler.PostalRecordHandler
	StudentCertificate *handler.StudentCertificateHandler
}

// Mount registers the landing page, the health probe and the /api groups.
// The engine must already carry handler.Templates.
func Mount(engine *gin.Engine, h Handlers, opts ...RouterOption) *Router {
	engine.GET("/", h.Welcome.Index)
	engine.GET("/health", h.System.Health)

	r := NewRouter(engine, opts...)
	for _, group := range DomainGroups(h) {
		r.Register(group)
	}
	r.Setup()
	return r
}

// DomainGroups builds one route group per bounded context
func DomainGroups(h Handlers) []*DomainGroup {
	system := NewDomainGroup("system", "/system").
		GET("/info", h.System.GetSystemInfo).
		GET("/ping", h.System.Ping)

	setting := NewDomainGroup("setting", "")
	setting.Group("keywords", "/keywords").Records(h.Keyword)
	setting.Group("background-images", "/background-images").SoftDeletes(h.BackgroundImage)

	library := NewDomainGroup("library", "/library-cards").
		GET("/by-card-no", h.LibraryCard.GetByCardNo).
		Records(h.LibraryCard)

	payroll := NewDomainGroup("payroll", "")
	payroll.Group("payroll-templates", "/payroll-templates").
		SoftDeletes(h.PayrollTemplate).
		GET("/:id/user", h.PayrollTemplate.User).
		GET("/:id/payroll-items", h.PayrollTemplate.PayrollItems).
		GET("/:id/salaries", h.PayrollTemplate.Salaries)
	payroll.Group("salary-items", "/salary-items").
		SoftDeletes(h.SalaryItem).
		GET("/:id/salary", h.SalaryItem.Salary)
	payroll.Group("payslip-items", "/payslip-items").
		SoftDeletes(h.PayslipItem).
		GET("/:id/payroll", h.PayslipItem.Payroll)

	frontoffice := NewDomainGroup("frontoffice", "/postal-records").
		Records(h.PostalRecord).
		PUT("/:id/attachment", h.PostalRecord.Attach)

	certificate := NewDomainGroup("certificate", "/student-certificates").
		SoftDeletes(h.StudentCertificate)

	return []*DomainGroup{system, setting, library, payroll, frontoffice, certificate}
}
