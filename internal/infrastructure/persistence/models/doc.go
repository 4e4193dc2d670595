// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
// Each model carries its gorm tags, a TableName, ToDomain and FromDomain.
// Relation fields (User, PayrollItems, SalaryItem, ...) exist only so
// repositories can Preload them; they are never written through the model.
//
// Structure:
//   - base.go: BaseModel and SoftDeleteModel
//   - identity.go: users
//   - setting.go: keywords, background_images
//   - library.go: library_card
//   - payroll.go: payroll_templates, template_items, salaries, salary_items,
//     payrolls, payslip_items
//   - frontoffice.go: postal_record
//   - certificate.go: student_certificate
package models
