package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to every table
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// withCommon extends CommonSortFields with entity-specific columns
func withCommon(fields ...string) map[string]bool {
	m := make(map[string]bool, len(CommonSortFields)+len(fields))
	for k := range CommonSortFields {
		m[k] = true
	}
	for _, f := range fields {
		m[f] = true
	}
	return m
}

// UserSortFields contains allowed sort fields for users
var UserSortFields = withCommon("name", "email", "school_id")

// KeywordSortFields contains allowed sort fields for keywords
var KeywordSortFields = withCommon("name")

// BackgroundImageSortFields contains allowed sort fields for background images
var BackgroundImageSortFields = withCommon("background_image", "deleted_at")

// LibraryCardSortFields contains allowed sort fields for library cards
var LibraryCardSortFields = withCommon("school_id", "user_id", "library_card_no", "book_limit", "status", "expiry_date")

// PayrollTemplateSortFields contains allowed sort fields for payroll templates
var PayrollTemplateSortFields = withCommon("school_id", "name", "status", "created_by", "deleted_at")

// TemplateItemSortFields contains allowed sort fields for template items
var TemplateItemSortFields = withCommon("template_id", "name", "type", "amount", "deleted_at")

// SalarySortFields contains allowed sort fields for salaries
var SalarySortFields = withCommon("school_id", "user_id", "template_id", "basic_salary", "deleted_at")

// SalaryItemSortFields contains allowed sort fields for salary items
var SalaryItemSortFields = withCommon("salary_id", "template_item_id", "amount", "deleted_at")

// PayrollSortFields contains allowed sort fields for payrolls
var PayrollSortFields = withCommon("school_id", "user_id", "salary_id", "month", "year", "net_amount", "status", "deleted_at")

// PayslipItemSortFields contains allowed sort fields for payslip items
var PayslipItemSortFields = withCommon("payroll_id", "salary_item_id", "amount", "deleted_at")

// PostalRecordSortFields contains allowed sort fields for postal records
var PostalRecordSortFields = withCommon("school_id", "academic_year_id", "type", "reference_number", "postal_date", "confidential")

// StudentCertificateSortFields contains allowed sort fields for student certificates
var StudentCertificateSortFields = withCommon("school_id", "student_id", "program_name", "event_name", "deleted_at")
