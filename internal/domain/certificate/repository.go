package certificate

import "github.com/schoolms/backend/internal/domain/shared"

// StudentCertificateRepository persists student certificates
type StudentCertificateRepository interface {
	shared.SoftDeleteRepository[StudentCertificate]
}
