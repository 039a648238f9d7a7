package doctor

import "github.com/healhub/healhub_backend/pkg/apperr"

// ErrPatientNotFound signals a caller-supplied patient id with no row
// behind it.
var ErrPatientNotFound = apperr.Validation("patient not found")
