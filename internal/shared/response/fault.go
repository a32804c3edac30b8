package response

import (
	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/fault"
)

// WriteFault maps each write-path failure to its own HTTP status so clients
// can dispatch on the status alone:
//
//	ConstraintViolations  422
//	NaturalKeyExists      409
//	EntityNotExists       404
//	VersionInvalid        428
//	VersionOutdated       412
//
// Anything else is an infrastructure failure and becomes a 500.
func WriteFault(c *gin.Context, err error) {
	switch f := err.(type) {
	case *fault.ConstraintViolations:
		ErrorWithDetails(c, 422, "CONSTRAINT_VIOLATIONS", "the payload breaks one or more constraints", f.Messages)
	case *fault.NaturalKeyExists:
		Conflict(c, f.Error())
	case *fault.EntityNotExists:
		NotFound(c, f.Error())
	case *fault.VersionInvalid:
		ErrorResponse(c, 428, "VERSION_REQUIRED", f.Error())
	case *fault.VersionOutdated:
		ErrorResponse(c, 412, "VERSION_OUTDATED", f.Error())
	default:
		InternalServerError(c, "internal server error")
	}
}
