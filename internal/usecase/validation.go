package usecase

import (
	"fmt"
	"strings"

	"github.com/rajudas/field-sales-api/internal/entity"
)

// ValidateSubmitVisitInput checks everything before any write happens and
// returns every violation found, not just the first.
func ValidateSubmitVisitInput(input SubmitVisitInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.StoreName) == "" {
		errs = append(errs, ValidationError{"store_name", "Store Name is required."})
	}

	if strings.TrimSpace(input.PhoneNumber) == "" {
		errs = append(errs, ValidationError{"phone_number", "Phone Number is required."})
	}

	if len(input.CapturedPhoto) == 0 && len(input.UploadedPhoto) == 0 {
		errs = append(errs, ValidationError{"photo", "Photograph is required."})
	}

	if len(input.Products) == 0 {
		errs = append(errs, ValidationError{"products", "Select at least one Product."})
	} else {
		for _, p := range input.Products {
			if !entity.IsCatalogProduct(p) {
				errs = append(errs, ValidationError{"products", fmt.Sprintf("Unknown product %q.", p)})
			}
		}
	}

	if input.VisitType != entity.VisitTypeNew && input.VisitType != entity.VisitTypeRe {
		errs = append(errs, ValidationError{"visit_type", "Visit Type must be NEW VISIT or RE VISIT."})
	}

	if !entity.IsValidLeadStatus(input.LeadType) {
		errs = append(errs, ValidationError{"lead_type", "Lead Type must be one of HOT, WARM, COLD, DEAD."})
	}

	switch input.LocationAnswer {
	case entity.LocationRecordedYes:
		if input.Location == nil {
			errs = append(errs, ValidationError{"location", "You said YES to location, but none is recorded. Please check 'Record Location'."})
		}
	case entity.LocationRecordedNo:
		// fine, record goes out without coordinates
	default:
		errs = append(errs, ValidationError{"location_recorded_answer", "Answer YES or NO for location recorded."})
	}

	return errs
}
