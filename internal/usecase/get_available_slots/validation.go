package get_available_slots

import "fmt"

func validateRequest(req *Request) error {
	if req.CafeID <= 0 {
		return fmt.Errorf("%w: cafe id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
