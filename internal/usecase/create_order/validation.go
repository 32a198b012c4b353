package create_order

import (
	"fmt"

	"github.com/tapcafe/TapCafe-SlotService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}
	if req.CafeID <= 0 {
		return fmt.Errorf("%w: cafe id must be positive", ErrInvalidInput)
	}
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slot id must be positive", ErrInvalidInput)
	}
	if req.SlotDate.IsZero() {
		return fmt.Errorf("%w: slot date is required", ErrInvalidInput)
	}
	if req.SlotTime == "" {
		return fmt.Errorf("%w: slot time is required", ErrInvalidInput)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", ErrInvalidInput)
	}

	for i, item := range req.Items {
		if item.ItemName == "" {
			return fmt.Errorf("%w: item %d has empty name", ErrInvalidInput, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d quantity must be positive", ErrInvalidInput, i)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d unit price must not be negative", ErrInvalidInput, i)
		}
	}

	if req.Subtotal < 0 || req.DiscountAmount < 0 || req.TaxAmount < 0 {
		return fmt.Errorf("%w: amounts must not be negative", ErrInvalidInput)
	}
	if req.TotalAmount <= 0 {
		return fmt.Errorf("%w: total amount must be positive", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	return nil
}
