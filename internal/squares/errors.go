package squares

import (
	"fmt"

	"github.com/rocketscienceinc/squares-backend/internal/apperror"
	"github.com/rocketscienceinc/squares-backend/internal/entity"
)

// PlacementError - an Apply call with a placement the validator rejects.
type PlacementError struct {
	Reason entity.Reason
}

func (that *PlacementError) Error() string {
	return fmt.Sprintf("%s: %s", apperror.ErrIllegalPlacement, that.Reason)
}

func (that *PlacementError) Unwrap() error {
	return apperror.ErrIllegalPlacement
}
