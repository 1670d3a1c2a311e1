package texture

import (
	"errors"
	"fmt"
)

// AssetLoadError reports an asset that could not be read or decoded. It is
// recoverable: the loader substitutes a placeholder texture.
type AssetLoadError struct {
	ID  string
	Err error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("asset %q: %v", e.ID, e.Err)
}

func (e *AssetLoadError) Unwrap() error {
	return e.Err
}

func joinLoadErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
