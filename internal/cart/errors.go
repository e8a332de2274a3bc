package cart

import (
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

// dependencyErr wraps untyped repository failures; typed errors pass through so
// domain kinds raised by the adapter keep their identity.
func dependencyErr(err error, message string) error {
	if err == nil {
		return nil
	}
	if pkgerrors.As(err) != nil {
		return err
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, message)
}
