package graphica

import "errors"

var (
	ErrShapeNotFound = errors.New("graphica: shape not in window")
	ErrWindowClosed  = errors.New("graphica: window closed")
	ErrUnknownFont   = errors.New("graphica: unknown font")
	ErrInvalidCoord  = errors.New("graphica: invalid coordinate")
	ErrInvalidOrigin = errors.New("graphica: invalid origin")
)
