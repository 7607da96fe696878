package firmware

import "errors"

var (
	ErrBadInputChannel = errors.New("firmware: input channel out of range")
	ErrBadMotorIndex   = errors.New("firmware: motor index out of range")
)
