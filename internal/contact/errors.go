package contact

import "errors"

var (
	ErrContactNotFound = errors.New("contact not found") // 404 Not Found
	ErrAddressNotFound = errors.New("address not found") // 404 Not Found
)
