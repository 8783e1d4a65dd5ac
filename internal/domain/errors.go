package domain

import "errors"

var (
	ErrUnknownExtensionType = errors.New("no extension type registered under this name")
	ErrInvalidValueSyntax   = errors.New("invalid extension value syntax")
	ErrMalformedPayload     = errors.New("malformed extension payload")
	ErrNoPrinter            = errors.New("no printer registered for this extension OID")
	ErrValidation           = errors.New("profile validation failed")
	ErrCertificateNotFound  = errors.New("certificate file not found or not parseable")
)
