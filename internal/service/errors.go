package service

import "errors"

// Sentinel errors returned by services. Handlers map them to HTTP statuses:
// ErrNotFound → 404, ErrEmailTaken / ErrPlateTaken → 409,
// ErrInvalidCredentials → 401. Anything else is a 500.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailTaken         = errors.New("el email ya esta registrado")
	ErrPlateTaken         = errors.New("la placa ya esta registrada")
	ErrInvalidCredentials = errors.New("credenciales invalidas")
)
