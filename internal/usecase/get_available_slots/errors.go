package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в прайс-листе
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotActive возвращается, когда услуга снята с записи
	ErrServiceNotActive = errors.New("service is not available for booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
