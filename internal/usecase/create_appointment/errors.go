package create_appointment

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("usecase: invalid input")

	// ErrServiceNotFound услуга не найдена
	ErrServiceNotFound = errors.New("usecase: service not found")

	// ErrServiceNotActive услуга выведена из прайс-листа
	ErrServiceNotActive = errors.New("usecase: service not active")

	// ErrMasterNotFound мастер не найден
	ErrMasterNotFound = errors.New("usecase: master not found")

	// ErrMasterNotActive мастер не принимает записи
	ErrMasterNotActive = errors.New("usecase: master not active")

	// ErrInvalidDate дата записи в прошлом
	ErrInvalidDate = errors.New("usecase: appointment date in the past")

	// ErrDateTooFarInFuture дата записи за пределами горизонта бронирования
	ErrDateTooFarInFuture = errors.New("usecase: appointment date too far in future")

	// ErrTooLateToBook до начала записи осталось меньше минимального времени
	ErrTooLateToBook = errors.New("usecase: too late to book this slot")

	// ErrInvalidTimeSlot время начала не попадает в сетку слотов салона
	ErrInvalidTimeSlot = errors.New("usecase: invalid time slot")

	// ErrSlotNotAvailable слот уже занят другой записью
	ErrSlotNotAvailable = errors.New("usecase: slot not available")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("usecase: internal error")
)
