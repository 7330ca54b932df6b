package domain

import "github.com/m04kA/NSS-BookingService/pkg/types"

// CandidateSlot represents one tick of the booking grid for a day:
// a potential appointment start time and whether a service of the
// requested duration can actually start there
type CandidateSlot struct {
	StartTime types.TimeString
	Available bool
}

// OccupiedTicks собирает множество занятых тиков по активным записям дня.
// Выдача слотов и проверка при создании записи считают занятость одним кодом
//
// Для каждой записи шагаем от её ТОЧНОГО времени начала (без округления к сетке)
// с шагом granularity, пока текущий тик строго раньше конца записи, и помечаем
// каждый посещённый тик занятым. Запись, начинающаяся не по сетке, помечает
// тики вне сетки - такие ключи сетка слотов не проверяет. Это поведение
// исходной версии, сохраняем его сознательно
func OccupiedTicks(appointments []*Appointment, granularity int) map[types.TimeString]struct{} {
	occupied := make(map[types.TimeString]struct{})

	for _, appt := range appointments {
		// Пропускаем записи, не занимающие слот
		if !appt.IsActive() {
			continue
		}

		end, err := appt.StartTime.AddMinutes(appt.DurationMinutes)
		if err != nil {
			// Запись выходит за пределы суток - помечаем всё до полуночи
			end = types.TimeString("23:59")
		}

		current := appt.StartTime
		for current.IsBefore(end) {
			occupied[current] = struct{}{}

			next, err := current.AddMinutes(granularity)
			if err != nil {
				break
			}
			current = next
		}
	}

	return occupied
}
