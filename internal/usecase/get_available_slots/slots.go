package get_available_slots

import (
	"github.com/m04kA/NSS-BookingService/internal/domain"
	"github.com/m04kA/NSS-BookingService/pkg/types"
)

// buildCandidateSlots строит сетку слотов на день
//
// Тики идут от открытия (включительно) до закрытия (не включительно) с шагом
// granularity. Тик, на котором услуга не успевает закончиться до закрытия,
// в выдачу не попадает вовсе; слот, заканчивающийся РОВНО в закрытие,
// предлагается. Доступность тика - проход от тика до конца услуги с шагом
// granularity (строгое "меньше"): любой посещённый тик из occupied делает
// слот недоступным
func buildCandidateSlots(
	schedule *domain.SalonSchedule,
	serviceDurationMinutes int,
	occupied map[types.TimeString]struct{},
) []domain.CandidateSlot {
	slots := make([]domain.CandidateSlot, 0)

	if schedule.SlotGranularityMinutes <= 0 {
		return slots
	}

	tick := schedule.OpenTime
	for tick.IsBefore(schedule.CloseTime) {
		slotEnd, err := tick.AddMinutes(serviceDurationMinutes)

		// Услуга не помещается до закрытия - тик пропускается целиком
		// (ошибка AddMinutes означает выход за полночь, то есть тем более не помещается)
		if err == nil && !slotEnd.IsAfter(schedule.CloseTime) {
			available := true

			current := tick
			for current.IsBefore(slotEnd) {
				if _, busy := occupied[current]; busy {
					available = false
					break
				}

				next, stepErr := current.AddMinutes(schedule.SlotGranularityMinutes)
				if stepErr != nil {
					break
				}
				current = next
			}

			slots = append(slots, domain.CandidateSlot{
				StartTime: tick,
				Available: available,
			})
		}

		next, err := tick.AddMinutes(schedule.SlotGranularityMinutes)
		if err != nil {
			break
		}
		tick = next
	}

	return slots
}
