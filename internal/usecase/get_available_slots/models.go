package get_available_slots

import (
	"time"

	"github.com/m04kA/NSS-BookingService/pkg/types"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	ServiceID int64     // ID услуги из прайс-листа
	Date      time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа с сеткой слотов на день
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ServiceID       int64     // ID услуги
	DurationMinutes int       // Длительность услуги в минутах
	Slots           []Slot    // Сетка слотов в порядке возрастания времени
}

// Slot модель одного слота сетки
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Available bool             // Можно ли начать услугу в это время
}
