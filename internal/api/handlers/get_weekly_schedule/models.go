package get_weekly_schedule

import (
	"github.com/rmarchan/ReservaCanchasService/internal/domain"
	getWeeklySchedule "github.com/rmarchan/ReservaCanchasService/internal/usecase/get_weekly_schedule"
)

// SlotResponse is one cell of the weekly grid.
type SlotResponse struct {
	StartTime string `json:"horaInicio"`
	EndTime   string `json:"horaFin"`
	Tier      string `json:"tarifa"` // "dia" | "noche"
	Price30   string `json:"precio30"`
	Price60   string `json:"precio60"`
	Available bool   `json:"disponible"`
}

type DayResponse struct {
	Date  string         `json:"fecha"`
	Slots []SlotResponse `json:"slots"`
}

type WeeklyScheduleResponse struct {
	CourtID   int64         `json:"canchaId"`
	CourtName string        `json:"nombre"`
	Days      []DayResponse `json:"dias"`
}

// FromUseCaseResponse converts the usecase result into the HTTP response.
func FromUseCaseResponse(resp *getWeeklySchedule.Response) *WeeklyScheduleResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, SlotResponse{
				StartTime: slot.StartTime.String(),
				EndTime:   slot.EndTime.String(),
				Tier:      string(slot.Tier),
				Price30:   slot.Price30.StringFixed(2),
				Price60:   slot.Price60.StringFixed(2),
				Available: slot.Available,
			})
		}
		days = append(days, DayResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: slots,
		})
	}

	return &WeeklyScheduleResponse{
		CourtID:   resp.Court.ID,
		CourtName: resp.Court.Name,
		Days:      days,
	}
}
