package residentservice

// Роли жителей в ResidentService
const (
	RoleResident = "resident"
	RoleManager  = "manager"
)

// Resident модель жителя из ResidentService
type Resident struct {
	ID     int64  `json:"id"`
	SiteID int64  `json:"site_id"`
	Name   string `json:"name"`
	Role   string `json:"role"` // resident | manager
	Unit   string `json:"unit"` // Номер квартиры/юнита
}

// IsManager возвращает true, если житель - менеджер своего комплекса
func (r *Resident) IsManager() bool {
	return r.Role == RoleManager
}

// ErrorResponse модель ошибки от ResidentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
