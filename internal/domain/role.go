package domain

// RoleCode is the role identifier as stored in the usuarios table.
type RoleCode string

const (
	RoleAdmin       RoleCode = "R1"
	RoleMonitor     RoleCode = "R2"
	RoleCoordinador RoleCode = "R3"
	RoleEncuestador RoleCode = "R4"
)

// roleDisplayNames maps stored codes to the names the frontend shows.
var roleDisplayNames = map[RoleCode]string{
	RoleAdmin:       "ADMIN",
	RoleMonitor:     "MONITOR",
	RoleCoordinador: "COORDINADOR",
	RoleEncuestador: "ENCUESTADOR",
}

var roleCodesByDisplay = map[string]RoleCode{
	"ADMIN":       RoleAdmin,
	"MONITOR":     RoleMonitor,
	"COORDINADOR": RoleCoordinador,
	"ENCUESTADOR": RoleEncuestador,
}

// DisplayName returns the frontend-facing role name. Unknown codes fall back
// to the lowest-privilege role.
func (c RoleCode) DisplayName() string {
	if name, ok := roleDisplayNames[c]; ok {
		return name
	}
	return roleDisplayNames[RoleEncuestador]
}

// RoleCodeFromDisplay is the inverse of DisplayName. Unknown names fall back
// to the lowest-privilege code.
func RoleCodeFromDisplay(name string) RoleCode {
	if code, ok := roleCodesByDisplay[name]; ok {
		return code
	}
	return RoleEncuestador
}
