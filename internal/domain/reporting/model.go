package reporting

import "time"

// Chart colors used by the dashboard, keyed by severity level.
var levelColors = map[int]string{
	1: "#DC2626",
	2: "#F97316",
	3: "#FACC15",
	4: "#22C55E",
	5: "#3B82F6",
}

const defaultColor = "#6B7280"

var sexNames = map[string]string{
	"M":  "Masculino",
	"F":  "Femenino",
	"NA": "No Aplica",
}

var stateNames = map[string]string{
	"EN_ESPERA":   "En Espera",
	"EN_ATENCION": "En Atención",
	"ATENDIDO":    "Atendido",
	"ABANDONO":    "Abandono",
}

type ageBand struct {
	Min   int
	Max   int
	Label string
}

// Pediatric-weighted age bands.
var ageBands = []ageBand{
	{0, 1, "Lactantes (0-1 años)"},
	{2, 5, "Preescolares (2-5 años)"},
	{6, 11, "Escolares (6-11 años)"},
	{12, 17, "Adolescentes (12-17 años)"},
	{18, 39, "Adultos jóvenes (18-39 años)"},
	{40, 64, "Adultos (40-64 años)"},
	{65, 120, "Adultos mayores (65+ años)"},
}

type LevelStat struct {
	Level      int     `json:"level"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
	Name       string  `json:"name"`
}

type SexStat struct {
	Sex        string  `json:"sex"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Name       string  `json:"name"`
}

type AgeBandStat struct {
	Band       string  `json:"band"`
	AgeMin     int     `json:"age_min"`
	AgeMax     int     `json:"age_max"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type StateStat struct {
	State      string  `json:"state"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Name       string  `json:"name"`
}

// Report is the aggregate snapshot served to the dashboard.
type Report struct {
	TotalPatients int                `json:"total_patients"`
	GeneratedAt   time.Time          `json:"generated_at"`
	From          time.Time          `json:"period_from"`
	To            time.Time          `json:"period_to"`
	Levels        []LevelStat        `json:"level_distribution"`
	Sexes         []SexStat          `json:"sex_distribution"`
	AgeBands      []AgeBandStat      `json:"age_distribution"`
	WaitMinutes   map[string]float64 `json:"avg_wait_minutes_by_level"`
	States        []StateStat        `json:"state_distribution"`
}

// ExportRow is one line of the patient CSV export. Only patients with a
// completed triage session are exported.
type ExportRow struct {
	PatientID        string
	FirstName        string
	MiddleName       string
	LastName         string
	SecondLastName   string
	BirthDate        time.Time
	DocumentType     string
	DocumentNumber   string
	Sex              string
	Phone            string
	EPS              string
	Regimen          string
	Level            *int
	AttentionState   string
	InitialSymptoms  string
	SessionStart     time.Time
	SessionEnd       *time.Time
	EmergencyContact string
	EmergencyPhone   string
}
