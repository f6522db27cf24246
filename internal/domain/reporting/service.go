package reporting

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/prioritycare/pretriage/internal/domain/classify"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Build assembles the dashboard report for patients registered in [from, to].
func (s *Service) Build(ctx context.Context, from, to time.Time) (*Report, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("period end before start")
	}

	levels, err := s.repo.LevelCounts(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("level counts: %w", err)
	}
	sexes, err := s.repo.SexCounts(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("sex counts: %w", err)
	}
	states, err := s.repo.StateCounts(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("state counts: %w", err)
	}
	birthDates, err := s.repo.PatientBirthDates(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("birth dates: %w", err)
	}
	waits, err := s.repo.AvgMinutesByLevel(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("wait times: %w", err)
	}

	report := &Report{
		TotalPatients: len(birthDates),
		GeneratedAt:   time.Now(),
		From:          from,
		To:            to,
		Levels:        levelStats(levels),
		Sexes:         sexStats(sexes),
		AgeBands:      ageBandStats(birthDates, time.Now()),
		WaitMinutes:   waitStats(waits),
		States:        stateStats(states),
	}
	return report, nil
}

func levelStats(counts map[int]int) []LevelStat {
	total := 0
	for _, n := range counts {
		total += n
	}
	var out []LevelStat
	for level := 1; level <= 5; level++ {
		n, ok := counts[level]
		if !ok {
			continue
		}
		color, ok := levelColors[level]
		if !ok {
			color = defaultColor
		}
		out = append(out, LevelStat{
			Level:      level,
			Count:      n,
			Percentage: percent(n, total),
			Color:      color,
			Name:       classify.Label(level),
		})
	}
	return out
}

func sexStats(counts map[string]int) []SexStat {
	total := 0
	for _, n := range counts {
		total += n
	}
	var out []SexStat
	for _, sex := range sortedKeys(counts) {
		name, ok := sexNames[sex]
		if !ok {
			name = sex
		}
		out = append(out, SexStat{
			Sex:        sex,
			Count:      counts[sex],
			Percentage: percent(counts[sex], total),
			Name:       name,
		})
	}
	return out
}

func stateStats(counts map[string]int) []StateStat {
	total := 0
	for _, n := range counts {
		total += n
	}
	var out []StateStat
	for _, state := range sortedKeys(counts) {
		name, ok := stateNames[state]
		if !ok {
			name = state
		}
		out = append(out, StateStat{
			State:      state,
			Count:      counts[state],
			Percentage: percent(counts[state], total),
			Name:       name,
		})
	}
	return out
}

func ageBandStats(birthDates []time.Time, now time.Time) []AgeBandStat {
	total := len(birthDates)
	var out []AgeBandStat
	for _, band := range ageBands {
		n := 0
		for _, d := range birthDates {
			age := yearsBetween(d, now)
			if age >= band.Min && age <= band.Max {
				n++
			}
		}
		if n == 0 {
			continue
		}
		out = append(out, AgeBandStat{
			Band:       band.Label,
			AgeMin:     band.Min,
			AgeMax:     band.Max,
			Count:      n,
			Percentage: percent(n, total),
		})
	}
	return out
}

func waitStats(avg map[int]float64) map[string]float64 {
	out := make(map[string]float64, len(avg))
	for level, minutes := range avg {
		out[fmt.Sprintf("%d", level)] = math.Round(minutes*100) / 100
	}
	return out
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*10000) / 100
}

func yearsBetween(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var csvHeaders = []string{
	"ID", "Primer Nombre", "Segundo Nombre", "Primer Apellido", "Segundo Apellido",
	"Edad", "Tipo Documento", "Número Documento", "Sexo", "Teléfono",
	"EPS", "Régimen EPS", "Nivel ESI", "Estado Atención", "Síntomas Iniciales",
	"Fecha Llegada", "Fecha Fin Triage", "Tiempo Total (min)",
	"Contacto Emergencia", "Teléfono Emergencia",
}

// WriteCSV streams the patient export in CSV form.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.repo.ExportRows(ctx)
	if err != nil {
		return fmt.Errorf("export rows: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}
	now := time.Now()
	for _, r := range rows {
		level := "Sin clasificar"
		if r.Level != nil {
			level = classify.Label(*r.Level)
		}
		state, ok := stateNames[r.AttentionState]
		if !ok {
			state = r.AttentionState
		}
		end, totalMinutes := "", ""
		if r.SessionEnd != nil {
			end = r.SessionEnd.Format("2006-01-02 15:04:05")
			totalMinutes = fmt.Sprintf("%.1f", r.SessionEnd.Sub(r.SessionStart).Minutes())
		}
		record := []string{
			r.PatientID,
			r.FirstName, r.MiddleName, r.LastName, r.SecondLastName,
			fmt.Sprintf("%d", yearsBetween(r.BirthDate, now)),
			r.DocumentType, r.DocumentNumber, r.Sex, r.Phone,
			r.EPS, r.Regimen, level, state, r.InitialSymptoms,
			r.SessionStart.Format("2006-01-02 15:04:05"), end, totalMinutes,
			r.EmergencyContact, r.EmergencyPhone,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
