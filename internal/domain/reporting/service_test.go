package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"
)

type mockRepo struct {
	levels     map[int]int
	sexes      map[string]int
	states     map[string]int
	birthDates []time.Time
	waits      map[int]float64
	rows       []*ExportRow
}

func (m *mockRepo) LevelCounts(context.Context, time.Time, time.Time) (map[int]int, error) {
	return m.levels, nil
}
func (m *mockRepo) SexCounts(context.Context, time.Time, time.Time) (map[string]int, error) {
	return m.sexes, nil
}
func (m *mockRepo) StateCounts(context.Context, time.Time, time.Time) (map[string]int, error) {
	return m.states, nil
}
func (m *mockRepo) PatientBirthDates(context.Context, time.Time, time.Time) ([]time.Time, error) {
	return m.birthDates, nil
}
func (m *mockRepo) AvgMinutesByLevel(context.Context, time.Time, time.Time) (map[int]float64, error) {
	return m.waits, nil
}
func (m *mockRepo) ExportRows(context.Context) ([]*ExportRow, error) {
	return m.rows, nil
}

func TestBuildReport(t *testing.T) {
	now := time.Now()
	repo := &mockRepo{
		levels: map[int]int{1: 1, 3: 2, 5: 1},
		sexes:  map[string]int{"F": 3, "M": 1},
		states: map[string]int{"EN_ESPERA": 2, "ATENDIDO": 2},
		birthDates: []time.Time{
			now.AddDate(-1, 0, 0),
			now.AddDate(-30, 0, 0),
			now.AddDate(-45, 0, 0),
			now.AddDate(-70, 0, 0),
		},
		waits: map[int]float64{1: 4.236, 3: 12.5},
	}
	svc := NewService(repo)

	report, err := svc.Build(context.Background(), now.AddDate(0, 0, -7), now)
	if err != nil {
		t.Fatal(err)
	}

	if report.TotalPatients != 4 {
		t.Errorf("total = %d, want 4", report.TotalPatients)
	}
	if len(report.Levels) != 3 {
		t.Fatalf("level stats = %d, want 3", len(report.Levels))
	}
	if report.Levels[0].Level != 1 || report.Levels[0].Percentage != 25 {
		t.Errorf("ESI 1 stat = %+v", report.Levels[0])
	}
	if report.Levels[1].Level != 3 || report.Levels[1].Count != 2 || report.Levels[1].Percentage != 50 {
		t.Errorf("ESI 3 stat = %+v", report.Levels[1])
	}
	if report.Levels[0].Color != "#DC2626" || report.Levels[0].Name != "ESI 1" {
		t.Errorf("ESI 1 presentation = %+v", report.Levels[0])
	}

	if len(report.Sexes) != 2 || report.Sexes[0].Sex != "F" || report.Sexes[0].Percentage != 75 {
		t.Errorf("sex stats = %+v", report.Sexes)
	}
	if report.Sexes[0].Name != "Femenino" {
		t.Errorf("sex name = %q", report.Sexes[0].Name)
	}

	bands := map[string]int{}
	for _, b := range report.AgeBands {
		bands[b.Band] = b.Count
	}
	if bands["Lactantes (0-1 años)"] != 1 {
		t.Errorf("infant band = %d, want 1", bands["Lactantes (0-1 años)"])
	}
	if bands["Adultos mayores (65+ años)"] != 1 {
		t.Errorf("elderly band = %d, want 1", bands["Adultos mayores (65+ años)"])
	}

	if report.WaitMinutes["1"] != 4.24 {
		t.Errorf("wait minutes ESI 1 = %v, want 4.24", report.WaitMinutes["1"])
	}
}

func TestBuildReportBadPeriod(t *testing.T) {
	svc := NewService(&mockRepo{})
	now := time.Now()
	if _, err := svc.Build(context.Background(), now, now.AddDate(0, 0, -1)); err == nil {
		t.Fatal("expected error for inverted period")
	}
}

func TestWriteCSV(t *testing.T) {
	start := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(7*time.Minute + 30*time.Second)
	level := 2
	repo := &mockRepo{rows: []*ExportRow{{
		PatientID:        "a1b2",
		FirstName:        "María",
		LastName:         "Gómez",
		BirthDate:        time.Date(1985, 3, 12, 0, 0, 0, 0, time.UTC),
		DocumentType:     "CC",
		DocumentNumber:   "1032456789",
		Sex:              "F",
		Phone:            "+573001234567",
		EPS:              "SURA",
		Regimen:          "REGIMEN_CONTRIBUTIVO",
		Level:            &level,
		AttentionState:   "EN_ESPERA",
		InitialSymptoms:  "Dolor torácico",
		SessionStart:     start,
		SessionEnd:       &end,
		EmergencyContact: "Carlos Gómez",
		EmergencyPhone:   "+573109876543",
	}}}
	svc := NewService(repo)

	var buf bytes.Buffer
	if err := svc.WriteCSV(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want header + 1 row", len(records))
	}
	if records[0][0] != "ID" || records[0][12] != "Nivel ESI" {
		t.Errorf("headers = %v", records[0])
	}
	row := records[1]
	if row[12] != "ESI 2" {
		t.Errorf("level cell = %q", row[12])
	}
	if row[13] != "En Espera" {
		t.Errorf("state cell = %q", row[13])
	}
	if row[17] != "7.5" {
		t.Errorf("total minutes = %q", row[17])
	}
	if !strings.Contains(row[15], "2026-02-10 09:00:00") {
		t.Errorf("start cell = %q", row[15])
	}
}

func TestWriteCSVUnclassified(t *testing.T) {
	repo := &mockRepo{rows: []*ExportRow{{
		PatientID:      "x",
		FirstName:      "Ana",
		LastName:       "Ruiz",
		BirthDate:      time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		AttentionState: "ABANDONO",
		SessionStart:   time.Now(),
	}}}
	svc := NewService(repo)

	var buf bytes.Buffer
	if err := svc.WriteCSV(context.Background(), &buf); err != nil {
		t.Fatal(err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	row := records[1]
	if row[12] != "Sin clasificar" {
		t.Errorf("level cell = %q", row[12])
	}
	if row[16] != "" || row[17] != "" {
		t.Errorf("end/total for open session = %q, %q", row[16], row[17])
	}
}
