// ABOUTME: Export and import functionality for the activity ledger.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package ledger

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/mtendies/ledger/internal/models"
)

// ExportData is the full export format for the ledger.
type ExportData struct {
	Version    string             `json:"version" yaml:"version"`
	ExportedAt time.Time          `json:"exported_at" yaml:"exported_at"`
	Tool       string             `json:"tool" yaml:"tool"`
	Activities []*models.Activity `json:"activities" yaml:"activities"`
}

// ExportJSON exports the whole collection as JSON, suitable for backup
// and restore.
func (l *Ledger) ExportJSON() ([]byte, error) {
	data := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "ledger",
		Activities: l.List(),
	}
	return json.MarshalIndent(data, "", "  ")
}

// yamlActivity is the YAML-friendly projection of one activity.
type yamlActivity struct {
	ID      string   `yaml:"id"`
	Date    string   `yaml:"date"`
	WeekOf  string   `yaml:"week_of"`
	SubType string   `yaml:"sub_type,omitempty"`
	Source  string   `yaml:"source"`
	Summary string   `yaml:"summary,omitempty"`
	RawText string   `yaml:"raw_text,omitempty"`
	Details []string `yaml:"details,omitempty"`
}

// ExportYAML exports the collection as YAML, grouped by activity type.
func (l *Ledger) ExportYAML() ([]byte, error) {
	grouped := make(map[string][]yamlActivity)
	for _, a := range l.List() {
		grouped[string(a.Type)] = append(grouped[string(a.Type)], yamlActivity{
			ID:      models.ShortID(a.ID),
			Date:    a.Date,
			WeekOf:  a.WeekOf,
			SubType: string(a.SubType),
			Source:  string(a.Source),
			Summary: a.Summary,
			RawText: a.RawText,
			Details: dataDetails(a),
		})
	}

	out := struct {
		Version    string                    `yaml:"version"`
		ExportedAt string                    `yaml:"exported_at"`
		Tool       string                    `yaml:"tool"`
		Activities map[string][]yamlActivity `yaml:"activities"`
	}{
		Version:    "1.0",
		ExportedAt: time.Now().Format(time.RFC3339),
		Tool:       "ledger",
		Activities: grouped,
	}
	return yaml.Marshal(out)
}

// dataDetails flattens the set data-bag fields into display strings.
func dataDetails(a *models.Activity) []string {
	var out []string
	d := a.Data
	if d.Distance != nil {
		out = append(out, fmt.Sprintf("distance: %s", fmtNum(*d.Distance)))
	}
	if d.Duration != nil {
		out = append(out, fmt.Sprintf("duration: %s min", fmtNum(*d.Duration)))
	}
	if d.Pace != nil {
		out = append(out, fmt.Sprintf("pace: %s", *d.Pace))
	}
	if d.Weight != nil {
		out = append(out, fmt.Sprintf("weight: %s lbs", fmtNum(*d.Weight)))
	}
	if d.Exercise != nil {
		out = append(out, fmt.Sprintf("exercise: %s", *d.Exercise))
	}
	if d.Feeling != nil {
		out = append(out, fmt.Sprintf("feeling: %s", *d.Feeling))
	}
	if d.Quality != nil {
		out = append(out, fmt.Sprintf("quality: %s", *d.Quality))
	}
	if d.Hours != nil {
		out = append(out, fmt.Sprintf("hours: %s", fmtNum(*d.Hours)))
	}
	if d.PR != nil && *d.PR {
		if d.PRValue != nil {
			out = append(out, fmt.Sprintf("PR: %s", *d.PRValue))
		} else {
			out = append(out, "PR")
		}
	}
	if d.HitProteinGoal != nil {
		out = append(out, fmt.Sprintf("hit protein goal: %t", *d.HitProteinGoal))
	}
	if d.Calories != nil {
		out = append(out, fmt.Sprintf("calories: %s", fmtNum(*d.Calories)))
	}
	if d.Protein != nil {
		out = append(out, fmt.Sprintf("protein: %sg", fmtNum(*d.Protein)))
	}
	if d.Notes != nil && *d.Notes != "" {
		out = append(out, fmt.Sprintf("notes: %s", *d.Notes))
	}
	return out
}

// ExportMarkdown renders the collection as Markdown tables grouped by
// week, most recent week first. An empty activityType exports all types;
// since limits the export to activities on or after that date.
func (l *Ledger) ExportMarkdown(activityType string, since *time.Time) (string, error) {
	activities := l.List()

	byWeek := make(map[string][]*models.Activity)
	var weeks []string
	for _, a := range activities {
		if activityType != "" && activityType != "all" && string(a.Type) != activityType {
			continue
		}
		if since != nil && a.Timestamp.Before(*since) {
			continue
		}
		if _, seen := byWeek[a.WeekOf]; !seen {
			weeks = append(weeks, a.WeekOf)
		}
		byWeek[a.WeekOf] = append(byWeek[a.WeekOf], a)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(weeks)))

	var b strings.Builder
	b.WriteString("# Activity Ledger\n\n")
	b.WriteString(fmt.Sprintf("Exported: %s\n\n", time.Now().Format("2006-01-02 15:04")))

	if len(weeks) == 0 {
		b.WriteString("No activities found.\n")
		return b.String(), nil
	}

	for _, week := range weeks {
		b.WriteString(fmt.Sprintf("## Week of %s\n\n", week))
		b.WriteString("| Date | Type | Sub-type | Summary | Details |\n")
		b.WriteString("|------|------|----------|---------|--------|\n")
		for _, a := range Chronological(byWeek[week]) {
			summary := a.Summary
			if summary == "" {
				summary = a.RawText
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
				a.Date, a.Type, a.SubType,
				escapeMarkdown(summary),
				escapeMarkdown(strings.Join(dataDetails(a), ", "))))
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}

// ImportJSON restores activities from a previously exported JSON backup.
// Activities with malformed ids, or ids that already exist, are rejected.
func (l *Ledger) ImportJSON(data []byte) error {
	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		return fmt.Errorf("parse import data: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	existing := l.load()
	seen := make(map[string]bool, len(existing))
	for _, a := range existing {
		seen[a.ID] = true
	}
	for _, a := range export.Activities {
		if _, err := uuid.Parse(a.ID); err != nil {
			return fmt.Errorf("invalid activity id %q: %w", a.ID, err)
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate activity id: %s", a.ID)
		}
		seen[a.ID] = true
	}

	merged := append(export.Activities, existing...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})
	return l.persist(merged)
}
