package tui

import (
	"context"

	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/models"
)

// newEducationList builds the education section of the dashboard. Each row
// shows the school, the degree and the date range, with "Now" in place of a
// missing end date.
func newEducationList(ctx context.Context, profiles service.ClientProfileService) entryListModel {
	return newEntryListModel(ctx, entryEducation, []string{"School", "Degree", "Years"}, profiles.DeleteEducation)
}

func educationRows(entries []models.Education) []entryRow {
	rows := make([]entryRow, 0, len(entries))
	for _, edu := range entries {
		rows = append(rows, entryRow{
			id:   edu.ID,
			cols: []string{edu.School, edu.Degree, formatDateRange(edu.From, edu.To)},
		})
	}
	return rows
}
