package tui

import (
	"context"

	"github.com/MKhiriev/dev-connector/internal/service"
	"github.com/MKhiriev/dev-connector/models"
)

func newExperienceList(ctx context.Context, profiles service.ClientProfileService) entryListModel {
	return newEntryListModel(ctx, entryExperience, []string{"Company", "Title", "Years"}, profiles.DeleteExperience)
}

func experienceRows(entries []models.Experience) []entryRow {
	rows := make([]entryRow, 0, len(entries))
	for _, exp := range entries {
		rows = append(rows, entryRow{
			id:   exp.ID,
			cols: []string{exp.Company, exp.Title, formatDateRange(exp.From, exp.To)},
		})
	}
	return rows
}
