// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/dev-connector/models"
)

// renderBuildInfoWindow shows the client build and, once fetched, the
// build of the server.
func renderBuildInfoWindow(client models.AppBuildInfo, server *models.AppBuildInfo, serverErr error) string {
	var b strings.Builder

	b.WriteString("Application: DevConnector\n\n")
	b.WriteString("Client\n")
	writeBuildInfo(&b, client)

	b.WriteString("\nServer\n")
	switch {
	case serverErr != nil:
		b.WriteString("  ")
		b.WriteString(humanizeServerUnavailableError(serverErr))
		b.WriteString("\n")
	case server == nil:
		b.WriteString("  loading...\n")
	default:
		writeBuildInfo(&b, *server)
	}

	return renderPage("ABOUT", strings.TrimRight(b.String(), "\n"), "esc: back")
}

func writeBuildInfo(b *strings.Builder, info models.AppBuildInfo) {
	b.WriteString("  Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n  Date: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n  Commit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\n")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
