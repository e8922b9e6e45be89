// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// notAvailable stands in for build metadata that was not injected by ldflags.
const notAvailable = "N/A"

// AppBuildInfo is the version, date and commit a binary was built from. The
// server reports it on GET /api/version; the client shows both sides.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

type appBuildInfoJSON struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// WithDefaults replaces every empty value with "N/A".
func (a AppBuildInfo) WithDefaults() AppBuildInfo {
	orNA := func(s string) string {
		if s == "" {
			return notAvailable
		}
		return s
	}
	return NewAppBuildInfo(orNA(a.buildVersion), orNA(a.buildDate), orNA(a.buildCommit))
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		a.buildVersion, a.buildDate, a.buildCommit)
}

func (a AppBuildInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(appBuildInfoJSON{
		Version: a.buildVersion,
		Date:    a.buildDate,
		Commit:  a.buildCommit,
	})
}

func (a *AppBuildInfo) UnmarshalJSON(data []byte) error {
	var v appBuildInfoJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*a = NewAppBuildInfo(v.Version, v.Date, v.Commit)
	return nil
}
