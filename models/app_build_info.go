// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// NotAvailable is shown for build metadata that was not injected at link time.
const NotAvailable = "N/A"

// AppBuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags, served by GET /api/version and shown
// on the client's about page.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values become [NotAvailable].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

type appBuildInfoJSON struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
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

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
