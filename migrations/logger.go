// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-validation/internal/logger"
)

// gooseLogger sends goose progress output to the application logger.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.log.Info().Str("func", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.log.Fatal().Str("func", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
