// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidContact        = errors.New("invalid contact")
	ErrContactAlreadyExists  = errors.New("contact with this telephone already exists")
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
