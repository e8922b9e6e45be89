// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the merged server [StructuredConfig] can start the
// API: a database, a token sign key, a listen address and a known comment
// removal mode are required.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}
	if cfg.Auth.PasswordHashCost < bcrypt.MinCost || cfg.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAuthConfigs, cfg.Auth.PasswordHashCost)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	switch cfg.Posts.CommentRemoval {
	case CommentRemovalLegacy, CommentRemovalStrict:
	default:
		return fmt.Errorf("%w: unknown comment removal mode %q", ErrInvalidPostsConfigs, cfg.Posts.CommentRemoval)
	}
	if cfg.Posts.TextMaxLength <= 0 {
		return ErrInvalidPostsConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
