// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidator_MaxBytes(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		value   string
		rules   string
		wantErr bool
	}{
		{name: "ascii at limit", value: strings.Repeat("x", 72), rules: "maxbytes=72"},
		{name: "ascii over limit", value: strings.Repeat("x", 73), rules: "maxbytes=72", wantErr: true},
		{name: "multibyte at limit", value: strings.Repeat("é", 36), rules: "maxbytes=72"},
		{name: "multibyte over limit in bytes only", value: strings.Repeat("é", 37), rules: "maxbytes=72", wantErr: true},
		{name: "empty", value: "", rules: "maxbytes=72"},
		{name: "malformed param", value: "x", rules: "maxbytes=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.value, tt.rules)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
