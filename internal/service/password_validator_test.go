package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "qaforum/internal/errors"
)

func TestPasswordValidator_Validate(t *testing.T) {
	v := NewPasswordValidator()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "Aa1!aaaa", wantErr: false},
		{name: "valid with all symbol classes", password: "abc123@$!", wantErr: false},
		{name: "too short", password: "Aa1!aaa", wantErr: true},
		{name: "no digit", password: "Aaaa!aaa", wantErr: true},
		{name: "no letter", password: "12345678!", wantErr: true},
		{name: "no symbol", password: "Aa1aaaaa", wantErr: true},
		{name: "disallowed symbol", password: "Aa1#aaaa", wantErr: true},
		{name: "empty", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
