package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWantsAutoMigrate(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{"--verbose"}, false},
		{[]string{"--auto-migrate"}, true},
		{[]string{"serve", " -M "}, true},
		{[]string{"--AUTO-MIGRATE"}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, wantsAutoMigrate(tt.args), "%v", tt.args)
	}
}
