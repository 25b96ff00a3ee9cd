package main

import (
	"testing"
)

func TestColorMode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		want    colorMode
	}{
		{
			name:  "auto",
			value: "auto",
			want:  colorAuto,
		},
		{
			name:  "always",
			value: "always",
			want:  colorAlways,
		},
		{
			name:  "never",
			value: "never",
			want:  colorNever,
		},
		{
			name:    "invalid value",
			value:   "invalid",
			wantErr: true,
		},
		{
			name:    "empty string",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c colorMode
			err := c.Set(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if !tt.wantErr && c != tt.want {
				t.Errorf("Set(%q) = %v, want %v", tt.value, c, tt.want)
			}
		})
	}
}

func TestPreRunValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		globs   []string
		jobs    int
		wantErr bool
	}{
		{
			name: "datetime arguments",
			args: []string{"2015-03-04"},
			jobs: 10,
		},
		{
			name:  "file globs only",
			globs: []string{"*.txt"},
			jobs:  10,
		},
		{
			name:    "no inputs at all",
			jobs:    10,
			wantErr: true,
		},
		{
			name:    "jobs too low",
			args:    []string{"2015-03-04"},
			jobs:    0,
			wantErr: true,
		},
		{
			name:    "jobs too high",
			args:    []string{"2015-03-04"},
			jobs:    101,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fileGlobs = tt.globs
			jobs = tt.jobs
			t.Cleanup(func() {
				fileGlobs = nil
				jobs = 10
			})

			err := rootCmd.PreRunE(rootCmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("PreRunE error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
