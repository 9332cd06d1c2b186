package main

import "testing"

func TestValidArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"no args", nil, false},
		{"one path", []string{"schedule.ics"}, true},
		{"two paths", []string{"a.ics", "b.ics"}, false},
		{"help short", []string{"-h"}, false},
		{"help long", []string{"--help"}, false},
		{"help uppercase", []string{"-HELP"}, false},
		{"help prefix", []string{"--horsefeathers"}, false},
		{"dash path is not help", []string{"-schedule.ics"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := validArgs(tc.args); got != tc.want {
				t.Errorf("validArgs(%q) = %v, want %v", tc.args, got, tc.want)
			}
		})
	}
}
