package main

import "testing"

func TestSourceURL(t *testing.T) {
	const base = "git::https://github.com/Auburn/FastNoiseLite.git"
	tests := []struct {
		subdir, ref, want string
	}{
		{"", "", base},
		{"Cpp", "", base + "//Cpp"},
		{"", "v1.1.1", base + "?ref=v1.1.1"},
		{"C", "master", base + "//C?ref=master"},
	}
	for _, tt := range tests {
		if got := sourceURL(base, tt.subdir, tt.ref); got != tt.want {
			t.Errorf("sourceURL(%q, %q) = %q, want %q", tt.subdir, tt.ref, got, tt.want)
		}
	}
}
