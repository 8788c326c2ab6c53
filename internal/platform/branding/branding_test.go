package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName != "Metrika" {
		t.Fatalf("AppName = %q, want %q", AppName, "Metrika")
	}
}
