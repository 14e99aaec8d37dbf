package platform

import (
	"strings"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"https link", "https://www.youtube.com/watch?v=1IszT_guI08", "https://www.youtube.com/watch?v=1IszT_guI08", false},
		{"short link trimmed", "  https://youtu.be/abc123 \n", "https://youtu.be/abc123", false},
		{"http link", "http://example.com", "http://example.com", false},
		{"uppercase scheme", "HTTPS://example.com/x", "https://example.com/x", false},
		{"empty", "", "", true},
		{"whitespace", "   ", "", true},
		{"file scheme", "file:///etc/passwd", "", true},
		{"javascript scheme", "javascript:alert(1)", "", true},
		{"no scheme", "youtu.be/abc123", "", true},
		{"no host", "https://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if result != tt.expected {
				t.Errorf("ValidateURL(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestOpenURL_RejectsInvalidURL(t *testing.T) {
	if err := OpenURL("ftp://example.com/file"); err == nil {
		t.Error("Expected error for unsupported scheme, got nil")
	}
}

func TestBrowserCommand(t *testing.T) {
	tests := []struct {
		goos     string
		expected []string
	}{
		{OSDarwin, []string{OpenCommand, "https://youtu.be/abc123"}},
		{OSWindows, []string{RundllCommand, RundllURLParam, "https://youtu.be/abc123"}},
		{OSAndroid, []string{AndroidAMCmd, "start", "-a", AndroidViewIntent, "-d", "https://youtu.be/abc123"}},
	}

	for _, tt := range tests {
		cmd, err := browserCommand(tt.goos, "https://youtu.be/abc123")
		if err != nil {
			t.Fatalf("browserCommand(%s) returned error: %v", tt.goos, err)
		}
		if strings.Join(cmd.Args, " ") != strings.Join(tt.expected, " ") {
			t.Errorf("browserCommand(%s) args = %v, expected %v", tt.goos, cmd.Args, tt.expected)
		}
	}
}

func TestBrowserCommand_UnsupportedOS(t *testing.T) {
	_, err := browserCommand("plan9", "https://youtu.be/abc123")
	if err == nil {
		t.Fatal("Expected error for unsupported OS, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported operating system") {
		t.Errorf("Unexpected error: %v", err)
	}
}
