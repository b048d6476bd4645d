package instrumentation

import "testing"

func TestMimeFamily(t *testing.T) {
	tests := []struct {
		mimeType string
		want     string
	}{
		{"application/vnd.google-apps.spreadsheet", MimeFamilyGoogleApps},
		{"application/vnd.google-apps.folder", MimeFamilyGoogleApps},
		{"text/markdown", MimeFamilyText},
		{"TEXT/PLAIN", MimeFamilyText},
		{"application/json", MimeFamilyText},
		{"image/png", MimeFamilyImage},
		{"application/pdf", MimeFamilyDocument},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", MimeFamilyDocument},
		{"application/msword", MimeFamilyDocument},
		{"application/zip", MimeFamilyArchive},
		{"application/octet-stream", MimeFamilyOther},
		{"", MimeFamilyOther},
	}

	for _, tt := range tests {
		t.Run(tt.mimeType, func(t *testing.T) {
			if got := MimeFamily(tt.mimeType); got != tt.want {
				t.Errorf("MimeFamily(%q) = %q, want %q", tt.mimeType, got, tt.want)
			}
		})
	}
}
