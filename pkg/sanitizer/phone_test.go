package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid E.164 format",
			input: "+48601234567",
			want:  "+48601234567",
		},
		{
			name:  "with spaces",
			input: "+48 601 234 567",
			want:  "+48601234567",
		},
		{
			name:  "with dashes",
			input: "+48-601-234-567",
			want:  "+48601234567",
		},
		{
			name:  "national format without prefix",
			input: "601 234 567",
			want:  "+48601234567",
		},
		{
			name:  "foreign number",
			input: "+49 151 23456789",
			want:  "+4915123456789",
		},
		{
			name:  "leading and trailing spaces",
			input: "  +48601234567  ",
			want:  "+48601234567",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   ",
			want:  "",
		},
		{
			name:  "unparseable kept as typed",
			input: "zadzwon wieczorem",
			want:  "zadzwon wieczorem",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
