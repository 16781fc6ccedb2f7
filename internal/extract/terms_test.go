package extract

import "testing"

func TestFindPaymentTerms(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string // "" means nil
	}{
		{
			name:  "single match",
			lines: []string{"Invoice INV-1", "Payment is due within 15 days of invoice", "Thank you"},
			want:  "Payment is due within 15 days of invoice",
		},
		{
			name:  "case insensitive keyword",
			lines: []string{"NET 30 days"},
			want:  "NET 30 days",
		},
		{
			name: "multiple matches joined in order",
			lines: []string{
				"Terms: Net 30",
				"Total: 100.00",
				"A late payment penalty of 2% applies",
			},
			want: "Terms: Net 30 A late payment penalty of 2% applies",
		},
		{
			name:  "no match",
			lines: []string{"Invoice INV-1", "Total: 100.00"},
			want:  "",
		},
		{
			name:  "empty input",
			lines: nil,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindPaymentTerms(tt.lines)
			if tt.want == "" {
				if got != nil {
					t.Fatalf("got %q, want nil", *got)
				}
				return
			}
			if got == nil || *got != tt.want {
				t.Fatalf("got %v, want %q", got, tt.want)
			}
		})
	}
}
