package intent

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "fenced json block",
			text: "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "fenced block without language tag",
			text: "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "object buried in prose",
			text: `Sure! The answer is {"a": 1} as requested.`,
			want: `{"a": 1}`,
		},
		{
			name: "plain object with whitespace",
			text: "  {\"a\": 1}\n",
			want: `{"a": 1}`,
		},
		{
			name: "no json at all returns trimmed text",
			text: "  nothing here  ",
			want: "nothing here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.text); got != tt.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
