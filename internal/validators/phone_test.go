package validators

import "testing"

func TestParsePhone(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"11988887777", "11988887777", false},
		{"(11) 98888-7777", "11988887777", false},
		{"+55 11 98888-7777", "5511988887777", false},
		{"11 3333-4444", "1133334444", false},
		{"123", "", true},
		{"", "", true},
		{"telefone", "", true},
		{"123456789012345678901", "", true}, // 21 dígitos
	}

	for _, tc := range cases {
		got, err := ParsePhone(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePhone(%q): esperava erro", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePhone(%q): %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("ParsePhone(%q) = %q, esperava %q", tc.in, got, tc.want)
		}
	}
}
