package validators

import "testing"

func TestParseEmail(t *testing.T) {
	valid := []string{
		"maria@example.com",
		"maria.silva+agenda@clinica.com.br",
		"  MARIA@EXAMPLE.COM  ",
	}

	for _, in := range valid {
		if _, err := ParseEmail(in); err != nil {
			t.Errorf("ParseEmail(%q): %v", in, err)
		}
	}

	invalid := []string{
		"",
		"maria",
		"maria@",
		"@example.com",
		"maria@example",
		"maria silva@example.com",
	}

	for _, in := range invalid {
		if _, err := ParseEmail(in); err == nil {
			t.Errorf("ParseEmail(%q): esperava erro", in)
		}
	}
}

func TestParseEmailNormaliza(t *testing.T) {
	email, err := ParseEmail("  Maria@Example.COM ")
	if err != nil {
		t.Fatalf("ParseEmail: %v", err)
	}
	if email.String() != "maria@example.com" {
		t.Errorf("normalização errada: %q", email)
	}
}
