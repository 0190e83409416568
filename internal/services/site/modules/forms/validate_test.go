package forms

import "testing"

func TestParseAmountCents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "12", want: 1200},
		{input: "12.5", want: 1250},
		{input: "12.50", want: 1250},
		{input: " 0.01 ", want: 1},
		{input: "0", wantErr: true},
		{input: "0.00", wantErr: true},
		{input: "-5", wantErr: true},
		{input: "1.234", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "", wantErr: true},
		{input: "92233720368547757.99", want: 9223372036854775799},
		{input: "92233720368547758", wantErr: true},
		{input: "184467440737095517", wantErr: true},
		{input: "184467440737095517.16", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseAmountCents(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseAmountCents(%q) error = nil, want error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseAmountCents(%q) error = %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseAmountCents(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestValidateContact(t *testing.T) {
	t.Parallel()

	if errs := ValidateContact(ContactInput{Name: "Ada", Email: "ada@example.com", Message: "Hi"}); len(errs) != 0 {
		t.Fatalf("ValidateContact(valid) = %v, want none", errs)
	}
	errs := ValidateContact(ContactInput{Email: "not-an-email", Message: " "})
	want := map[string]string{"name": errRequired, "email": errEmail, "message": errRequired}
	if len(errs) != len(want) {
		t.Fatalf("ValidateContact() = %v, want %v", errs, want)
	}
	for field, key := range want {
		if errs[field] != key {
			t.Fatalf("errs[%s] = %q, want %q", field, errs[field], key)
		}
	}
	if errs := ValidateContact(ContactInput{Name: "A", Email: "Ada <ada@example.com>", Message: "x"}); errs["email"] != errEmail {
		t.Fatalf("display-name address error = %q, want %q", errs["email"], errEmail)
	}
}

func TestValidateDonation(t *testing.T) {
	t.Parallel()

	valid := DonationInput{Name: "Ada", Email: "ada@example.com", Amount: "25", PaymentMethod: "paypal"}
	if errs := ValidateDonation(valid); len(errs) != 0 {
		t.Fatalf("ValidateDonation(valid) = %v, want none", errs)
	}

	tests := []struct {
		name  string
		input DonationInput
		field string
		key   string
	}{
		{name: "missing amount", input: DonationInput{Name: "A", Email: "a@example.com", PaymentMethod: "crypto"}, field: "amount", key: errRequired},
		{name: "bad amount", input: DonationInput{Name: "A", Email: "a@example.com", Amount: "ten", PaymentMethod: "crypto"}, field: "amount", key: errAmount},
		{name: "amount too large", input: DonationInput{Name: "A", Email: "a@example.com", Amount: "184467440737095517", PaymentMethod: "crypto"}, field: "amount", key: errAmount},
		{name: "missing method", input: DonationInput{Name: "A", Email: "a@example.com", Amount: "1"}, field: "paymentMethod", key: errRequired},
		{name: "unknown method", input: DonationInput{Name: "A", Email: "a@example.com", Amount: "1", PaymentMethod: "cash"}, field: "paymentMethod", key: errPayment},
		{name: "missing email", input: DonationInput{Name: "A", Amount: "1", PaymentMethod: "paypal"}, field: "email", key: errRequired},
	}
	for _, tc := range tests {
		errs := ValidateDonation(tc.input)
		if errs[tc.field] != tc.key {
			t.Fatalf("%s: errs[%s] = %q, want %q", tc.name, tc.field, errs[tc.field], tc.key)
		}
	}
}
