package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{VAL, "val"},
		{FUN, "fun"},
		{ARROW, "->"},
		{DARROW, "=>"},
		{IDENT, "IDENT"},
		{EOF, "EOF"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindClassification(t *testing.T) {
	if !VAL.IsKeyword() {
		t.Error("VAL should be a keyword")
	}
	if IDENT.IsKeyword() {
		t.Error("IDENT should not be a keyword")
	}
	if !INT.IsLiteral() {
		t.Error("INT should be a literal")
	}
	if !LPAREN.IsPunctuation() {
		t.Error("LPAREN should be punctuation")
	}
	if VAL.IsPunctuation() {
		t.Error("VAL should not be punctuation")
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident   string
		want    Kind
		wantOk  bool
	}{
		{"val", VAL, true},
		{"fun", FUN, true},
		{"andalso", ANDALSO, true},
		{"foo", ILLEGAL, false},
		{"Value", ILLEGAL, false},
	}

	for _, tt := range tests {
		got, ok := LookupKeyword(tt.ident)
		if ok != tt.wantOk {
			t.Errorf("LookupKeyword(%q) ok = %v, want %v", tt.ident, ok, tt.wantOk)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestPositionString(t *testing.T) {
	p := Position{Source: "a.sml", Line: 3, Column: 5}
	if got, want := p.String(), "a.sml:3:5"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}

	anon := Position{Line: 1, Column: 1}
	if got, want := anon.String(), "1:1"; got != want {
		t.Errorf("Position.String() = %q, want %q", got, want)
	}
}

func TestTokenIs(t *testing.T) {
	tok := Token{Kind: VAL, Literal: "val"}
	if !tok.Is(VAL) {
		t.Error("expected token to be VAL")
	}
	if !tok.IsAny(FUN, VAL, TYPE) {
		t.Error("expected IsAny to match VAL")
	}
	if tok.IsAny(FUN, TYPE) {
		t.Error("did not expect IsAny to match")
	}
}
