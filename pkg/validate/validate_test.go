package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/goldenaura/pkg/validate"
)

type registerInput struct {
	Name     string  `json:"name"     validate:"required,min=2,max=50"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Status   string  `json:"status"   validate:"required,in=pending,paid,cancelled"`
	LogoURL  string  `json:"logo_url" validate:"nullable,url"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret123",
		Price:    499.0,
		Status:   "paid",
		LogoURL:  "", // nullable — allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registerInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Rating int `json:"rating" validate:"required,gte=1,lte=5"`
	}
	if errs := validate.Struct(in{Rating: 7}); !validate.HasErrors(errs) {
		t.Error("expected rating > 5 to fail")
	}
	if errs := validate.Struct(in{Rating: 4}); validate.HasErrors(errs) {
		t.Errorf("expected rating 4 to pass, got: %v", errs)
	}
}

func TestGtRule(t *testing.T) {
	type in struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
	}
	if errs := validate.Struct(in{Amount: -1}); !validate.HasErrors(errs) {
		t.Error("expected negative amount to fail")
	}
	if errs := validate.Struct(in{Amount: 450}); validate.HasErrors(errs) {
		t.Errorf("expected positive amount to pass: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=pending,paid,processing,shipped,delivered,cancelled"`
	}
	if errs := validate.Struct(in{Status: "archived"}); !validate.HasErrors(errs) {
		t.Error("expected unknown status to fail")
	}
	if errs := validate.Struct(in{Status: "shipped"}); validate.HasErrors(errs) {
		t.Errorf("expected shipped to pass: %v", errs)
	}
}

func TestInRuleWithSpaces(t *testing.T) {
	type in struct {
		Type string `json:"type" validate:"nullable,in=Attar,Spray,Solid Perfume,Perfume Candle"`
	}
	if errs := validate.Struct(in{Type: "Solid Perfume"}); validate.HasErrors(errs) {
		t.Errorf("expected multi-word value to pass: %v", errs)
	}
	if errs := validate.Struct(in{Type: "Oil"}); !validate.HasErrors(errs) {
		t.Error("expected unknown type to fail")
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Website string `json:"website" validate:"nullable,url"`
	}
	// Empty string — nullable, should pass even though it's not a URL
	if errs := validate.Struct(in{Website: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	// Non-empty but invalid URL — should fail
	if errs := validate.Struct(in{Website: "not-a-url"}); !validate.HasErrors(errs) {
		t.Error("expected invalid URL to fail")
	}
}

func TestMinMaxOnStrings(t *testing.T) {
	type in struct {
		Title string `json:"title" validate:"required,min=2,max=10"`
	}
	if errs := validate.Struct(in{Title: "a"}); !validate.HasErrors(errs) {
		t.Error("expected one-char title to fail")
	}
	if errs := validate.Struct(in{Title: "this title is far too long"}); !validate.HasErrors(errs) {
		t.Error("expected oversize title to fail")
	}
	if errs := validate.Struct(in{Title: "Oud Royale"}); validate.HasErrors(errs) {
		t.Errorf("expected ten-char title to pass: %v", errs)
	}
}
