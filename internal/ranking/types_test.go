package ranking

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParsePersona(t *testing.T) {
	tests := []struct {
		in      string
		want    Persona
		wantErr bool
	}{
		{"Gaming", PersonaGaming, false},
		{"gamer", PersonaGaming, false},
		{" creative ", PersonaCreative, false},
		{"PROGRAMMING", PersonaProgramming, false},
		{"developer", PersonaProgramming, false},
		{"student", PersonaStudent, false},
		{"Portable", PersonaPortable, false},
		{"business", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePersona(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePersona(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParsePersona(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPersona_RoundTripName(t *testing.T) {
	for _, p := range Personas() {
		got, err := ParsePersona(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePersona(%q) = %v, %v", p.String(), got, err)
		}
	}
}

func TestPersona_JSON(t *testing.T) {
	var v struct {
		Persona Persona `json:"persona"`
	}
	if err := json.Unmarshal([]byte(`{"persona":"student"}`), &v); err != nil {
		t.Fatal(err)
	}
	if v.Persona != PersonaStudent {
		t.Errorf("Persona = %v, want Student", v.Persona)
	}
	out, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"persona":"Student"}` {
		t.Errorf("Marshal = %s", out)
	}
	if err := json.Unmarshal([]byte(`{"persona":"wizard"}`), &v); err == nil {
		t.Error("expected error for unknown persona")
	}
}

func TestPersona_Weights(t *testing.T) {
	for _, p := range Personas() {
		w := p.Weights()
		var positive float64
		for _, d := range Dimensions() {
			if w.For(d) < 0 {
				t.Errorf("%s: negative weight for %s", p, d)
			}
			positive += w.For(d)
		}
		if positive > 1.0+1e-9 {
			t.Errorf("%s: positive weights sum to %v, want <= 1", p, positive)
		}
		if w.PricePenalty <= 0 {
			t.Errorf("%s: expected a price penalty weight", p)
		}
		if math.Abs(positive+w.PricePenalty-1.0) > 1e-9 {
			t.Errorf("%s: weights plus penalty sum to %v, want 1", p, positive+w.PricePenalty)
		}
	}
	if got := PersonaStudent.Weights().PricePenalty; got != 0.30 {
		t.Errorf("Student price penalty = %v, want 0.30", got)
	}
	if got := PersonaGaming.Weights().For(DimensionGPU); got != 0.40 {
		t.Errorf("Gaming gpu weight = %v, want 0.40", got)
	}
}

func TestDimension_String(t *testing.T) {
	want := []string{"gpu", "cpu", "ram", "storage", "battery", "weight", "screen"}
	for i, d := range Dimensions() {
		if d.String() != want[i] {
			t.Errorf("Dimensions()[%d].String() = %q, want %q", i, d.String(), want[i])
		}
	}
}
