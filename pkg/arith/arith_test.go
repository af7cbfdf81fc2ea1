package arith

import (
	"math"
	"strings"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       float64
	}{
		{"addition", "1+2", 3},
		{"precedence", "2+3*4", 14},
		{"parentheses", "(2+3)*4", 20},
		{"division", "10/4", 2.5},
		{"unary minus", "-5+3", -2},
		{"double unary", "--5", 5},
		{"decimals", "0.1+0.2", 0.3},
		{"spaces", "  1 +  2 * ( 3 - 1 ) ", 5},
		{"nested parens", "((1+2)*(3+4))", 21},
		{"chained subtraction", "10-3-2", 5},
		{"chained division", "100/5/2", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.expression)
			if err != nil {
				t.Fatalf("Eval(%q): %v", tt.expression, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Eval(%q) = %v, want %v", tt.expression, got, tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    string
	}{
		{"empty", "", "empty expression"},
		{"blank", "   ", "empty expression"},
		{"letters rejected", "1+a", "invalid character"},
		{"function call rejected", "pow(2,3)", "invalid character"},
		{"division by zero", "1/0", "division by zero"},
		{"division by zero in parens", "5/(3-3)", "division by zero"},
		{"trailing operator", "1+", "unexpected end"},
		{"missing close paren", "(1+2", "missing closing parenthesis"},
		{"dangling close paren", "1+2)", "unexpected character"},
		{"bare dot", "1+.", "invalid number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Eval(tt.expression)
			if err == nil {
				t.Fatalf("Eval(%q) succeeded, want error", tt.expression)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Eval(%q) error = %q, want substring %q", tt.expression, err, tt.wantErr)
			}
		})
	}
}
