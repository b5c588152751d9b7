// internal/models/salary.go
package models

import (
	"encoding/json"
	"fmt"
)

// salaryNotApplicable is the wire sentinel used when the salary model
// could not produce a value.
const salaryNotApplicable = "N/A"

// Salary is either a predicted amount or the not-applicable sentinel.
// The zero value is the sentinel.
type Salary struct {
	Amount     float64
	Applicable bool
}

func SalaryOf(amount float64) Salary {
	return Salary{Amount: amount, Applicable: true}
}

func SalaryNotApplicable() Salary {
	return Salary{}
}

// MarshalJSON encodes the amount as a JSON number, or the "N/A" string
// when no amount is applicable.
func (s Salary) MarshalJSON() ([]byte, error) {
	if !s.Applicable {
		return json.Marshal(salaryNotApplicable)
	}
	return json.Marshal(s.Amount)
}

// UnmarshalJSON accepts a JSON number or the exact "N/A" sentinel.
// Any other value is a decode error.
func (s *Salary) UnmarshalJSON(data []byte) error {
	var amount float64
	if err := json.Unmarshal(data, &amount); err == nil {
		*s = Salary{Amount: amount, Applicable: true}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str == salaryNotApplicable {
			*s = Salary{}
			return nil
		}
		return fmt.Errorf("predicted_salary: unexpected value %q", str)
	}

	return fmt.Errorf("predicted_salary: expected number or %q, got %s", salaryNotApplicable, string(data))
}

func (s Salary) String() string {
	if !s.Applicable {
		return salaryNotApplicable
	}
	return fmt.Sprintf("%.2f", s.Amount)
}
