package layout

import "fmt"

// Constraint describes how much of the available extent one output region
// should receive. The marker method keeps the set of kinds closed.
type Constraint interface {
	constraint()
	fmt.Stringer
}

// Length allocates exactly Value cells.
type Length struct{ Value int }

func (Length) constraint() {}

func (c Length) String() string { return fmt.Sprintf("Length(%d)", c.Value) }

// Percentage allocates Value percent of the available extent. Values
// outside 0-100 are clamped.
type Percentage struct{ Value int }

func (Percentage) constraint() {}

func (c Percentage) String() string { return fmt.Sprintf("Percentage(%d)", c.Value) }

// Ratio allocates Num/Den of the available extent. A non-positive
// denominator allocates nothing.
type Ratio struct{ Num, Den int }

func (Ratio) constraint() {}

func (c Ratio) String() string { return fmt.Sprintf("Ratio(%d/%d)", c.Num, c.Den) }

// Min allocates at least Value cells and grows to absorb spare extent.
type Min struct{ Value int }

func (Min) constraint() {}

func (c Min) String() string { return fmt.Sprintf("Min(%d)", c.Value) }

// Max allocates at most Value cells; extent it refuses flows to the other
// elastic constraints.
type Max struct{ Value int }

func (Max) constraint() {}

func (c Max) String() string { return fmt.Sprintf("Max(%d)", c.Value) }

// Fill shares whatever extent the fixed constraints leave behind,
// proportionally to Weight. A non-positive weight counts as 1.
type Fill struct{ Weight int }

func (Fill) constraint() {}

func (c Fill) String() string { return fmt.Sprintf("Fill(%d)", c.Weight) }
