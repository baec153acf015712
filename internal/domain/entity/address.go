package entity

// Address is a delivery address. Orders hold a copy, never a reference.
type Address struct {
	Label    string `json:"label,omitempty"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
	Landmark string `json:"landmark,omitempty"`
}

// IsZero reports whether no address was supplied.
func (a *Address) IsZero() bool {
	return a == nil || (a.Line1 == "" && a.Pincode == "" && a.City == "")
}
