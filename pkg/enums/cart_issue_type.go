package enums

import "fmt"

// CartIssueType enumerates the reasons a cart line can fail read-path validation.
type CartIssueType string

const (
	CartIssueTypeStatus CartIssueType = "status"
	CartIssueTypeStock  CartIssueType = "stock"
	CartIssueTypePrice  CartIssueType = "price"
)

var validCartIssueTypes = []CartIssueType{
	CartIssueTypeStatus,
	CartIssueTypeStock,
	CartIssueTypePrice,
}

// String implements fmt.Stringer.
func (c CartIssueType) String() string {
	return string(c)
}

// IsValid reports whether the value is known.
func (c CartIssueType) IsValid() bool {
	for _, candidate := range validCartIssueTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// IsFatal reports whether the issue makes the cart unsafe to check out (and to cache).
func (c CartIssueType) IsFatal() bool {
	return c == CartIssueTypeStatus || c == CartIssueTypeStock
}

// ParseCartIssueType converts raw input into a CartIssueType.
func ParseCartIssueType(value string) (CartIssueType, error) {
	for _, candidate := range validCartIssueTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart issue type %q", value)
}
