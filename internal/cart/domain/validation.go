package domain

import (
	"fmt"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceDriftPolicy decides when a live price has moved far enough from a snapshot to
// warn the shopper. Either threshold alone is sufficient.
type PriceDriftPolicy struct {
	// Percent is a fraction of the snapshot price, e.g. 0.01 for 1%.
	Percent decimal.Decimal
	// Absolute is a difference in currency units.
	Absolute decimal.Decimal
}

// DefaultPriceDriftPolicy warns on more than 1% or more than 1000 units of drift.
func DefaultPriceDriftPolicy() PriceDriftPolicy {
	return PriceDriftPolicy{
		Percent:  decimal.NewFromFloat(0.01),
		Absolute: decimal.NewFromInt(1000),
	}
}

// Issue is one validation finding on a cart line.
type Issue struct {
	Type    enums.CartIssueType `json:"type"`
	Message string              `json:"message"`
}

// ItemIssues groups the findings for one line.
type ItemIssues struct {
	ItemID    uuid.UUID `json:"item_id"`
	VariantID uuid.UUID `json:"variant_id"`
	Issues    []Issue   `json:"issues"`
}

// Validation is attached to a cart view only when at least one issue exists.
type Validation struct {
	Warnings []ItemIssues `json:"warnings"`
	Errors   []ItemIssues `json:"errors"`
}

// HasErrors reports whether any fatal issue was found.
func (v *Validation) HasErrors() bool {
	return v != nil && len(v.Errors) > 0
}

// ValidateItem compares a line against the live variant data.
func ValidateItem(item *CartItem, variant VariantSnapshot, policy PriceDriftPolicy) []Issue {
	var issues []Issue

	if !variant.IsAvailable() {
		issues = append(issues, Issue{
			Type:    enums.CartIssueTypeStatus,
			Message: "product is no longer available",
		})
	}

	if item.Quantity() > variant.StockQuantity {
		issues = append(issues, Issue{
			Type:    enums.CartIssueTypeStock,
			Message: fmt.Sprintf("only %d left in stock", max(variant.StockQuantity, 0)),
		})
	}

	snapshot := item.PriceAtAdd()
	live := variant.LivePrice()
	if snapshot.IsPositive() && policy.exceeded(snapshot.Decimal(), live.Diff(snapshot)) {
		issues = append(issues, Issue{
			Type:    enums.CartIssueTypePrice,
			Message: fmt.Sprintf("price changed from %s to %s", snapshot, live),
		})
	}

	return issues
}

func (p PriceDriftPolicy) exceeded(snapshot, diff decimal.Decimal) bool {
	if diff.GreaterThan(snapshot.Mul(p.Percent)) {
		return true
	}
	return diff.GreaterThan(p.Absolute)
}

// Classifier accumulates per-line issues into warnings and errors.
type Classifier struct {
	validation Validation
}

// Add records the issues for one line. A line with any fatal issue lands in Errors;
// a line with only non-fatal issues lands in Warnings.
func (c *Classifier) Add(item *CartItem, issues []Issue) {
	if len(issues) == 0 {
		return
	}
	entry := ItemIssues{ItemID: item.ID(), VariantID: item.VariantID(), Issues: issues}
	for _, issue := range issues {
		if issue.Type.IsFatal() {
			c.validation.Errors = append(c.validation.Errors, entry)
			return
		}
	}
	c.validation.Warnings = append(c.validation.Warnings, entry)
}

// Result returns nil when no issue was recorded.
func (c *Classifier) Result() *Validation {
	if len(c.validation.Warnings) == 0 && len(c.validation.Errors) == 0 {
		return nil
	}
	out := c.validation
	if out.Warnings == nil {
		out.Warnings = []ItemIssues{}
	}
	if out.Errors == nil {
		out.Errors = []ItemIssues{}
	}
	return &out
}
