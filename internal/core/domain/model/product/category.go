package product

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Category classifies catalog products.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// Clothing covers embroidered garments.
	Clothing

	// Accessories covers bags, pouches and similar pieces.
	Accessories

	// HomeDecor covers towels, pillowcases and decoration pieces.
	HomeDecor

	// Other covers everything that fits no named category.
	Other
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown: "UNKNOWN",
		Clothing:        "CLOTHING",
		Accessories:     "ACCESSORIES",
		HomeDecor:       "HOME_DECOR",
		Other:           "OTHER",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		Clothing:    "CLOTHING",
		Accessories: "ACCESSORIES",
		HomeDecor:   "HOME_DECOR",
		Other:       "OTHER",
	}
}

// CategoryFromString parses a category name as received over HTTP or read
// from persistence.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getValidCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid category", s))
}

// Validate checks that the category is one of the defined values.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the category name, or "UNKNOWN" for invalid values.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
