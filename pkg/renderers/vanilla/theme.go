package vanilla

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formwidgets/pkg/selection"
)

type themeClasses struct {
	optionItem     string
	optionInput    string
	optionSelected string
	phoneInput     string
}

func defaultThemeClasses() themeClasses {
	return themeClasses{
		optionItem:     ClassOptionRow,
		optionInput:    ClassOptionIn,
		optionSelected: selection.DefaultMarker,
		phoneInput:     ClassPhone,
	}
}

// resolveThemeClasses merges manifest tokens with the variant overrides and
// maps them onto the classes the templates use.
func resolveThemeClasses(selector theme.ThemeSelector, name, variant string) (themeClasses, error) {
	classes := defaultThemeClasses()
	if selector == nil {
		return classes, nil
	}
	sel, err := selector.Select(name, variant)
	if err != nil {
		return classes, fmt.Errorf("vanilla renderer: select theme %q/%q: %w", name, variant, err)
	}
	tokens := selectionTokens(sel)
	apply := func(dst *string, key string) {
		if value := strings.TrimSpace(tokens[key]); value != "" {
			*dst = value
		}
	}
	apply(&classes.optionItem, TokenOptionItemClass)
	apply(&classes.optionInput, TokenOptionInputClass)
	apply(&classes.optionSelected, TokenOptionSelectedClass)
	apply(&classes.phoneInput, TokenPhoneInputClass)
	return classes, nil
}

func selectionTokens(sel *theme.Selection) map[string]string {
	if sel == nil || sel.Manifest == nil {
		return nil
	}
	tokens := make(map[string]string, len(sel.Manifest.Tokens))
	for key, value := range sel.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := sel.Manifest.Variants[sel.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	return tokens
}
