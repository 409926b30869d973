package scraper

import "log"

// findField walks the selector list in priority order, feeds the text of
// every matching element in document order through test, and returns the
// first accepted value. A failing selector query is logged and skipped; it
// never aborts the search. Returns false when every selector is exhausted.
func findField[T any](session Session, selectors []string, test func(text string) (T, bool)) (T, bool) {
	var zero T

	for _, selector := range selectors {
		elements, err := session.Elements(selector)
		if err != nil {
			log.Printf("Error with selector %s: %v", selector, err)
			continue
		}

		for _, element := range elements {
			text, err := element.Text()
			if err != nil {
				log.Printf("Error reading element text for selector %s: %v", selector, err)
				continue
			}
			if value, ok := test(text); ok {
				return value, true
			}
		}
	}

	return zero, false
}
